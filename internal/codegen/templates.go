package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var headerTemplates embed.FS

// banner is the leading comment of every generated file.
const banner = `// Copyright 2020-2025, Collabora, Ltd.
// SPDX-License-Identifier: BSL-1.0
// Generated bindings data, do not edit.
`

// headerData feeds the interface-file templates.
type headerData struct {
	Banner string
	Count  int
	// VerifyPrototypes is only used by the full schema header.
	VerifyPrototypes string
}

func renderHeader(name string, data headerData) ([]byte, error) {
	content, err := headerTemplates.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
