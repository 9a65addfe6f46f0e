package codegen

import (
	"github.com/monado-tools/xrbindgen/internal/domain/services"
)

// ReducedEmitter serializes resolved profiles into the reduced schema
// consumed by the SteamVR driver plugin: the same binding and dpad
// records as the full schema, without the verification function
// references and the promoted version detail the plugin does not need.
type ReducedEmitter struct{}

// NewReducedEmitter creates a new reduced schema emitter.
func NewReducedEmitter() *ReducedEmitter {
	return &ReducedEmitter{}
}

// EmitImplementation renders the generated implementation file.
func (e *ReducedEmitter) EmitImplementation(profiles []*services.ResolvedProfile) ([]byte, error) {
	w := &cwriter{}
	w.Raw(banner)
	w.Line(
		"#include \"b_ovrd_generated_bindings.h\"",
		"#include <string.h>",
		"",
		"// clang-format off",
		"",
	)

	w.Blank()
	w.Linef("struct profile_template profile_templates[%d] = { // array of profile_template", len(profiles))
	for _, profile := range profiles {
		writeProfileIdentity(w, profile)

		if profile.ExtensionName == nil {
			w.Line("\t\t.extension_name = NULL,")
		} else {
			w.Linef("\t\t.extension_name = \"%s\",", *profile.ExtensionName)
		}
		w.Line("\t}, // /profile_template")
	}
	w.Line(
		"}; // /array of profile_template",
		"",
		"// clang-format on",
	)

	return w.Bytes(), nil
}

// EmitHeader renders the generated interface file.
func (e *ReducedEmitter) EmitHeader(profiles []*services.ResolvedProfile) ([]byte, error) {
	return renderHeader("ovrd_header.tmpl", headerData{
		Banner: banner,
		Count:  len(profiles),
	})
}
