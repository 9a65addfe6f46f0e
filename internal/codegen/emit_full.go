package codegen

import (
	"strings"

	"github.com/monado-tools/xrbindgen/internal/domain/services"
)

// FullEmitter serializes resolved profiles into the full schema
// consumed by the OpenXR state tracker: verification functions, the
// supported/enabled reporter and the complete profile template table.
type FullEmitter struct{}

// NewFullEmitter creates a new full schema emitter.
func NewFullEmitter() *FullEmitter {
	return &FullEmitter{}
}

// EmitImplementation renders the generated implementation file.
func (e *FullEmitter) EmitImplementation(profiles []*services.ResolvedProfile) ([]byte, error) {
	w := &cwriter{}
	w.Raw(banner)
	w.Line(
		"#include \"oxr_bindings/b_oxr_generated_bindings.h\"",
		"#include <string.h>",
		"#include \"oxr_objects.h\"",
		"",
		"// clang-format off",
		"",
	)

	for _, profile := range profiles {
		for i, suffix := range verifyFuncSuffixes {
			groups := [][]services.GuardGroup{profile.Subpaths, profile.DpadPaths, profile.DpadEmulators}[i]
			writeVerifyFunc(w, verifyFuncName(profile.ValidationFuncName, suffix), groups)
		}
		writeExtVerifyFunc(w, profile)
	}

	w.Blank()
	w.Linef("struct profile_template profile_templates[%d] = { // array of profile_template", len(profiles))
	for _, profile := range profiles {
		writeProfileIdentity(w, profile)

		var major, minor uint32
		if profile.PromotedVersion != nil {
			major = profile.PromotedVersion.Major
			minor = profile.PromotedVersion.Minor
		}
		w.Linef("\t\t.openxr_version.promoted.major = %d,", major)
		w.Linef("\t\t.openxr_version.promoted.minor = %d,", minor)

		for _, suffix := range verifyFuncSuffixes {
			w.Linef("\t\t.%s_fn = %s,", suffix, verifyFuncName(profile.ValidationFuncName, suffix))
		}
		w.Linef("\t\t.ext_verify_fn = oxr_verify_%s_ext,", profile.ValidationFuncName)

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

// EmitHeader renders the generated interface file: one prototype per
// verify function plus the record shapes and the template array.
func (e *FullEmitter) EmitHeader(profiles []*services.ResolvedProfile) ([]byte, error) {
	var protos strings.Builder
	for _, profile := range profiles {
		for _, suffix := range verifyFuncSuffixes {
			protos.WriteString("bool\n")
			protos.WriteString(verifyFuncName(profile.ValidationFuncName, suffix))
			protos.WriteString("(const struct oxr_extension_status *extensions, XrVersion openxr_version, const char *str, size_t length);\n\n")
		}
		protos.WriteString("void\n")
		protos.WriteString("oxr_verify_" + profile.ValidationFuncName + "_ext")
		protos.WriteString("(const struct oxr_extension_status *extensions, XrVersion openxr_version, bool *out_supported, bool *out_enabled);\n\n")
	}

	return renderHeader("oxr_header.tmpl", headerData{
		Banner:           banner,
		Count:            len(profiles),
		VerifyPrototypes: protos.String(),
	})
}
