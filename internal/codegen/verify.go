package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/monado-tools/xrbindgen/internal/domain/services"
	"github.com/monado-tools/xrbindgen/internal/domain/values"
)

// verifyFuncSuffixes are the three string-matcher functions generated
// per profile, in emission order.
var verifyFuncSuffixes = []string{"subpath", "dpad_path", "dpad_emulator"}

// verifyFuncName builds the stable generated function name.
func verifyFuncName(stem, suffix string) string {
	return "oxr_verify_" + stem + "_" + suffix
}

// writeSwitchBody emits the length-keyed dispatch: a switch over the
// candidate length with one case per bucket, each case an exact
// equality chain over the candidates of exactly that length. Any other
// length falls through to the default without comparing content.
func writeSwitchBody(w *cwriter, entries map[int][]string, indent string) {
	lengths := make([]int, 0, len(entries))
	for length := range entries {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	w.Linef("%s\tswitch (length) {", indent)
	for _, length := range lengths {
		w.Linef("%s\tcase %d:", indent, length)

		paths := make([]string, len(entries[length]))
		copy(paths, entries[length])
		sort.Strings(paths)

		for i, path := range paths {
			keyword := "if"
			if i > 0 {
				keyword = "} else if"
			}
			w.Linef("%s\t\t%s (strcmp(str, \"%s\") == 0) {", indent, keyword, path)
			w.Linef("%s\t\t\treturn true;", indent)
		}
		w.Linef("%s\t\t}", indent)
		w.Linef("%s\t\tbreak;", indent)
	}
	w.Linef("%s\tdefault: break;", indent)
	w.Linef("%s\t}", indent)
}

// writeGuardGroup emits one guard group: for each of its feature sets
// an independent guarded copy of the switch body.
//
// Version and extension checks are deliberately separate alternative
// blocks. A profile reachable via extension OR core version must keep
// its version block valid when the extension is compiled out, so the
// `exts-><ext>` reference only ever appears inside that extension's
// own #if block and version-only blocks carry no preprocessor guard.
func writeGuardGroup(w *cwriter, group services.GuardGroup) {
	w.Linef("\t// generated from: %s", group.Source)

	for _, fs := range group.Availability.FeatureSets {
		indent := ""
		var closing []string

		if fs.RequiresVersion() {
			indent += "\t"
			w.Linef("%sif (openxr_version >= %s) {", indent, makeVersion(*fs.MinVersion))
			closing = append(closing, indent+"}\n")
		}

		if fs.RequiresExtensions() {
			indent += "\t"
			defines := make([]string, len(fs.Extensions))
			flags := make([]string, len(fs.Extensions))
			for i, ext := range fs.Extensions {
				defines[i] = "defined(OXR_HAVE_" + ext + ")"
				flags[i] = "exts->" + ext
			}
			w.Linef("#if %s", strings.Join(defines, " && "))
			w.Linef("%sif (%s) {", indent, strings.Join(flags, " && "))
			closing = append(closing, indent+"}\n#endif // "+strings.Join(defines, " && ")+"\n\n")
		}

		writeSwitchBody(w, group.Entries, indent)

		for i := len(closing) - 1; i >= 0; i-- {
			w.Raw(closing[i])
		}
	}
}

// writeVerifyFunc emits one complete guarded matcher function. The
// function is pure: it only inspects its arguments and returns false
// when no guard admits the candidate.
func writeVerifyFunc(w *cwriter, name string, groups []services.GuardGroup) {
	w.Line(
		"bool",
		name+"(const struct oxr_extension_status *exts, XrVersion openxr_version, const char *str, size_t length)",
		"{",
	)
	for _, group := range groups {
		writeGuardGroup(w, group)
	}
	w.Line(
		"\treturn false;",
		"}",
		"",
	)
}

// writeExtVerifyFunc emits the supported/enabled reporter. Supported
// means the capability exists in this build; enabled means the runtime
// actually negotiated it. A version promotion short-circuits both
// before any extension check.
func writeExtVerifyFunc(w *cwriter, profile *services.ResolvedProfile) {
	w.Line(
		"void",
		"oxr_verify_"+profile.ValidationFuncName+"_ext(const struct oxr_extension_status *extensions, XrVersion openxr_version, bool *out_supported, bool *out_enabled)",
		"{",
		"",
	)

	if profile.PromotedVersion != nil {
		w.Linef("\tif (openxr_version >= %s) {", makeVersion(*profile.PromotedVersion))
		w.Line(
			"\t\t*out_supported = true;",
			"\t\t*out_enabled = true;",
			"\t\treturn;",
			"\t}",
			"",
		)
	}

	if profile.ExtensionName != nil {
		ext := *profile.ExtensionName
		w.Line(
			"#ifdef OXR_HAVE_"+ext,
			"\t*out_supported = true;",
			"\t*out_enabled = extensions->"+ext+";",
			"#else",
			"\t*out_supported = false;",
			"\t*out_enabled = false;",
			"#endif // OXR_HAVE_"+ext,
		)
	} else {
		w.Line(
			"\t*out_supported = true;",
			"\t*out_enabled = true;",
		)
	}
	w.Line("}", "")
}

func makeVersion(v values.Version) string {
	return fmt.Sprintf("XR_MAKE_VERSION(%d, %d, 0)", v.Major, v.Minor)
}
