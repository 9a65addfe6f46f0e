package codegen

import (
	"github.com/monado-tools/xrbindgen/internal/domain/services"
)

// The binding and dpad record writers are shared between the full and
// reduced emitters so the two artifact pairs can not diverge in
// binding content.

func writeBindingTemplate(w *cwriter, idx int, binding services.BindingTemplate) {
	w.Linef("\t\t\t{ // binding_template %d", idx)
	w.Linef("\t\t\t\t.subaction_path = \"%s\",", binding.SubactionPath)
	w.Linef("\t\t\t\t.steamvr_path = \"%s\",", binding.SteamVRPath)
	w.Linef("\t\t\t\t.localized_name = \"%s\",", binding.LocalizedName)
	w.Blank()
	w.Line("\t\t\t\t.paths = { // array of paths")
	for _, path := range binding.Paths {
		w.Linef("\t\t\t\t\t\"%s\",", path)
	}
	w.Line(
		"\t\t\t\t\tNULL,",
		"\t\t\t\t}, // /array of paths",
	)

	if binding.HasBinding {
		w.Linef("\t\t\t\t.input = %s,", orZero(binding.Input))
		w.Linef("\t\t\t\t.dpad_activate = %s,", orZero(binding.DpadActivate))
		w.Linef("\t\t\t\t.output = %s,", orZero(binding.Output))
	}
	w.Linef("\t\t\t}, // /binding_template %d", idx)
}

func writeDpads(w *cwriter, dpads []services.ResolvedDpad) {
	w.Linef("\t\t.dpad_count = %d,", len(dpads))
	if len(dpads) == 0 {
		w.Line("\t\t.dpads = NULL,")
		return
	}

	w.Line("\t\t.dpads = (struct dpad_emulation[]){ // array of dpad_emulation")
	for _, dpad := range dpads {
		w.Line("\t\t\t{")
		w.Linef("\t\t\t\t.subaction_path = \"%s\",", dpad.SubactionPath)
		w.Line("\t\t\t\t.paths = {")
		for _, path := range dpad.Paths {
			w.Linef("\t\t\t\t\t\"%s\",", path)
		}
		w.Line("\t\t\t\t},")
		w.Linef("\t\t\t\t.position = %s,", orZero(dpad.Position))
		w.Linef("\t\t\t\t.activate = %s,", orZero(dpad.Activate))
		w.Line("\t\t\t},")
	}
	w.Line("\t\t}, // /array of dpad_emulation")
}

// writeProfileIdentity emits the record fields common to both schemas.
func writeProfileIdentity(w *cwriter, profile *services.ResolvedProfile) {
	w.Line("\t{ // profile_template")
	w.Linef("\t\t.name = %s,", profile.DeviceEnum)
	w.Linef("\t\t.path = \"%s\",", profile.Path)
	w.Linef("\t\t.localized_name = \"%s\",", profile.LocalizedName)
	w.Linef("\t\t.steamvr_input_profile_path = \"%s\",", profile.SteamVRInputProfilePath)
	w.Linef("\t\t.steamvr_controller_type = \"%s\",", profile.SteamVRControllerType)
	w.Linef("\t\t.binding_count = %d,", len(profile.Bindings))
	w.Line("\t\t.bindings = (struct binding_template[]){ // array of binding_template")
	for idx, binding := range profile.Bindings {
		writeBindingTemplate(w, idx, binding)
	}
	w.Line("\t\t}, // /array of binding_template")
	writeDpads(w, profile.Dpads)
}

// orZero renders an identifier reference, zero when the record has
// none.
func orZero(binding string) string {
	if binding == "" {
		return "0"
	}
	return binding
}
