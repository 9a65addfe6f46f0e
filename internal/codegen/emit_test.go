package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monado-tools/xrbindgen/internal/domain/services"
)

func simpleResolvedProfile() *services.ResolvedProfile {
	return &services.ResolvedProfile{
		DeviceEnum:              "XRT_DEVICE_SIMPLE_CONTROLLER",
		Path:                    "/interaction_profiles/test/simple_controller",
		LocalizedName:           "Test Simple Controller",
		SteamVRInputProfilePath: "test_simple_controller_profile.json",
		SteamVRControllerType:   "monado_test_simple_controller",
		ValidationFuncName:      "test_simple_controller",
		Bindings: []services.BindingTemplate{
			{
				SubactionPath: "/user/hand/right",
				SteamVRPath:   "/input/select/click",
				LocalizedName: "Select",
				Paths: []string{
					"/user/hand/right/input/select/click",
					"/user/hand/right/input/select",
				},
				HasBinding: true,
				Input:      "XRT_INPUT_TEST_SELECT_CLICK",
			},
		},
		Subpaths: []services.GuardGroup{unconditionalGroup(
			"/user/hand/right/input/select/click",
			"/user/hand/right/input/select",
		)},
	}
}

func Test_FullEmitter_EmitImplementation_SimpleController(t *testing.T) {
	t.Parallel()

	out, err := NewFullEmitter().EmitImplementation([]*services.ResolvedProfile{simpleResolvedProfile()})
	require.NoError(t, err)
	impl := string(out)

	// All four functions present.
	assert.Contains(t, impl, "oxr_verify_test_simple_controller_subpath")
	assert.Contains(t, impl, "oxr_verify_test_simple_controller_dpad_path")
	assert.Contains(t, impl, "oxr_verify_test_simple_controller_dpad_emulator")
	assert.Contains(t, impl, "oxr_verify_test_simple_controller_ext")

	// Template record content.
	assert.Contains(t, impl, "struct profile_template profile_templates[1]")
	assert.Contains(t, impl, "\t\t.name = XRT_DEVICE_SIMPLE_CONTROLLER,")
	assert.Contains(t, impl, `.path = "/interaction_profiles/test/simple_controller",`)
	assert.Contains(t, impl, `.steamvr_input_profile_path = "test_simple_controller_profile.json",`)
	assert.Contains(t, impl, `.steamvr_controller_type = "monado_test_simple_controller",`)
	assert.Contains(t, impl, "\t\t\t\t.input = XRT_INPUT_TEST_SELECT_CLICK,")
	assert.Contains(t, impl, "\t\t\t\t.dpad_activate = 0,")
	assert.Contains(t, impl, "\t\t\t\t.output = 0,")
	assert.Contains(t, impl, "\t\t.dpad_count = 0,")
	assert.Contains(t, impl, "\t\t.dpads = NULL,")
	assert.Contains(t, impl, "\t\t.openxr_version.promoted.major = 0,")
	assert.Contains(t, impl, "\t\t.openxr_version.promoted.minor = 0,")
	assert.Contains(t, impl, "\t\t.subpath_fn = oxr_verify_test_simple_controller_subpath,")
	assert.Contains(t, impl, "\t\t.ext_verify_fn = oxr_verify_test_simple_controller_ext,")
	assert.Contains(t, impl, "\t\t.extension_name = NULL,")
	// Path array NULL terminated.
	assert.Contains(t, impl, "\t\t\t\t\t\"/user/hand/right/input/select\",\n\t\t\t\t\tNULL,")
}

func Test_FullEmitter_EmitImplementation_ExtensionAndPromotion(t *testing.T) {
	t.Parallel()

	profile := simpleResolvedProfile()
	profile.ExtensionName = strPtr("BD_controller_interaction")
	profile.PromotedVersion = versionPtr(1, 1)

	out, err := NewFullEmitter().EmitImplementation([]*services.ResolvedProfile{profile})
	require.NoError(t, err)
	impl := string(out)

	assert.Contains(t, impl, `.extension_name = "BD_controller_interaction",`)
	assert.Contains(t, impl, "\t\t.openxr_version.promoted.major = 1,")
	assert.Contains(t, impl, "\t\t.openxr_version.promoted.minor = 1,")
}

func Test_FullEmitter_EmitHeader_PrototypesAndCount(t *testing.T) {
	t.Parallel()

	out, err := NewFullEmitter().EmitHeader([]*services.ResolvedProfile{simpleResolvedProfile()})
	require.NoError(t, err)
	header := string(out)

	assert.Contains(t, header, "#define OXR_BINDINGS_PROFILE_TEMPLATE_COUNT 1")
	assert.Contains(t, header, "#define PATHS_PER_BINDING_TEMPLATE 16")
	assert.Contains(t, header, "oxr_verify_test_simple_controller_subpath(const struct oxr_extension_status *extensions, XrVersion openxr_version, const char *str, size_t length);")
	assert.Contains(t, header, "oxr_verify_test_simple_controller_ext(const struct oxr_extension_status *extensions, XrVersion openxr_version, bool *out_supported, bool *out_enabled);")
	assert.Contains(t, header, "extern struct profile_template profile_templates[OXR_BINDINGS_PROFILE_TEMPLATE_COUNT];")
	assert.Contains(t, header, "path_verify_fn_t subpath_fn;")
}

func Test_ReducedEmitter_EmitImplementation_SharedRecords(t *testing.T) {
	t.Parallel()

	profile := simpleResolvedProfile()

	full, err := NewFullEmitter().EmitImplementation([]*services.ResolvedProfile{profile})
	require.NoError(t, err)
	reduced, err := NewReducedEmitter().EmitImplementation([]*services.ResolvedProfile{profile})
	require.NoError(t, err)

	impl := string(reduced)
	assert.NotContains(t, impl, "oxr_verify_")
	assert.NotContains(t, impl, "openxr_version.promoted")
	assert.NotContains(t, impl, "subpath_fn")

	// Both schemas carry the identical binding record text.
	record := "\t\t\t{ // binding_template 0"
	fullIdx := strings.Index(string(full), record)
	reducedIdx := strings.Index(impl, record)
	require.Positive(t, fullIdx)
	require.Positive(t, reducedIdx)
	end := "\t\t\t}, // /binding_template 0"
	fullRecord := string(full)[fullIdx : strings.Index(string(full), end)+len(end)]
	reducedRecord := impl[reducedIdx : strings.Index(impl, end)+len(end)]
	assert.Equal(t, fullRecord, reducedRecord)
}

func Test_ReducedEmitter_EmitHeader_NoVerifyDeclarations(t *testing.T) {
	t.Parallel()

	out, err := NewReducedEmitter().EmitHeader([]*services.ResolvedProfile{simpleResolvedProfile()})
	require.NoError(t, err)
	header := string(out)

	assert.Contains(t, header, "#define OXR_BINDINGS_PROFILE_TEMPLATE_COUNT 1")
	assert.NotContains(t, header, "oxr_verify_")
	assert.NotContains(t, header, "path_verify_fn_t")
	assert.NotContains(t, header, "openxr_version")
	assert.Contains(t, header, "struct binding_template")
}

func Test_Emitters_Deterministic(t *testing.T) {
	t.Parallel()

	profiles := []*services.ResolvedProfile{simpleResolvedProfile()}

	first, err := NewFullEmitter().EmitImplementation(profiles)
	require.NoError(t, err)
	second, err := NewFullEmitter().EmitImplementation(profiles)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func Test_writeDpads_Records(t *testing.T) {
	t.Parallel()

	w := &cwriter{}
	writeDpads(w, []services.ResolvedDpad{
		{
			SubactionPath: "/user/hand/left",
			Paths: []string{
				"/user/hand/left/input/thumbstick/dpad_up",
				"/user/hand/left/input/thumbstick/dpad_down",
				"/user/hand/left/input/thumbstick/dpad_left",
				"/user/hand/left/input/thumbstick/dpad_right",
			},
			Position: "XRT_INPUT_TEST_THUMBSTICK",
			Activate: "",
		},
	})
	out := string(w.Bytes())

	assert.Contains(t, out, "\t\t.dpad_count = 1,")
	assert.Contains(t, out, "\t\t\t\t.position = XRT_INPUT_TEST_THUMBSTICK,")
	assert.Contains(t, out, "\t\t\t\t.activate = 0,")
	assert.Contains(t, out, "/user/hand/left/input/thumbstick/dpad_right")
}
