package services

import (
	"github.com/monado-tools/xrbindgen/internal/domain/entities"
	"github.com/monado-tools/xrbindgen/internal/domain/values"
)

// PathsPerBindingTemplate is the fixed capacity of the generated path
// array, including the NULL terminator slot.
const PathsPerBindingTemplate = 16

// steamVRComponentSuffixes are the component kinds appended to the
// SteamVR path of a binding template.
var steamVRComponentSuffixes = map[string]bool{
	"click":     true,
	"touch":     true,
	"force":     true,
	"value":     true,
	"proximity": true,
}

// ResolvedProfile is the single shared resolution result both emission
// schemas are serialized from, so the full and reduced artifacts can
// never diverge in binding content.
type ResolvedProfile struct {
	DeviceEnum    string
	Path          string
	LocalizedName string
	// SteamVRInputProfilePath and SteamVRControllerType are the two
	// vendor/hardware derived cross-reference keys into the SteamVR
	// asset set.
	SteamVRInputProfilePath string
	SteamVRControllerType   string
	ValidationFuncName      string
	// ExtensionName is nil when the profile needs no extension.
	ExtensionName *string
	// PromotedVersion is nil when the profile was never promoted to
	// core; emitters write a zero pair then.
	PromotedVersion *values.Version

	Bindings []BindingTemplate
	Dpads    []ResolvedDpad

	// The guard groups the three verify functions are compiled from.
	Subpaths      []GuardGroup
	DpadPaths     []GuardGroup
	DpadEmulators []GuardGroup
}

// BindingTemplate is one static binding record: a component's paths
// and its resolved runtime identifiers. Empty identifier strings are
// emitted as zero.
type BindingTemplate struct {
	SubactionPath string
	SteamVRPath   string
	LocalizedName string
	Paths         []string
	// HasBinding is false for components the runtime has no binding
	// for; emitters leave the identifier fields implicitly zero then.
	HasBinding   bool
	Input        string
	DpadActivate string
	Output       string
}

// ProfileResolver builds the shared resolved model for one profile,
// combining the availability and cross-reference resolvers.
type ProfileResolver struct {
	availability *AvailabilityResolver
}

// NewProfileResolver creates a new profile resolver service.
func NewProfileResolver() *ProfileResolver {
	return &ProfileResolver{availability: NewAvailabilityResolver()}
}

// Resolve computes the full resolution result for one profile. The
// profile itself is not modified.
func (r *ProfileResolver) Resolve(profile *entities.Profile) (*ResolvedProfile, error) {
	crossRef := NewCrossRefResolver(profile)

	bindings := make([]BindingTemplate, 0, len(profile.Components))
	for _, component := range profile.Components {
		binding, err := r.resolveBinding(profile, crossRef, component)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding)
	}

	dpads, err := crossRef.ResolveDpads()
	if err != nil {
		return nil, err
	}

	vendor := profile.VendorName()
	hardware := profile.HardwareName()

	return &ResolvedProfile{
		DeviceEnum:              profile.DeviceEnum,
		Path:                    profile.Name,
		LocalizedName:           profile.LocalizedName,
		SteamVRInputProfilePath: vendor + "_" + hardware + "_profile.json",
		SteamVRControllerType:   "monado_" + vendor + "_" + hardware,
		ValidationFuncName:      profile.ValidationFuncName,
		ExtensionName:           profile.ExtensionName,
		PromotedVersion:         profile.PromotedVersion,
		Bindings:                bindings,
		Dpads:                   dpads,
		Subpaths:                r.availability.Resolve(profile, SubpathEntries),
		DpadPaths:               r.availability.Resolve(profile, DpadPathEntries),
		DpadEmulators:           r.availability.Resolve(profile, DpadEmulatorEntries),
	}, nil
}

func (r *ProfileResolver) resolveBinding(
	profile *entities.Profile,
	crossRef *CrossRefResolver,
	component *entities.Component,
) (BindingTemplate, error) {
	paths := component.FullOpenXRPaths()
	if len(paths) >= PathsPerBindingTemplate {
		return BindingTemplate{}, &entities.TooManyPathsError{
			Profile:   profile.Name,
			Component: component.BasePath() + "/" + component.ComponentName,
			Count:     len(paths),
			Capacity:  PathsPerBindingTemplate,
		}
	}

	steamVRPath := component.SteamVRPath
	if steamVRComponentSuffixes[component.ComponentName] {
		steamVRPath += "/" + component.ComponentName
	}

	binding := BindingTemplate{
		SubactionPath: component.SubactionPath,
		SteamVRPath:   steamVRPath,
		LocalizedName: component.LocalizedName,
		Paths:         paths,
	}

	// Controllers can expose paths the runtime has no binding for;
	// those contribute zero-valued identifiers only.
	if component.MonadoBinding == "" {
		return binding, nil
	}
	binding.HasBinding = true

	if component.IsInput() {
		binding.Input = component.MonadoBinding
	}
	if component.IsOutput() {
		binding.Output = component.MonadoBinding
	}

	activate, err := crossRef.ActivateBinding(component)
	if err != nil {
		return BindingTemplate{}, err
	}
	binding.DpadActivate = activate

	return binding, nil
}
