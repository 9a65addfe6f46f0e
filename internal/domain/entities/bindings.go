// Package entities contains the domain entities of the bindings data
// model. These are pure domain types with NO infrastructure
// dependencies; the loader builds them once per run and the compiler
// reads them without ever mutating them.
package entities

import (
	"sort"
	"strings"

	"github.com/monado-tools/xrbindgen/internal/domain/values"
)

// Bindings is the root collection: the ordered set of interaction
// profiles loaded from one bindings definition file. Output artifacts
// preserve this order.
type Bindings struct {
	Profiles []*Profile
}

// ProfileByName returns the profile with the given canonical path.
func (b *Bindings) ProfileByName(name string) (*Profile, bool) {
	for _, p := range b.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Profile describes one interaction profile: a controller or device
// with its accepted input/output paths and their metadata.
//
// Profiles form a DAG through Parents; a profile may inherit the legal
// path sets of several parents. ExtensionName and PromotedVersion gate
// when the profile's own entries become usable: via the extension, via
// the core version it was promoted into, or either when both are set.
type Profile struct {
	// Name is the canonical path, e.g. /interaction_profiles/khr/simple_controller.
	Name string
	// LocalizedName is the human readable label.
	LocalizedName string
	// ValidationFuncName is the stable stem for the generated verify
	// function names.
	ValidationFuncName string
	// DeviceEnum is the consuming runtime's device enumerator.
	DeviceEnum string

	// ExtensionName gates the profile behind an OpenXR extension.
	// Nil means no extension is required.
	ExtensionName *string
	// PromotedVersion is set when the profile was promoted to core in
	// that OpenXR version and is unconditionally available from it on.
	PromotedVersion *values.Version

	// Parents are the resolved parent profiles, DAG edges.
	Parents []*Profile

	Components  []*Component
	Identifiers []*Identifier

	// The three length-bucketed path dictionaries the verify functions
	// are compiled from. Keys are string lengths, values are the legal
	// strings of exactly that length.
	SubpathsByLength      map[int][]string
	DpadPathsByLength     map[int][]string
	DpadEmulatorsByLength map[int][]string
}

// Availability returns the profile's own gating condition. Extension
// and promoted version are independent alternatives: either one being
// met makes the profile's entries legal.
func (p *Profile) Availability() values.Availability {
	var featureSets []values.FeatureSet
	if p.ExtensionName != nil {
		featureSets = append(featureSets, values.NewFeatureSet(nil, *p.ExtensionName))
	}
	if p.PromotedVersion != nil {
		featureSets = append(featureSets, values.NewFeatureSet(p.PromotedVersion))
	}
	if len(featureSets) == 0 {
		featureSets = append(featureSets, values.NewFeatureSet(nil))
	}
	return values.NewAvailability(featureSets...)
}

// SortedParents returns the parents ordered by name, the traversal
// order used during resolution so generated code is stable.
func (p *Profile) SortedParents() []*Profile {
	parents := make([]*Profile, len(p.Parents))
	copy(parents, p.Parents)
	sort.Slice(parents, func(i, j int) bool { return parents[i].Name < parents[j].Name })
	return parents
}

// VendorName returns the vendor segment of the canonical path.
func (p *Profile) VendorName() string {
	parts := strings.Split(p.Name, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// HardwareName returns the device segment of the canonical path.
func (p *Profile) HardwareName() string {
	parts := strings.Split(p.Name, "/")
	return parts[len(parts)-1]
}

// DpadIdentifiers returns the identifiers carrying a dpad descriptor,
// in definition order.
func (p *Profile) DpadIdentifiers() []*Identifier {
	var out []*Identifier
	for _, ident := range p.Identifiers {
		if ident.Dpad != nil {
			out = append(out, ident)
		}
	}
	return out
}

// BucketByLength builds a length-bucketed dictionary from a path
// list: keys are string lengths, values the deduplicated, sorted
// strings of exactly that length.
func BucketByLength(paths []string) map[int][]string {
	if len(paths) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(paths))
	buckets := make(map[int][]string)
	for _, path := range paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		buckets[len(path)] = append(buckets[len(path)], path)
	}
	for _, bucket := range buckets {
		sort.Strings(bucket)
	}
	return buckets
}

// Component is one controller element: a single click, touch, value,
// force, proximity, position or pose endpoint under one identifier and
// one subaction path.
type Component struct {
	// ComponentName is the endpoint kind, e.g. "click" or "value".
	ComponentName string
	// SubactionPath is the top level user path, e.g. /user/hand/left.
	SubactionPath string
	// IdentifierJSONPath is the identifier path this component sits
	// under, e.g. /input/trackpad.
	IdentifierJSONPath string
	// SteamVRPath is the SteamVR input path this component maps to.
	SteamVRPath string
	// LocalizedName labels the identifier for humans.
	LocalizedName string
	// MonadoBinding is the runtime's enum identifying this control.
	// Empty means the controller exposes the path but the runtime has
	// no binding for it.
	MonadoBinding string
	// DpadEmulation is set on components whose two-axis value drives
	// an emulated dpad; Activate optionally names a sibling component
	// gating the emulated press.
	DpadEmulation *DpadEmulation
}

// DpadEmulation names the optional activation component of a dpad
// emulating component, by component name within the same identifier
// and subaction path.
type DpadEmulation struct {
	Activate string
}

// IsInput reports whether the component maps to a runtime input.
func (c *Component) IsInput() bool {
	return strings.HasPrefix(c.MonadoBinding, "XRT_INPUT")
}

// IsOutput reports whether the component maps to a runtime output.
func (c *Component) IsOutput() bool {
	return strings.HasPrefix(c.MonadoBinding, "XRT_OUTPUT")
}

// HasDpadEmulation reports whether this component emulates a dpad.
func (c *Component) HasDpadEmulation() bool {
	return c.DpadEmulation != nil
}

// BasePath is the identifier path under this component's subaction
// path, the prefix of every full OpenXR path of the component.
func (c *Component) BasePath() string {
	return c.SubactionPath + c.IdentifierJSONPath
}

// FullOpenXRPaths returns every OpenXR path string an application may
// use to address this component. The bare identifier path is accepted
// as shorthand for its primary component; position components expose
// the individual axes.
func (c *Component) FullOpenXRPaths() []string {
	base := c.BasePath()
	switch c.ComponentName {
	case "position":
		return []string{base + "/x", base + "/y", base}
	case "pose":
		return []string{base}
	default:
		return []string{base + "/" + c.ComponentName, base}
	}
}

// Identifier is a named path grouping within a profile, potentially
// covering several components (e.g. a trackpad's click, touch and
// position).
type Identifier struct {
	// Name is the identifier leaf name, e.g. "trackpad".
	Name string
	// JSONPath is the identifier path, e.g. /input/trackpad.
	JSONPath string
	// SubactionPath is the user path this instance belongs to.
	SubactionPath string
	// LocalizedName labels the identifier for humans.
	LocalizedName string
	// Dpad is set when this identifier supports dpad emulation.
	Dpad *DpadDescriptor
}

// DpadDescriptor carries the four directional paths of an emulated
// dpad and the component whose position drives it. The activation
// component is resolved later by the cross-reference resolver.
type DpadDescriptor struct {
	// Paths are the four directional full OpenXR paths, in up, down,
	// left, right order.
	Paths []string
	// PositionComponent is the two-axis component driving the dpad.
	PositionComponent *Component
}
