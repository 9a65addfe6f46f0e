package values

import (
	"sort"
	"strings"
)

// FeatureSet is one atomic availability condition: an optional minimum
// OpenXR version AND a set of required extensions. All parts of a
// feature set must hold for the condition to be satisfied.
//
// A nil MinVersion means no version requirement; an empty extension
// list means no extension requirement. A feature set with neither is
// unconditionally satisfied.
type FeatureSet struct {
	MinVersion *Version
	Extensions []string

	// Never marks a condition that can not be satisfied. Such sets
	// are produced by intersections of incompatible requirements and
	// are dropped before they reach code generation.
	Never bool
}

// NewFeatureSet builds a feature set with a normalized (sorted,
// deduplicated) extension list.
func NewFeatureSet(min *Version, extensions ...string) FeatureSet {
	return FeatureSet{MinVersion: min, Extensions: normalizeExtensions(extensions)}
}

// Unconditional reports whether the condition always holds.
func (fs FeatureSet) Unconditional() bool {
	return !fs.Never && fs.MinVersion == nil && len(fs.Extensions) == 0
}

// RequiresVersion reports whether a minimum version is required.
func (fs FeatureSet) RequiresVersion() bool {
	return fs.MinVersion != nil
}

// RequiresExtensions reports whether any extension is required.
func (fs FeatureSet) RequiresExtensions() bool {
	return len(fs.Extensions) > 0
}

// Intersect combines two conditions into the condition under which
// both hold: the stricter minimum version and the union of the
// required extension sets.
func (fs FeatureSet) Intersect(other FeatureSet) FeatureSet {
	if fs.Never || other.Never {
		return FeatureSet{Never: true}
	}

	var min *Version
	switch {
	case fs.MinVersion != nil && other.MinVersion != nil:
		v := fs.MinVersion.Max(*other.MinVersion)
		min = &v
	case fs.MinVersion != nil:
		v := *fs.MinVersion
		min = &v
	case other.MinVersion != nil:
		v := *other.MinVersion
		min = &v
	}

	return FeatureSet{
		MinVersion: min,
		Extensions: normalizeExtensions(append(append([]string{}, fs.Extensions...), other.Extensions...)),
	}
}

// Key returns a canonical string used for deduplication and as part
// of the deterministic ordering of generated guard blocks.
func (fs FeatureSet) Key() string {
	var b strings.Builder
	if fs.Never {
		b.WriteString("never")
		return b.String()
	}
	if fs.MinVersion != nil {
		b.WriteString("v")
		b.WriteString(fs.MinVersion.String())
	}
	b.WriteString("|")
	b.WriteString(strings.Join(fs.Extensions, ","))
	return b.String()
}

// Compare defines the total order used when emitting guard blocks:
// version-free sets first, then by version, then by extension list.
func (fs FeatureSet) Compare(other FeatureSet) int {
	switch {
	case fs.MinVersion == nil && other.MinVersion != nil:
		return -1
	case fs.MinVersion != nil && other.MinVersion == nil:
		return 1
	case fs.MinVersion != nil && other.MinVersion != nil:
		if c := fs.MinVersion.Compare(*other.MinVersion); c != 0 {
			return c
		}
	}
	return strings.Compare(strings.Join(fs.Extensions, ","), strings.Join(other.Extensions, ","))
}

func (fs FeatureSet) Equal(other FeatureSet) bool {
	return fs.Key() == other.Key()
}

func normalizeExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(extensions))
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

// Availability is the full condition under which a profile's bindings
// are usable: a disjunction over feature sets. It is satisfied when
// ANY one of its feature sets is satisfied. An availability with no
// feature sets is never satisfied.
type Availability struct {
	FeatureSets []FeatureSet
}

// NewAvailability builds an availability, dropping never-satisfied
// sets, deduplicating and sorting the rest.
func NewAvailability(featureSets ...FeatureSet) Availability {
	seen := make(map[string]bool, len(featureSets))
	out := make([]FeatureSet, 0, len(featureSets))
	for _, fs := range featureSets {
		if fs.Never || seen[fs.Key()] {
			continue
		}
		seen[fs.Key()] = true
		out = append(out, fs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return Availability{FeatureSets: out}
}

// IsNever reports whether no feature set can be satisfied.
func (a Availability) IsNever() bool {
	return len(a.FeatureSets) == 0
}

// Intersection computes the condition under which both availabilities
// hold: the pairwise intersection of their feature sets. This is the
// merge rule for inherited bindings, where both the descendant's and
// the ancestor's own gating conditions must be met.
func (a Availability) Intersection(other Availability) Availability {
	combined := make([]FeatureSet, 0, len(a.FeatureSets)*len(other.FeatureSets))
	for _, fs := range a.FeatureSets {
		for _, ofs := range other.FeatureSets {
			combined = append(combined, fs.Intersect(ofs))
		}
	}
	return NewAvailability(combined...)
}

// Key returns a canonical string identifying the availability, used
// to detect when the same ancestor is reached with the same
// accumulated condition along different inheritance paths.
func (a Availability) Key() string {
	keys := make([]string, len(a.FeatureSets))
	for i, fs := range a.FeatureSets {
		keys[i] = fs.Key()
	}
	return strings.Join(keys, ";")
}
