package services

import (
	"github.com/monado-tools/xrbindgen/internal/domain/entities"
)

// componentKey is the join the cross-reference lookup matches on: a
// dpad activation name only resolves against a component of the same
// identifier instance.
type componentKey struct {
	name          string
	subactionPath string
	jsonPath      string
}

// ResolvedDpad is one concrete dpad emulation record: the four
// directional paths plus the runtime bindings driving and gating the
// emulation.
type ResolvedDpad struct {
	SubactionPath string
	Paths         []string
	// Position is the binding of the two-axis component.
	Position string
	// Activate is the binding gating the emulated press, empty when
	// the dpad has no activation component.
	Activate string
}

// CrossRefResolver resolves named references between one profile's
// components. The component index is built once per profile so every
// lookup is a single map access.
type CrossRefResolver struct {
	profile *entities.Profile
	index   map[componentKey][]*entities.Component
}

// NewCrossRefResolver builds the resolver and its index for a profile.
func NewCrossRefResolver(profile *entities.Profile) *CrossRefResolver {
	index := make(map[componentKey][]*entities.Component, len(profile.Components))
	for _, c := range profile.Components {
		key := componentKey{
			name:          c.ComponentName,
			subactionPath: c.SubactionPath,
			jsonPath:      c.IdentifierJSONPath,
		}
		index[key] = append(index[key], c)
	}
	return &CrossRefResolver{profile: profile, index: index}
}

// FindComponent resolves a component by name within the identifier
// instance given by subaction path and identifier json path. A missing
// or ambiguous match is an error, never a silent default.
func (r *CrossRefResolver) FindComponent(name, subactionPath, jsonPath string) (*entities.Component, error) {
	matches := r.index[componentKey{name: name, subactionPath: subactionPath, jsonPath: jsonPath}]
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, &entities.ComponentNotFoundError{
			Profile:            r.profile.Name,
			ComponentName:      name,
			SubactionPath:      subactionPath,
			IdentifierJSONPath: jsonPath,
		}
	default:
		return nil, &entities.AmbiguousComponentError{
			Profile:            r.profile.Name,
			ComponentName:      name,
			SubactionPath:      subactionPath,
			IdentifierJSONPath: jsonPath,
		}
	}
}

// ActivateBinding resolves the dpad activation binding referenced by a
// component's dpad emulation. It returns the empty string when the
// component emulates no dpad or names no activation component.
func (r *CrossRefResolver) ActivateBinding(c *entities.Component) (string, error) {
	if !c.HasDpadEmulation() || c.DpadEmulation.Activate == "" {
		return "", nil
	}
	activate, err := r.FindComponent(c.DpadEmulation.Activate, c.SubactionPath, c.IdentifierJSONPath)
	if err != nil {
		return "", err
	}
	return activate.MonadoBinding, nil
}

// ResolveDpads produces the concrete dpad records for every dpad
// identifier of the profile, in definition order.
func (r *CrossRefResolver) ResolveDpads() ([]ResolvedDpad, error) {
	var out []ResolvedDpad
	for _, ident := range r.profile.DpadIdentifiers() {
		position := ident.Dpad.PositionComponent
		activate, err := r.ActivateBinding(position)
		if err != nil {
			return nil, err
		}
		out = append(out, ResolvedDpad{
			SubactionPath: ident.SubactionPath,
			Paths:         ident.Dpad.Paths,
			Position:      position.MonadoBinding,
			Activate:      activate,
		})
	}
	return out, nil
}
