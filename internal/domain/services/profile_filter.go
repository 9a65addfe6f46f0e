package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/monado-tools/xrbindgen/internal/domain/entities"
)

// ProfileEnv defines the variables available during filter expression
// evaluation.
type ProfileEnv struct {
	Name          string `expr:"name"`
	LocalizedName string `expr:"localized_name"`
	DeviceEnum    string `expr:"device_enum"`
	Extension     string `expr:"extension"`
	Promoted      bool   `expr:"promoted"`
}

// ProfileFilter selects which profiles are generated. Selection never
// reorders: Apply preserves the source definition order.
type ProfileFilter struct {
	// Exclusive mode: only include the named profiles.
	exclusiveNames map[string]bool

	// Advanced filtering.
	filterProgram *vm.Program
}

// NewProfileFilter initializes a new empty filter that matches every
// profile.
func NewProfileFilter() *ProfileFilter {
	return &ProfileFilter{exclusiveNames: make(map[string]bool)}
}

// WithExclusiveProfiles restricts generation to ONLY the named
// profiles.
func (f *ProfileFilter) WithExclusiveProfiles(names []string) *ProfileFilter {
	f.exclusiveNames = make(map[string]bool, len(names))
	for _, name := range names {
		f.exclusiveNames[name] = true
	}
	return f
}

// WithExpression compiles and attaches an advanced filter expression,
// e.g. `extension == "" and promoted`.
func (f *ProfileFilter) WithExpression(src string) (*ProfileFilter, error) {
	if src == "" {
		return f, nil
	}
	program, err := expr.Compile(src, expr.Env(ProfileEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter expression: %w", err)
	}
	f.filterProgram = program
	return f, nil
}

// Matches reports whether a profile passes the filter.
func (f *ProfileFilter) Matches(p *entities.Profile) (bool, error) {
	if len(f.exclusiveNames) > 0 {
		return f.exclusiveNames[p.Name], nil
	}
	if f.filterProgram == nil {
		return true, nil
	}

	env := ProfileEnv{
		Name:          p.Name,
		LocalizedName: p.LocalizedName,
		DeviceEnum:    p.DeviceEnum,
		Promoted:      p.PromotedVersion != nil,
	}
	if p.ExtensionName != nil {
		env.Extension = *p.ExtensionName
	}

	out, err := expr.Run(f.filterProgram, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter for %s: %w", p.Name, err)
	}
	return out.(bool), nil
}

// Apply returns the matching profiles in their original order.
func (f *ProfileFilter) Apply(profiles []*entities.Profile) ([]*entities.Profile, error) {
	out := make([]*entities.Profile, 0, len(profiles))
	for _, p := range profiles {
		ok, err := f.Matches(p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}
