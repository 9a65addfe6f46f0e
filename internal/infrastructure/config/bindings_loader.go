// Package config provides infrastructure for loading bindings
// definitions. This package handles YAML/JSON parsing, file I/O,
// schema validation and the expansion of the declarative document into
// the flat entity model the compiler consumes.
package config

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/monado-tools/xrbindgen/internal/domain/entities"
	"github.com/monado-tools/xrbindgen/internal/domain/values"
)

//go:embed bindings_schema.json
var bindingsSchemaJSON string

// dpadDirectionSuffixes are appended to a dpad identifier's base path
// to form the four directional paths, in up, down, left, right order.
var dpadDirectionSuffixes = []string{"/dpad_up", "/dpad_down", "/dpad_left", "/dpad_right"}

// Document shapes. YAML and JSON inputs both decode through these;
// JSON is a YAML subset for the decoder.

type bindingsDoc struct {
	Profiles []profileDoc `yaml:"profiles"`
}

type profileDoc struct {
	Name               string          `yaml:"name"`
	LocalizedName      string          `yaml:"localized_name"`
	DeviceEnum         string          `yaml:"device_enum"`
	ValidationFuncName string          `yaml:"validation_func_name,omitempty"`
	Extension          string          `yaml:"extension,omitempty"`
	Promoted           string          `yaml:"promoted,omitempty"`
	Extends            []string        `yaml:"extends,omitempty"`
	SubactionPaths     []string        `yaml:"subaction_paths"`
	Identifiers        []identifierDoc `yaml:"identifiers"`
}

type identifierDoc struct {
	Path          string                  `yaml:"path"`
	LocalizedName string                  `yaml:"localized_name"`
	Components    map[string]componentDoc `yaml:"components"`
	DpadEmulation *dpadEmulationDoc       `yaml:"dpad_emulation,omitempty"`
}

type componentDoc struct {
	Binding     string `yaml:"binding,omitempty"`
	SteamVRPath string `yaml:"steamvr_path,omitempty"`
}

type dpadEmulationDoc struct {
	Position string `yaml:"position"`
	Activate string `yaml:"activate,omitempty"`
}

// BindingsLoader loads a bindings definition file into the immutable
// entity model. Validation order: JSON schema first (so structural
// mistakes are reported with document paths), then semantic checks
// while building entities.
type BindingsLoader struct {
	schema *jsonschema.Schema
}

// NewBindingsLoader creates a loader with the embedded schema
// compiled. Compilation of the embedded schema can not fail at
// runtime, it is covered by tests.
func NewBindingsLoader() *BindingsLoader {
	schema := jsonschema.MustCompileString("bindings_schema.json", bindingsSchemaJSON)
	return &BindingsLoader{schema: schema}
}

// LoadAndParse loads a bindings definition from a file.
func (l *BindingsLoader) LoadAndParse(path string) (*entities.Bindings, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open bindings directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open bindings file: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadFromReader(file)
}

// LoadFromReader loads a bindings definition from an io.Reader.
func (l *BindingsLoader) LoadFromReader(r io.Reader) (*entities.Bindings, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings definition: %w", err)
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("failed to decode bindings definition: %w", err)
	}
	if err := l.schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("bindings definition rejected by schema: %w", err)
	}

	var doc bindingsDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode bindings definition: %w", err)
	}

	return l.buildEntities(&doc)
}

// buildEntities expands the document into the flat entity model and
// links the inheritance DAG.
func (l *BindingsLoader) buildEntities(doc *bindingsDoc) (*entities.Bindings, error) {
	bindings := &entities.Bindings{Profiles: make([]*entities.Profile, 0, len(doc.Profiles))}
	byName := make(map[string]*entities.Profile, len(doc.Profiles))

	for i := range doc.Profiles {
		profile, err := l.buildProfile(&doc.Profiles[i])
		if err != nil {
			return nil, err
		}
		if _, exists := byName[profile.Name]; exists {
			return nil, fmt.Errorf("duplicate profile %s", profile.Name)
		}
		byName[profile.Name] = profile
		bindings.Profiles = append(bindings.Profiles, profile)
	}

	// Second pass: link parents, now that every profile exists.
	for i := range doc.Profiles {
		profile := byName[doc.Profiles[i].Name]
		for _, parentName := range doc.Profiles[i].Extends {
			parent, ok := byName[parentName]
			if !ok {
				return nil, fmt.Errorf("profile %s extends unknown profile %s", profile.Name, parentName)
			}
			profile.Parents = append(profile.Parents, parent)
		}
	}

	for _, profile := range bindings.Profiles {
		if err := checkInheritanceCycle(profile, make(map[string]bool)); err != nil {
			return nil, err
		}
	}

	return bindings, nil
}

func (l *BindingsLoader) buildProfile(doc *profileDoc) (*entities.Profile, error) {
	profile := &entities.Profile{
		Name:               doc.Name,
		LocalizedName:      doc.LocalizedName,
		DeviceEnum:         doc.DeviceEnum,
		ValidationFuncName: doc.ValidationFuncName,
	}
	if profile.ValidationFuncName == "" {
		profile.ValidationFuncName = profile.VendorName() + "_" + profile.HardwareName()
	}
	if doc.Extension != "" {
		ext := doc.Extension
		profile.ExtensionName = &ext
	}
	if doc.Promoted != "" {
		promoted, err := values.ParseVersion(doc.Promoted)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", doc.Name, err)
		}
		profile.PromotedVersion = &promoted
	}

	var subpaths, dpadPaths, emulatorPaths []string

	// Expansion is per subaction path: every identifier and component
	// exists once per hand (or head, gamepad, ...).
	for _, subaction := range doc.SubactionPaths {
		for i := range doc.Identifiers {
			identDoc := &doc.Identifiers[i]
			ident := &entities.Identifier{
				Name:          identDoc.Path[strings.LastIndexByte(identDoc.Path, '/')+1:],
				JSONPath:      identDoc.Path,
				SubactionPath: subaction,
				LocalizedName: identDoc.LocalizedName,
			}

			instance := make(map[string]*entities.Component, len(identDoc.Components))
			for _, name := range sortedComponentNames(identDoc.Components) {
				compDoc := identDoc.Components[name]
				steamVRPath := compDoc.SteamVRPath
				if steamVRPath == "" {
					steamVRPath = identDoc.Path
				}
				component := &entities.Component{
					ComponentName:      name,
					SubactionPath:      subaction,
					IdentifierJSONPath: identDoc.Path,
					SteamVRPath:        steamVRPath,
					LocalizedName:      identDoc.LocalizedName,
					MonadoBinding:      compDoc.Binding,
				}
				instance[name] = component
				profile.Components = append(profile.Components, component)
				subpaths = append(subpaths, component.FullOpenXRPaths()...)
			}

			if identDoc.DpadEmulation != nil {
				position, ok := instance[identDoc.DpadEmulation.Position]
				if !ok {
					return nil, fmt.Errorf(
						"profile %s: identifier %s: dpad position component %q not defined",
						doc.Name, identDoc.Path, identDoc.DpadEmulation.Position)
				}
				if identDoc.DpadEmulation.Activate != "" {
					position.DpadEmulation = &entities.DpadEmulation{Activate: identDoc.DpadEmulation.Activate}
				} else {
					position.DpadEmulation = &entities.DpadEmulation{}
				}

				base := subaction + identDoc.Path
				paths := make([]string, 0, len(dpadDirectionSuffixes))
				for _, suffix := range dpadDirectionSuffixes {
					paths = append(paths, base+suffix)
				}
				ident.Dpad = &entities.DpadDescriptor{
					Paths:             paths,
					PositionComponent: position,
				}
				dpadPaths = append(dpadPaths, paths...)
				emulatorPaths = append(emulatorPaths, position.FullOpenXRPaths()...)
			}

			profile.Identifiers = append(profile.Identifiers, ident)
		}
	}

	profile.SubpathsByLength = entities.BucketByLength(subpaths)
	profile.DpadPathsByLength = entities.BucketByLength(dpadPaths)
	profile.DpadEmulatorsByLength = entities.BucketByLength(emulatorPaths)

	return profile, nil
}

// sortedComponentNames gives the map a deterministic expansion order.
func sortedComponentNames(components map[string]componentDoc) []string {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkInheritanceCycle rejects cyclic extends chains. Inheritance
// must stay a DAG for the availability resolver to terminate.
func checkInheritanceCycle(profile *entities.Profile, inProgress map[string]bool) error {
	if inProgress[profile.Name] {
		return fmt.Errorf("circular inheritance detected at %s", profile.Name)
	}
	inProgress[profile.Name] = true
	for _, parent := range profile.Parents {
		if err := checkInheritanceCycle(parent, inProgress); err != nil {
			return err
		}
	}
	inProgress[profile.Name] = false
	return nil
}
