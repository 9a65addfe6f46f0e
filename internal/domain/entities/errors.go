package entities

import "fmt"

// ComponentNotFoundError indicates a dpad cross-reference named a
// component that does not exist in the profile. This is fatal: the
// generator must not default the reference to zero.
type ComponentNotFoundError struct {
	Profile            string
	ComponentName      string
	SubactionPath      string
	IdentifierJSONPath string
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf(
		"profile %s: no component %q under %s%s",
		e.Profile, e.ComponentName, e.SubactionPath, e.IdentifierJSONPath,
	)
}

// AmbiguousComponentError indicates a cross-reference key matched more
// than one component, so no unique resolution exists.
type AmbiguousComponentError struct {
	Profile            string
	ComponentName      string
	SubactionPath      string
	IdentifierJSONPath string
}

func (e *AmbiguousComponentError) Error() string {
	return fmt.Sprintf(
		"profile %s: component %q under %s%s matches more than one component",
		e.Profile, e.ComponentName, e.SubactionPath, e.IdentifierJSONPath,
	)
}

// TooManyPathsError indicates a component exceeds the fixed path
// capacity of the generated binding template array.
type TooManyPathsError struct {
	Profile   string
	Component string
	Count     int
	Capacity  int
}

func (e *TooManyPathsError) Error() string {
	return fmt.Sprintf(
		"profile %s: component %s has %d paths, capacity is %d including the terminator",
		e.Profile, e.Component, e.Count, e.Capacity,
	)
}
