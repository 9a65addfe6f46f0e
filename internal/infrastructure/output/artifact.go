// Package output routes requested output paths to generated artifacts
// and writes them without ever leaving a partial file behind.
package output

import (
	"strings"
)

// Artifact identifies one of the four generated files.
type Artifact int

const (
	// ArtifactNone marks a path matching no recognized suffix.
	ArtifactNone Artifact = iota
	// ArtifactFullImplementation is the full schema .c file.
	ArtifactFullImplementation
	// ArtifactFullInterface is the full schema .h file.
	ArtifactFullInterface
	// ArtifactReducedImplementation is the reduced schema .c file.
	ArtifactReducedImplementation
	// ArtifactReducedInterface is the reduced schema .h file.
	ArtifactReducedInterface
)

func (a Artifact) String() string {
	switch a {
	case ArtifactFullImplementation:
		return "full implementation"
	case ArtifactFullInterface:
		return "full interface"
	case ArtifactReducedImplementation:
		return "reduced implementation"
	case ArtifactReducedInterface:
		return "reduced interface"
	default:
		return "none"
	}
}

// artifactSuffixes maps the recognized output file name suffixes to
// their artifacts. Build systems may request a superset of names;
// unrecognized ones are skipped, not failed.
var artifactSuffixes = []struct {
	suffix   string
	artifact Artifact
}{
	{"oxr_generated_bindings.c", ArtifactFullImplementation},
	{"oxr_generated_bindings.h", ArtifactFullInterface},
	{"ovrd_generated_bindings.c", ArtifactReducedImplementation},
	{"ovrd_generated_bindings.h", ArtifactReducedInterface},
}

// ArtifactForPath selects the artifact an output path requests, or
// ArtifactNone when the name matches no recognized suffix.
func ArtifactForPath(path string) Artifact {
	for _, entry := range artifactSuffixes {
		if strings.HasSuffix(path, entry.suffix) {
			return entry.artifact
		}
	}
	return ArtifactNone
}
