// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is an OpenXR API version as a major.minor pair.
// The patch component of the negotiated runtime version is never
// relevant to binding availability, so it is not stored.
type Version struct {
	Major uint32
	Minor uint32
}

// ParseVersion parses a version string such as "1.1" or "1.0.0".
func ParseVersion(s string) (Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return Version{Major: uint32(v.Major()), Minor: uint32(v.Minor())}, nil
}

// MustParseVersion parses a version string or panics (for tests only).
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0 or 1 ordering v against other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		if v.Major < other.Major {
			return -1
		}
		return 1
	case v.Minor != other.Minor:
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// AtLeast reports whether v satisfies a minimum version requirement.
func (v Version) AtLeast(min Version) bool {
	return v.Compare(min) >= 0
}

// Max returns the stricter of two minimum version requirements.
func (v Version) Max(other Version) Version {
	if v.Compare(other) >= 0 {
		return v
	}
	return other
}
