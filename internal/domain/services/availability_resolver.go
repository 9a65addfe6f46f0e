package services

import (
	"github.com/monado-tools/xrbindgen/internal/domain/entities"
	"github.com/monado-tools/xrbindgen/internal/domain/values"
)

// GuardGroup is one availability-guarded slice of a profile's legal
// path set: the length-bucketed entries contributed by one profile in
// the inheritance chain, valid under the accumulated availability.
type GuardGroup struct {
	// Availability is the intersection of the originating profile's
	// condition with every condition along the inheritance path.
	Availability values.Availability
	// Entries maps string length to the legal strings of that length.
	Entries map[int][]string
	// Source is the contributing profile's name, kept for the
	// generated source comment.
	Source string
}

// EntryDict selects one of a profile's three length-bucketed path
// dictionaries.
type EntryDict func(*entities.Profile) map[int][]string

// SubpathEntries selects the legal subpath dictionary.
func SubpathEntries(p *entities.Profile) map[int][]string { return p.SubpathsByLength }

// DpadPathEntries selects the legal dpad path dictionary.
func DpadPathEntries(p *entities.Profile) map[int][]string { return p.DpadPathsByLength }

// DpadEmulatorEntries selects the legal dpad emulator dictionary.
func DpadEmulatorEntries(p *entities.Profile) map[int][]string { return p.DpadEmulatorsByLength }

// AvailabilityResolver walks a profile's ancestor DAG and computes,
// per visited profile, the availability its entries are gated by.
//
// An entry inherited from an ancestor is only legal when both the
// descendant's and the ancestor's own gating conditions hold, so the
// availability accumulates by intersection along the path. Ancestors
// are visited depth-first in name order; a (profile, accumulated
// availability) pair reached again through another DAG path is skipped
// so the same strings are never emitted twice under the same guard.
type AvailabilityResolver struct{}

// NewAvailabilityResolver creates a new availability resolver service.
func NewAvailabilityResolver() *AvailabilityResolver {
	return &AvailabilityResolver{}
}

// Resolve returns the ordered guard groups for one dictionary of one
// profile. Groups whose entry dictionary is empty or whose
// availability degenerated to never are omitted.
func (r *AvailabilityResolver) Resolve(profile *entities.Profile, dict EntryDict) []GuardGroup {
	var groups []GuardGroup
	visited := make(map[string]bool)

	var walk func(p *entities.Profile, avail values.Availability)
	walk = func(p *entities.Profile, avail values.Availability) {
		key := p.Name + "\x00" + avail.Key()
		if visited[key] {
			return
		}
		visited[key] = true

		if avail.IsNever() {
			return
		}
		if entries := dict(p); len(entries) > 0 {
			groups = append(groups, GuardGroup{
				Availability: avail,
				Entries:      entries,
				Source:       p.Name,
			})
		}
		for _, parent := range p.SortedParents() {
			walk(parent, avail.Intersection(parent.Availability()))
		}
	}

	walk(profile, profile.Availability())
	return groups
}
