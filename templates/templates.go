// Package templates is the deterministic, offline content fallback: one
// parameterized generator driven by a registry of profile configurations.
// Profiles differ only in section text and weighting, not in structure.
// The same park and profile always produce the same post.
package templates

import (
	"errors"
	"strings"
	"time"
)

// Suitability declares the optional constraints a profile places on the
// parks it can write about.
type Suitability struct {
	ParkTypes        []string
	PreferredSeasons []string
	RequiredFeatures []string
	MinimumFeatures  int
}

// A section is one ## block of the generated body. Text fields support the
// {park}, {city}, {state}, {type}, {season}, {activity}, and {feature}
// placeholders.
type section struct {
	Heading string
	Body    string
}

// Profile is one content angle: title variants, themed sections, and the
// metadata used for suitability scoring and weighted selection.
type Profile struct {
	ID          string
	Name        string
	Description string
	Weight      float64
	Suitability Suitability

	TitleVariants []string
	Lead          string
	Sections      []section
	Closing       string
	BaseTags      []string
}

// ErrUnknownProfile is returned by ByID for ids not in the registry.
var ErrUnknownProfile = errors.New("unknown template profile")

// All returns the full registry in stable order.
func All() []Profile {
	return registry
}

// ByID looks a profile up by its identifier.
func ByID(id string) (Profile, error) {
	for _, p := range registry {
		if p.ID == id {
			return p, nil
		}
	}
	return Profile{}, ErrUnknownProfile
}

// CurrentSeason maps a time to spring, summer, fall, or winter.
func CurrentSeason(t time.Time) string {
	switch m := t.Month(); {
	case m >= time.March && m <= time.May:
		return "spring"
	case m >= time.June && m <= time.August:
		return "summer"
	case m >= time.September && m <= time.November:
		return "fall"
	default:
		return "winter"
	}
}

// knownDesignations, longest first so "National Historic Site" wins over
// "National Park" as a suffix of longer names.
var knownDesignations = []string{
	"National Recreation Area",
	"National Historic Site",
	"National Wildlife Refuge",
	"National Seashore",
	"National Preserve",
	"National Monument",
	"National Park",
}

// parkType infers the park's designation from its name; records carry the
// designation as a name suffix rather than a separate field.
func parkType(name string) string {
	for _, d := range knownDesignations {
		if strings.Contains(name, d) {
			return d
		}
	}
	return "National Park"
}
