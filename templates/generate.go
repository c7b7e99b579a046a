package templates

import (
	"fmt"
	"strings"
	"time"

	"auto_park_blog_publisher/airtable"
	"auto_park_blog_publisher/generator"
)

const maxTags = 8

// Options steer template generation. Season defaults to the current one.
type Options struct {
	Season string
}

// Suitable reports whether a profile's constraints allow it to write about
// the park in the given season.
func Suitable(p Profile, park airtable.Park, season string) bool {
	s := p.Suitability
	if len(s.ParkTypes) > 0 && !contains(s.ParkTypes, parkType(park.Name)) {
		return false
	}
	if len(s.PreferredSeasons) > 0 && !contains(s.PreferredSeasons, season) {
		return false
	}
	if s.MinimumFeatures > 0 && len(park.Features) < s.MinimumFeatures {
		return false
	}
	for _, required := range s.RequiredFeatures {
		if !containsFold(park.Features, required) && !containsFold(park.Activities, required) {
			return false
		}
	}
	return true
}

// Pick chooses a suitable profile for the park, respecting weights (with
// optional overrides) deterministically: the same park and season always
// pick the same profile. Falls back to seasonal-spotlight when nothing
// qualifies.
func Pick(park airtable.Park, season string, overrides map[string]float64) Profile {
	var candidates []Profile
	for _, p := range registry {
		if Suitable(p, park, season) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		p, _ := ByID("seasonal-spotlight")
		return p
	}

	total := 0.0
	for _, p := range candidates {
		total += effectiveWeight(p, overrides)
	}

	// Map the park's stable seed onto the cumulative weight line.
	point := float64(seed(park)%1000) / 1000.0 * total
	for _, p := range candidates {
		point -= effectiveWeight(p, overrides)
		if point <= 0 {
			return p
		}
	}
	return candidates[0]
}

// Generate produces the profile's post for one park. Pure and offline: no
// model call, no clock dependence beyond the season default and timestamp.
func Generate(park airtable.Park, p Profile, opts Options) generator.Content {
	season := opts.Season
	if season == "" {
		season = CurrentSeason(time.Now())
	}
	sd := seasonData(season)

	title := expand(p.TitleVariants[seed(park)%len(p.TitleVariants)], park, sd)
	description := generator.TruncateDescription(fmt.Sprintf(
		"Discover the best of %s in %s, %s. From %s to %s, %s.",
		park.Name, park.City, park.State, sd.Highlights[0], sd.Highlights[1], p.Description))

	var body strings.Builder
	body.WriteString("# " + title + "\n\n")
	body.WriteString(expand(p.Lead, park, sd) + "\n\n")
	if park.Description != "" {
		body.WriteString(park.Description + "\n\n")
	}

	for _, sec := range p.Sections {
		body.WriteString("## " + expand(sec.Heading, park, sd) + "\n\n")
		body.WriteString(expand(sec.Body, park, sd) + "\n\n")
	}

	body.WriteString("## Best Times to Visit\n\n")
	body.WriteString(fmt.Sprintf("Expect %s during %s, with crowds %s. %s\n\n",
		sd.Weather, strings.ToLower(sd.DisplayName), sd.Crowds, sd.Timing))

	body.WriteString("## Planning Your Visit\n\n")
	body.WriteString("What to pack:\n\n")
	body.WriteString(fmt.Sprintf("- Weather-appropriate clothing for %s\n", sd.Weather))
	body.WriteString(fmt.Sprintf("- %s\n", upperFirst(sd.Packing)))
	body.WriteString("- Plenty of water and snacks\n\n")
	body.WriteString(fmt.Sprintf("Remember: %s.\n\n", sd.Considerations))

	body.WriteString("## " + expand("Experience {park} for Yourself", park, sd) + "\n\n")
	body.WriteString(expand(p.Closing, park, sd) + "\n\n")
	body.WriteString(expand("*Ready to go? Check current conditions and start planning your visit to {park} in {city}, {state} today.*", park, sd))

	content := strings.TrimSpace(body.String())

	return generator.Content{
		Title:       title,
		Description: description,
		Excerpt: generator.TruncateDescription(fmt.Sprintf(
			"%s: %s in %s, %s.", p.Name, park.Name, park.City, park.State)),
		Body:        content,
		Tags:        buildTags(park, p, sd),
		WordCount:   len(strings.Fields(content)),
		Topic:       p.ID,
		GeneratedBy: "Template",
		Model:       "fallback",
		GeneratedAt: time.Now(),
	}
}

// seed is the deterministic variant selector: the sum of the character codes
// of the park's name and state. Reproducible, not random.
func seed(park airtable.Park) int {
	total := 0
	for _, r := range park.Name + park.State {
		total += int(r)
	}
	return total
}

func buildTags(park airtable.Park, p Profile, sd seasonInfo) []string {
	tags := []string{park.Name, park.State}
	tags = append(tags, p.BaseTags...)
	tags = append(tags, sd.Tags...)
	for i, a := range park.Activities {
		if i == 3 {
			break
		}
		tags = append(tags, a)
	}

	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

func expand(s string, park airtable.Park, sd seasonInfo) string {
	activity := "exploring"
	if len(park.Activities) > 0 {
		activity = park.Activities[0]
	}
	feature := "the scenery"
	if len(park.Features) > 0 {
		feature = park.Features[0]
	}
	return strings.NewReplacer(
		"{park}", park.Name,
		"{city}", park.City,
		"{state}", park.State,
		"{type}", strings.ToLower(parkType(park.Name)),
		"{season}", sd.DisplayName,
		"{activity}", strings.ToLower(activity),
		"{feature}", strings.ToLower(feature),
	).Replace(s)
}

func effectiveWeight(p Profile, overrides map[string]float64) float64 {
	if w, ok := overrides[p.ID]; ok && w > 0 {
		return w
	}
	if p.Weight > 0 {
		return p.Weight
	}
	return 1.0
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
