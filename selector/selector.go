// Package selector chooses the next park to write about. Duplicate
// prevention is strict: a park already marked generated, inside the
// avoidance window, or carrying a recorded file name is never returned.
// Geographic diversity is a soft preference on top.
//
// Selection assumes a single pipeline run at a time; two concurrent runs
// against the same store can race and both pick the same park.
package selector

import (
	"errors"
	"sort"
	"time"

	"auto_park_blog_publisher/airtable"
)

// ErrNoneAvailable means no record satisfies the eligibility predicate.
// Expected when the rotation is exhausted; not a crash-worthy failure.
var ErrNoneAvailable = errors.New("no unblogged parks available")

// Options tune one selection.
type Options struct {
	// ParkID returns a specific record directly, bypassing eligibility.
	// Matches the record id or the exact park name.
	ParkID string

	// AvoidanceDays is how long a generated park stays excluded. Zero
	// means the 6-month default.
	AvoidanceDays int

	// RecentStates is how many of the most recent generations feed the
	// state-diversity set. Zero means 5.
	RecentStates int

	// Now is injectable for tests; zero means time.Now().
	Now time.Time
}

// Select returns exactly one park, or ErrNoneAvailable.
func Select(parks []airtable.Park, opts Options) (airtable.Park, error) {
	if opts.ParkID != "" {
		for _, p := range parks {
			if p.ID == opts.ParkID || p.Name == opts.ParkID {
				return p, nil
			}
		}
		return airtable.Park{}, errors.New("requested park not found: " + opts.ParkID)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	avoidance := opts.AvoidanceDays
	if avoidance <= 0 {
		avoidance = 180
	}
	recentN := opts.RecentStates
	if recentN <= 0 {
		recentN = 5
	}
	cutoff := now.AddDate(0, 0, -avoidance)

	// Keep the store's pre-shuffled order so repeated runs progress
	// deterministically instead of re-randomizing.
	ordered := make([]airtable.Park, len(parks))
	copy(ordered, parks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	recentStates := recentlyBloggedStates(ordered, recentN)

	var candidates []airtable.Park
	for _, p := range ordered {
		if !eligible(p, cutoff) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return airtable.Park{}, ErrNoneAvailable
	}

	// Prefer a park outside the recently blogged states; diversity is a
	// preference, never a cause of exhaustion.
	for _, p := range candidates {
		if !recentStates[p.State] {
			return p, nil
		}
	}
	return candidates[0], nil
}

func eligible(p airtable.Park, cutoff time.Time) bool {
	if p.BlogGenerated {
		return false
	}
	if p.LastBlogDate != nil && p.LastBlogDate.After(cutoff) {
		return false
	}
	if p.BlogFileName != "" {
		return false
	}
	// Records missing identity fields are unusable for content.
	if p.Name == "" || p.Name == "Unknown Park" ||
		p.City == "" || p.City == "Unknown City" ||
		p.State == "" || p.State == "Unknown State" {
		return false
	}
	return true
}

// recentlyBloggedStates returns the states of the n most recently generated
// parks, by last blog date descending.
func recentlyBloggedStates(parks []airtable.Park, n int) map[string]bool {
	var blogged []airtable.Park
	for _, p := range parks {
		if p.BlogGenerated && p.LastBlogDate != nil {
			blogged = append(blogged, p)
		}
	}
	sort.SliceStable(blogged, func(i, j int) bool {
		return blogged[i].LastBlogDate.After(*blogged[j].LastBlogDate)
	})
	if len(blogged) > n {
		blogged = blogged[:n]
	}

	states := make(map[string]bool, len(blogged))
	for _, p := range blogged {
		if p.State != "" {
			states[p.State] = true
		}
	}
	return states
}
