package selector

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auto_park_blog_publisher/airtable"
)

func park(id, name, state string, pos int) airtable.Park {
	return airtable.Park{
		ID:       id,
		Name:     name,
		City:     "Somewhere",
		State:    state,
		Position: pos,
	}
}

func bloggedPark(id, name, state string, pos int, daysAgo int, now time.Time) airtable.Park {
	p := park(id, name, state, pos)
	p.BlogGenerated = true
	d := now.AddDate(0, 0, -daysAgo)
	p.LastBlogDate = &d
	p.BlogFileName = "old.md"
	return p
}

func TestSelect_skipsGeneratedParks(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	parks := []airtable.Park{
		bloggedPark("r1", "Alpha Park", "CA", 0, 10, now),
		park("r2", "Beta Park", "NV", 1),
	}

	got, err := Select(parks, Options{Now: now})

	require.NoError(t, err)
	require.Equal(t, "r2", got.ID)
}

func TestSelect_avoidanceWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	inside := park("r1", "Alpha Park", "CA", 0)
	d1 := now.AddDate(0, 0, -30)
	inside.LastBlogDate = &d1

	outside := park("r2", "Beta Park", "NV", 1)
	d2 := now.AddDate(0, 0, -200)
	outside.LastBlogDate = &d2

	got, err := Select([]airtable.Park{inside, outside}, Options{Now: now})

	require.NoError(t, err)
	require.Equal(t, "r2", got.ID, "a park blogged inside the window must be excluded")

	// A shorter window admits the recently blogged park again.
	got, err = Select([]airtable.Park{inside, outside}, Options{Now: now, AvoidanceDays: 20})
	require.NoError(t, err)
	require.Equal(t, "r1", got.ID)
}

func TestSelect_stateDiversity(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	parks := []airtable.Park{
		bloggedPark("r0", "Old CA Park", "CA", 0, 10, now),
		park("r1", "Fresh CA Park", "CA", 1),
		park("r2", "Fresh TX Park", "TX", 2),
	}

	got, err := Select(parks, Options{Now: now})

	require.NoError(t, err)
	require.Equal(t, "r2", got.ID, "should prefer a state outside the recent set")
}

func TestSelect_diversityNeverExhausts(t *testing.T) {
	// Every eligible park shares a state with a recent generation; the
	// first candidate still wins.
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	parks := []airtable.Park{
		bloggedPark("r0", "Old CA Park", "CA", 0, 10, now),
		park("r1", "Fresh CA Park One", "CA", 1),
		park("r2", "Fresh CA Park Two", "CA", 2),
	}

	got, err := Select(parks, Options{Now: now})

	require.NoError(t, err)
	require.Equal(t, "r1", got.ID)
}

func TestSelect_manualOverride(t *testing.T) {
	blogged := bloggedPark("r1", "Alpha Park", "CA", 0, 5, time.Now())

	got, err := Select([]airtable.Park{blogged}, Options{ParkID: "r1"})
	require.NoError(t, err)
	require.Equal(t, "r1", got.ID, "override bypasses eligibility")

	got, err = Select([]airtable.Park{blogged}, Options{ParkID: "Alpha Park"})
	require.NoError(t, err)
	require.Equal(t, "r1", got.ID, "override matches exact name too")

	_, err = Select([]airtable.Park{blogged}, Options{ParkID: "missing"})
	require.ErrorContains(t, err, "not found")
}

func TestSelect_noneAvailable(t *testing.T) {
	now := time.Now()
	parks := []airtable.Park{
		bloggedPark("r1", "Alpha Park", "CA", 0, 5, now),
		bloggedPark("r2", "Beta Park", "NV", 1, 15, now),
	}

	_, err := Select(parks, Options{})

	require.True(t, errors.Is(err, ErrNoneAvailable))
}

func TestSelect_skipsIncompleteRecords(t *testing.T) {
	broken := airtable.Park{ID: "r1", Name: "Unknown Park", City: "Unknown City", State: "Unknown State", Position: 0}
	ok := park("r2", "Beta Park", "NV", 1)

	got, err := Select([]airtable.Park{broken, ok}, Options{})

	require.NoError(t, err)
	require.Equal(t, "r2", got.ID)
}

func TestSelect_deterministicOrder(t *testing.T) {
	parks := []airtable.Park{
		park("r3", "Gamma Park", "UT", 2),
		park("r1", "Alpha Park", "CA", 0),
		park("r2", "Beta Park", "NV", 1),
	}

	first, err := Select(parks, Options{})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Select(parks, Options{})
		require.NoError(t, err)
		require.Equal(t, first.ID, again.ID)
	}
	require.Equal(t, "r1", first.ID, "lowest position wins regardless of slice order")
}

func TestSelect_skipsRecordsWithFileName(t *testing.T) {
	orphan := park("r1", "Alpha Park", "CA", 0)
	orphan.BlogFileName = "2026-01-01-alpha-park.md"
	ok := park("r2", "Beta Park", "NV", 1)

	got, err := Select([]airtable.Park{orphan, ok}, Options{})

	require.NoError(t, err)
	require.Equal(t, "r2", got.ID, "a recorded file name blocks selection even without the generated flag")
}
