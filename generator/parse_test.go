package generator

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"auto_park_blog_publisher/airtable"
)

func parsePark() airtable.Park {
	return airtable.Park{
		ID:    "rec1",
		Name:  "Test Canyon National Park",
		City:  "Testville",
		State: "TS",
	}
}

func TestParseResponse_labeledSections(t *testing.T) {
	raw := strings.Join([]string{
		"TITLE: Exploring Test Canyon: A Complete Guide",
		`DESCRIPTION: "Plan your visit to Test Canyon National Park."`,
		"EXCERPT: Everything you need for a first trip.",
		"CONTENT:",
		"## Overview",
		"The canyon stretches for miles.",
		"## Getting There",
		"Drive west from Testville.",
		"TAGS: Test Canyon, Hiking, Travel Guide",
	}, "\n\n")

	c := ParseResponse(raw, parsePark(), Options{Topic: "adventure-planning"})

	require.Equal(t, "Exploring Test Canyon: A Complete Guide", c.Title)
	require.Equal(t, "Plan your visit to Test Canyon National Park.", c.Description)
	require.Equal(t, "Everything you need for a first trip.", c.Excerpt)
	require.Contains(t, c.Body, "## Overview")
	require.Contains(t, c.Body, "Drive west from Testville.")
	require.NotContains(t, c.Body, "TAGS:")
	require.Equal(t, []string{"Test Canyon", "Hiking", "Travel Guide"}, c.Tags)
	require.Equal(t, "adventure-planning", c.Topic)
	require.Equal(t, "AI", c.GeneratedBy)
	require.Equal(t, len(strings.Fields(c.Body)), c.WordCount)
}

func TestParseResponse_missingTagsStillReturnsTags(t *testing.T) {
	raw := strings.Join([]string{
		"TITLE: A Title",
		"DESCRIPTION: A description.",
		"EXCERPT: An excerpt.",
		"CONTENT:",
		"Body text here.",
	}, "\n\n")

	c := ParseResponse(raw, parsePark(), Options{})

	require.NotEmpty(t, c.Tags)
	require.Contains(t, c.Tags, "Test Canyon National Park")
	require.Contains(t, c.Tags, "National Parks")
}

func TestParseResponse_malformedReplyRecovers(t *testing.T) {
	raw := "# Test Canyon Adventures\n\nThe model ignored the format and wrote prose.\n\nMore prose."

	c := ParseResponse(raw, parsePark(), Options{})

	require.Equal(t, "Test Canyon Adventures", c.Title, "first heading becomes the title")
	require.Equal(t, raw, c.Body, "whole reply becomes the body")
	require.NotEmpty(t, c.Description)
	require.NotEmpty(t, c.Excerpt)
	require.NotEmpty(t, c.Tags)
}

func TestParseResponse_noHeadingSynthesizesTitle(t *testing.T) {
	c := ParseResponse("Just some prose with no structure at all.", parsePark(), Options{})

	require.Equal(t, "Discover Test Canyon National Park: Your Complete Guide to Testville, TS", c.Title)
	require.Equal(t, "visitor-guide", c.Topic, "topic defaults when unset")
}

func TestParseResponse_tagCap(t *testing.T) {
	raw := "TITLE: T\n\nCONTENT:\n\nBody.\n\nTAGS: a, b, c, d, e, f, g, h, i, j"

	c := ParseResponse(raw, parsePark(), Options{})

	require.Len(t, c.Tags, 8)
	require.Equal(t, "h", c.Tags[7])
}

func TestParseResponse_stripsQuotes(t *testing.T) {
	raw := `TITLE: "A 'Quoted' Title"` + "\n\nCONTENT:\n\nBody."

	c := ParseResponse(raw, parsePark(), Options{})

	require.Equal(t, "A Quoted Title", c.Title)
}

func TestTruncateDescription(t *testing.T) {
	short := strings.Repeat("a", 160)
	require.Equal(t, short, TruncateDescription(short))

	long := strings.Repeat("b", 200)
	got := TruncateDescription(long)
	require.Len(t, got, 160)
	require.Equal(t, strings.Repeat("b", 157)+"...", got)
}

func TestTruncateDescription_multibyte(t *testing.T) {
	// 90 characters but 180 bytes; the cap counts characters, so this must
	// survive untouched.
	short := strings.Repeat("é", 90)
	require.Equal(t, short, TruncateDescription(short))

	long := strings.Repeat("パ", 200)
	got := TruncateDescription(long)
	require.Equal(t, strings.Repeat("パ", 157)+"...", got)
	require.True(t, utf8.ValidString(got), "truncation must not split a rune")
	require.Equal(t, 160, utf8.RuneCountInString(got))
}
