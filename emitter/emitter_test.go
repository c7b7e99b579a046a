package emitter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auto_park_blog_publisher/airtable"
	"auto_park_blog_publisher/generator"
)

func testContent() generator.Content {
	return generator.Content{
		Title:       `Exploring Test Canyon: A "Complete" Guide`,
		Description: "Plan your visit to Test Canyon National Park.",
		Excerpt:     "Everything you need for a first trip.",
		Body:        "# Exploring Test Canyon\n\nA fine canyon.\n\n## Getting There\n\nDrive.",
		Tags:        []string{"Test Canyon", "Travel Guide"},
		Topic:       "adventure-planning",
		GeneratedBy: "AI",
		Model:       "gpt-4",
		GeneratedAt: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}
}

func testPark() airtable.Park {
	return airtable.Park{
		ID:         "rec1",
		Name:       "Test Canyon National Park",
		City:       "Testville",
		State:      "TS",
		Activities: []string{"Hiking", "Camping"},
		Features:   []string{"Geology"},
		Images:     []string{"https://upload.wikimedia.org/wikipedia/commons/a.jpg"},
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Exploring Test Canyon: A Complete Guide", "exploring-test-canyon-a-complete-guide"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"Hyphen--Heavy---Title", "hyphen-heavy-title"},
		{"Ünïcode & Symbols!?", "ncode-symbols"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestSlugify_idempotent(t *testing.T) {
	once := Slugify("Exploring Test Canyon: A Complete Guide")
	require.Equal(t, once, Slugify(once))
}

func TestFileName(t *testing.T) {
	date := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	require.Equal(t, "2026-08-30-exploring-test-canyon.md", FileName("Exploring Test Canyon", date))
}

func TestWrite_roundTrip(t *testing.T) {
	dir := t.TempDir()
	e, err := New(dir, "Trail Crew", false, nil)
	require.NoError(t, err)

	res, err := e.Write(testContent(), testPark())
	require.NoError(t, err)
	require.Equal(t, "2026-08-30-exploring-test-canyon-a-complete-guide.md", res.FileName)
	require.Equal(t, filepath.Join(dir, res.FileName), res.Path)

	raw, err := os.ReadFile(res.Path)
	require.NoError(t, err)

	fields, body, err := ParseFrontMatter(string(raw))
	require.NoError(t, err)
	require.Equal(t, `Exploring Test Canyon: A "Complete" Guide`, fields["title"])
	require.Equal(t, "2026-08-30", fields["publishDate"])
	require.Equal(t, "https://upload.wikimedia.org/wikipedia/commons/a.jpg", fields["image"])
	require.Equal(t, []string{"Test Canyon", "Travel Guide"}, ParseList(fields["tags"]))
	require.Equal(t, "Plan your visit to Test Canyon National Park.", fields["description"])
	require.Equal(t, "Everything you need for a first trip.", fields["excerpt"])
	require.Equal(t, "Trail Crew", fields["author"])
	require.Equal(t, "Travel Guide", fields["category"])
	require.Equal(t, "Test Canyon National Park", fields["park"])
	require.Equal(t, "TS", fields["state"])
	require.Equal(t, []string{"Hiking", "Camping"}, ParseList(fields["activities"]))
	require.Equal(t, "AI", fields["generatedBy"])
	require.Equal(t, "adventure-planning", fields["topic"])
	require.Contains(t, body, "# Exploring Test Canyon")
}

func TestWrite_truncatesLongDescription(t *testing.T) {
	content := testContent()
	for len(content.Description) <= 160 {
		content.Description += " More words about the canyon."
	}

	e, err := New(t.TempDir(), "", false, nil)
	require.NoError(t, err)

	res, err := e.Write(content, testPark())
	require.NoError(t, err)

	raw, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	fields, _, err := ParseFrontMatter(string(raw))
	require.NoError(t, err)
	require.Len(t, fields["description"], 160)
	require.True(t, len(fields["description"]) <= 160)
	require.Equal(t, "...", fields["description"][157:])
}

func TestWrite_collisionSuffix(t *testing.T) {
	e, err := New(t.TempDir(), "", false, nil)
	require.NoError(t, err)

	first, err := e.Write(testContent(), testPark())
	require.NoError(t, err)
	second, err := e.Write(testContent(), testPark())
	require.NoError(t, err)
	third, err := e.Write(testContent(), testPark())
	require.NoError(t, err)

	base := "2026-08-30-exploring-test-canyon-a-complete-guide"
	require.Equal(t, base+".md", first.FileName)
	require.Equal(t, base+"-2.md", second.FileName)
	require.Equal(t, base+"-3.md", third.FileName)

	// All three files exist; nothing was overwritten.
	for _, res := range []Result{first, second, third} {
		_, err := os.Stat(res.Path)
		require.NoError(t, err)
	}
}

func TestWrite_omitsImageWithoutOne(t *testing.T) {
	park := testPark()
	park.Images = nil

	e, err := New(t.TempDir(), "", false, nil)
	require.NoError(t, err)

	res, err := e.Write(testContent(), park)
	require.NoError(t, err)

	raw, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	fields, _, err := ParseFrontMatter(string(raw))
	require.NoError(t, err)
	_, present := fields["image"]
	require.False(t, present)
}

func TestWrite_defaultAuthor(t *testing.T) {
	e, err := New(t.TempDir(), "", false, nil)
	require.NoError(t, err)

	res, err := e.Write(testContent(), testPark())
	require.NoError(t, err)

	raw, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	fields, _, err := ParseFrontMatter(string(raw))
	require.NoError(t, err)
	require.Equal(t, "National Park Directory Team", fields["author"])
}

func TestPreviewDocument_writesNothing(t *testing.T) {
	dir := t.TempDir()
	e, err := New(dir, "", false, nil)
	require.NoError(t, err)

	preview, err := e.PreviewDocument(testContent(), testPark())
	require.NoError(t, err)
	require.Equal(t, "2026-08-30-exploring-test-canyon-a-complete-guide.md", preview.FileName)
	require.Contains(t, preview.Document, "---\ntitle:")
	require.Contains(t, preview.HTML, "<h1")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestNew_requiresDir(t *testing.T) {
	_, err := New("", "", false, nil)
	require.Error(t, err)
}
