// Package emitter turns generated content into a persisted markdown
// document: front-matter block, slugified date-prefixed file name, and a
// never-overwrite collision policy.
package emitter

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"auto_park_blog_publisher/airtable"
	"auto_park_blog_publisher/generator"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacePattern    = regexp.MustCompile(`\s+`)
	slugCollapsePattern = regexp.MustCompile(`-+`)
)

// Result describes one written file.
type Result struct {
	FileName string
	Path     string
	Bytes    int
}

// Preview is a dry-run render: the full document plus its HTML form.
type Preview struct {
	FileName string
	Document string
	HTML     string
}

// Emitter writes blog documents into one content directory.
type Emitter struct {
	dir     string
	author  string
	verbose bool
	logger  *log.Logger
}

func New(dir, author string, verbose bool, logger *log.Logger) (*Emitter, error) {
	if dir == "" {
		return nil, fmt.Errorf("content directory is required")
	}
	if author == "" {
		author = "National Park Directory Team"
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Emitter{dir: dir, author: author, verbose: verbose, logger: logger}, nil
}

func (e *Emitter) infof(format string, args ...interface{}) {
	if !e.verbose {
		return
	}
	e.logger.Printf("[emitter] "+format, args...)
}

// Slugify lowercases, strips non-alphanumerics to hyphens, collapses
// repeats, and trims edges. Idempotent: slugifying a slug is a no-op.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugSpacePattern.ReplaceAllString(s, "-")
	s = slugCollapsePattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FileName builds the publish-date-prefixed markdown name for a title.
func FileName(title string, date time.Time) string {
	return date.Format("2006-01-02") + "-" + Slugify(title) + ".md"
}

// Write renders the document and persists it. An existing file with the same
// name is never overwritten; a numeric suffix is appended instead. The body
// must survive a markdown render before anything touches disk.
func (e *Emitter) Write(content generator.Content, park airtable.Park) (Result, error) {
	doc := e.document(content, park)

	// Surface broken markdown before creating a file the site builder
	// would choke on.
	if err := goldmark.Convert([]byte(content.Body), &bytes.Buffer{}); err != nil {
		return Result{}, fmt.Errorf("render markdown body: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create content directory: %w", err)
	}

	fileName := e.availableName(FileName(content.Title, content.GeneratedAt))
	path := filepath.Join(e.dir, fileName)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return Result{}, fmt.Errorf("write blog file: %w", err)
	}

	e.infof("wrote %s (%d bytes)", path, len(doc))
	return Result{FileName: fileName, Path: path, Bytes: len(doc)}, nil
}

// PreviewDocument renders the document and its HTML without writing.
func (e *Emitter) PreviewDocument(content generator.Content, park airtable.Park) (Preview, error) {
	doc := e.document(content, park)

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(content.Body), &html); err != nil {
		return Preview{}, fmt.Errorf("render markdown body: %w", err)
	}

	return Preview{
		FileName: FileName(content.Title, content.GeneratedAt),
		Document: doc,
		HTML:     html.String(),
	}, nil
}

// CheckWritable verifies the content directory can be created and written.
func (e *Emitter) CheckWritable() error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("content directory not writable: %w", err)
	}
	return nil
}

// availableName appends -2, -3, ... before the extension until the name is
// free in the target directory.
func (e *Emitter) availableName(name string) string {
	if _, err := os.Stat(filepath.Join(e.dir, name)); os.IsNotExist(err) {
		return name
	}
	base := strings.TrimSuffix(name, ".md")
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d.md", base, i)
		if _, err := os.Stat(filepath.Join(e.dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
	}
}

func (e *Emitter) document(content generator.Content, park airtable.Park) string {
	return "---\n" + e.frontMatter(content, park) + "\n---\n\n" + content.Body + "\n"
}

// frontMatter renders the fixed-order key/value block. Dates are unquoted,
// strings are quoted with inner quotes escaped, arrays are bracketed quoted
// lists.
func (e *Emitter) frontMatter(content generator.Content, park airtable.Park) string {
	date := content.GeneratedAt
	if date.IsZero() {
		date = time.Now()
	}

	var lines []string
	add := func(key, rendered string) {
		lines = append(lines, key+": "+rendered)
	}

	add("title", quote(content.Title))
	add("publishDate", date.Format("2006-01-02"))
	if len(park.Images) > 0 {
		add("image", quote(park.Images[0]))
	}
	add("tags", renderList(content.Tags))
	add("description", quote(generator.TruncateDescription(content.Description)))
	if content.Excerpt != "" {
		add("excerpt", quote(content.Excerpt))
	}
	add("author", quote(e.author))
	add("category", quote("Travel Guide"))
	add("park", quote(park.Name))
	add("state", quote(park.State))
	add("city", quote(park.City))
	add("activities", renderList(park.Activities))
	add("features", renderList(park.Features))
	add("generatedBy", quote(content.GeneratedBy))
	add("model", quote(content.Model))
	add("generatedAt", quote(date.Format(time.RFC3339)))
	add("topic", quote(content.Topic))

	return strings.Join(lines, "\n")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func renderList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(strings.TrimSpace(item))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
