package emitter

import (
	"errors"
	"strings"
)

// ParseFrontMatter splits a document into its front-matter fields and body.
// It understands exactly the format frontMatter renders: one key per line,
// quoted strings, unquoted dates, bracketed arrays. Used for verification
// and tooling, not by the write path.
func ParseFrontMatter(doc string) (map[string]string, string, error) {
	rest, ok := strings.CutPrefix(doc, "---\n")
	if !ok {
		return nil, "", errors.New("document has no front matter")
	}
	block, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return nil, "", errors.New("front matter is not terminated")
	}

	fields := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		fields[key] = unquote(strings.TrimSpace(value))
	}
	return fields, strings.TrimSpace(body), nil
}

// ParseList decodes a rendered array value back into its items.
func ParseList(value string) []string {
	value = strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ", ")
	items := make([]string, len(parts))
	for i, p := range parts {
		items[i] = unquote(p)
	}
	return items
}

func unquote(s string) string {
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
	}
	return s
}
