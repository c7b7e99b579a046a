package generator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"auto_park_blog_publisher/airtable"
)

const maxTags = 8

var headingPattern = regexp.MustCompile(`(?m)^#+\s+(.+)$`)

// ParseResponse turns a raw model reply into Content. The reply is expected
// to carry TITLE:/DESCRIPTION:/EXCERPT:/CONTENT:/TAGS: sections; when the
// structure is missing it falls back to best-effort extraction. It never
// fails once a non-empty reply is in hand.
func ParseResponse(raw string, park airtable.Park, opts Options) Content {
	var (
		title, description, excerpt string
		body                        strings.Builder
		tags                        []string
		inContent                   bool
	)

	for _, section := range strings.Split(raw, "\n\n") {
		section = strings.TrimSpace(section)
		switch {
		case strings.HasPrefix(section, "TITLE:"):
			title = strings.TrimSpace(strings.TrimPrefix(section, "TITLE:"))
		case strings.HasPrefix(section, "DESCRIPTION:"):
			description = strings.TrimSpace(strings.TrimPrefix(section, "DESCRIPTION:"))
		case strings.HasPrefix(section, "EXCERPT:"):
			excerpt = strings.TrimSpace(strings.TrimPrefix(section, "EXCERPT:"))
		case strings.HasPrefix(section, "CONTENT:"):
			inContent = true
			if rest := strings.TrimSpace(strings.TrimPrefix(section, "CONTENT:")); rest != "" {
				body.WriteString(rest)
				body.WriteString("\n\n")
			}
		case strings.HasPrefix(section, "TAGS:"):
			inContent = false
			tags = splitTags(strings.TrimPrefix(section, "TAGS:"))
		case inContent:
			body.WriteString(section)
			body.WriteString("\n\n")
		}
	}

	content := strings.TrimSpace(body.String())

	// The labeled structure was not followed; recover what we can.
	if title == "" || content == "" {
		if title == "" {
			if m := headingPattern.FindStringSubmatch(raw); len(m) >= 2 {
				title = strings.TrimSpace(m[1])
			}
		}
		if content == "" {
			content = strings.TrimSpace(raw)
		}
	}
	if title == "" {
		title = "Discover " + park.Name + ": Your Complete Guide to " + park.City + ", " + park.State
	}
	if description == "" {
		description = "Explore " + park.Name + " in " + park.City + ", " + park.State +
			" with our visitor guide featuring activities, tips, and local insights."
	}
	if excerpt == "" {
		excerpt = "Discover everything you need to know about visiting " + park.Name +
			" in " + park.City + ", " + park.State + "."
	}
	if len(tags) == 0 {
		tags = fallbackTags(park)
	}

	topic := opts.Topic
	if topic == "" {
		topic = "visitor-guide"
	}

	return Content{
		Title:       stripQuotes(title),
		Description: TruncateDescription(stripQuotes(description)),
		Excerpt:     stripQuotes(excerpt),
		Body:        content,
		Tags:        tags,
		WordCount:   len(strings.Fields(content)),
		Topic:       topic,
		GeneratedBy: "AI",
		GeneratedAt: time.Now(),
	}
}

// TruncateDescription enforces the 160-character meta-description cap,
// truncating to 157 characters plus an ellipsis marker. Characters, not
// bytes: cutting mid-rune would write invalid UTF-8 into front matter.
func TruncateDescription(s string) string {
	if utf8.RuneCountInString(s) <= 160 {
		return s
	}
	return string([]rune(s)[:157]) + "..."
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

func fallbackTags(park airtable.Park) []string {
	return []string{
		park.Name,
		park.State,
		"National Parks",
		"Travel Guide",
		park.City,
		"Outdoor Recreation",
		"Family Travel",
		"Adventure",
	}
}

func stripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", "'", "").Replace(s)
}
