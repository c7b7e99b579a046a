package generator

import "time"

// Content is the structured output of a generation attempt, whether it came
// from the model or from a deterministic template profile.
type Content struct {
	Title       string
	Description string
	Excerpt     string
	Body        string
	Tags        []string
	WordCount   int
	Topic       string
	GeneratedBy string // "AI" or "Template"
	Model       string
	GeneratedAt time.Time
}

// Options steer a single generation attempt.
type Options struct {
	Topic  string
	Season string
}

// Prompt is the message pair sent to the model.
type Prompt struct {
	System string
	User   string
}
