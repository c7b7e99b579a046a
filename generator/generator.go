// Package generator produces structured blog content for one park via a
// chat-completion model. It performs no retries of its own; callers fall
// back to the template library when the model is unavailable.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log"

	"auto_park_blog_publisher/airtable"
)

// ErrUnavailable wraps network, auth, and quota failures from the model
// call. The orchestrator treats it as a signal to fall back to templates.
var ErrUnavailable = errors.New("ai generation unavailable")

// Generator binds an LLM client to the park-blog prompt contract.
type Generator struct {
	llm     LLMClient
	verbose bool
	logger  *log.Logger
}

func New(llm LLMClient, verbose bool, logger *log.Logger) (*Generator, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{llm: llm, verbose: verbose, logger: logger}, nil
}

func (g *Generator) infof(format string, args ...interface{}) {
	if !g.verbose {
		return
	}
	g.logger.Printf("[generator] "+format, args...)
}

// Generate builds the prompt for one park, calls the model, and parses the
// reply. A failed call returns an error wrapping ErrUnavailable; a malformed
// reply is recovered by best-effort parsing and never surfaces as an error.
func (g *Generator) Generate(ctx context.Context, park airtable.Park, opts Options) (Content, error) {
	if park.Name == "" {
		return Content{}, errors.New("park name is required")
	}

	prompt := BuildPrompt(park, opts)
	g.infof("requesting content for %s (topic=%q season=%q)", park.Name, opts.Topic, opts.Season)

	raw, err := g.llm.Complete(ctx, prompt)
	if err != nil {
		return Content{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if raw == "" {
		return Content{}, fmt.Errorf("%w: model returned empty reply", ErrUnavailable)
	}

	content := ParseResponse(raw, park, opts)
	content.Model = g.llm.Model()
	g.infof("generated %q (%d words, %d tags)", content.Title, content.WordCount, len(content.Tags))
	return content, nil
}

// CheckConnection issues a minimal round trip to verify credentials and
// connectivity.
func (g *Generator) CheckConnection(ctx context.Context) error {
	_, err := g.llm.Complete(ctx, Prompt{
		User: "Reply with the single word: ok",
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
