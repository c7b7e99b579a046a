package generator

import "context"

// LLMClient abstracts the chat-completion call so providers can be swapped
// or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
	Model() string
}

// Settings is the shared configuration for concrete LLM clients.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
