package generator

import (
	"context"
	"strings"
)

// MockLLM is a local placeholder that returns a reply in the labeled-section
// contract without calling any external model.
type MockLLM struct{}

func (m MockLLM) Model() string { return "mock" }

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	sb.WriteString("TITLE: A Generated Test Title\n\n")
	sb.WriteString("DESCRIPTION: A short generated description for local testing.\n\n")
	sb.WriteString("EXCERPT: A one-sentence excerpt for previews.\n\n")
	sb.WriteString("CONTENT:\n\n")
	sb.WriteString("## Overview\n\nGenerated from prompt:\n\n")
	sb.WriteString("```\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n```\n\n")
	sb.WriteString("TAGS: test, mock, national parks\n")
	return sb.String(), nil
}
