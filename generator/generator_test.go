package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"auto_park_blog_publisher/airtable"
)

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Model() string { return "fake-model" }

func (f *fakeLLM) Complete(_ context.Context, _ Prompt) (string, error) {
	f.calls++
	return f.reply, f.err
}

func genPark() airtable.Park {
	return airtable.Park{
		ID:         "rec1",
		Name:       "Test Canyon National Park",
		City:       "Testville",
		State:      "TS",
		Activities: []string{"Hiking"},
	}
}

func TestGenerate_mockLLM(t *testing.T) {
	g, err := New(MockLLM{}, false, nil)
	require.NoError(t, err)

	c, err := g.Generate(context.Background(), genPark(), Options{Topic: "visitor-guide"})

	require.NoError(t, err)
	require.Equal(t, "A Generated Test Title", c.Title)
	require.Equal(t, "mock", c.Model)
	require.NotEmpty(t, c.Body)
	require.NotEmpty(t, c.Tags)
}

func TestGenerate_callFailureWrapsErrUnavailable(t *testing.T) {
	g, err := New(&fakeLLM{err: errors.New("connection refused")}, false, nil)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), genPark(), Options{})

	require.True(t, errors.Is(err, ErrUnavailable))
	require.ErrorContains(t, err, "connection refused")
}

func TestGenerate_emptyReplyIsUnavailable(t *testing.T) {
	g, err := New(&fakeLLM{reply: ""}, false, nil)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), genPark(), Options{})

	require.True(t, errors.Is(err, ErrUnavailable))
}

func TestGenerate_requiresParkName(t *testing.T) {
	g, err := New(MockLLM{}, false, nil)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), airtable.Park{}, Options{})

	require.Error(t, err)
}

func TestGenerate_setsModelFromClient(t *testing.T) {
	llm := &fakeLLM{reply: "TITLE: T\n\nCONTENT:\n\nBody."}
	g, err := New(llm, false, nil)
	require.NoError(t, err)

	c, err := g.Generate(context.Background(), genPark(), Options{})

	require.NoError(t, err)
	require.Equal(t, "fake-model", c.Model)
	require.Equal(t, 1, llm.calls)
}

func TestNew_requiresLLM(t *testing.T) {
	_, err := New(nil, false, nil)
	require.Error(t, err)
}

func TestCheckConnection(t *testing.T) {
	g, err := New(&fakeLLM{reply: "ok"}, false, nil)
	require.NoError(t, err)
	require.NoError(t, g.CheckConnection(context.Background()))

	g, err = New(&fakeLLM{err: errors.New("401")}, false, nil)
	require.NoError(t, err)
	err = g.CheckConnection(context.Background())
	require.True(t, errors.Is(err, ErrUnavailable))
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(genPark(), Options{Topic: "wildlife watching", Season: "fall"})

	require.Contains(t, p.System, "TITLE:")
	require.Contains(t, p.System, "TAGS:")
	require.Contains(t, p.User, "Test Canyon National Park")
	require.Contains(t, p.User, "Visit Test Canyon National Park in Testville, TS")
	require.Contains(t, p.User, "wildlife watching")
	require.Contains(t, p.User, "fall")
}

func TestBuildPrompt_defaults(t *testing.T) {
	p := BuildPrompt(genPark(), Options{})

	require.Contains(t, p.User, "complete visitor guide")
	require.Contains(t, p.User, "year-round")
}
