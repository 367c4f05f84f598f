package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPromptFormat(t *testing.T) {
	got := userPrompt("formal", "  hello there \n")
	assert.Equal(t, "Tone: formal\n\nText:\nhello there", got)
}

func TestStubClientEchoesText(t *testing.T) {
	client := NewStubClient()
	resp, err := client.Rephrase(context.Background(), Request{Text: " привет ", Tone: "polite", Alternates: 3})
	require.NoError(t, err)
	assert.Equal(t, "привет", resp.Primary())
}

func TestStubClientEmptyText(t *testing.T) {
	client := NewStubClient()
	_, err := client.Rephrase(context.Background(), Request{Text: "   ", Tone: "polite"})
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestResponsePrimaryEmpty(t *testing.T) {
	assert.Equal(t, "", Response{}.Primary())
}
