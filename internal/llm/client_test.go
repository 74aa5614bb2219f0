package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mcncl/toonvert/internal/errors"
)

func TestNew_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := New(DefaultModel)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAPIKeyMissing)
}

func TestNew_WithAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.Model())
}

func TestNewWithKey_ModelDefaulting(t *testing.T) {
	assert.Equal(t, DefaultModel, NewWithKey("sk-test", "").Model())
	assert.Equal(t, "gpt-4o", NewWithKey("sk-test", "gpt-4o").Model())
}

func TestPrompt_JoinsPromptAndData(t *testing.T) {
	got := Prompt("Summarize this", "users[1]{id}:\n  1")
	assert.Equal(t, "Summarize this\n\nData:\nusers[1]{id}:\n  1", got)
}
