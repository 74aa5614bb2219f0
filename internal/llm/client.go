// Package llm forwards encoded payloads to an OpenAI-compatible chat API so
// the playground can demonstrate real token usage per format. Correctness
// here depends entirely on the external API; everything else in the repo
// works without it.
package llm

import (
	"context"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/mcncl/toonvert/internal/errors"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

const (
	completionTemperature = 0.7
	completionMaxTokens   = 2000
)

// Client calls the chat-completions API with a fixed, inexpensive model.
type Client struct {
	api   openai.Client
	model string
}

// New builds a Client for the given model. The API key comes from the
// OPENAI_API_KEY environment variable; a missing key is reported when the
// client is constructed, not on first use.
func New(model string) (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.NewLLMError("OpenAI API key not found", errors.ErrAPIKeyMissing)
	}
	return NewWithKey(apiKey, model), nil
}

// NewWithKey builds a Client with an explicit key, for tests and callers
// that manage credentials themselves.
func NewWithKey(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: model,
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Complete sends prompt followed by the encoded data block and returns the
// completion text. Cancellation and timeouts come from ctx.
func (c *Client) Complete(ctx context.Context, prompt, data string) (string, error) {
	full := Prompt(prompt, data)

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(full),
		},
		Temperature: openai.Float(completionTemperature),
		MaxTokens:   openai.Int(completionMaxTokens),
	})
	if err != nil {
		return "", errors.NewLLMError("chat completion request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.NewLLMError("chat completion returned no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// Prompt joins a user prompt with its data block the same way Complete
// does, so callers can count input tokens on exactly what is sent.
func Prompt(prompt, data string) string {
	return prompt + "\n\nData:\n" + data
}
