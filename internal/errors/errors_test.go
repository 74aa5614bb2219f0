package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewParsingError("bad input", ErrInvalidJSON)
	assert.Equal(t, "parsing: bad input: invalid JSON format", err.Error())

	err = NewEncodingError("no cause", nil)
	assert.Equal(t, "encoding: no cause", err.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewEncodingError("too deep", ErrDepthExceeded)
	assert.ErrorIs(t, err, ErrDepthExceeded)
}

func TestAppError_IsMatchesOnType(t *testing.T) {
	a := NewInputError("one", nil)
	b := NewInputError("two", nil)
	c := NewParsingError("three", nil)

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestConstructors_SetTypes(t *testing.T) {
	tests := []struct {
		err  *AppError
		want ErrorType
	}{
		{NewInputError("m", nil), ErrorTypeInput},
		{NewParsingError("m", nil), ErrorTypeParsing},
		{NewEncodingError("m", nil), ErrorTypeEncoding},
		{NewRenderError("m", nil), ErrorTypeRender},
		{NewTokensError("m", nil), ErrorTypeTokens},
		{NewLLMError("m", nil), ErrorTypeLLM},
		{NewOutputError("m", nil), ErrorTypeOutput},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Type)
	}
}

func TestUserFriendlyError_AppErrors(t *testing.T) {
	assert.Equal(t, "Input error: no file", UserFriendlyError(NewInputError("no file", nil)))
	assert.Equal(t, "JSON parsing error: bad syntax", UserFriendlyError(NewParsingError("bad syntax", nil)))
	assert.Equal(t, "TOON encoding error: too deep", UserFriendlyError(NewEncodingError("too deep", nil)))
	assert.Equal(t, "LLM API error: timeout", UserFriendlyError(NewLLMError("timeout", nil)))
}

func TestUserFriendlyError_Sentinels(t *testing.T) {
	assert.Contains(t, UserFriendlyError(ErrEmptyInput), "empty")
	assert.Contains(t, UserFriendlyError(ErrInvalidJSON), "invalid JSON")
	assert.Contains(t, UserFriendlyError(ErrDepthExceeded), "nested too deeply")
	assert.Contains(t, UserFriendlyError(ErrAPIKeyMissing), "OPENAI_API_KEY")
}

func TestUserFriendlyError_Unknown(t *testing.T) {
	assert.Equal(t, "Error: boom", UserFriendlyError(stderrors.New("boom")))
}
