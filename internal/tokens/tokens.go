// Package tokens counts LLM tokens for rendered documents. It prefers the
// real o200k_base tokenizer (GPT-4o family) and degrades to a chars/4
// estimate when the encoding cannot be loaded; the degraded path is flagged,
// never an error.
package tokens

import (
	"github.com/pkoukk/tiktoken-go"
)

// Encoding is the tokenizer vocabulary used for counting.
const Encoding = "o200k_base"

// Counter counts tokens in text. A Counter with a nil encoder falls back to
// estimation. Safe for concurrent use once constructed.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// NewCounter builds a Counter backed by the o200k_base encoding. If the
// encoding is unavailable (for example, no cached BPE data and no network)
// the returned Counter still works in estimation mode.
func NewCounter() *Counter {
	enc, err := tiktoken.GetEncoding(Encoding)
	if err != nil {
		return &Counter{}
	}
	return &Counter{enc: enc}
}

// NewEstimator returns a Counter that always uses the chars/4 fallback.
// Useful for tests and offline operation.
func NewEstimator() *Counter {
	return &Counter{}
}

// Count returns the token count for text and whether the count is an
// estimate. The estimate is text length divided by 4, rounded down — a
// rough heuristic with no accuracy bound, so callers should surface the
// estimated flag rather than presenting it as exact.
func (c *Counter) Count(text string) (int, bool) {
	if c.enc == nil {
		return len(text) / 4, true
	}
	return len(c.enc.Encode(text, nil, nil)), false
}

// Stats compares token counts before and after re-encoding a document.
type Stats struct {
	Before int
	After  int
}

// Saved returns the number of tokens saved.
func (s Stats) Saved() int {
	return s.Before - s.After
}

// PercentReduction returns the percentage reduction (0 when Before is 0).
func (s Stats) PercentReduction() float64 {
	if s.Before == 0 {
		return 0
	}
	return float64(s.Saved()) / float64(s.Before) * 100
}
