// Package encoder renders a models.Value tree as TOON (Token-Oriented
// Object Notation), a compact indentation-based text format aimed at
// minimizing LLM token usage.
//
// Uniform arrays of flat objects render as a fixed-width table whose field
// names are paid for once in the header line; everything else falls back to
// a dash-prefixed list. Encoding is deterministic and pure: the same tree
// always produces byte-identical output.
package encoder

import (
	"fmt"
	"strings"

	"github.com/mcncl/toonvert/internal/errors"
	"github.com/mcncl/toonvert/internal/models"
)

const (
	// DefaultIndent is the indentation step applied at each nesting level.
	DefaultIndent = 2
	// DefaultMaxDepth bounds recursion on pathological inputs.
	DefaultMaxDepth = 10000
)

// Encoder converts Value trees to TOON text. The zero value is not usable;
// call New.
type Encoder struct {
	indent   int
	maxDepth int
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithIndent sets the number of spaces per indentation level.
func WithIndent(n int) Option {
	return func(e *Encoder) {
		if n > 0 {
			e.indent = n
		}
	}
}

// WithMaxDepth sets the nesting depth at which encoding fails with
// errors.ErrDepthExceeded instead of recursing further.
func WithMaxDepth(n int) Option {
	return func(e *Encoder) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// New creates an Encoder with the default 2-space indent.
func New(opts ...Option) *Encoder {
	e := &Encoder{indent: DefaultIndent, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode renders v with default options.
func Encode(v *models.Value) (string, error) {
	return New().Encode(v)
}

// Encode renders v as a TOON document. A root primitive encodes to its bare
// token; a root container encodes to a multi-line block at depth zero.
// Either a complete document is returned or an error, never partial output.
func (e *Encoder) Encode(v *models.Value) (string, error) {
	if v == nil {
		return "", errors.NewEncodingError("cannot encode nil value", nil)
	}
	return e.encodeValue(v, 0)
}

// encodeValue dispatches on the value kind. Container blocks are rendered
// relative to their own first column; callers indent the whole block.
func (e *Encoder) encodeValue(v *models.Value, depth int) (string, error) {
	switch v.Kind() {
	case models.KindNull, models.KindBool, models.KindNumber, models.KindString:
		return encodePrimitive(v), nil
	case models.KindArray:
		return e.encodeArray(v.Items(), depth)
	case models.KindObject:
		return e.encodeObject(v.Members(), depth)
	default:
		return "", errors.NewEncodingError(fmt.Sprintf("unknown value kind %v", v.Kind()), nil)
	}
}

// encodeArray renders an array block: "[]" when empty, a tabular block when
// the uniform-array check passes, a dash list otherwise.
func (e *Encoder) encodeArray(items []*models.Value, depth int) (string, error) {
	if err := e.checkDepth(depth); err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "[]", nil
	}

	if fields, ok := tabularFields(items); ok {
		var b strings.Builder
		b.WriteString(tabularHeader(len(items), fields))
		for _, row := range tabularRows(items) {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", e.indent))
			b.WriteString(row)
		}
		return b.String(), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%d]:", len(items))
	for _, item := range items {
		line, err := e.encodeListItem(item, depth)
		if err != nil {
			return "", err
		}
		b.WriteByte('\n')
		b.WriteString(indentBlock(line, e.indent))
	}
	return b.String(), nil
}

// encodeListItem renders one dash-prefixed list entry. Container items
// nest under their dash marker: continuation lines get two extra columns
// so the block lines up past the "- " prefix.
func (e *Encoder) encodeListItem(item *models.Value, depth int) (string, error) {
	if item.IsPrimitive() {
		return "- " + encodePrimitive(item), nil
	}
	block, err := e.encodeValue(item, depth+1)
	if err != nil {
		return "", err
	}
	return "- " + strings.ReplaceAll(block, "\n", "\n  "), nil
}

// encodeObject renders an object's entries one per line, in insertion
// order. Array values fuse the key into the array's own header so that
// "key[3]{a,b}:" reads as one declaration.
func (e *Encoder) encodeObject(members []models.Member, depth int) (string, error) {
	if err := e.checkDepth(depth); err != nil {
		return "", err
	}
	if len(members) == 0 {
		return "{}", nil
	}

	lines := make([]string, 0, len(members))
	for _, m := range members {
		switch m.Value.Kind() {
		case models.KindObject:
			if len(m.Value.Members()) == 0 {
				lines = append(lines, m.Key+": {}")
				continue
			}
			block, err := e.encodeObject(m.Value.Members(), depth+1)
			if err != nil {
				return "", err
			}
			lines = append(lines, m.Key+":")
			lines = append(lines, indentBlock(block, e.indent))

		case models.KindArray:
			block, err := e.encodeArray(m.Value.Items(), depth+1)
			if err != nil {
				return "", err
			}
			if block == "[]" {
				lines = append(lines, m.Key+": []")
				continue
			}
			// The array block starts with its own "[N]..." header line;
			// prepend the key to that line and keep the body as is.
			lines = append(lines, m.Key+block)

		default:
			lines = append(lines, m.Key+": "+encodePrimitive(m.Value))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// checkDepth fails fast once nesting passes the configured limit, keeping
// stack growth bounded on pathological inputs.
func (e *Encoder) checkDepth(depth int) error {
	if depth > e.maxDepth {
		return errors.NewEncodingError(
			fmt.Sprintf("nesting depth exceeds limit of %d", e.maxDepth),
			errors.ErrDepthExceeded,
		)
	}
	return nil
}

// indentBlock prefixes every line of a relative block with n spaces.
func indentBlock(block string, n int) string {
	prefix := strings.Repeat(" ", n)
	return prefix + strings.ReplaceAll(block, "\n", "\n"+prefix)
}
