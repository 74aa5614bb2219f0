package encoder

import (
	"strings"

	"github.com/mcncl/toonvert/internal/models"
)

// encodePrimitive maps a non-container value to its minimal token. Every
// primitive has a representation; there is no error path. The same function
// serves bare object values and tabular cells so quoting behaves
// identically in both positions.
func encodePrimitive(v *models.Value) string {
	switch v.Kind() {
	case models.KindNull:
		return "null"
	case models.KindBool:
		if v.BoolVal() {
			return "true"
		}
		return "false"
	case models.KindNumber:
		// Numbers carry their canonical decimal text; "1" and "1.0" pass
		// through unchanged.
		return v.NumberVal().String()
	case models.KindString:
		return encodeString(v.StringVal())
	default:
		// Containers never reach here; the renderers dispatch them first.
		return ""
	}
}

// encodeString emits s verbatim unless it would be ambiguous in the
// line/column grammar, in which case it is double-quoted and escaped.
func encodeString(s string) string {
	if !needsQuoting(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	// Single pass, backslash handled before quote so the escape's own
	// backslash is never re-escaped.
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// needsQuoting reports whether s must be quoted to survive re-parsing:
// structural delimiters anywhere, line-start significant characters at the
// front, keyword literals, or nothing but whitespace.
func needsQuoting(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	if strings.ContainsAny(s, ",:\r\n") {
		return true
	}
	switch s[0] {
	case '#', '-', '[', '{':
		return true
	}
	switch s {
	case "null", "true", "false":
		return true
	}
	return false
}
