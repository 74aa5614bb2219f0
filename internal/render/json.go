// Package render produces the JSON and YAML renderings of a Value tree for
// side-by-side comparison with TOON. Both renderers preserve object member
// order, which is why they walk the tree themselves instead of round-tripping
// through maps.
package render

import (
	"strconv"
	"strings"

	"github.com/mcncl/toonvert/internal/errors"
	"github.com/mcncl/toonvert/internal/models"
)

const jsonIndent = "  "

// JSON renders v as pretty-printed JSON with 2-space indentation.
func JSON(v *models.Value) (string, error) {
	if v == nil {
		return "", errors.NewRenderError("cannot render nil value", nil)
	}
	var b strings.Builder
	writeJSON(&b, v, 0, true)
	return b.String(), nil
}

// JSONCompact renders v as single-line JSON with no insignificant whitespace.
func JSONCompact(v *models.Value) (string, error) {
	if v == nil {
		return "", errors.NewRenderError("cannot render nil value", nil)
	}
	var b strings.Builder
	writeJSON(&b, v, 0, false)
	return b.String(), nil
}

func writeJSON(b *strings.Builder, v *models.Value, depth int, pretty bool) {
	switch v.Kind() {
	case models.KindNull:
		b.WriteString("null")
	case models.KindBool:
		b.WriteString(strconv.FormatBool(v.BoolVal()))
	case models.KindNumber:
		b.WriteString(v.NumberVal().String())
	case models.KindString:
		b.WriteString(strconv.Quote(v.StringVal()))
	case models.KindArray:
		writeJSONArray(b, v.Items(), depth, pretty)
	case models.KindObject:
		writeJSONObject(b, v.Members(), depth, pretty)
	}
}

func writeJSONArray(b *strings.Builder, items []*models.Value, depth int, pretty bool) {
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		if pretty {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(jsonIndent, depth+1))
		}
		writeJSON(b, item, depth+1, pretty)
	}
	if pretty {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(jsonIndent, depth))
	}
	b.WriteByte(']')
}

func writeJSONObject(b *strings.Builder, members []models.Member, depth int, pretty bool) {
	if len(members) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		if pretty {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(jsonIndent, depth+1))
		}
		b.WriteString(strconv.Quote(m.Key))
		b.WriteByte(':')
		if pretty {
			b.WriteByte(' ')
		}
		writeJSON(b, m.Value, depth+1, pretty)
	}
	if pretty {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(jsonIndent, depth))
	}
	b.WriteByte('}')
}
