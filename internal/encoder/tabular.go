package encoder

import (
	"fmt"
	"strings"

	"github.com/mcncl/toonvert/internal/models"
)

// tabularFields decides whether an array qualifies for tabular layout and
// returns the shared field list in column order. Qualification is strict
// and structural: non-empty, every element an object, every element's key
// sequence identical to the first (same keys, same order), every field
// value a primitive. Two objects with the same keys in a different order
// fail the check; reordering would make column alignment ambiguous.
func tabularFields(items []*models.Value) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	first := items[0]
	if first.Kind() != models.KindObject {
		return nil, false
	}

	fields := make([]string, len(first.Members()))
	for i, m := range first.Members() {
		fields[i] = m.Key
	}

	for _, item := range items {
		if item.Kind() != models.KindObject {
			return nil, false
		}
		members := item.Members()
		if len(members) != len(fields) {
			return nil, false
		}
		for i, m := range members {
			if m.Key != fields[i] {
				return nil, false
			}
			if !m.Value.IsPrimitive() {
				return nil, false
			}
		}
	}
	return fields, true
}

// tabularHeader builds the "[count]{f1,f2,...}:" declaration line.
func tabularHeader(count int, fields []string) string {
	return fmt.Sprintf("[%d]{%s}:", count, strings.Join(fields, ","))
}

// tabularRows renders one comma-joined row per element. Field order equals
// member order by construction (tabularFields verified the sequences
// match), so each row has exactly one cell per declared column and the
// table stays rectangular.
func tabularRows(items []*models.Value) []string {
	rows := make([]string, len(items))
	for i, item := range items {
		members := item.Members()
		cells := make([]string, len(members))
		for j, m := range members {
			cells[j] = encodePrimitive(m.Value)
		}
		rows[i] = strings.Join(cells, ",")
	}
	return rows
}
