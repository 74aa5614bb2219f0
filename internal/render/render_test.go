package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/toonvert/internal/models"
)

func sample() *models.Value {
	return models.Object(
		models.Field("zebra", models.Int(1)),
		models.Field("apple", models.Str("crisp")),
		models.Field("nested", models.Object(
			models.Field("ok", models.Bool(true)),
			models.Field("ratio", models.Float(7.5)),
		)),
		models.Field("tags", models.Array(models.Str("a"), models.Str("b"))),
		models.Field("none", models.Null()),
	)
}

func TestJSON_Pretty(t *testing.T) {
	out, err := JSON(sample())
	require.NoError(t, err)

	want := strings.Join([]string{
		`{`,
		`  "zebra": 1,`,
		`  "apple": "crisp",`,
		`  "nested": {`,
		`    "ok": true,`,
		`    "ratio": 7.5`,
		`  },`,
		`  "tags": [`,
		`    "a",`,
		`    "b"`,
		`  ],`,
		`  "none": null`,
		`}`,
	}, "\n")
	assert.Equal(t, want, out)
}

func TestJSON_Compact(t *testing.T) {
	out, err := JSONCompact(sample())
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"apple":"crisp","nested":{"ok":true,"ratio":7.5},"tags":["a","b"],"none":null}`, out)
}

func TestJSON_CompactIsValidJSON(t *testing.T) {
	out, err := JSONCompact(sample())
	require.NoError(t, err)
	var parsed any
	assert.NoError(t, json.Unmarshal([]byte(out), &parsed))
}

func TestJSON_KeyOrderPreserved(t *testing.T) {
	out, err := JSONCompact(sample())
	require.NoError(t, err)
	// Insertion order, never sorted.
	zebra := strings.Index(out, "zebra")
	apple := strings.Index(out, "apple")
	assert.Less(t, zebra, apple)
}

func TestJSON_EmptyContainers(t *testing.T) {
	out, err := JSON(models.Object())
	require.NoError(t, err)
	assert.Equal(t, "{}", out)

	out, err = JSON(models.Array())
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestJSON_StringEscaping(t *testing.T) {
	out, err := JSONCompact(models.Str("line\nbreak \"quoted\""))
	require.NoError(t, err)
	assert.Equal(t, `"line\nbreak \"quoted\""`, out)
}

func TestJSON_NumberLiteralPreserved(t *testing.T) {
	out, err := JSONCompact(models.Number(json.Number("1.0")))
	require.NoError(t, err)
	assert.Equal(t, "1.0", out)
}

func TestJSON_NilValue(t *testing.T) {
	_, err := JSON(nil)
	assert.Error(t, err)
	_, err = JSONCompact(nil)
	assert.Error(t, err)
}

func TestYAML_Basic(t *testing.T) {
	out, err := YAML(sample())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "zebra: 1", lines[0])
	assert.Equal(t, "apple: crisp", lines[1])
	assert.Equal(t, "nested:", lines[2])
	assert.Equal(t, "  ok: true", lines[3])
	assert.Equal(t, "  ratio: 7.5", lines[4])
}

func TestYAML_KeyOrderPreserved(t *testing.T) {
	v := models.Object(
		models.Field("zebra", models.Int(1)),
		models.Field("apple", models.Int(2)),
		models.Field("mango", models.Int(3)),
	)
	out, err := YAML(v)
	require.NoError(t, err)
	assert.Equal(t, "zebra: 1\napple: 2\nmango: 3\n", out)
}

func TestYAML_AmbiguousStringsStayStrings(t *testing.T) {
	v := models.Object(
		models.Field("a", models.Str("true")),
		models.Field("b", models.Str("123")),
		models.Field("c", models.Str("null")),
	)
	out, err := YAML(v)
	require.NoError(t, err)

	// Round-trip: every value must come back as a string.
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "true", parsed["a"])
	assert.Equal(t, "123", parsed["b"])
	assert.Equal(t, "null", parsed["c"])
}

func TestYAML_RoundTripStructure(t *testing.T) {
	out, err := YAML(sample())
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, 1, parsed["zebra"])
	assert.Equal(t, []any{"a", "b"}, parsed["tags"])
	assert.Nil(t, parsed["none"])
}

func TestYAML_NilValue(t *testing.T) {
	_, err := YAML(nil)
	assert.Error(t, err)
}
