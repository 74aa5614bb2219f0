package render

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/toonvert/internal/errors"
	"github.com/mcncl/toonvert/internal/models"
)

// YAML renders v as a YAML document with 2-space indentation. The tree is
// lowered to a yaml.Node graph rather than native Go values so member order
// survives (yaml.v3 sorts map keys, but emits mapping nodes as given).
func YAML(v *models.Value) (string, error) {
	if v == nil {
		return "", errors.NewRenderError("cannot render nil value", nil)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return "", errors.NewRenderError("failed to encode YAML", err)
	}
	if err := enc.Close(); err != nil {
		return "", errors.NewRenderError("failed to finalize YAML", err)
	}
	return buf.String(), nil
}

// yamlNode lowers a Value to a yaml.Node. Scalars carry explicit tags so
// the emitter quotes strings that would otherwise re-parse as another type
// ("true", "1.5", "null").
func yamlNode(v *models.Value) *yaml.Node {
	switch v.Kind() {
	case models.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case models.KindBool:
		val := "false"
		if v.BoolVal() {
			val = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}
	case models.KindNumber:
		lit := v.NumberVal().String()
		tag := "!!int"
		if strings.ContainsAny(lit, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: lit}
	case models.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.StringVal()}
	case models.KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items() {
			node.Content = append(node.Content, yamlNode(item))
		}
		return node
	case models.KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.Members() {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				yamlNode(m.Value),
			)
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
