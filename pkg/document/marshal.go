package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes n with mapping keys in document order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	switch n.Kind() {
	case KindMapping:
		buf.WriteByte('{')
		for i, e := range n.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := e.Value.writeJSON(buf); err != nil {
				return fmt.Errorf("%s: %w", e.Key, err)
			}
		}
		buf.WriteByte('}')
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return fmt.Errorf("%d: %w", i, err)
			}
		}
		buf.WriteByte(']')
	default:
		b, err := json.Marshal(n.Value())
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, keeping mapping order.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlNode()
}

func (n *Node) yamlNode() (*yaml.Node, error) {
	switch n.Kind() {
	case KindMapping:
		y := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range n.entries {
			v, err := e.Value.yamlNode()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.Key, err)
			}
			y.Content = append(y.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}, v)
		}
		return y, nil
	case KindSequence:
		y := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range n.items {
			v, err := item.yamlNode()
			if err != nil {
				return nil, fmt.Errorf("%d: %w", i, err)
			}
			y.Content = append(y.Content, v)
		}
		return y, nil
	default:
		if num, ok := n.Value().(json.Number); ok {
			tag := "!!int"
			if strings.ContainsAny(num.String(), ".eE") {
				tag = "!!float"
			}
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: num.String()}, nil
		}
		y := &yaml.Node{}
		if err := y.Encode(n.Value()); err != nil {
			return nil, err
		}
		return y, nil
	}
}
