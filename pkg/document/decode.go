package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Decoder reads a document in a specific format.
type Decoder interface {
	// Decode reads from r and returns the root node.
	Decode(r io.Reader) (*Node, error)
}

// DefaultDecoders returns the standard decoders keyed by file extension.
func DefaultDecoders(strict bool) map[string]Decoder {
	return map[string]Decoder{
		".json":  NewJSONDecoder(strict),
		".jsonc": NewJSONCDecoder(strict),
		".yaml":  NewYAMLDecoder(strict),
		".yml":   NewYAMLDecoder(strict),
	}
}

// --- JSON Decoder ---

// JSONDecoder reads JSON, keeping object keys in document order.
type JSONDecoder struct {
	// Strict keeps numbers as json.Number to avoid precision loss.
	Strict bool
}

// NewJSONDecoder creates a new JSON decoder.
func NewJSONDecoder(strict bool) *JSONDecoder {
	return &JSONDecoder{Strict: strict}
}

func (d *JSONDecoder) Decode(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.parse(data)
}

func (d *JSONDecoder) parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if d.Strict {
		dec.UseNumber()
	}

	n, err := readJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid json: trailing data after document")
	}
	return n, nil
}

func readJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return Scalar(tok), nil
	}

	switch delim {
	case '{':
		n := Mapping()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			child, err := readJSONValue(dec)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			n.set(key, child)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return n, nil
	case '[':
		var items []*Node
		for dec.More() {
			child, err := readJSONValue(dec)
			if err != nil {
				return nil, fmt.Errorf("%d: %w", len(items), err)
			}
			items = append(items, child)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return Sequence(items...), nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// --- JSONC Decoder ---

// JSONCDecoder reads JSON extended with comments and trailing commas.
type JSONCDecoder struct {
	JSONDecoder
}

// NewJSONCDecoder creates a new JSONC decoder.
func NewJSONCDecoder(strict bool) *JSONCDecoder {
	return &JSONCDecoder{JSONDecoder{Strict: strict}}
}

func (d *JSONCDecoder) Decode(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.parse(jsonc.ToJSON(data))
}

// --- YAML Decoder ---

// YAMLDecoder reads YAML, keeping mapping keys in document order.
type YAMLDecoder struct {
	// Strict converts numbers to json.Number, matching JSONDecoder.
	Strict bool
}

// NewYAMLDecoder creates a new YAML decoder.
func NewYAMLDecoder(strict bool) *YAMLDecoder {
	return &YAMLDecoder{Strict: strict}
}

func (d *YAMLDecoder) Decode(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	n, err := d.convert(&root, make(map[*yaml.Node]bool))
	if err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return n, nil
}

func (d *YAMLDecoder) convert(y *yaml.Node, expanding map[*yaml.Node]bool) (*Node, error) {
	switch y.Kind {
	case 0:
		// Empty input.
		return Scalar(nil), nil
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return Scalar(nil), nil
		}
		return d.convert(y.Content[0], expanding)
	case yaml.MappingNode:
		n := Mapping()
		for i := 0; i+1 < len(y.Content); i += 2 {
			k := y.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			child, err := d.convert(y.Content[i+1], expanding)
			if err != nil {
				return nil, err
			}
			if k.ShortTag() == "!!merge" {
				if err := mergeInto(n, child, k.Line); err != nil {
					return nil, err
				}
				continue
			}
			n.set(k.Value, child)
		}
		return n, nil
	case yaml.SequenceNode:
		items := make([]*Node, len(y.Content))
		for i, c := range y.Content {
			child, err := d.convert(c, expanding)
			if err != nil {
				return nil, err
			}
			items[i] = child
		}
		return Sequence(items...), nil
	case yaml.AliasNode:
		if expanding[y.Alias] {
			return nil, fmt.Errorf("line %d: alias %q refers to itself", y.Line, y.Value)
		}
		expanding[y.Alias] = true
		defer delete(expanding, y.Alias)
		return d.convert(y.Alias, expanding)
	case yaml.ScalarNode:
		var v any
		if err := y.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", y.Line, err)
		}
		if d.Strict {
			v = toNumber(v)
		}
		return Scalar(v), nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", y.Line, y.Kind)
	}
}

// mergeInto applies a "<<" merge key. Keys already in n win, as do keys set
// explicitly later in the mapping; with a sequence of mappings the earlier
// mapping wins.
func mergeInto(n, src *Node, line int) error {
	sources := []*Node{src}
	if src.Kind() == KindSequence {
		sources = src.Items()
	}

	for _, m := range sources {
		if m.Kind() != KindMapping {
			return fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", line)
		}
		for _, e := range m.entries {
			if _, ok := n.Get(e.Key); !ok {
				n.set(e.Key, e.Value)
			}
		}
	}
	return nil
}

// toNumber converts YAML numeric scalars to json.Number.
func toNumber(v any) any {
	switch n := v.(type) {
	case int:
		return json.Number(strconv.Itoa(n))
	case int64:
		return json.Number(strconv.FormatInt(n, 10))
	case uint64:
		return json.Number(strconv.FormatUint(n, 10))
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return n
		}
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64))
	default:
		return v
	}
}
