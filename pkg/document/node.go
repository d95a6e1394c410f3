// Package document holds the in-memory tree that references are resolved
// against: ordered mappings, sequences and scalar leaves.
package document

import (
	"fmt"
	"sort"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Entry is a key-value pair in a mapping.
type Entry struct {
	Key   string
	Value *Node
}

// Node is a document value. Exactly one of entries, items or value is
// meaningful, as selected by kind. A nil *Node is the scalar null.
//
// Nodes are not modified after construction, so a tree can be shared
// between goroutines.
type Node struct {
	kind    Kind
	entries []Entry
	index   map[string]int
	items   []*Node
	value   any
}

// Mapping builds a mapping node. Keys keep their first position; a repeated
// key replaces the earlier value.
func Mapping(entries ...Entry) *Node {
	n := &Node{
		kind:    KindMapping,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		n.set(e.Key, e.Value)
	}
	return n
}

// Sequence builds a sequence node.
func Sequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: append([]*Node{}, items...)}
}

// Scalar wraps a leaf value.
func Scalar(v any) *Node {
	return &Node{kind: KindScalar, value: v}
}

func (n *Node) set(key string, value *Node) {
	if i, ok := n.index[key]; ok {
		n.entries[i].Value = value
		return
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, Entry{Key: key, Value: value})
}

// Kind reports which variant n holds.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindScalar
	}
	return n.kind
}

// Len is the number of entries or items. Scalars have length zero.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindMapping:
		return len(n.entries)
	case KindSequence:
		return len(n.items)
	default:
		return 0
	}
}

// Get returns the value stored under key in a mapping.
func (n *Node) Get(key string) (*Node, bool) {
	if n.Kind() != KindMapping {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.entries[i].Value, true
}

// Index returns the i-th item of a sequence.
func (n *Node) Index(i int) (*Node, bool) {
	if n.Kind() != KindSequence || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Keys returns mapping keys in document order.
func (n *Node) Keys() []string {
	if n.Kind() != KindMapping {
		return nil
	}
	keys := make([]string, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the mapping entries in document order.
func (n *Node) Entries() []Entry {
	if n.Kind() != KindMapping {
		return nil
	}
	return append([]Entry{}, n.entries...)
}

// Items returns a copy of the sequence items.
func (n *Node) Items() []*Node {
	if n.Kind() != KindSequence {
		return nil
	}
	return append([]*Node{}, n.items...)
}

// Value returns the scalar value, or nil for containers.
func (n *Node) Value() any {
	if n.Kind() != KindScalar || n == nil {
		return nil
	}
	return n.value
}

// FromValue builds a tree from plain Go values as produced by
// encoding/json or yaml.v3. Keys of Go maps have no order, so they are
// sorted to keep the result deterministic.
func FromValue(v any) (*Node, error) {
	switch val := v.(type) {
	case *Node:
		return val, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			child, err := FromValue(val[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			entries = append(entries, Entry{Key: k, Value: child})
		}
		return Mapping(entries...), nil
	case []any:
		items := make([]*Node, len(val))
		for i, item := range val {
			child, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("%d: %w", i, err)
			}
			items[i] = child
		}
		return Sequence(items...), nil
	case []string:
		items := make([]*Node, len(val))
		for i, s := range val {
			items[i] = Scalar(s)
		}
		return Sequence(items...), nil
	case map[any]any:
		return nil, fmt.Errorf("unsupported container type %T", v)
	default:
		return Scalar(val), nil
	}
}
