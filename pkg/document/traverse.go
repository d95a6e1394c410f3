package document

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aretw0/jsonref/pkg/pointer"
)

// Traversal failures. A *TraversalError wraps exactly one of these.
var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrInvalidIndex    = errors.New("invalid index")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrScalar          = errors.New("cannot descend into scalar")
)

// TraversalError reports the segment a traversal stopped at.
type TraversalError struct {
	Err     error
	Path    []string // segments consumed before Segment
	Segment string
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("%v: %q at %s", e.Err, e.Segment, pointer.Encode(e.Path...))
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// Traverse walks doc along path and returns the addressed node. Sequence
// segments are base-10 indices; mapping segments are keys. An empty path
// returns doc itself.
func Traverse(doc *Node, path []string) (*Node, error) {
	current := doc
	for i, segment := range path {
		fail := func(err error) (*Node, error) {
			return nil, &TraversalError{
				Err:     err,
				Path:    append([]string{}, path[:i]...),
				Segment: segment,
			}
		}

		switch current.Kind() {
		case KindMapping:
			next, ok := current.Get(segment)
			if !ok {
				return fail(ErrKeyNotFound)
			}
			current = next
		case KindSequence:
			idx, err := strconv.Atoi(segment)
			if errors.Is(err, strconv.ErrRange) {
				return fail(ErrIndexOutOfRange)
			}
			if err != nil {
				return fail(ErrInvalidIndex)
			}
			next, ok := current.Index(idx)
			if !ok {
				return fail(ErrIndexOutOfRange)
			}
			current = next
		default:
			return fail(ErrScalar)
		}
	}
	return current, nil
}

// Lookup resolves a fragment pointer against doc.
func Lookup(doc *Node, p string) (*Node, error) {
	path, err := pointer.Decode(p)
	if err != nil {
		return nil, err
	}
	return Traverse(doc, path)
}
