// Package pointer encodes and decodes JSON Pointers in their URI fragment
// form ("#", "#/definitions/foo").
//
// Each segment is escaped on its own before joining: "~" becomes "~0" and
// then "/" becomes "~1". The order is load-bearing; escaping "/" first would
// turn a literal "~1" in the input into "~01" on the way back.
package pointer

import (
	"errors"
	"fmt"
	"strings"
)

// Root is the pointer to the whole document.
const Root = "#"

var (
	ErrMissingHash   = errors.New("pointer must start with '#'")
	ErrMissingSlash  = errors.New("pointer segments must be separated by '/'")
	ErrInvalidEscape = errors.New("invalid escape sequence")
)

var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Escape escapes a single segment.
func Escape(segment string) string {
	return escaper.Replace(segment)
}

// Unescape reverses Escape. It does not validate; use Decode for input
// that may be malformed.
func Unescape(segment string) string {
	return unescaper.Replace(segment)
}

// Encode joins segments into a fragment pointer. Encode() is "#" and
// Encode("") is "#/".
func Encode(segments ...string) string {
	if len(segments) == 0 {
		return Root
	}

	var b strings.Builder
	b.WriteString(Root)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(Escape(s))
	}
	return b.String()
}

// Decode splits a fragment pointer back into its unescaped segments.
// "#" decodes to an empty slice and "#/" to a single empty segment.
func Decode(p string) ([]string, error) {
	if !strings.HasPrefix(p, Root) {
		return nil, fmt.Errorf("%w: %q", ErrMissingHash, p)
	}
	rest := p[len(Root):]
	if rest == "" {
		return []string{}, nil
	}
	if rest[0] != '/' {
		return nil, fmt.Errorf("%w: %q", ErrMissingSlash, p)
	}

	raw := strings.Split(rest[1:], "/")
	segments := make([]string, len(raw))
	for i, s := range raw {
		if err := checkEscapes(s); err != nil {
			return nil, fmt.Errorf("%w in %q", err, p)
		}
		segments[i] = Unescape(s)
	}
	return segments, nil
}

func checkEscapes(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '~' {
			continue
		}
		if i+1 >= len(s) || (s[i+1] != '0' && s[i+1] != '1') {
			return fmt.Errorf("%w at offset %d", ErrInvalidEscape, i)
		}
		i++
	}
	return nil
}
