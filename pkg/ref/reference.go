// Package ref rewrites references so that they resolve inside a single
// bundled base document, and resolves them against the documents they
// originally point into.
//
// A reference into the base document keeps its path. A reference into a
// remote document is moved under the base document's definitions section:
//
//	New(Base, "foo", "bar").Rewrite()         // "#/foo/bar"
//	New(Remote("remote"), "foo", "bar").Rewrite() // "#/definitions/remote/foo~1bar"
//
// The remote path is flattened into one segment, so every remote location
// owns exactly one key in the bundled document.
package ref

import (
	"strings"

	"github.com/aretw0/jsonref/pkg/pointer"
)

// DefinitionsKey is the top-level key that remote documents are bundled under.
const DefinitionsKey = "definitions"

// Origin identifies the document a reference points into: either the base
// document or a remote document named by its source key.
type Origin struct {
	name   string
	remote bool
}

// Base is the document being bundled.
var Base = Origin{}

// Remote names a remote document. Remote("") is still distinct from Base.
func Remote(name string) Origin {
	return Origin{name: name, remote: true}
}

// IsBase reports whether o is the base document.
func (o Origin) IsBase() bool {
	return !o.remote
}

// Name returns the remote document's name; empty for Base.
func (o Origin) Name() string {
	return o.name
}

func (o Origin) String() string {
	if o.IsBase() {
		return "<BASE>"
	}
	return o.name
}

// Reference is a location inside the document named by Origin. A
// reference without segments points at the document root.
type Reference struct {
	Origin   Origin
	Segments []string
}

// New builds a reference.
func New(origin Origin, segments ...string) Reference {
	return Reference{Origin: origin, Segments: append([]string{}, segments...)}
}

// Parse builds a reference from a fragment pointer found in origin's document.
func Parse(origin Origin, p string) (Reference, error) {
	segments, err := pointer.Decode(p)
	if err != nil {
		return Reference{}, err
	}
	return Reference{Origin: origin, Segments: segments}, nil
}

// Rewrite returns the pointer r resolves to once remote documents have been
// bundled into the base document.
func Rewrite(r Reference) string {
	if r.Origin.IsBase() {
		return pointer.Encode(r.Segments...)
	}
	return pointer.Encode(DefinitionsKey, r.Origin.name, strings.Join(r.Segments, "/"))
}

// Rewrite is shorthand for Rewrite(r).
func (r Reference) Rewrite() string {
	return Rewrite(r)
}

// Equal reports whether both references name the same location.
func (r Reference) Equal(other Reference) bool {
	if r.Origin != other.Origin || len(r.Segments) != len(other.Segments) {
		return false
	}
	for i := range r.Segments {
		if r.Segments[i] != other.Segments[i] {
			return false
		}
	}
	return true
}

func (r Reference) String() string {
	return r.Origin.String() + pointer.Encode(r.Segments...)
}
