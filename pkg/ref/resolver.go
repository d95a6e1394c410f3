package ref

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aretw0/jsonref/pkg/document"
)

// ErrUnknownOrigin is returned when a reference names a remote document the
// resolver was not given.
var ErrUnknownOrigin = errors.New("unknown origin")

// Resolver resolves references against the base document and a fixed set
// of remote documents. It is read-only after NewResolver returns and can be
// shared between goroutines.
type Resolver struct {
	base    *document.Node
	remotes map[string]*document.Node
	logger  *slog.Logger
}

// NewResolver creates a resolver over base.
func NewResolver(base *document.Node, opts ...Option) *Resolver {
	r := &Resolver{
		base:    base,
		remotes: make(map[string]*document.Node),
		logger:  discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite returns the pointer ref takes in the bundled document.
func (r *Resolver) Rewrite(ref Reference) string {
	return Rewrite(ref)
}

// Resolve returns the node ref addresses in its origin document.
func (r *Resolver) Resolve(ref Reference) (*document.Node, error) {
	doc, err := r.document(ref.Origin)
	if err != nil {
		return nil, err
	}

	n, err := document.Traverse(doc, ref.Segments)
	if err != nil {
		r.logger.Debug("reference did not resolve", "ref", ref.String(), "error", err)
		return nil, fmt.Errorf("resolving %s: %w", ref, err)
	}

	r.logger.Debug("resolved reference", "ref", ref.String(), "rewritten", ref.Rewrite(), "kind", n.Kind().String())
	return n, nil
}

// Lookup resolves a pointer against the base document.
func (r *Resolver) Lookup(p string) (*document.Node, error) {
	ref, err := Parse(Base, p)
	if err != nil {
		return nil, err
	}
	return r.Resolve(ref)
}

// Remotes returns the registered remote names, sorted.
func (r *Resolver) Remotes() []string {
	names := make([]string, 0, len(r.remotes))
	for name := range r.remotes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Resolver) document(o Origin) (*document.Node, error) {
	if o.IsBase() {
		return r.base, nil
	}
	doc, ok := r.remotes[o.Name()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrigin, o.Name())
	}
	return doc, nil
}
