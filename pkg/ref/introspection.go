package ref

import (
	"github.com/aretw0/introspection"
)

// ResolverState exposes internal state for observability.
type ResolverState struct {
	BaseKind string   `json:"base_kind"`
	Remotes  []string `json:"remotes"`
}

// State implements introspection.Introspectable.
func (r *Resolver) State() any {
	return ResolverState{
		BaseKind: r.base.Kind().String(),
		Remotes:  r.Remotes(),
	}
}

// ComponentType implements introspection.Component.
func (r *Resolver) ComponentType() string {
	return "resolver"
}

var _ introspection.Introspectable = (*Resolver)(nil)
var _ introspection.Component = (*Resolver)(nil)
