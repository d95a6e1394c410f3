package ref

import (
	"io"
	"log/slog"

	"github.com/aretw0/jsonref/pkg/document"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithRemote registers a remote document under name. Registering the same
// name twice keeps the last document.
func WithRemote(name string, doc *document.Node) Option {
	return func(r *Resolver) {
		r.remotes[name] = doc
	}
}

// WithLogger sets the logger for resolution diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
