package platform

import (
	"log/slog"

	"github.com/aretw0/jsonref/pkg/document"
)

// options holds the internal configuration for loading documents.
type options struct {
	logger   *slog.Logger
	strict   bool
	decoders map[string]document.Decoder
	remotes  map[string]string
}

// Option defines a functional option for configuring the loader.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:   nil,
		strict:   false,
		decoders: make(map[string]document.Decoder),
		remotes:  make(map[string]string),
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// decoderFor returns the decoder for ext, preferring registered ones.
func (o *options) decoderFor(ext string) (document.Decoder, bool) {
	if d, ok := o.decoders[ext]; ok {
		return d, true
	}
	d, ok := document.DefaultDecoders(o.strict)[ext]
	return d, ok
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStrict enables strict mode for the default decoders.
// Numbers are kept as json.Number to preserve precision of large integers.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithDecoder registers a decoder for a file extension (e.g. ".json5"),
// overriding the default for that extension.
func WithDecoder(ext string, d document.Decoder) Option {
	return func(o *options) {
		o.decoders[ext] = d
	}
}

// WithRemoteFile registers a remote document by name, loaded from path.
func WithRemoteFile(name, path string) Option {
	return func(o *options) {
		o.remotes[name] = path
	}
}
