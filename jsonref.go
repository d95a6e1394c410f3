package jsonref

import (
	"io"
	"log/slog"

	"github.com/aretw0/jsonref/internal/platform"
	"github.com/aretw0/jsonref/pkg/document"
	"github.com/aretw0/jsonref/pkg/pointer"
	"github.com/aretw0/jsonref/pkg/ref"
)

// --- Types ---

// Node is a public alias for a document node.
type Node = document.Node

// Origin is a public alias for a reference origin.
type Origin = ref.Origin

// Reference is a public alias for a reference.
type Reference = ref.Reference

// Resolver is a public alias for the reference resolver.
type Resolver = ref.Resolver

// Base is the document being bundled.
var Base = ref.Base

// Remote names a remote document.
func Remote(name string) Origin {
	return ref.Remote(name)
}

// NewReference builds a reference into origin's document.
func NewReference(origin Origin, segments ...string) Reference {
	return ref.New(origin, segments...)
}

// --- Configuration ---

// Option defines a functional option for loading documents.
type Option = platform.Option

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStrict keeps numbers as json.Number when decoding.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithDecoder registers a decoder for a file extension.
func WithDecoder(ext string, d document.Decoder) Option {
	return platform.WithDecoder(ext, d)
}

// WithRemoteFile registers a remote document loaded from path.
func WithRemoteFile(name, path string) Option {
	return platform.WithRemoteFile(name, path)
}

// --- Factory ---

// Load reads a JSON, JSONC or YAML document from path.
func Load(path string, opts ...Option) (*Node, error) {
	return platform.Load(path, opts...)
}

// LoadReader decodes a document in the format named by ext.
func LoadReader(r io.Reader, ext string, opts ...Option) (*Node, error) {
	return platform.LoadReader(r, ext, opts...)
}

// NewResolver loads the base document and any remote files.
func NewResolver(basePath string, opts ...Option) (*Resolver, error) {
	return platform.NewResolver(basePath, opts...)
}

// --- Operations ---

// Encode joins segments into a fragment pointer.
func Encode(segments ...string) string {
	return pointer.Encode(segments...)
}

// Decode splits a fragment pointer into segments.
func Decode(p string) ([]string, error) {
	return pointer.Decode(p)
}

// Rewrite returns the pointer r takes in the bundled base document.
func Rewrite(r Reference) string {
	return ref.Rewrite(r)
}

// Traverse walks doc along path.
func Traverse(doc *Node, path []string) (*Node, error) {
	return document.Traverse(doc, path)
}
