package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/jsonref/pkg/document"
)

// ErrUnsupportedFormat is returned for file extensions without a decoder.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Load reads and decodes the document at path. The decoder is picked by
// file extension.
func Load(path string, opts ...Option) (*document.Node, error) {
	o := buildOptions(opts)
	return o.load(path)
}

// LoadReader decodes a document from r using the decoder registered for ext.
func LoadReader(r io.Reader, ext string, opts ...Option) (*document.Node, error) {
	o := buildOptions(opts)
	return o.decode(r, ext)
}

func (o *options) load(path string) (*document.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	doc, err := o.decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	o.logger.Debug("loaded document", "path", path, "kind", doc.Kind().String())
	return doc, nil
}

func (o *options) decode(r io.Reader, ext string) (*document.Node, error) {
	d, ok := o.decoderFor(strings.ToLower(ext))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return d.Decode(r)
}
