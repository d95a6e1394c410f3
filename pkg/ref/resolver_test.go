package ref

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/jsonref/pkg/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseJSON(t *testing.T, s string) *document.Node {
	t.Helper()
	n, err := document.NewJSONDecoder(false).Decode(strings.NewReader(s))
	require.NoError(t, err)
	return n
}

func newAreaResolver(t *testing.T, opts ...Option) *Resolver {
	base := parseJSON(t, `{
		"typeName": "AWS::geography::areaDescription",
		"definitions": {"areaId": {"type": "string"}},
		"properties": {"location": {"$ref": "location.json#/definitions/location"}}
	}`)
	location := parseJSON(t, `{
		"definitions": {
			"location": {"type": "object", "properties": {"country": {"type": "string"}}},
			"coordinates": [{"lat": 1}, {"lat": 2}]
		}
	}`)
	opts = append([]Option{WithRemote("location.json", location)}, opts...)
	return NewResolver(base, opts...)
}

func TestResolver_Resolve(t *testing.T) {
	r := newAreaResolver(t)

	t.Run("base", func(t *testing.T) {
		n, err := r.Resolve(New(Base, "definitions", "areaId", "type"))
		require.NoError(t, err)
		assert.Equal(t, "string", n.Value())
	})

	t.Run("remote", func(t *testing.T) {
		n, err := r.Resolve(New(Remote("location.json"), "definitions", "location"))
		require.NoError(t, err)
		assert.Equal(t, []string{"type", "properties"}, n.Keys())
	})

	t.Run("remote index", func(t *testing.T) {
		n, err := r.Resolve(New(Remote("location.json"), "definitions", "coordinates", "1", "lat"))
		require.NoError(t, err)
		assert.Equal(t, 2.0, n.Value())
	})

	t.Run("remote root", func(t *testing.T) {
		n, err := r.Resolve(New(Remote("location.json")))
		require.NoError(t, err)
		assert.Equal(t, []string{"definitions"}, n.Keys())
	})

	t.Run("unknown remote", func(t *testing.T) {
		_, err := r.Resolve(New(Remote("missing.json"), "x"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownOrigin))
	})

	t.Run("traversal errors propagate", func(t *testing.T) {
		_, err := r.Resolve(New(Remote("location.json"), "definitions", "coordinates", "9"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, document.ErrIndexOutOfRange))

		var terr *document.TraversalError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, []string{"definitions", "coordinates"}, terr.Path)
		assert.Contains(t, err.Error(), "location.json#/definitions/coordinates/9")
	})
}

func TestResolver_Lookup(t *testing.T) {
	r := newAreaResolver(t)

	n, err := r.Lookup("#/properties/location/$ref")
	require.NoError(t, err)
	assert.Equal(t, "location.json#/definitions/location", n.Value())

	_, err = r.Lookup("#/nope")
	assert.True(t, errors.Is(err, document.ErrKeyNotFound))

	_, err = r.Lookup("nope")
	assert.Error(t, err)
}

// After a bundler copies a resolved remote value to its rewritten location,
// looking the rewritten pointer up in the bundle yields the same value.
func TestResolver_RewriteThenLookup(t *testing.T) {
	r := newAreaResolver(t)
	ref := New(Remote("location.json"), "definitions", "location")

	value, err := r.Resolve(ref)
	require.NoError(t, err)

	segments, err := Parse(Base, r.Rewrite(ref))
	require.NoError(t, err)
	require.Equal(t, []string{"definitions", "location.json", "definitions/location"}, segments.Segments)

	bundled := document.Mapping(document.Entry{
		Key: DefinitionsKey,
		Value: document.Mapping(document.Entry{
			Key:   "location.json",
			Value: document.Mapping(document.Entry{Key: "definitions/location", Value: value}),
		}),
	})

	got, err := NewResolver(bundled).Lookup(r.Rewrite(ref))
	require.NoError(t, err)
	assert.Same(t, value, got)
}

func TestResolver_Remotes(t *testing.T) {
	r := NewResolver(document.Mapping(),
		WithRemote("b", document.Mapping()),
		WithRemote("a", document.Sequence()),
		WithRemote("b", document.Scalar(nil)),
	)
	assert.Equal(t, []string{"a", "b"}, r.Remotes())

	n, err := r.Resolve(New(Remote("b")))
	require.NoError(t, err)
	assert.Equal(t, document.KindScalar, n.Kind())
}

func TestResolver_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newAreaResolver(t, WithLogger(logger))

	_, err := r.Resolve(New(Remote("location.json"), "definitions", "location"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "resolved reference")
	assert.Contains(t, buf.String(), "definitions/location.json/definitions~1location")

	_, _ = r.Resolve(New(Base, "missing"))
	assert.Contains(t, buf.String(), "reference did not resolve")
}

func TestResolver_State(t *testing.T) {
	r := newAreaResolver(t, WithLogger(nil))
	state, ok := r.State().(ResolverState)
	require.True(t, ok)
	assert.Equal(t, "mapping", state.BaseKind)
	assert.Equal(t, []string{"location.json"}, state.Remotes)
	assert.Equal(t, "resolver", r.ComponentType())
}

func TestResolver_Concurrent(t *testing.T) {
	r := newAreaResolver(t)
	refs := []Reference{
		New(Base, "typeName"),
		New(Remote("location.json"), "definitions", "location", "type"),
		New(Remote("location.json"), "definitions", "coordinates", "0", "lat"),
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, ref := range refs {
				_, err := r.Resolve(ref)
				assert.NoError(t, err)
				_ = r.Rewrite(ref)
			}
		}()
	}
	wg.Wait()
}
