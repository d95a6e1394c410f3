package ref

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"github.com/aretw0/jsonref/pkg/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name string
		ref  Reference
		want string
	}{
		{"base root", New(Base), "#"},
		{"base path", New(Base, "foo", "bar"), "#/foo/bar"},
		{"base escapes", New(Base, "a/b", "c~d"), "#/a~1b/c~0d"},
		{"remote path", New(Remote("remote"), "foo", "bar"), "#/definitions/remote/foo~1bar"},
		{"remote root", New(Remote("remote")), "#/definitions/remote/"},
		{"remote single", New(Remote("remote"), "foo"), "#/definitions/remote/foo"},
		{"remote url name", New(Remote("https://example.com/s.json"), "definitions", "x"),
			"#/definitions/https:~1~1example.com~1s.json/definitions~1x"},
		{"remote empty name", New(Remote("")), "#/definitions//"},
		{"remote tilde", New(Remote("r"), "a~b", "c"), "#/definitions/r/a~0b~1c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Rewrite(tc.ref))
			assert.Equal(t, tc.want, tc.ref.Rewrite())
		})
	}
}

func TestRewrite_Deterministic(t *testing.T) {
	r := New(Remote("remote"), "properties", "city")
	first := r.Rewrite()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Rewrite())
	}
}

func TestRewrite_BaseRoundTrip(t *testing.T) {
	f := func(segments []string) bool {
		got, err := pointer.Decode(New(Base, segments...).Rewrite())
		if err != nil || len(got) != len(segments) {
			return false
		}
		for i := range got {
			if got[i] != segments[i] {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(f, nil))
}

// randomSegments draws path segments without "/": flattening joins remote
// segments with "/", so a segment containing one is indistinguishable
// from two segments.
func randomSegments(rng *rand.Rand) []string {
	alphabet := []string{"a", "b", "~", "0", "1", ""}
	n := rng.Intn(4)
	segments := make([]string, n)
	for i := range segments {
		var b strings.Builder
		for j := rng.Intn(3); j > 0; j-- {
			b.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		segments[i] = b.String()
	}
	return segments
}

func TestRewrite_Unique(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	origins := []Origin{Remote("a"), Remote("b"), Remote("a/b"), Remote("")}

	// A remote pointer is determined by the origin and the flattened path,
	// and nothing else.
	type flat struct {
		origin Origin
		path   string
	}
	remote := make(map[string]flat)
	for i := 0; i < 5000; i++ {
		r := New(origins[rng.Intn(len(origins))], randomSegments(rng)...)
		key := flat{r.Origin, strings.Join(r.Segments, "/")}
		p := r.Rewrite()
		if prev, ok := remote[p]; ok {
			require.Equalf(t, prev, key, "%s collides on %s", r, p)
			continue
		}
		remote[p] = key
	}

	base := make(map[string]Reference)
	for i := 0; i < 5000; i++ {
		r := New(Base, randomSegments(rng)...)
		p := r.Rewrite()
		if prev, ok := base[p]; ok {
			require.Truef(t, prev.Equal(r), "%s and %s both rewrite to %s", prev, r, p)
			continue
		}
		base[p] = r
	}
}

func TestOrigin(t *testing.T) {
	assert.True(t, Base.IsBase())
	assert.Equal(t, Origin{}, Base)
	assert.False(t, Remote("").IsBase())
	assert.NotEqual(t, Base, Remote(""))
	assert.Equal(t, Remote("x"), Remote("x"))
	assert.Equal(t, "<BASE>", Base.String())
	assert.Equal(t, "x", Remote("x").String())
}

func TestReference_String(t *testing.T) {
	assert.Equal(t, "<BASE>#/foo", New(Base, "foo").String())
	assert.Equal(t, "remote#", New(Remote("remote")).String())
}

func TestNew_CopiesSegments(t *testing.T) {
	segments := []string{"a", "b"}
	r := New(Base, segments...)
	segments[0] = "z"
	assert.Equal(t, []string{"a", "b"}, r.Segments)
}

func TestParse(t *testing.T) {
	r, err := Parse(Remote("remote"), "#/foo/bar")
	require.NoError(t, err)
	assert.True(t, r.Equal(New(Remote("remote"), "foo", "bar")))
	assert.Equal(t, "#/definitions/remote/foo~1bar", r.Rewrite())

	_, err = Parse(Base, "foo")
	assert.True(t, errors.Is(err, pointer.ErrMissingHash))
}
