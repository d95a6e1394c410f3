package platform

import (
	"sort"

	"github.com/aretw0/jsonref/pkg/ref"
)

// NewResolver loads the base document at basePath and every remote file
// registered with WithRemoteFile, and returns a resolver over them.
//
//	r, err := platform.NewResolver("schema.json",
//		platform.WithRemoteFile("location.json", "remote/location.json"))
func NewResolver(basePath string, opts ...Option) (*ref.Resolver, error) {
	o := buildOptions(opts)

	base, err := o.load(basePath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(o.remotes))
	for name := range o.remotes {
		names = append(names, name)
	}
	sort.Strings(names)

	resolverOpts := []ref.Option{ref.WithLogger(o.logger)}
	for _, name := range names {
		doc, err := o.load(o.remotes[name])
		if err != nil {
			return nil, err
		}
		resolverOpts = append(resolverOpts, ref.WithRemote(name, doc))
	}

	return ref.NewResolver(base, resolverOpts...), nil
}
