// Package jsonref is the Composition Root for the jsonref engine.
//
// It rewrites JSON references so that they resolve inside a single bundled
// document, and resolves them against the documents they were found in.
// The bundler that walks documents looking for "$ref" links is the caller;
// this package supplies the three operations it needs:
//
//   - **Encode**: segments to a fragment pointer ("#/a/b", "~0"/"~1" escaping).
//   - **Rewrite**: a reference to its pointer in the bundled base document.
//     Remote references land under "#/definitions/<remote>/<flattened path>".
//   - **Traverse**: walk a document along path segments.
//
// Usage:
//
//	r, err := jsonref.NewResolver("schema.json",
//		jsonref.WithRemoteFile("location.json", "remote/location.json"),
//		jsonref.WithLogger(logger),
//	)
//
//	ref := jsonref.NewReference(jsonref.Remote("location.json"), "definitions", "location")
//	value, err := r.Resolve(ref)   // copy value to r.Rewrite(ref) in the bundle
package jsonref
