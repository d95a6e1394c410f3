package main

import (
	"encoding/json"
	"io"

	"github.com/aretw0/jsonref"
	"gopkg.in/yaml.v3"
)

func writeNode(w io.Writer, n *jsonref.Node, asYAML bool) error {
	if asYAML {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(n); err != nil {
			return err
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(n)
}
