package main

import (
	"github.com/aretw0/jsonref"
	"github.com/spf13/cobra"
)

func newTraverseCmd(flags *globalFlags) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "traverse [file] [pointer]",
		Short: "Print the value a pointer addresses in a document",
		Long:  `Print the value a pointer addresses in a JSON, JSONC or YAML document. The pointer defaults to the root, "#".`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := jsonref.Load(args[0], flags.loadOptions()...)
			if err != nil {
				return err
			}

			p := "#"
			if len(args) == 2 {
				p = args[1]
			}
			path, err := jsonref.Decode(p)
			if err != nil {
				return err
			}

			value, err := jsonref.Traverse(doc, path)
			if err != nil {
				return err
			}
			return writeNode(cmd.OutOrStdout(), value, asYAML)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output in YAML format")
	return cmd
}
