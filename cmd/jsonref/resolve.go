package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/jsonref"
	"github.com/spf13/cobra"
)

func newResolveCmd(flags *globalFlags) *cobra.Command {
	var (
		remotes []string
		origin  string
		asYAML  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [base-file] [segment...]",
		Short: "Resolve a reference against the base or a remote document",
		Long: `Resolve a reference and print the value it addresses.
Remote documents are registered with --remote name=path; --origin selects
the document the segments address (the base document by default). The
pointer the reference takes in the bundled document is logged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.loadOptions()
			for _, entry := range remotes {
				name, path, ok := strings.Cut(entry, "=")
				if !ok || name == "" || path == "" {
					return fmt.Errorf("invalid --remote %q: expected name=path", entry)
				}
				opts = append(opts, jsonref.WithRemoteFile(name, path))
			}

			resolver, err := jsonref.NewResolver(args[0], opts...)
			if err != nil {
				return err
			}

			o := jsonref.Base
			if cmd.Flags().Changed("origin") {
				o = jsonref.Remote(origin)
			}
			ref := jsonref.NewReference(o, args[1:]...)

			value, err := resolver.Resolve(ref)
			if err != nil {
				return err
			}

			flags.logger.Info("resolved", "ref", ref.String(), "pointer", resolver.Rewrite(ref))
			return writeNode(cmd.OutOrStdout(), value, asYAML)
		},
	}

	cmd.Flags().StringArrayVar(&remotes, "remote", nil, "Remote document as name=path (repeatable)")
	cmd.Flags().StringVar(&origin, "origin", "", "Remote document the segments address")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output in YAML format")
	return cmd
}
