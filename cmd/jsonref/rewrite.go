package main

import (
	"fmt"

	"github.com/aretw0/jsonref"
	"github.com/spf13/cobra"
)

func newRewriteCmd() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "rewrite [segment...]",
		Short: "Print the pointer a reference takes in the bundled document",
		Long: `Print the pointer a reference takes in the bundled document.
Without --remote the segments address the base document.`,
		Run: func(cmd *cobra.Command, args []string) {
			origin := jsonref.Base
			if cmd.Flags().Changed("remote") {
				origin = jsonref.Remote(remote)
			}
			fmt.Fprintln(cmd.OutOrStdout(), jsonref.Rewrite(jsonref.NewReference(origin, args...)))
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Name of the remote document the segments address")
	return cmd
}
