package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/jsonref"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of jsonref",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jsonref version %s\n", strings.TrimSpace(jsonref.Version))
		},
	}
}
