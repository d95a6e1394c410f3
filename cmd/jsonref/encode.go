package main

import (
	"fmt"

	"github.com/aretw0/jsonref"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [segment...]",
		Short: "Encode path segments as a fragment pointer",
		Long:  `Encode path segments as a fragment pointer. No segments encodes the root, "#".`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), jsonref.Encode(args...))
		},
	}
}
