package main

import (
	"fmt"

	"github.com/aretw0/jsonref"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [pointer]",
		Short: "Decode a fragment pointer into segments, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := jsonref.Decode(args[0])
			if err != nil {
				return err
			}
			for _, s := range segments {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
