package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/jsonref"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	strict  bool
	logger  *slog.Logger
}

func (g *globalFlags) loadOptions() []jsonref.Option {
	return []jsonref.Option{
		jsonref.WithStrict(g.strict),
		jsonref.WithLogger(g.logger),
	}
}

// newRootCmd builds the command tree. The logger is built on flags before
// any subcommand runs.
func newRootCmd() (*cobra.Command, *globalFlags) {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "jsonref",
		Short: "Rewrite and resolve JSON references for bundled documents",
		Long: `jsonref computes where a $ref lands once remote documents are bundled
into a base document, and resolves references against the documents they
point into.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			flags.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Keep numbers as exact decimal strings")

	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newRewriteCmd(),
		newTraverseCmd(flags),
		newResolveCmd(flags),
		newVersionCmd(),
	)
	return cmd, flags
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	cmd, flags := newRootCmd()

	configure := cmd.PersistentPreRun
	cmd.PersistentPreRun = func(c *cobra.Command, args []string) {
		configure(c, args)
		slog.SetDefault(flags.logger)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
