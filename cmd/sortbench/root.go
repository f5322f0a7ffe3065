package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const flagVerbose = "verbose"

// newRootCommand builds the command tree. The returned function yields the
// logger configured by the persistent flags, or a no-op logger before the
// flags have been parsed.
func newRootCommand() (*cobra.Command, func() *zap.Logger) {
	logger := zap.NewNop()
	rootCmd := &cobra.Command{
		Use:              "sortbench",
		Short:            "sortbench times in-place partition sorts on generated inputs.",
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(flagVerbose)
			if err != nil {
				return errors.WithStack(err)
			}
			l, err := newLogger(verbose)
			if err != nil {
				return errors.Wrap(err, "init logger")
			}
			logger = l
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "log every run at debug level")

	get := func() *zap.Logger { return logger }
	rootCmd.AddCommand(
		newRunCommand(get),
		newListCommand(),
	)
	return rootCmd, get
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
