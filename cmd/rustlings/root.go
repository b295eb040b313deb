package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rustlings",
		Short:         "Small exercises to get you used to reading and writing Rust code",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("root", ".", "Directory in which the rustlings/ workspace is created")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log every step to stderr")

	cmd.AddCommand(
		newInitCmd(),
	)

	return cmd
}

// newLogger builds the stderr logger; --verbose lowers the level to debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
}
