// Command goslha is a CLI tool for inspecting SLHA files.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/golangslha/goslha"
	"github.com/golangslha/goslha/slha"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:           "goslha",
	Short:         "Parse and inspect SUSY Les Houches Accord (SLHA) files",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"enable debug logging (-vv for trace)")
	rootCmd.AddCommand(blocksCmd, decaysCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseFile reads and parses one SLHA file, honoring the verbosity flags.
func parseFile(path string) (*slha.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var opts []goslha.Option
	if verbosity > 0 {
		level := slog.LevelDebug
		if verbosity > 1 {
			level = goslha.LevelTrace
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		opts = append(opts, goslha.WithLogger(slog.New(handler)))
	}
	return goslha.Parse(string(content), opts...)
}
