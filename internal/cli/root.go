package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhalvorsen/cutsheet/pkg/buildinfo"
)

// Execute runs the cutsheet CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cutsheet",
		Short:        "Cutsheet works with Peirce's existential graphs",
		Long: `Cutsheet parses, transforms, and renders existential graphs.

Graphs are read and written in EGIF (Existential Graph Interchange Format)
and can be manipulated with Peirce's transformation rules: erasure,
insertion, iteration, de-iteration, double cuts, and isolated vertices.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newParseCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newApplyCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCorpusCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
