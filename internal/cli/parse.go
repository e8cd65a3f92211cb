package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhalvorsen/cutsheet/pkg/egif"
	"github.com/mhalvorsen/cutsheet/pkg/egjson"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output string // output file path (stdout if empty)
	quiet  bool   // suppress the stats line
}

// newParseCmd creates the parse command. It reads an EGIF expression from
// the argument, a file, or stdin, and writes the graph as JSON.
func newParseCmd() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <expression-or-file>",
		Short: "Parse an EGIF expression into a JSON graph",
		Long: `Parse an EGIF expression into a JSON graph.

The argument may be an inline expression, a path to a file, or "-" to read
from stdin.

Examples:
  cutsheet parse '(Human *x)'
  cutsheet parse graphs/mortal.egif -o mortal.json
  echo '~[ (man *x) ~[ (mortal x) ] ]' | cutsheet parse -`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runParse(c, &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the stats line")
	return cmd
}

func runParse(c *cobra.Command, opts *parseOpts, arg string) error {
	logger := loggerFromContext(c.Context())

	text, err := readExpression(arg)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	g, err := egif.Parse(text)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d vertices, %d relations, %d cuts",
		g.VertexCount(), g.EdgeCount(), g.CutCount()))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := egjson.WriteGraph(g, out); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Wrote graph")
		printFile(opts.output)
	}
	if !opts.quiet && opts.output != "" {
		printStats(g.VertexCount(), g.EdgeCount(), g.CutCount())
	}
	return nil
}
