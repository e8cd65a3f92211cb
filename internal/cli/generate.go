package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
	"github.com/mhalvorsen/cutsheet/pkg/egif"
	"github.com/mhalvorsen/cutsheet/pkg/egjson"
)

// newGenerateCmd creates the generate command: the inverse of parse.
func newGenerateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate <graph.json>",
		Short: "Generate the EGIF expression for a JSON graph",
		Long: `Generate the EGIF expression for a JSON graph.

The argument is a path to a JSON graph file, or "-" to read from stdin.

Examples:
  cutsheet generate mortal.json
  cutsheet parse '(Human *x)' | cutsheet generate -`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			g, err := readGraphArg(args[0])
			if err != nil {
				return err
			}
			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()
			fmt.Fprintln(out, egif.Generate(g))
			if output != "" {
				printSuccess("Wrote expression")
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// readGraphArg reads a JSON graph from a file path or stdin ("-").
func readGraphArg(arg string) (*eg.Graph, error) {
	if arg == "-" {
		return egjson.ReadGraph(io.Reader(os.Stdin))
	}
	return egjson.ReadGraphFile(arg)
}
