package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
	"github.com/mhalvorsen/cutsheet/pkg/eg/transform"
	"github.com/mhalvorsen/cutsheet/pkg/egif"
	"github.com/mhalvorsen/cutsheet/pkg/egjson"
)

// applyOpts holds the command-line flags for the apply command.
type applyOpts struct {
	targets  []string // element ids the rule operates on
	context  string   // context id (sheet if empty)
	fragment string   // EGIF source for insertion
	output   string   // output file path (stdout if empty)
	asEGIF   bool     // emit EGIF instead of JSON
}

// newApplyCmd creates the apply command. Element and context ids come from
// the JSON output of parse.
func newApplyCmd() *cobra.Command {
	var opts applyOpts

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("apply <%s> <graph.json>", strings.Join(transform.RuleNames(), "|")),
		Short: "Apply a transformation rule to a graph",
		Long: `Apply a transformation rule to a graph and write the result.

The first argument is a rule name; the second is a JSON graph file or "-"
for stdin. Element and context ids are the ids from the JSON graph.

Examples:
  cutsheet apply erase graph.json --target e_5f1c...
  cutsheet apply insert graph.json --context c_09ab... --fragment '(mortal *x)'
  cutsheet apply double-cut-remove graph.json --target c_2d44... --egif`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runApply(c, &opts, args[0], args[1])
		},
	}

	cmd.Flags().StringArrayVarP(&opts.targets, "target", "t", nil, "element id (repeatable)")
	cmd.Flags().StringVar(&opts.context, "context", "", "context id (sheet of assertion if empty)")
	cmd.Flags().StringVar(&opts.fragment, "fragment", "", "EGIF fragment for the insertion rule")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.asEGIF, "egif", false, "emit EGIF instead of JSON")
	return cmd
}

func runApply(c *cobra.Command, opts *applyOpts, rule, graphArg string) error {
	logger := loggerFromContext(c.Context())

	g, err := readGraphArg(graphArg)
	if err != nil {
		return err
	}

	req := transform.Request{Rule: rule, Context: eg.ID(opts.context)}
	for _, t := range opts.targets {
		req.Targets = append(req.Targets, eg.ID(t))
	}
	if opts.fragment != "" {
		frag, err := egif.Parse(opts.fragment)
		if err != nil {
			return err
		}
		req.Fragment = frag
	}
	if req.Context == "" {
		req.Context = g.Sheet()
	}

	prog := newProgress(logger)
	result, err := transform.Apply(g, req)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Applied %s", rule))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if opts.asEGIF {
		fmt.Fprintln(out, egif.Generate(result))
	} else if err := egjson.WriteGraph(result, out); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Wrote result")
		printFile(opts.output)
		printStats(result.VertexCount(), result.EdgeCount(), result.CutCount())
	}
	return nil
}
