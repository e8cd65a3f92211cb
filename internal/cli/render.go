package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhalvorsen/cutsheet/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	formats  string // comma-separated output formats
	output   string // output base path (extension is appended per format)
	detailed bool   // include element ids in diagram labels
	noCache  bool   // skip the rendered-artifact cache
}

// newRenderCmd creates the render command, a thin shell over the pipeline.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{formats: pipeline.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render <expression-or-file>",
		Short: "Render a graph as a diagram",
		Long: `Render a graph as a DOT, SVG, or PNG diagram.

The argument may be an inline EGIF expression, a path to a file, or "-"
to read from stdin. Output files are written as <output>.<format>.

Examples:
  cutsheet render '~[ (man *x) ~[ (mortal x) ] ]' -o mortal
  cutsheet render graph.egif --formats dot,svg,png -o out/graph`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c, &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.formats, "formats", opts.formats, "comma-separated formats: dot, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (stdout if empty, single format only)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include element ids in labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the rendered-artifact cache")
	return cmd
}

func runRender(c *cobra.Command, opts *renderOpts, arg string) error {
	ctx := c.Context()
	logger := loggerFromContext(ctx)

	text, err := readExpression(arg)
	if err != nil {
		return err
	}

	formats := strings.Split(opts.formats, ",")
	if opts.output == "" && len(formats) > 1 {
		return fmt.Errorf("multiple formats require --output")
	}

	spin := newSpinner(ctx, "Rendering graph")
	spin.Start()

	runner := pipeline.NewRunner(logger)
	if !opts.noCache {
		runner.Cache = openArtifactCache(logger)
	}
	defer runner.Cache.Close()
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:    text,
		Formats:  formats,
		Detailed: opts.detailed,
		Logger:   logger,
	})
	if err != nil {
		spin.StopWithError("Render failed")
		return err
	}
	spin.Stop()

	if opts.output == "" {
		_, err := os.Stdout.Write(result.Outputs[formats[0]])
		return err
	}

	printSuccess("Rendered %d format(s)", len(formats))
	for _, format := range formats {
		path := opts.output + "." + format
		if err := os.WriteFile(path, result.Outputs[format], 0o644); err != nil {
			return err
		}
		printFile(path)
	}
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, result.Stats.CutCount)
	return nil
}
