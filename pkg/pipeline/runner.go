package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhalvorsen/cutsheet/pkg/cache"
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	"github.com/mhalvorsen/cutsheet/pkg/eg/transform"
	"github.com/mhalvorsen/cutsheet/pkg/egif"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger and the artifact cache - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Logger *log.Logger

	// Cache holds rendered SVG/PNG artifacts keyed by content hash.
	// Defaults to a no-op cache.
	Cache cache.Cache
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, Cache: cache.NewNullCache()}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the final graph after all transform steps.
	Graph *eg.Graph

	// Outputs contains rendered outputs keyed by format.
	Outputs map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int
	EdgeCount   int
	CutCount    int

	ParseTime     time.Duration
	TransformTime time.Duration
	RenderTime    time.Duration
}

// Execute runs the complete parse → transform → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, egerr.Wrap(egerr.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	g, err := egif.Parse(opts.Input)
	if err != nil {
		return nil, err
	}
	result.Stats.ParseTime = time.Since(parseStart)

	opts.Logger.Info("parsed graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"cuts", g.CutCount(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Transform
	transformStart := time.Now()
	g, err = r.Transform(ctx, g, opts.Steps)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.TransformTime = time.Since(transformStart)
	result.Stats.VertexCount = g.VertexCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.CutCount = g.CutCount()

	if len(opts.Steps) > 0 {
		opts.Logger.Info("applied transformations",
			"steps", len(opts.Steps),
			"duration", result.Stats.TransformTime)
	}

	// Stage 3: Render
	renderStart := time.Now()
	outputs, err := r.Render(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Outputs = outputs
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Transform applies a sequence of steps to a graph, producing a new graph
// at each step. The input graph is never modified.
func (r *Runner) Transform(ctx context.Context, g *eg.Graph, steps []Step) (*eg.Graph, error) {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		req, err := buildRequest(step)
		if err != nil {
			return nil, egerr.Wrap(egerr.GetCode(err), err, "step %d (%s)", i+1, step.Rule)
		}
		if req.Context == "" {
			req.Context = g.Sheet()
		}
		next, err := transform.Apply(g, req)
		if err != nil {
			return nil, egerr.Wrap(egerr.GetCode(err), err, "step %d (%s)", i+1, step.Rule)
		}
		r.Logger.Debug("applied rule",
			"step", i+1,
			"rule", step.Rule,
			"vertices", next.VertexCount(),
			"edges", next.EdgeCount(),
			"cuts", next.CutCount())
		g = next
	}
	return g, nil
}

// buildRequest converts a serialized step into a typed transform request,
// parsing the EGIF fragment for insertion steps.
func buildRequest(step Step) (transform.Request, error) {
	req := transform.Request{Rule: step.Rule}
	for _, t := range step.Targets {
		req.Targets = append(req.Targets, eg.ID(t))
	}
	req.Context = eg.ID(step.Context)
	if step.Fragment != "" {
		frag, err := egif.Parse(step.Fragment)
		if err != nil {
			return transform.Request{}, err
		}
		req.Fragment = frag
	}
	return req, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
