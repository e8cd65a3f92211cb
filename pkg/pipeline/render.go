package pipeline

import (
	"context"
	"time"

	"github.com/mhalvorsen/cutsheet/pkg/cache"
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	"github.com/mhalvorsen/cutsheet/pkg/egif"
	"github.com/mhalvorsen/cutsheet/pkg/egjson"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
	"github.com/mhalvorsen/cutsheet/pkg/render/diagram"
)

// artifactTTL caps how long cached Graphviz outputs live. The key is a
// content hash, so staleness is impossible; the TTL only bounds disk usage.
const artifactTTL = 30 * 24 * time.Hour

// Render generates the requested output formats for a graph.
func (r *Runner) Render(ctx context.Context, g *eg.Graph, opts Options) (map[string][]byte, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	outputs := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := r.renderFormat(ctx, g, format, opts)
		if err != nil {
			return nil, egerr.Wrap(egerr.GetCode(err), err, "render %s", format)
		}
		outputs[format] = data
	}
	return outputs, nil
}

func (r *Runner) renderFormat(ctx context.Context, g *eg.Graph, format string, opts Options) ([]byte, error) {
	dopts := diagram.Options{Detailed: opts.Detailed}
	switch format {
	case FormatEGIF:
		return []byte(egif.Generate(g) + "\n"), nil
	case FormatJSON:
		return egjson.MarshalGraph(g)
	case FormatDOT:
		return []byte(diagram.ToDOT(g, dopts)), nil
	case FormatSVG:
		return r.renderArtifact(ctx, diagram.ToDOT(g, dopts), format, diagram.RenderSVG)
	case FormatPNG:
		return r.renderArtifact(ctx, diagram.ToDOT(g, dopts), format, diagram.RenderPNG)
	default:
		return nil, egerr.New(egerr.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

// renderArtifact runs Graphviz for one output, consulting the artifact cache
// first. Cache failures are logged and ignored: a broken cache degrades to a
// slower render, never to a failed one.
func (r *Runner) renderArtifact(ctx context.Context, dot, format string, render func(context.Context, string) ([]byte, error)) ([]byte, error) {
	key := cache.ArtifactKey(dot, format)
	if data, ok, err := r.Cache.Get(ctx, key); err != nil {
		r.Logger.Warn("artifact cache read failed", "format", format, "error", err)
	} else if ok {
		r.Logger.Debug("artifact cache hit", "format", format)
		return data, nil
	}

	data, err := render(ctx, dot)
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Set(ctx, key, data, artifactTTL); err != nil {
		r.Logger.Warn("artifact cache write failed", "format", format, "error", err)
	}
	return data, nil
}
