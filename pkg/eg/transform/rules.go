package transform

import (
	"github.com/mhalvorsen/cutsheet/pkg/eg"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Rule names accepted by [Apply]. These are the spellings used by the CLI
// and the HTTP API.
const (
	RuleErase           = "erase"
	RuleInsert          = "insert"
	RuleIterate         = "iterate"
	RuleDeIterate       = "deiterate"
	RuleDoubleCutAdd    = "double-cut-add"
	RuleDoubleCutRemove = "double-cut-remove"
	RuleVertexAdd       = "vertex-add"
	RuleVertexRemove    = "vertex-remove"
)

// RuleNames lists every rule accepted by [Apply], in display order.
func RuleNames() []string {
	return []string{
		RuleErase, RuleInsert, RuleIterate, RuleDeIterate,
		RuleDoubleCutAdd, RuleDoubleCutRemove, RuleVertexAdd, RuleVertexRemove,
	}
}

// Request is a uniform target specification for [Apply].
// Which fields a rule reads:
//
//	erase              Targets
//	insert             Context, Fragment
//	iterate            Targets, Context
//	deiterate          Targets
//	double-cut-add     Context, Targets (may be empty)
//	double-cut-remove  Targets (exactly one: the outer cut)
//	vertex-add         Context
//	vertex-remove      Targets (exactly one: the vertex)
type Request struct {
	Rule     string
	Targets  []eg.ID
	Context  eg.ID
	Fragment *eg.Graph
}

// Apply dispatches a transformation request to the named rule. It is a
// convenience for shells that receive rule names as data; library callers
// use the typed functions directly.
func Apply(g *eg.Graph, req Request) (*eg.Graph, error) {
	switch req.Rule {
	case RuleErase:
		return Erase(g, Selection(req.Targets))
	case RuleInsert:
		return Insert(g, req.Context, req.Fragment)
	case RuleIterate:
		it, err := Iterate(g, Selection(req.Targets), req.Context)
		if err != nil {
			return nil, err
		}
		return it.Graph, nil
	case RuleDeIterate:
		return DeIterate(g, Selection(req.Targets))
	case RuleDoubleCutAdd:
		dc, err := AddDoubleCut(g, req.Context, req.Targets)
		if err != nil {
			return nil, err
		}
		return dc.Graph, nil
	case RuleDoubleCutRemove:
		if len(req.Targets) != 1 {
			return nil, egerr.New(egerr.ErrCodeInvalidInput,
				"double-cut-remove takes exactly one target, got %d", len(req.Targets))
		}
		return RemoveDoubleCut(g, req.Targets[0])
	case RuleVertexAdd:
		iv, err := AddIsolatedVertex(g, req.Context)
		if err != nil {
			return nil, err
		}
		return iv.Graph, nil
	case RuleVertexRemove:
		if len(req.Targets) != 1 {
			return nil, egerr.New(egerr.ErrCodeInvalidInput,
				"vertex-remove takes exactly one target, got %d", len(req.Targets))
		}
		return RemoveIsolatedVertex(g, req.Targets[0])
	default:
		return nil, egerr.New(egerr.ErrCodeInvalidRule, "unknown rule %q", req.Rule)
	}
}
