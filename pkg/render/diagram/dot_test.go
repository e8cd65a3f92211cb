package diagram

import (
	"strings"
	"testing"

	"github.com/mhalvorsen/cutsheet/pkg/egif"
)

func TestToDOT(t *testing.T) {
	g, err := egif.Parse(`(man "Socrates") ~[ (mortal "Socrates") ]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	dot := ToDOT(g, Options{})
	if !strings.HasPrefix(dot, "graph EG {") {
		t.Fatalf("output does not open a graph: %q", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("output is not closed")
	}
	if got := strings.Count(dot, "subgraph \"cluster_"); got != 1 {
		t.Errorf("clusters = %d, want 1 per cut", got)
	}
	if !strings.Contains(dot, `label="Socrates"`) {
		t.Error("constant label missing")
	}
	if !strings.Contains(dot, `label="man"`) || !strings.Contains(dot, `label="mortal"`) {
		t.Error("relation labels missing")
	}
	// One connection line per argument occurrence.
	if got := strings.Count(dot, " -- "); got != 2 {
		t.Errorf("edge lines = %d, want 2", got)
	}
}

func TestToDOTDetailedIncludesIDs(t *testing.T) {
	g, err := egif.Parse("(p *x)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	plain := ToDOT(g, Options{})
	detailed := ToDOT(g, Options{Detailed: true})
	if !strings.Contains(detailed, "xlabel=") {
		t.Error("detailed output has no vertex id labels")
	}
	if strings.Contains(plain, "xlabel=") {
		t.Error("plain output leaks vertex id labels")
	}
}

func TestToDOTNestedCuts(t *testing.T) {
	g, err := egif.Parse("~[ ~[ (p *x) ] ]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	dot := ToDOT(g, Options{})
	if got := strings.Count(dot, "subgraph \"cluster_"); got != 2 {
		t.Errorf("clusters = %d, want 2", got)
	}
	// The inner cluster is indented deeper than the outer one.
	if !strings.Contains(dot, "    subgraph") {
		t.Error("inner cluster is not nested")
	}
}
