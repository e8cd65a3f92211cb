// Package corpus loads TOML-indexed collections of named EGIF examples.
//
// A corpus file holds a list of graphs, each with a unique name, an EGIF
// source string, and optional display metadata:
//
//	title = "Classic examples"
//
//	[[graph]]
//	name  = "mortal"
//	title = "Every man is mortal"
//	egif  = "~[ (man *x) ~[ (mortal x) ] ]"
//
// Entries are parsed on demand; Lint parses, validates, and round-trips
// every entry, which is how the shipped corpora are kept honest in CI.
package corpus

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
	"github.com/mhalvorsen/cutsheet/pkg/egif"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Entry is one named graph in a corpus.
type Entry struct {
	Name  string `toml:"name"`
	Title string `toml:"title"`
	EGIF  string `toml:"egif"`
	Notes string `toml:"notes"`
}

// Parse parses the entry's EGIF source.
func (e *Entry) Parse() (*eg.Graph, error) {
	return egif.Parse(e.EGIF)
}

// Corpus is a loaded corpus file.
type Corpus struct {
	Title   string  `toml:"title"`
	Entries []Entry `toml:"graph"`
}

// Load reads and decodes a corpus file, checking that every entry has a
// unique non-empty name and a non-empty EGIF source. Entry sources are
// not parsed here; use [Corpus.Lint] or [Entry.Parse].
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	var c Corpus
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, egerr.Wrap(egerr.ErrCodeInvalidFormat, err, "decode corpus %s", path)
	}

	seen := map[string]bool{}
	for i, e := range c.Entries {
		if e.Name == "" {
			return nil, egerr.New(egerr.ErrCodeInvalidFormat, "corpus entry %d has no name", i)
		}
		if e.EGIF == "" {
			return nil, egerr.New(egerr.ErrCodeInvalidFormat, "corpus entry %q has no egif source", e.Name)
		}
		if seen[e.Name] {
			return nil, egerr.New(egerr.ErrCodeInvalidFormat, "duplicate corpus entry name %q", e.Name)
		}
		seen[e.Name] = true
	}
	return &c, nil
}

// Names returns the entry names in file order.
func (c *Corpus) Names() []string {
	out := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Name
	}
	return out
}

// Get returns the entry with the given name.
func (c *Corpus) Get(name string) (*Entry, error) {
	for i := range c.Entries {
		if c.Entries[i].Name == name {
			return &c.Entries[i], nil
		}
	}
	return nil, egerr.New(egerr.ErrCodeNotFound, "corpus entry %q not found", name)
}

// Issue is one lint finding for a corpus entry.
type Issue struct {
	Name string
	Err  error
}

// Lint parses every entry, validates the resulting graph, and checks that
// the generated EGIF reparses to a structurally equivalent graph. Returns
// one issue per failing entry; an empty slice means the corpus is clean.
func (c *Corpus) Lint() []Issue {
	var issues []Issue
	for i := range c.Entries {
		e := &c.Entries[i]
		if err := lintEntry(e); err != nil {
			issues = append(issues, Issue{Name: e.Name, Err: err})
		}
	}
	return issues
}

func lintEntry(e *Entry) error {
	g, err := e.Parse()
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("invariants: %w", err)
	}

	text := egif.Generate(g)
	back, err := egif.Parse(text)
	if err != nil {
		return fmt.Errorf("round-trip reparse of %q: %w", text, err)
	}
	if !equivalent(g, back) {
		return egerr.New(egerr.ErrCodeInternal,
			"round-trip mismatch: %q regenerated as %q", e.EGIF, text)
	}
	return nil
}

// equivalent compares canonical forms. Generate assigns variable names in
// emission order and walks areas in insertion order, so two graphs
// serialize identically exactly when their structure and ligature wiring
// agree; a round trip that rewired arguments between same-named relations
// produces different bound occurrences and fails here.
func equivalent(a, b *eg.Graph) bool {
	return egif.Generate(a) == egif.Generate(b)
}
