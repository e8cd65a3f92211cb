// Package pipeline provides the core processing pipeline for Cutsheet.
//
// This package implements the complete parse → transform → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read an EGIF expression into an immutable graph
//  2. Transform: Apply a sequence of transformation rule steps
//  3. Render: Generate output in various formats (EGIF, JSON, DOT, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "~[ (man *x) ~[ (mortal x) ] ]",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Outputs["svg"]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

// Format constants for output formats.
const (
	FormatEGIF = "egif"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatEGIF: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return egerr.New(egerr.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: egif, json, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Step is one transformation applied during the transform stage.
// This struct supports JSON serialization for API requests.
type Step struct {
	// Rule is a rule name from transform.RuleNames.
	Rule string `json:"rule"`

	// Targets are element ids the rule operates on.
	Targets []string `json:"targets,omitempty"`

	// Context is the context id for rules that insert into a context.
	// Empty means the sheet of assertion.
	Context string `json:"context,omitempty"`

	// Fragment is EGIF source for the insertion rule.
	Fragment string `json:"fragment,omitempty"`
}

// Options contains all configuration for the processing pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input is the EGIF expression to parse.
	Input string `json:"input"`

	// Steps are transformations applied in order after parsing.
	Steps []Step `json:"steps,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return egerr.New(egerr.ErrCodeInvalidInput, "input is required")
	}
	for _, s := range o.Steps {
		if s.Rule == "" {
			return egerr.New(egerr.ErrCodeInvalidRule, "step is missing a rule name")
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatEGIF}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
