// Package pipeline provides the core optimize → render pipeline.
//
// The pipeline takes a scenario, runs the placement search, scores the
// result and renders the requested artifact formats. CLI and server both
// go through this package so caching and defaults behave identically at
// every entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Scenario: scenario,
//	    Formats:  []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/placement"
	"github.com/darkstore/rackplan/pkg/plan"
	"github.com/darkstore/rackplan/pkg/scoring"
)

// Default render parameters.
const (
	// DefaultScale is the SVG scale in pixels per meter.
	DefaultScale = 30.0

	// DefaultTitle is used when the scenario has no name.
	DefaultTitle = "Rack placement"
)

// Format constants for output formats.
const (
	FormatSVG    = "svg"
	FormatPNG    = "png"
	FormatPDF    = "pdf"
	FormatJSON   = "json"
	FormatHTML   = "html"
	FormatXLSX   = "xlsx"
	FormatReport = "report"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:    true,
	FormatPNG:    true,
	FormatPDF:    true,
	FormatJSON:   true,
	FormatHTML:   true,
	FormatXLSX:   true,
	FormatReport: true,
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Scenario describes the floor, rack mix and search knobs.
	Scenario catalog.Scenario `json:"scenario"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Title   string   `json:"title,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Legend  bool     `json:"legend,omitempty"`

	// Refresh bypasses the solution cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Solution is the scored placement result.
	Solution plan.Solution

	// Layout is the floor layout the solution was computed against.
	Layout catalog.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks whether the solution came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RackCount    int
	PlacedCount  int
	OptimizeTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	OptimizeHit bool // solution came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, html, xlsx, report)", format)
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

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Scenario.Layout().Validate(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Title == "" {
		o.Title = o.Scenario.Name
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// optimizer builds the placement optimizer configured by the scenario.
func (o *Options) optimizer(cat catalog.Catalog) *placement.Optimizer {
	popts := []placement.Option{placement.WithCatalog(cat)}
	if o.Scenario.Optimizer.MinAisleWidth > 0 {
		popts = append(popts, placement.WithMinAisleWidth(o.Scenario.Optimizer.MinAisleWidth))
	}
	if o.Scenario.Optimizer.IdealAisleRatio > 0 {
		popts = append(popts, placement.WithScoring(
			scoring.NewEngine(scoring.WithIdealAisleRatio(o.Scenario.Optimizer.IdealAisleRatio))))
	}
	return placement.New(popts...)
}
