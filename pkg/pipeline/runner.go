package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/darkstore/rackplan/pkg/cache"
	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/export"
	"github.com/darkstore/rackplan/pkg/observability"
	"github.com/darkstore/rackplan/pkg/plan"
	"github.com/darkstore/rackplan/pkg/render/charts"
	"github.com/darkstore/rackplan/pkg/render/floorplan"
	"github.com/darkstore/rackplan/pkg/report"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache, catalog and logger. It
// does not store run results, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache   cache.Cache
	Catalog catalog.Catalog
	Logger  *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Catalog: catalog.Default(),
		Logger:  logger,
	}
}

// Execute runs the complete optimize → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Layout:    opts.Scenario.Layout(),
		Artifacts: make(map[string][]byte),
	}

	optimizeStart := time.Now()
	sol, hit, err := r.OptimizeWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Solution = sol
	result.Stats.OptimizeTime = time.Since(optimizeStart)
	result.Stats.PlacedCount = len(sol.Placements)
	result.CacheInfo.OptimizeHit = hit

	racks, err := opts.Scenario.BuildRacks(r.Catalog)
	if err != nil {
		return nil, err
	}
	result.Stats.RackCount = len(racks)

	opts.Logger.Info("optimized placement",
		"racks", result.Stats.RackCount,
		"placed", result.Stats.PlacedCount,
		"score", sol.Score,
		"cached", hit,
		"duration", result.Stats.OptimizeTime)

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, sol, result.Layout, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// OptimizeWithCacheInfo runs the placement search with caching and
// reports whether the solution came from cache.
func (r *Runner) OptimizeWithCacheInfo(ctx context.Context, opts Options) (plan.Solution, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return plan.Solution{}, false, err
	}
	r.applyLogger(&opts)

	layout := opts.Scenario.Layout()
	opt := opts.optimizer(r.Catalog)
	key := cache.SolutionKey(opts.Scenario, opt.MinAisleWidth(), opts.Scenario.Optimizer.MaxIterations)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if doc, err := plan.UnmarshalDocument(data); err == nil {
				if sol, err := doc.ToSolution(); err == nil {
					observability.Cache().OnCacheHit(ctx, "solution")
					return sol, true, nil
				}
			}
		}
		observability.Cache().OnCacheMiss(ctx, "solution")
	}

	racks, err := opts.Scenario.BuildRacks(r.Catalog)
	if err != nil {
		return plan.Solution{}, false, err
	}

	observability.Pipeline().OnOptimizeStart(ctx, opts.Scenario.Name, len(racks))
	start := time.Now()
	sol, err := opt.Optimize(layout, racks, opts.Scenario.Optimizer.MaxIterations)
	observability.Pipeline().OnOptimizeComplete(ctx, opts.Scenario.Name,
		len(sol.Placements), sol.Score, time.Since(start), err)
	if err != nil {
		return plan.Solution{}, false, err
	}

	doc := plan.NewDocument(sol, layout)
	if data, err := plan.MarshalDocument(doc); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLSolution); err == nil {
			observability.Cache().OnCacheSet(ctx, "solution", len(data))
		}
	}
	return sol, false, nil
}

// Optimize is a convenience wrapper that discards the cache hit info.
func (r *Runner) Optimize(ctx context.Context, opts Options) (plan.Solution, error) {
	sol, _, err := r.OptimizeWithCacheInfo(ctx, opts)
	return sol, err
}

// Render produces the requested artifact formats for a solution.
func (r *Runner) Render(ctx context.Context, sol plan.Solution, layout catalog.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts := make(map[string][]byte, len(opts.Formats))
	var renderErr error

	for _, format := range opts.Formats {
		data, err := r.renderFormat(sol, layout, opts, format)
		if err != nil {
			renderErr = err
			break
		}
		artifacts[format] = data
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), renderErr)
	if renderErr != nil {
		return nil, renderErr
	}
	return artifacts, nil
}

func (r *Runner) renderFormat(sol plan.Solution, layout catalog.Layout, opts Options, format string) ([]byte, error) {
	svgOpts := []floorplan.SVGOption{
		floorplan.WithScale(opts.Scale),
		floorplan.WithTitle(opts.Title),
		floorplan.WithScore(sol.Score),
	}
	if opts.Legend {
		svgOpts = append(svgOpts, floorplan.WithLegend())
	}

	switch format {
	case FormatSVG:
		return floorplan.RenderSVG(layout, sol.Placements, svgOpts...), nil
	case FormatPNG:
		return floorplan.RenderPNG(layout, sol.Placements, floorplan.WithPNGSVGOptions(svgOpts...))
	case FormatPDF:
		return floorplan.RenderPDF(layout, sol.Placements, svgOpts...)
	case FormatJSON:
		return plan.MarshalDocument(plan.NewDocument(sol, layout))
	case FormatHTML:
		var buf bytes.Buffer
		if err := charts.WriteDashboard(&buf, sol, opts.Title); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatXLSX:
		return export.WorkbookBytes(sol)
	case FormatReport:
		return []byte(report.Generate(sol, layout)), nil
	default:
		return nil, ValidateFormat(format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
