package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/pipeline"
)

// optimizeOpts holds the command-line flags for the optimize command.
type optimizeOpts struct {
	output     string   // output file (single format) or base path (multiple)
	formats    []string // output formats
	iterations int      // override for the scenario's max_iterations
	aisleWidth float64  // override for the scenario's min_aisle_width
	legend     bool     // include the rack kind legend in SVG output
	sample     bool     // use the built-in reference scenario
	noCache    bool     // disable the solution cache
	refresh    bool     // recompute even when a cached solution exists
}

// newOptimizeCmd creates the optimize command, which runs the placement
// search on a scenario and writes the rendered artifacts.
func newOptimizeCmd() *cobra.Command {
	var formatsStr string
	opts := optimizeOpts{legend: true}

	cmd := &cobra.Command{
		Use:   "optimize [scenario.toml]",
		Short: "Optimize rack placement for a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}

			scenario, err := resolveScenario(args, opts.sample)
			if err != nil {
				return err
			}
			return runOptimize(cmd.Context(), scenario, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, html, xlsx, report (comma-separated)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 0, "override the scenario's max_iterations")
	cmd.Flags().Float64Var(&opts.aisleWidth, "aisle", 0, "override the scenario's min_aisle_width in meters")
	cmd.Flags().BoolVar(&opts.legend, "legend", opts.legend, "include a rack kind legend in SVG output")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "use the built-in reference scenario")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solution cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached solution exists")

	return cmd
}

// resolveScenario loads the scenario from the positional argument, falls
// back to the built-in sample, or offers an interactive picker.
func resolveScenario(args []string, sample bool) (catalog.Scenario, error) {
	if sample {
		return catalog.SampleScenario(), nil
	}
	if len(args) == 1 {
		return catalog.LoadScenario(args[0])
	}

	path, err := pickScenario(".")
	if err != nil {
		return catalog.Scenario{}, err
	}
	if path == "" {
		printInfo("No scenario selected, using the built-in reference scenario")
		return catalog.SampleScenario(), nil
	}
	return catalog.LoadScenario(path)
}

func runOptimize(ctx context.Context, scenario catalog.Scenario, opts *optimizeOpts) error {
	logger := loggerFromContext(ctx)

	if opts.iterations > 0 {
		scenario.Optimizer.MaxIterations = opts.iterations
	}
	if opts.aisleWidth > 0 {
		scenario.Optimizer.MinAisleWidth = opts.aisleWidth
	}

	c, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(c, logger)
	defer runner.Close()

	spin := newSpinnerWithContext(ctx, "Optimizing rack placement")
	spin.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Scenario: scenario,
		Formats:  opts.formats,
		Legend:   opts.legend,
		Refresh:  opts.refresh,
		Logger:   logger,
	})
	if err != nil {
		spin.StopWithError("Optimization failed")
		return err
	}
	spin.StopWithSuccess(fmt.Sprintf("Optimized %q", scenario.Name))
	printStats(result.Stats.PlacedCount, result.Stats.RackCount, result.Solution.Score, result.CacheInfo.OptimizeHit)

	if result.Stats.PlacedCount < result.Stats.RackCount {
		printWarning("%d racks could not be placed", result.Stats.RackCount-result.Stats.PlacedCount)
	}

	paths, err := writeArtifacts(result.Artifacts, opts.formats, opts.output, scenario.Name)
	if err != nil {
		return err
	}
	for _, p := range paths {
		printFile(p)
	}

	if jsonPath, ok := paths[pipeline.FormatJSON]; ok {
		printNewline()
		printNextStep("Inspect the score breakdown", "rackplan score "+jsonPath)
	}
	return nil
}

// writeArtifacts writes each rendered artifact next to the requested
// output path, deriving filenames from the scenario name when needed.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, name string) (map[string]string, error) {
	base := output
	if base == "" {
		base = strings.ReplaceAll(name, " ", "_")
		if base == "" {
			base = appName
		}
	}
	// A single format with an explicit output keeps the exact path.
	single := len(formats) == 1 && output != ""

	paths := make(map[string]string, len(formats))
	for _, format := range formats {
		path := base
		if !single {
			path = strings.TrimSuffix(base, filepath.Ext(base)) + "." + artifactExt(format)
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths[format] = path
	}
	return paths, nil
}
