package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darkstore/rackplan/pkg/export"
	"github.com/darkstore/rackplan/pkg/pipeline"
	"github.com/darkstore/rackplan/pkg/plan"
	"github.com/darkstore/rackplan/pkg/render/charts"
	"github.com/darkstore/rackplan/pkg/render/floorplan"
	"github.com/darkstore/rackplan/pkg/report"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats
	title   string   // caption for SVG and dashboard output
	scale   float64  // pixels per meter for SVG output
	legend  bool     // include the rack kind legend
}

// newRenderCmd creates the render command, which re-renders a saved
// solution document in other formats without re-running the search.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale, legend: true}

	cmd := &cobra.Command{
		Use:   "render <solution.json>",
		Short: "Render a saved solution to floor plans and dashboards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, html, xlsx, report (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "caption for the floor plan")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "pixels per meter")
	cmd.Flags().BoolVar(&opts.legend, "legend", opts.legend, "include a rack kind legend")

	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOpts) error {
	track := newProgress(loggerFromContext(ctx))

	doc, err := plan.ReadDocumentFile(path)
	if err != nil {
		return err
	}
	layout, err := doc.ToLayout()
	if err != nil {
		return err
	}
	sol, err := doc.ToSolution()
	if err != nil {
		return err
	}

	title := opts.title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	svgOpts := []floorplan.SVGOption{
		floorplan.WithScale(opts.scale),
		floorplan.WithTitle(title),
		floorplan.WithScore(sol.Score),
	}
	if opts.legend {
		svgOpts = append(svgOpts, floorplan.WithLegend())
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}
	single := len(opts.formats) == 1 && opts.output != ""

	for _, format := range opts.formats {
		var data []byte
		switch format {
		case pipeline.FormatSVG:
			data = floorplan.RenderSVG(layout, sol.Placements, svgOpts...)
		case pipeline.FormatPNG:
			data, err = floorplan.RenderPNG(layout, sol.Placements, floorplan.WithPNGSVGOptions(svgOpts...))
		case pipeline.FormatPDF:
			data, err = floorplan.RenderPDF(layout, sol.Placements, svgOpts...)
		case pipeline.FormatJSON:
			data, err = plan.MarshalDocument(doc)
		case pipeline.FormatHTML:
			var buf bytes.Buffer
			err = charts.WriteDashboard(&buf, sol, title)
			data = buf.Bytes()
		case pipeline.FormatXLSX:
			data, err = export.WorkbookBytes(sol)
		case pipeline.FormatReport:
			data = []byte(report.Generate(sol, layout))
		}
		if err != nil {
			return err
		}

		out := base
		if !single {
			out = strings.TrimSuffix(base, filepath.Ext(base)) + "." + artifactExt(format)
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		printFile(out)
	}

	track.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))
	return nil
}
