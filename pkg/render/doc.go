// Package render provides visualization rendering for rack placement
// solutions.
//
// # Overview
//
// This package contains the rendering pipeline that transforms placement
// solutions into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Floor plan drawings (in [floorplan] subpackage)
//   - HTML score dashboards (in [charts] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The floorplan renderer
// builds on these for its PNG and PDF outputs.
//
//	svg := floorplan.RenderSVG(layout, placements, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Floor Plans
//
// The [floorplan] subpackage draws the warehouse floor to scale: the floor
// outline, fixed constraint zones, every placed rack colored by kind, and
// the entrance and loading dock anchors. An optional legend and score
// caption round out the drawing.
//
// # Dashboards
//
// The [charts] subpackage writes a self-contained HTML page with a score
// component bar chart and a rack mix pie chart, built on go-echarts.
//
// [floorplan]: github.com/darkstore/rackplan/pkg/render/floorplan
// [charts]: github.com/darkstore/rackplan/pkg/render/charts
package render
