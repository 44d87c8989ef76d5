// Package floorplan renders a placed warehouse layout as a scaled
// top-down SVG drawing with kind-colored racks, obstacle zones, anchor
// markers and an optional legend.
package floorplan

import (
	"bytes"
	"fmt"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/plan"
)

const (
	defaultScale = 30.0
	margin       = 40.0
	legendWidth  = 170.0
)

var kindFills = map[catalog.Kind]string{
	catalog.KindStandard:    "#4e79a7",
	catalog.KindHighDensity: "#f28e2b",
	catalog.KindFreezer:     "#76b7b2",
	catalog.KindBulk:        "#af7aa1",
}

var constraintFills = map[catalog.ConstraintKind]string{
	catalog.ConstraintOffice:  "#d9d9d9",
	catalog.ConstraintExit:    "#e15759",
	catalog.ConstraintUtility: "#bab0ac",
	catalog.ConstraintPillar:  "#59564f",
}

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale  float64
	legend bool
	title  string
	score  float64
	labels bool
}

// WithScale sets pixels per meter (default 30).
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithLegend adds a rack kind legend to the right of the floor.
func WithLegend() SVGOption { return func(r *svgRenderer) { r.legend = true } }

// WithTitle sets the caption drawn above the floor.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithScore includes the composite score in the caption.
func WithScore(s float64) SVGOption { return func(r *svgRenderer) { r.score = s } }

// WithLabels draws rack IDs inside footprints large enough to hold them.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws the layout and its placements as an SVG document.
func RenderSVG(layout catalog.Layout, placements []plan.Placement, opts ...SVGOption) []byte {
	r := svgRenderer{scale: defaultScale, labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	floorW := layout.Floor.Width * r.scale
	floorH := layout.Floor.Height * r.scale
	totalW := floorW + 2*margin
	if r.legend {
		totalW += legendWidth
	}
	totalH := floorH + 2*margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		totalW, totalH, totalW, totalH)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#fafaf8"/>`+"\n", totalW, totalH)

	r.renderCaption(&buf, totalW)
	r.renderFloor(&buf, floorW, floorH)
	r.renderConstraints(&buf, layout)
	r.renderRacks(&buf, placements)
	r.renderAnchors(&buf, layout)
	if r.legend {
		r.renderLegend(&buf, floorW)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// px maps a floor coordinate in meters to canvas pixels.
func (r *svgRenderer) px(x, y float64) (float64, float64) {
	return margin + x*r.scale, margin + y*r.scale
}

func (r *svgRenderer) renderCaption(buf *bytes.Buffer, totalW float64) {
	caption := r.title
	if r.score > 0 {
		if caption != "" {
			caption += " "
		}
		caption += fmt.Sprintf("(score %.1f)", r.score)
	}
	if caption == "" {
		return
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="16" fill="#333">%s</text>`+"\n",
		totalW/2, margin*0.6, escapeXML(caption))
}

func (r *svgRenderer) renderFloor(buf *bytes.Buffer, floorW, floorH float64) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#ffffff" stroke="#333" stroke-width="2"/>`+"\n",
		margin, margin, floorW, floorH)
}

func (r *svgRenderer) renderConstraints(buf *bytes.Buffer, layout catalog.Layout) {
	for _, c := range layout.Constraints {
		x, y := r.px(c.Pos.X, c.Pos.Y)
		fill, ok := constraintFills[c.Kind]
		if !ok {
			fill = "#cccccc"
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#666" stroke-width="1" opacity="0.8"/>`+"\n",
			x, y, c.Dims.Width*r.scale, c.Dims.Height*r.scale, fill)
		if c.Dims.Width*r.scale > 40 {
			fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="11" fill="#444">%s</text>`+"\n",
				x+c.Dims.Width*r.scale/2, y+c.Dims.Height*r.scale/2+4, escapeXML(c.Name))
		}
	}
}

func (r *svgRenderer) renderRacks(buf *bytes.Buffer, placements []plan.Placement) {
	for _, p := range placements {
		x, y := r.px(p.Pos.X, p.Pos.Y)
		w := p.Rack.Dims.Width * r.scale
		h := p.Rack.Dims.Height * r.scale
		fill, ok := kindFills[p.Rack.Kind]
		if !ok {
			fill = "#888888"
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#222" stroke-width="1"/>`+"\n",
			x, y, w, h, fill)
		if r.labels && w > 34 && h > 14 {
			fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="9" fill="#fff">%s</text>`+"\n",
				x+w/2, y+h/2+3, escapeXML(p.Rack.ID))
		}
	}
}

func (r *svgRenderer) renderAnchors(buf *bytes.Buffer, layout catalog.Layout) {
	ex, ey := r.px(layout.Entrance.X, layout.Entrance.Y)
	dx, dy := r.px(layout.Dock.X, layout.Dock.Y)
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="7" fill="#2ca02c" stroke="#fff" stroke-width="2"/>`+"\n", ex, ey)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#2ca02c">entrance</text>`+"\n", ex+10, ey+4)
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="7" fill="#1f77b4" stroke="#fff" stroke-width="2"/>`+"\n", dx, dy)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#1f77b4">dock</text>`+"\n", dx+10, dy+4)
}

func (r *svgRenderer) renderLegend(buf *bytes.Buffer, floorW float64) {
	lx := margin + floorW + 24
	ly := margin
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="13" fill="#333">Rack kinds</text>`+"\n", lx, ly)
	for i, k := range catalog.Kinds() {
		y := ly + 16 + float64(i)*22
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="14" height="14" fill="%s" stroke="#222"/>`+"\n", lx, y, kindFills[k])
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" fill="#333">%s</text>`+"\n", lx+20, y+11, k.String())
	}
}
