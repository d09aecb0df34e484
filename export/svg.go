package export

import (
	"fmt"
	"math"
	"strings"

	"cabling/core"
)

const svgMargin = 40.0

// SVGExporter renders a routed document as a static SVG drawing: channels as
// dashed guide lines, nodes as labelled rectangles and cables as polylines
// with small markers at both connection points.
type SVGExporter struct{}

// NewSVGExporter creates a new SVG exporter.
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{}
}

// Export converts a document to SVG.
func (e *SVGExporter) Export(doc *Document) (string, error) {
	minX, minY, maxX, maxY := documentBounds(doc)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f">`+"\n",
		minX-svgMargin, minY-svgMargin,
		maxX-minX+2*svgMargin, maxY-minY+2*svgMargin)

	for _, ch := range doc.Channels {
		x1, y1, x2, y2 := ch.Position, ch.Start, ch.Position, ch.End
		if ch.Orientation == core.Horizontal {
			x1, y1, x2, y2 = ch.Start, ch.Position, ch.End, ch.Position
		}
		fmt.Fprintf(&b, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999" stroke-dasharray="6 4"/>`+"\n",
			x1, y1, x2, y2)
	}

	colors := CablePalette(len(doc.Cables))
	for i, c := range doc.Cables {
		if len(c.Route) < 2 {
			continue
		}
		points := make([]string, len(c.Route))
		for j, p := range c.Route {
			points[j] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
		}
		fmt.Fprintf(&b, `  <polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
			strings.Join(points, " "), colors[i])
		for _, p := range []core.Point{c.Route[0], c.Route[len(c.Route)-1]} {
			fmt.Fprintf(&b, `  <circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`+"\n", p.X, p.Y, colors[i])
		}
	}

	for _, n := range doc.Nodes {
		fmt.Fprintf(&b, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#fff" stroke="#333"/>`+"\n",
			n.X-n.Width/2, n.Y-n.Height/2, n.Width, n.Height)
		fmt.Fprintf(&b, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="12">%s</text>`+"\n",
			n.X, n.Y, escapeXML(n.Name))
	}

	b.WriteString("</svg>\n")
	return b.String(), nil
}

// GetFileExtension returns the file extension for SVG.
func (e *SVGExporter) GetFileExtension() string {
	return ".svg"
}

// GetFormatName returns the format name.
func (e *SVGExporter) GetFormatName() string {
	return "SVG"
}

// documentBounds computes the extent of everything that will be drawn.
func documentBounds(doc *Document) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, n := range doc.Nodes {
		grow(n.X-n.Width/2, n.Y-n.Height/2)
		grow(n.X+n.Width/2, n.Y+n.Height/2)
	}
	for _, ch := range doc.Channels {
		if ch.Orientation == core.Horizontal {
			grow(ch.Start, ch.Position)
			grow(ch.End, ch.Position)
		} else {
			grow(ch.Position, ch.Start)
			grow(ch.Position, ch.End)
		}
	}
	for _, c := range doc.Cables {
		for _, p := range c.Route {
			grow(p.X, p.Y)
		}
	}

	if math.IsInf(minX, 1) {
		return 0, 0, 100, 100
	}
	return minX, minY, maxX, maxY
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
