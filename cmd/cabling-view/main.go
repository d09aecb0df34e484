// Command cabling-view is an interactive terminal viewer for cable layouts.
//
// It draws nodes, channels and routed cables, lets you move the selected
// node with the arrow keys, and re-runs the router on every move.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"cabling/core"
	"cabling/routing"
)

// moveStep is how far a node moves per arrow key press, in canvas units.
const moveStep = 10.0

var (
	styleDefault = tcell.StyleDefault
	styleChannel = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleNode    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleNodeSel = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMarker  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

type viewer struct {
	screen tcell.Screen
	layout core.Layout
	cables []core.Cable
	colors []tcell.Style

	selectedNode  int
	selectedCable int // -1 = none highlighted

	// world-to-screen transform
	offsetX, offsetY float64
	scaleX, scaleY   float64
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: cabling-view <layout.json>")
		os.Exit(1)
	}

	layout, err := loadLayout(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.SetStyle(styleDefault)

	v := &viewer{
		screen:        screen,
		layout:        layout,
		selectedCable: -1,
	}
	v.reroute()
	v.fit()
	v.run()
}

func loadLayout(path string) (core.Layout, error) {
	var layout core.Layout
	data, err := os.ReadFile(path)
	if err != nil {
		return layout, fmt.Errorf("failed to read layout: %w", err)
	}
	if err := json.Unmarshal(data, &layout); err != nil {
		return layout, fmt.Errorf("failed to parse layout: %w", err)
	}
	return layout, nil
}

// reroute recomputes every cable from the current node positions. Routing is
// a pure function of the layout snapshot, so a full re-run per move is safe.
func (v *viewer) reroute() {
	v.cables = routing.RouteLayout(v.layout)
	v.colors = cableStyles(len(v.cables))
}

// cableStyles assigns each cable a distinct hue.
func cableStyles(n int) []tcell.Style {
	styles := make([]tcell.Style, n)
	for i := 0; i < n; i++ {
		hue := float64(i) * 360.0 / float64(max(n, 1))
		r, g, b := colorful.Hsv(hue, 0.65, 0.95).RGB255()
		color := tcell.NewRGBColor(int32(r), int32(g), int32(b))
		styles[i] = tcell.StyleDefault.Foreground(color)
	}
	return styles
}

// fit derives the world-to-screen transform from the layout bounds.
func (v *viewer) fit() {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range v.layout.Nodes {
		minX = math.Min(minX, n.X-n.Width/2)
		minY = math.Min(minY, n.Y-n.Height/2)
		maxX = math.Max(maxX, n.X+n.Width/2)
		maxY = math.Max(maxY, n.Y+n.Height/2)
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 100, 100
	}

	w, h := v.screen.Size()
	margin := 60.0 // leave room for detours and spread cables
	v.offsetX = minX - margin
	v.offsetY = minY - margin
	v.scaleX = float64(w-1) / (maxX - minX + 2*margin)
	v.scaleY = float64(h-2) / (maxY - minY + 2*margin) // bottom row is the status bar
}

func (v *viewer) toScreen(p core.Point) (int, int) {
	x := int(math.Round((p.X - v.offsetX) * v.scaleX))
	y := int(math.Round((p.Y - v.offsetY) * v.scaleY))
	return x, y
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.fit()
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		if len(v.layout.Nodes) > 0 {
			v.selectedNode = (v.selectedNode + 1) % len(v.layout.Nodes)
		}
		return true
	case tcell.KeyUp:
		v.moveSelected(0, -moveStep)
		return true
	case tcell.KeyDown:
		v.moveSelected(0, moveStep)
		return true
	case tcell.KeyLeft:
		v.moveSelected(-moveStep, 0)
		return true
	case tcell.KeyRight:
		v.moveSelected(moveStep, 0)
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'c':
		if len(v.cables) > 0 {
			v.selectedCable++
			if v.selectedCable >= len(v.cables) {
				v.selectedCable = -1
			}
		}
	}
	return true
}

// moveSelected updates the selected node's position and triggers a full
// re-route; routes are never patched incrementally.
func (v *viewer) moveSelected(dx, dy float64) {
	if v.selectedNode >= len(v.layout.Nodes) {
		return
	}
	v.layout.Nodes[v.selectedNode].X += dx
	v.layout.Nodes[v.selectedNode].Y += dy
	v.reroute()
}

func (v *viewer) draw() {
	v.screen.Clear()

	for _, ch := range v.layout.Channels {
		v.drawChannel(ch)
	}
	for i, c := range v.cables {
		style := v.colors[i]
		if v.selectedCable >= 0 && i != v.selectedCable {
			style = style.Dim(true)
		}
		v.drawCable(c, style)
	}
	for i, n := range v.layout.Nodes {
		v.drawNode(n, i == v.selectedNode)
	}
	v.drawStatus()

	v.screen.Show()
}

func (v *viewer) drawChannel(ch core.Channel) {
	if ch.Orientation == core.Horizontal {
		x1, y := v.toScreen(core.Point{X: ch.Start, Y: ch.Position})
		x2, _ := v.toScreen(core.Point{X: ch.End, Y: ch.Position})
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			v.screen.SetContent(x, y, '╌', nil, styleChannel)
		}
		return
	}
	x, y1 := v.toScreen(core.Point{X: ch.Position, Y: ch.Start})
	_, y2 := v.toScreen(core.Point{X: ch.Position, Y: ch.End})
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		v.screen.SetContent(x, y, '╎', nil, styleChannel)
	}
}

func (v *viewer) drawCable(c core.Cable, style tcell.Style) {
	for i := 0; i < len(c.Route)-1; i++ {
		x1, y1 := v.toScreen(c.Route[i])
		x2, y2 := v.toScreen(c.Route[i+1])
		if y1 == y2 {
			for x := min(x1, x2); x <= max(x1, x2); x++ {
				v.screen.SetContent(x, y1, '─', nil, style)
			}
		} else if x1 == x2 {
			for y := min(y1, y2); y <= max(y1, y2); y++ {
				v.screen.SetContent(x1, y, '│', nil, style)
			}
		}
		if i > 0 {
			v.screen.SetContent(x1, y1, '┼', nil, style)
		}
	}
	if len(c.Route) > 0 {
		x, y := v.toScreen(c.Route[0])
		v.screen.SetContent(x, y, 'o', nil, styleMarker)
		x, y = v.toScreen(c.Route[len(c.Route)-1])
		v.screen.SetContent(x, y, 'o', nil, styleMarker)
	}
}

func (v *viewer) drawNode(n core.Node, selected bool) {
	style := styleNode
	if selected {
		style = styleNodeSel
	}

	x1, y1 := v.toScreen(core.Point{X: n.X - n.Width/2, Y: n.Y - n.Height/2})
	x2, y2 := v.toScreen(core.Point{X: n.X + n.Width/2, Y: n.Y + n.Height/2})
	if x2 <= x1+1 || y2 <= y1 {
		v.screen.SetContent(x1, y1, '▪', nil, style)
		return
	}

	for x := x1; x <= x2; x++ {
		v.screen.SetContent(x, y1, '─', nil, style)
		v.screen.SetContent(x, y2, '─', nil, style)
	}
	for y := y1; y <= y2; y++ {
		v.screen.SetContent(x1, y, '│', nil, style)
		v.screen.SetContent(x2, y, '│', nil, style)
	}
	v.screen.SetContent(x1, y1, '┌', nil, style)
	v.screen.SetContent(x2, y1, '┐', nil, style)
	v.screen.SetContent(x1, y2, '└', nil, style)
	v.screen.SetContent(x2, y2, '┘', nil, style)

	label := n.Name
	if label == "" {
		label = n.ID
	}
	if maxLen := x2 - x1 - 1; len(label) > maxLen && maxLen > 0 {
		label = label[:maxLen]
	}
	lx := (x1+x2)/2 - len(label)/2
	ly := (y1 + y2) / 2
	for i, r := range label {
		v.screen.SetContent(lx+i, ly, r, nil, style)
	}
}

func (v *viewer) drawStatus() {
	w, h := v.screen.Size()
	status := "Tab: select node  arrows: move  c: highlight cable  q: quit"
	if v.selectedNode < len(v.layout.Nodes) {
		n := v.layout.Nodes[v.selectedNode]
		status = fmt.Sprintf("[%s] (%.0f, %.0f)  %s", n.Name, n.X, n.Y, status)
	}
	if v.selectedCable >= 0 && v.selectedCable < len(v.cables) {
		c := v.cables[v.selectedCable]
		status = fmt.Sprintf("cable %s: %s -> %s via %v  |  %s",
			c.ID, c.SourceNodeID, c.TargetNodeID, c.ForcedChannels, status)
	}

	for x := 0; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	for i, r := range status {
		if i >= w {
			break
		}
		v.screen.SetContent(i, h-1, r, nil, styleStatus)
	}
}
