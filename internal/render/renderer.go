package render

import (
	"hexcrawl/internal/hexgrid"
	"hexcrawl/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws the visible chart and remembered terrain onto a tcell
// screen, with a one-line HUD at the bottom.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer sized to the screen, reserving the
// bottom row for the HUD.
func NewRenderer(screen tcell.Screen) *Renderer {
	cols, rows := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(cols, rows-1),
	}
}

// Resize re-fits the camera after a terminal resize event.
func (r *Renderer) Resize() {
	cols, rows := r.screen.Size()
	r.camera = NewCamera(cols, rows-1)
}

// Viewport returns the scan bound matching the current camera.
func (r *Renderer) Viewport() Viewport {
	return r.camera.Viewport()
}

// DrawFrame renders one frame: remembered terrain dim, the chart
// bright, and the viewer in the middle.
func (r *Renderer) DrawFrame(w *world.World, ch world.Chart, mem *world.Memory, viewer world.Location, hud string) {
	r.screen.Clear()
	r.drawRemembered(mem, viewer)
	r.drawChart(w, ch)
	r.drawViewer()
	r.drawHUD(hud)
	r.screen.Show()
}

// drawRemembered fills in out-of-sight cells from map memory. Memory is
// keyed by location, and for cells that are not in the current chart
// there is no portal-resolved frame to consult, so the viewer's own
// frame is used. Cells remembered through a portal therefore stay dark
// until looked at again, which reads fine on screen.
func (r *Renderer) drawRemembered(mem *world.Memory, viewer world.Location) {
	vp := r.camera.Viewport()
	reach := vp.OuterRadius()
	for x := -reach; x <= reach; x++ {
		for y := -reach; y <= reach; y++ {
			off := hexgrid.Vec{X: x, Y: y}
			if !vp.Contains(off) {
				continue
			}
			t, ok := mem.Recall(viewer.Add(off))
			if !ok {
				continue
			}
			if g, ok := Glyph(t, false); ok {
				r.putGlyph(off, g, dimStyle)
			}
		}
	}
}

func (r *Renderer) drawChart(w *world.World, ch world.Chart) {
	for off, cell := range ch {
		t := w.Terrain(cell.Loc(off))
		if g, ok := Glyph(t, true); ok {
			r.putGlyph(off, g, brightStyle)
		}
	}
}

func (r *Renderer) drawViewer() {
	r.putGlyph(hexgrid.Vec{}, PlayerGlyph, brightStyle)
}

var (
	brightStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
	dimStyle    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	hudStyle    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow)
)

// putGlyph draws a 2-column glyph at the projected position of off.
func (r *Renderer) putGlyph(off hexgrid.Vec, glyph string, style tcell.Style) {
	col, row, ok := r.camera.Project(off)
	if !ok {
		return
	}
	r.putString(col, row, glyph, style)
}

// drawHUD writes the status line into the reserved bottom row.
func (r *Renderer) drawHUD(text string) {
	_, rows := r.screen.Size()
	r.putString(0, rows-1, text, hudStyle)
}

// putString writes a string advancing by the real cell width of each
// rune cluster, so emoji and box glyphs stay aligned.
func (r *Renderer) putString(col, row int, s string, style tcell.Style) {
	for _, ru := range s {
		w := runewidth.RuneWidth(ru)
		if w == 0 {
			continue
		}
		r.screen.SetContent(col, row, ru, nil, style)
		col += w
	}
}
