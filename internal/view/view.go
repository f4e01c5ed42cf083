// Package view rasterizes the simulation into a terminal cell buffer.
//
// The arena is drawn inside a border below a one-line HUD. World units are
// scaled independently on each axis to fill the available cells, and a cell
// is painted when its center lies inside an entity's shape.
package view

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/game"
	"github.com/vovakirdan/tui-dodger/internal/geom"
)

// Visual characters for rendering
const (
	PlayerChar = '●'
	RockChar   = '▓'
	SlabChar   = '█'
	HitChar    = '✖'
)

// hudRows is the number of rows above the arena border.
const hudRows = 1

// HUD carries presentation-only status shown alongside the world.
type HUD struct {
	Preset    string // Difficulty preset name
	Paused    bool   // Paused by the player
	Unfocused bool   // Paused because the terminal lost focus
}

// Viewport maps world coordinates to screen cells for one frame.
type Viewport struct {
	X, Y int     // Top-left cell of the arena interior
	W, H int     // Interior size in cells
	sx   float64 // Cells per world unit, horizontally
	sy   float64 // Cells per world unit, vertically
}

// NewViewport fits the arena interior to a screen of the given size. The
// interior is empty when the screen is too small for a border.
func NewViewport(screenW, screenH int, world geom.Size) Viewport {
	v := Viewport{
		X: 1,
		Y: hudRows + 1,
		W: max(screenW-2, 0),
		H: max(screenH-hudRows-2, 0),
	}
	if world.W > 0 {
		v.sx = float64(v.W) / world.W
	}
	if world.H > 0 {
		v.sy = float64(v.H) / world.H
	}
	return v
}

// Empty reports whether there is no room to draw the arena.
func (v Viewport) Empty() bool {
	return v.W == 0 || v.H == 0 || v.sx == 0 || v.sy == 0
}

// Cell returns the screen cell containing the world point p.
func (v Viewport) Cell(p geom.Point) (int, int) {
	return v.X + int(math.Floor(p.X*v.sx)), v.Y + int(math.Floor(p.Y*v.sy))
}

// World returns the world point at the center of screen cell (x, y).
func (v Viewport) World(x, y int) geom.Point {
	return geom.Point{
		X: (float64(x-v.X) + 0.5) / v.sx,
		Y: (float64(y-v.Y) + 0.5) / v.sy,
	}
}

// inside reports whether (x, y) is an interior cell.
func (v Viewport) inside(x, y int) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

// Render draws the full frame: HUD, border, obstacles, player and, when the
// run has ended or is paused, a centered message box.
func Render(dst *core.Screen, st *game.State, hud HUD) {
	dst.Clear()
	drawHUD(dst, st, hud)

	vp := NewViewport(dst.Width(), dst.Height(), st.Bounds())
	dst.DrawBox(vp.X-1, vp.Y-1, vp.W+2, vp.H+2, core.ColorGray)
	if vp.Empty() {
		return
	}

	for _, o := range st.Obstacles() {
		ch, color := obstacleGlyph(o)
		drawShape(dst, vp, o.Shape(), ch, color)
	}

	p := st.Player()
	playerColor := core.ColorBrightCyan
	if st.IsOver() {
		playerColor = core.ColorRed
	}
	drawShape(dst, vp, p.Shape(), PlayerChar, playerColor)

	if msg, over := st.Message(); over {
		drawMessageBox(dst, msg, fmt.Sprintf("Dodged %d  |  Survived %s", st.Score(), formatElapsed(st.Elapsed())))
	} else if hud.Unfocused {
		drawMessageBox(dst, "PAUSED", "Focus the terminal to resume")
	} else if hud.Paused {
		drawMessageBox(dst, "PAUSED", "Press P to resume")
	}
}

// obstacleGlyph picks the character and color for an obstacle. The one that
// ended the run is highlighted.
func obstacleGlyph(o game.Obstacle) (rune, core.Color) {
	switch {
	case !o.Alive:
		return HitChar, core.ColorBrightRed
	case o.Kind == game.KindSlab:
		return SlabChar, core.ColorYellow
	default:
		return RockChar, core.ColorOrange
	}
}

// drawShape paints every interior cell whose center lies in s. A shape
// smaller than a cell still gets the cell under its center.
func drawShape(dst *core.Screen, vp Viewport, s geom.Shape, ch rune, color core.Color) {
	b := s.Bounds()
	x0, y0 := vp.Cell(geom.Point{X: b.X, Y: b.Y})
	x1, y1 := vp.Cell(geom.Point{X: b.Right(), Y: b.Bottom()})

	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !vp.inside(x, y) || !s.Contains(vp.World(x, y)) {
				continue
			}
			dst.SetColored(x, y, ch, color)
			painted = true
		}
	}
	if !painted {
		if x, y := vp.Cell(b.Center()); vp.inside(x, y) {
			dst.SetColored(x, y, ch, color)
		}
	}
}

func drawHUD(dst *core.Screen, st *game.State, hud HUD) {
	left := fmt.Sprintf(" Dodged: %d  Time: %s", st.Score(), formatElapsed(st.Elapsed()))
	dst.DrawText(0, 0, left, core.ColorWhite)

	if hud.Preset != "" {
		right := fmt.Sprintf("%s ", hud.Preset)
		dst.DrawText(dst.Width()-len(right), 0, right, core.ColorGray)
	}
}

// drawMessageBox draws a bordered two-line message in the middle of the screen.
func drawMessageBox(dst *core.Screen, title, subtitle string) {
	boxW := max(runeLen(title), runeLen(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawText(boxX+(boxW-runeLen(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-runeLen(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}

// formatElapsed renders seconds as m:ss.t.
func formatElapsed(sec float64) string {
	tenths := int(sec * 10)
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

func runeLen(s string) int {
	return len([]rune(s))
}
