package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/maze"
	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/physics"
	"github.com/lixenwraith/web-bg/system"
	"github.com/lixenwraith/web-bg/vmath"
)

// StatusRows is the number of rows reserved below the play area
const StatusRows = 1

const (
	glyphWall   = '█'
	glyphFloor  = ' '
	glyphDot    = '·'
	glyphPlayer = '@'

	// Walking player, by facing
	glyphPlayerLeft  = '◂'
	glyphPlayerRight = '▸'
)

var foodGlyphs = []rune{'*', '+', 'o', '◆', '♦', '•', '✦'}

// Canvas is the drawing surface, tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// ViewHalfExtents converts a terminal size into world-space camera half-extents
func ViewHalfExtents(cols, rows int) vmath.Vec2 {
	rows -= StatusRows
	if rows < 0 {
		rows = 0
	}
	return vmath.Vec2{
		X: float64(cols) / parameter.RenderColumnsPerSubtile / 2 * parameter.SubtileExtent,
		Y: float64(rows) / parameter.RenderRowsPerSubtile / 2 * parameter.SubtileExtent,
	}
}

// TerminalRenderer draws the materialized maze around the camera
type TerminalRenderer struct {
	noise *vmath.Noise
}

// NewTerminalRenderer seeds the floor shading noise
func NewTerminalRenderer(seed int64) *TerminalRenderer {
	return &TerminalRenderer{noise: vmath.NewNoise(seed)}
}

// CellToWorld maps a play-area cell to its world position, the center cell maps to the camera center
func CellToWorld(cam *engine.CameraResource, cols, rows, x, y int) vmath.Vec2 {
	gameRows := rows - StatusRows
	return vmath.Vec2{
		X: cam.Center.X + float64(x-cols/2)/parameter.RenderColumnsPerSubtile*parameter.SubtileExtent,
		Y: cam.Center.Y + float64(gameRows/2-y)/parameter.RenderRowsPerSubtile*parameter.SubtileExtent,
	}
}

// RenderFrame draws one frame, the caller shows the screen
func (r *TerminalRenderer) RenderFrame(c Canvas, res *engine.Resource) {
	cols, rows := c.Size()
	gameRows := rows - StatusRows
	if cols <= 0 || gameRows <= 0 || res.Camera == nil {
		return
	}

	m := res.RequireMaze()
	player := res.RequirePlayer()
	radius := system.LightRadius(res.Light)

	for y := 0; y < gameRows; y++ {
		for x := 0; x < cols; x++ {
			w := CellToWorld(res.Camera, cols, rows, x, y)
			ch, fg, bg := r.cell(res, m, w)

			lit := Lit(math.Sqrt(w.DistanceSq(player.Actor.Position)), radius)
			style := tcell.StyleDefault.Foreground(Scale(fg, lit)).Background(Scale(bg, lit))
			c.SetContent(x, y, ch, nil, style)
		}
	}

	// Player always at the camera center
	px, py := cols/2, gameRows/2
	c.SetContent(px, py, playerGlyph(player.Movement), nil, tcell.StyleDefault.Foreground(RgbPlayer).Background(RgbFloorA).Bold(true))

	r.drawStatus(c, res, cols, rows-1)
}

// playerGlyph picks the sprite from the facing and walking state
func playerGlyph(mv physics.Movement) rune {
	switch {
	case !mv.IsWalking:
		return glyphPlayer
	case mv.IsRight:
		return glyphPlayerRight
	default:
		return glyphPlayerLeft
	}
}

// cell resolves the glyph and colors of world point w
func (r *TerminalRenderer) cell(res *engine.Resource, m *maze.Maze, w vmath.Vec2) (rune, tcell.Color, tcell.Color) {
	p := m.TileAt(w)
	if !m.InBounds(p.X, p.Y) || (res.Stream != nil && !res.Stream.IsMaterialized(p)) {
		return ' ', RgbUnstreamed, RgbUnstreamed
	}

	local := w.Sub(m.Anchor(p))
	sx := subtileIndex(local.X)
	sy := subtileIndex(local.Y)

	if m.SubtileIsWall(p.X, p.Y, sx, sy) {
		return glyphWall, RgbWall, RgbWall
	}

	if sx == 0 && sy == 0 && m.Get(p.X, p.Y).HasFood() && res.Food != nil {
		alpha := res.Food.Alpha[p]
		glyph := foodGlyphs[res.Food.Variant[p]%len(foodGlyphs)]
		return glyph, Scale(RgbFood, 0.25+0.75*alpha), RgbFloorA
	}

	gx := float64(p.X*(2*parameter.SubtileSpan+1)+sx) * parameter.FloorNoiseScale
	gy := float64(p.Y*(2*parameter.SubtileSpan+1)+sy) * parameter.FloorNoiseScale
	if r.noise.At2D(gx, gy) < parameter.FloorVariantThreshold {
		return glyphFloor, RgbFloorDot, RgbFloorA
	}
	return glyphDot, RgbFloorDot, RgbFloorB
}

// subtileIndex maps a tile-local coordinate to [-SubtileSpan, SubtileSpan]
func subtileIndex(v float64) int {
	i := int(math.Floor(v/parameter.SubtileExtent + 0.5))
	return vmath.ClampInt(i, -parameter.SubtileSpan, parameter.SubtileSpan)
}

func (r *TerminalRenderer) drawStatus(c Canvas, res *engine.Resource, cols, y int) {
	style := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)

	m := res.RequireMaze()
	tile := m.TileAt(res.RequirePlayer().Actor.Position)

	eaten, streamed := 0, 0
	if res.Food != nil {
		eaten = res.Food.Eaten
	}
	if res.Stream != nil {
		streamed = res.Stream.Count()
	}

	text := fmt.Sprintf(" food %d  tile %d,%d  streamed %d  frame %d  [q] quit",
		eaten, tile.X, tile.Y, streamed, res.Time.FrameNumber)

	x := 0
	for _, ch := range text {
		if x >= cols {
			break
		}
		c.SetContent(x, y, ch, nil, style)
		x++
	}
	for ; x < cols; x++ {
		c.SetContent(x, y, ' ', nil, style)
	}
}
