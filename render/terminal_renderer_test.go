package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/maze"
	"github.com/lixenwraith/web-bg/physics"
	"github.com/lixenwraith/web-bg/vmath"
)

const (
	testCols = 40
	testRows = 13
)

type canvasCell struct {
	ch    rune
	style tcell.Style
}

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]canvasCell
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]canvasCell)}
}

func (c *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = canvasCell{ch: primary, style: style}
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) row(y int) string {
	var sb strings.Builder
	for x := 0; x < c.w; x++ {
		sb.WriteRune(c.cells[[2]int{x, y}].ch)
	}
	return sb.String()
}

// testScene is a 3x3 maze with the center and its right neighbor opened, food on the right
func testScene() *engine.Resource {
	m := maze.New(3, 3)
	center := m.Center()
	m.MakeRoom(center)
	m.MakeRoom(maze.TilePosition{X: 2, Y: 1})
	m.At(center.X, center.Y).SetFood(false)

	res := &engine.Resource{
		Time:   &engine.TimeResource{},
		Maze:   m,
		Stream: maze.NewDefaultStreamer(m),
		Player: &engine.PlayerResource{Actor: physics.NewPlayerActor(m.Anchor(center))},
		Camera: &engine.CameraResource{HalfExtents: ViewHalfExtents(testCols, testRows)},
		Food:   engine.NewFoodResource(),
	}
	res.Stream.Update(res.Camera.View())

	food := maze.TilePosition{X: 2, Y: 1}
	res.Food.Alpha[food] = 1
	res.Food.Variant[food] = 0
	return res
}

func TestViewHalfExtents(t *testing.T) {
	half := ViewHalfExtents(testCols, testRows)
	assert.Equal(t, vmath.Vec2{X: 320, Y: 192}, half)

	assert.Equal(t, vmath.Vec2{}, ViewHalfExtents(0, 0), "status row larger than the terminal")
}

func TestCellToWorld(t *testing.T) {
	cam := &engine.CameraResource{Center: vmath.Vec2{X: 100, Y: -50}}

	assert.Equal(t, cam.Center, CellToWorld(cam, testCols, testRows, testCols/2, (testRows-StatusRows)/2))
	// One column is half a sub-tile, one row a full sub-tile, rows grow downwards
	assert.Equal(t, vmath.Vec2{X: 116, Y: -82}, CellToWorld(cam, testCols, testRows, testCols/2+1, (testRows-StatusRows)/2+1))
}

func TestRenderFrameLayout(t *testing.T) {
	res := testScene()
	r := NewTerminalRenderer(1)
	c := newFakeCanvas(testCols, testRows)

	r.RenderFrame(c, res)

	assert.Equal(t, glyphPlayer, c.cells[[2]int{20, 6}].ch, "player at screen center")
	assert.Equal(t, '*', c.cells[[2]int{30, 6}].ch, "food at the right tile anchor")
	assert.Equal(t, glyphWall, c.cells[[2]int{16, 4}].ch, "blocked top-left corner of the start tile")
	assert.NotEqual(t, glyphWall, c.cells[[2]int{20, 5}].ch, "open floor above the player")

	// Beyond the grid nothing is streamed
	black := tcell.StyleDefault.Foreground(RgbUnstreamed).Background(RgbUnstreamed)
	assert.Equal(t, canvasCell{ch: ' ', style: black}, c.cells[[2]int{39, 6}])

	status := c.row(testRows - 1)
	assert.Contains(t, status, "food 0")
	assert.Contains(t, status, "tile 1,1")
	assert.Contains(t, status, "streamed 9")
}

func TestRenderFramePlayerFacing(t *testing.T) {
	tests := []struct {
		name string
		dir  vmath.Vec2
		want rune
	}{
		{"idle", vmath.Vec2{}, glyphPlayer},
		{"walking right", vmath.Vec2{X: 1}, glyphPlayerRight},
		{"walking left", vmath.Vec2{X: -1}, glyphPlayerLeft},
		{"walking up keeps left facing", vmath.Vec2{Y: 1}, glyphPlayerLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testScene()
			res.Player.Movement.Update(tt.dir)

			c := newFakeCanvas(testCols, testRows)
			NewTerminalRenderer(1).RenderFrame(c, res)
			assert.Equal(t, tt.want, c.cells[[2]int{20, 6}].ch)
		})
	}
}

func TestPlayerGlyphKeepsFacingWhenVertical(t *testing.T) {
	var mv physics.Movement
	mv.Update(vmath.Vec2{X: 1})
	mv.Update(vmath.Vec2{Y: -1})
	assert.Equal(t, glyphPlayerRight, playerGlyph(mv))

	mv.Update(vmath.Vec2{})
	assert.Equal(t, glyphPlayer, playerGlyph(mv))
}

func TestRenderFrameSkipsTinyTerminal(t *testing.T) {
	res := testScene()
	c := newFakeCanvas(10, StatusRows)

	NewTerminalRenderer(1).RenderFrame(c, res)
	assert.Empty(t, c.cells)
}

func TestRenderFrameUnmaterializedTile(t *testing.T) {
	res := testScene()
	res.Stream.Reset()

	c := newFakeCanvas(testCols, testRows)
	NewTerminalRenderer(1).RenderFrame(c, res)

	assert.Equal(t, ' ', c.cells[[2]int{30, 6}].ch, "food hidden until its tile streams in")
}

func TestRenderFrameSimulationScreen(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(testCols, testRows)

	NewTerminalRenderer(1).RenderFrame(s, testScene())
	s.Show()

	ch, _, _, _ := s.GetContent(20, 6)
	assert.Equal(t, glyphPlayer, ch)

	ch, _, _, _ = s.GetContent(16, 4)
	assert.Equal(t, glyphWall, ch)
}
