package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/vmath"
)

func TestNewMazeIsClosed(t *testing.T) {
	m := New(6, 4)
	require.Len(t, m.Tiles, 24)
	for _, tile := range m.Tiles {
		assert.True(t, tile.IsFullyClosed())
	}
	assert.Panics(t, func() { New(0, 4) })
	assert.Panics(t, func() { New(3, -1) })
}

func TestIdxRowMajor(t *testing.T) {
	m := New(5, 3)
	assert.Equal(t, 0, m.Idx(0, 0))
	assert.Equal(t, 4, m.Idx(4, 0))
	assert.Equal(t, 5, m.Idx(0, 1))
	assert.Equal(t, 14, m.Idx(4, 2))
}

func TestGetOutOfBoundsPanics(t *testing.T) {
	m := New(3, 3)
	assert.NotPanics(t, func() { m.Get(2, 2) })
	assert.Panics(t, func() { m.Get(3, 0) })
	assert.Panics(t, func() { m.Get(0, -1) })
	assert.Panics(t, func() { m.At(-1, 1) })
}

func TestAtMutatesInPlace(t *testing.T) {
	m := New(3, 3)
	m.At(1, 2).Open(Left)
	assert.True(t, m.Get(1, 2).IsOpen(Left))
	assert.True(t, m.Get(1, 1).IsClosed(Left))
}

func TestNeighborsStayInBounds(t *testing.T) {
	m := New(7, 5)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			for _, nb := range m.Neighbors(TilePosition{X: x, Y: y}) {
				assert.True(t, m.InBounds(nb.Pos.X, nb.Pos.Y), "(%d,%d) %s -> %v", x, y, nb.Dir, nb.Pos)
			}
		}
	}
}

func TestNeighborsOrderAndClamping(t *testing.T) {
	m := New(4, 4)

	nbs := m.Neighbors(TilePosition{X: 1, Y: 1})
	assert.Equal(t, Neighbor{Pos: TilePosition{X: 1, Y: 2}, Dir: Top}, nbs[0])
	assert.Equal(t, Neighbor{Pos: TilePosition{X: 2, Y: 1}, Dir: Right}, nbs[1])
	assert.Equal(t, Neighbor{Pos: TilePosition{X: 1, Y: 0}, Dir: Bottom}, nbs[2])
	assert.Equal(t, Neighbor{Pos: TilePosition{X: 0, Y: 1}, Dir: Left}, nbs[3])

	// Corner cell clamps onto itself
	corner := TilePosition{X: 0, Y: 0}
	nbs = m.Neighbors(corner)
	assert.Equal(t, corner, nbs[2].Pos)
	assert.Equal(t, corner, nbs[3].Pos)
}

func TestAnchorAndTileAt(t *testing.T) {
	m := New(8, 8)

	assert.Equal(t, vmath.Vec2{}, m.Anchor(m.Center()))
	assert.Equal(t, vmath.Vec2{X: parameter.TileExtent, Y: -2 * parameter.TileExtent}, m.Anchor(TilePosition{X: 5, Y: 2}))

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := TilePosition{X: x, Y: y}
			a := m.Anchor(p)
			assert.Equal(t, p, m.TileAt(a))
			// Anything closer than half a tile maps back to the same cell
			assert.Equal(t, p, m.TileAt(a.Add(vmath.Splat(parameter.TileExtent*0.49))))
			assert.Equal(t, p, m.TileAt(a.Sub(vmath.Splat(parameter.TileExtent*0.49))))
		}
	}

	off := m.TileAt(vmath.Vec2{X: -100 * parameter.TileExtent})
	assert.False(t, m.InBounds(off.X, off.Y))
}

func TestReachableClosedGrid(t *testing.T) {
	m := New(3, 3)
	assert.Equal(t, 1, m.Reachable(TilePosition{X: 1, Y: 1}))
	assert.Equal(t, 0, m.Reachable(TilePosition{X: 5, Y: 1}))
}

func TestReachableNeedsBothSidesOpen(t *testing.T) {
	m := New(3, 1)
	m.At(0, 0).Open(Right)
	assert.Equal(t, 1, m.Reachable(TilePosition{X: 0, Y: 0}))
	assert.Equal(t, 0, m.OpenWallPairs())

	m.At(1, 0).Open(Left)
	assert.Equal(t, 2, m.Reachable(TilePosition{X: 0, Y: 0}))
	assert.Equal(t, 1, m.OpenWallPairs())
}
