package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTileIsClosedWithoutFood(t *testing.T) {
	tile := NewTile()
	for _, d := range Directions {
		assert.True(t, tile.IsClosed(d), "side %s", d)
		assert.False(t, tile.IsOpen(d), "side %s", d)
	}
	assert.True(t, tile.IsFullyClosed())
	assert.False(t, tile.HasFood())
}

func TestOppositeIsInvolution(t *testing.T) {
	assert.Equal(t, Bottom, Top.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
}

func TestOpenClearsExactlyOneSide(t *testing.T) {
	for _, side := range Directions {
		tile := NewTile()
		tile.Open(side)
		for _, d := range Directions {
			assert.Equal(t, d == side, tile.IsOpen(d), "open %s, check %s", side, d)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	once := NewTile()
	once.Open(Right)

	twice := NewTile()
	twice.Open(Right).Open(Right)

	assert.Equal(t, once, twice)
}

func TestOpenChainsAllSides(t *testing.T) {
	tile := NewTile()
	tile.Open(Top).Open(Right).Open(Bottom).Open(Left)
	assert.Equal(t, uint8(0), tile.ClosedBits())
	assert.False(t, tile.IsFullyClosed())
}

func TestCloseKeepsFood(t *testing.T) {
	var tile Tile
	tile.SetFood(true)
	tile.Close(Left).Close(Top)

	assert.True(t, tile.IsClosed(Left))
	assert.True(t, tile.IsClosed(Top))
	assert.True(t, tile.IsOpen(Right))
	assert.True(t, tile.HasFood())
}

func TestSetFoodReportsChange(t *testing.T) {
	tile := NewTile()

	assert.False(t, tile.SetFood(false), "already without food")
	assert.True(t, tile.SetFood(true))
	assert.True(t, tile.HasFood())
	assert.False(t, tile.SetFood(true), "already with food")
	assert.True(t, tile.SetFood(false))
	assert.False(t, tile.HasFood())

	// Walls untouched by food toggling
	assert.True(t, tile.IsFullyClosed())
}

func TestTileValueSemantics(t *testing.T) {
	a := NewTile()
	b := a
	b.Open(Top)
	assert.True(t, a.IsClosed(Top))
	assert.True(t, b.IsOpen(Top))
}
