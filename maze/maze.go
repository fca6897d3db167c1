package maze

import (
	"fmt"
	"math"

	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/vmath"
)

// TilePosition is a grid coordinate, 0 <= X < Width, 0 <= Y < Height
type TilePosition struct {
	X, Y int
}

// Neighbor pairs an adjacent position with the direction leading to it
type Neighbor struct {
	Pos TilePosition
	Dir Direction
}

// Maze owns a dense row-major tile grid, index = y*Width + x
// Topology is fixed after generation, only the food bit changes afterwards
type Maze struct {
	Width, Height int
	Tiles         []Tile
}

// New allocates a fully closed grid, non-positive dimensions are a programming error
func New(width, height int) *Maze {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("maze: invalid dimensions %dx%d", width, height))
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = NewTile()
	}
	return &Maze{Width: width, Height: height, Tiles: tiles}
}

// Idx maps a coordinate to its linear index, callers bounds-check
func (m *Maze) Idx(x, y int) int {
	return y*m.Width + x
}

func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Get returns the tile at (x, y), panics when out of bounds
func (m *Maze) Get(x, y int) Tile {
	return *m.At(x, y)
}

// At returns a pointer to the tile at (x, y) for in-place updates, panics when out of bounds
func (m *Maze) At(x, y int) *Tile {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("maze: tile (%d,%d) out of bounds %dx%d", x, y, m.Width, m.Height))
	}
	return &m.Tiles[m.Idx(x, y)]
}

// Center returns the generation start cell
func (m *Maze) Center() TilePosition {
	return TilePosition{X: m.Width / 2, Y: m.Height / 2}
}

// Neighbors returns the four neighbors of p in Top/Right/Bottom/Left order
// Coordinates clamp at the border instead of wrapping, so an edge cell lists itself
func (m *Maze) Neighbors(p TilePosition) [4]Neighbor {
	return [4]Neighbor{
		{Pos: TilePosition{X: p.X, Y: min(p.Y+1, m.Height-1)}, Dir: Top},
		{Pos: TilePosition{X: min(p.X+1, m.Width-1), Y: p.Y}, Dir: Right},
		{Pos: TilePosition{X: p.X, Y: max(p.Y-1, 0)}, Dir: Bottom},
		{Pos: TilePosition{X: max(p.X-1, 0), Y: p.Y}, Dir: Left},
	}
}

// Anchor returns the world-space center of a tile, the grid center cell sits at the origin
func (m *Maze) Anchor(p TilePosition) vmath.Vec2 {
	return vmath.Vec2{
		X: float64(p.X-m.Width/2) * parameter.TileExtent,
		Y: float64(p.Y-m.Height/2) * parameter.TileExtent,
	}
}

// TileAt returns the position of the tile whose anchor is nearest to w
// The result may lie outside the grid
func (m *Maze) TileAt(w vmath.Vec2) TilePosition {
	return TilePosition{
		X: int(math.Floor(w.X/parameter.TileExtent+0.5)) + m.Width/2,
		Y: int(math.Floor(w.Y/parameter.TileExtent+0.5)) + m.Height/2,
	}
}

// step returns the in-grid cell across side d of p
func (m *Maze) step(p TilePosition, d Direction) (TilePosition, bool) {
	switch d {
	case Top:
		p.Y++
	case Right:
		p.X++
	case Bottom:
		p.Y--
	case Left:
		p.X--
	}
	return p, m.InBounds(p.X, p.Y)
}

// Reachable counts cells reachable from start through open sides shared with an in-grid neighbor
func (m *Maze) Reachable(start TilePosition) int {
	if !m.InBounds(start.X, start.Y) {
		return 0
	}

	seen := make([]bool, len(m.Tiles))
	seen[m.Idx(start.X, start.Y)] = true
	queue := []TilePosition{start}
	count := 0

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		count++

		tile := m.Get(curr.X, curr.Y)
		for _, d := range Directions {
			if tile.IsClosed(d) {
				continue
			}
			next, ok := m.step(curr, d)
			if !ok {
				continue
			}
			if i := m.Idx(next.X, next.Y); !seen[i] && m.Tiles[i].IsOpen(d.Opposite()) {
				seen[i] = true
				queue = append(queue, next)
			}
		}
	}
	return count
}

// OpenWallPairs counts adjacent in-grid pairs whose shared wall is open from both sides
func (m *Maze) OpenWallPairs() int {
	pairs := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.Get(x, y)
			if x+1 < m.Width && tile.IsOpen(Right) && m.Get(x+1, y).IsOpen(Left) {
				pairs++
			}
			if y+1 < m.Height && tile.IsOpen(Top) && m.Get(x, y+1).IsOpen(Bottom) {
				pairs++
			}
		}
	}
	return pairs
}
