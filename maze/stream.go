package maze

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/vmath"
)

// Rect is an axis-aligned world-space rectangle
type Rect struct {
	Min, Max vmath.Vec2
}

// RectAround returns the rectangle of the given half-extents centered on c
func RectAround(c, half vmath.Vec2) Rect {
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Expand grows the rectangle by margin on every side
func (r Rect) Expand(margin float64) Rect {
	m := vmath.Splat(margin)
	return Rect{Min: r.Min.Sub(m), Max: r.Max.Add(m)}
}

func (r Rect) Contains(p vmath.Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Streamer decides which tiles are materialized around the camera
// Tiles spawn inside view+visibleMargin without limit and despawn outside view+despawnMargin,
// at most despawnPerFrame per Update
type Streamer struct {
	maze            *Maze
	visibleMargin   float64
	despawnMargin   float64
	despawnPerFrame int

	// Dense set in materialization order, oldest first; index maps a tile to its slot in order
	order []TilePosition
	index map[TilePosition]int
}

// NewStreamer builds a streamer with world-space margins
// visibleMargin >= despawnMargin removes the hysteresis band and is a programming error
func NewStreamer(m *Maze, visibleMargin, despawnMargin float64, despawnPerFrame int) *Streamer {
	if visibleMargin >= despawnMargin {
		panic(fmt.Sprintf("maze: visible margin %.1f must be below despawn margin %.1f", visibleMargin, despawnMargin))
	}
	if despawnPerFrame < 1 {
		despawnPerFrame = 1
	}
	return &Streamer{
		maze:            m,
		visibleMargin:   visibleMargin,
		despawnMargin:   despawnMargin,
		despawnPerFrame: despawnPerFrame,
		order:           make([]TilePosition, 0, 256),
		index:           make(map[TilePosition]int, 256),
	}
}

// NewDefaultStreamer uses the tile-based margins from parameter
func NewDefaultStreamer(m *Maze) *Streamer {
	return NewStreamer(m,
		parameter.StreamVisibleMarginTiles*parameter.TileExtent,
		parameter.StreamDespawnMarginTiles*parameter.TileExtent,
		parameter.StreamDespawnPerFrame,
	)
}

// Update materializes newly visible tiles and releases far ones
// Returned spawn list is in row-major order, despawn takes the oldest eligible tiles first
func (s *Streamer) Update(view Rect) (spawn, despawn []TilePosition) {
	visible := view.Expand(s.visibleMargin)

	// Candidate range in grid space, clamped to the maze
	lo := s.maze.TileAt(visible.Min)
	hi := s.maze.TileAt(visible.Max)
	x0 := vmath.ClampInt(lo.X-1, 0, s.maze.Width-1)
	x1 := vmath.ClampInt(hi.X+1, 0, s.maze.Width-1)
	y0 := vmath.ClampInt(lo.Y-1, 0, s.maze.Height-1)
	y1 := vmath.ClampInt(hi.Y+1, 0, s.maze.Height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := TilePosition{X: x, Y: y}
			if _, ok := s.index[p]; ok {
				continue
			}
			if visible.Contains(s.maze.Anchor(p)) {
				s.add(p)
				spawn = append(spawn, p)
			}
		}
	}

	keep := view.Expand(s.despawnMargin)
	for i := 0; i < len(s.order) && len(despawn) < s.despawnPerFrame; {
		p := s.order[i]
		if keep.Contains(s.maze.Anchor(p)) {
			i++
			continue
		}
		s.remove(p)
		despawn = append(despawn, p)
		// next candidate shifted down into i
	}

	return spawn, despawn
}

func (s *Streamer) add(p TilePosition) {
	s.index[p] = len(s.order)
	s.order = append(s.order, p)
}

func (s *Streamer) remove(p TilePosition) {
	i, ok := s.index[p]
	if !ok {
		return
	}
	s.order = slices.Delete(s.order, i, i+1)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	delete(s.index, p)
}

func (s *Streamer) IsMaterialized(p TilePosition) bool {
	_, ok := s.index[p]
	return ok
}

// Count returns the number of materialized tiles
func (s *Streamer) Count() int {
	return len(s.order)
}

// Materialized returns a copy of the materialized set
func (s *Streamer) Materialized() []TilePosition {
	out := make([]TilePosition, len(s.order))
	copy(out, s.order)
	return out
}

// Reset dematerializes everything without reporting
func (s *Streamer) Reset() {
	s.order = s.order[:0]
	clear(s.index)
}
