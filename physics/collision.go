package physics

import (
	"sort"

	"github.com/lixenwraith/web-bg/maze"
	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/vmath"
)

// Actor is an axis-aligned box, Position is its center
type Actor struct {
	Position    vmath.Vec2
	HalfExtents vmath.Vec2
}

// NewPlayerActor returns the player box at pos
func NewPlayerActor(pos vmath.Vec2) Actor {
	return Actor{
		Position:    pos,
		HalfExtents: vmath.Vec2{X: parameter.PlayerHalfWidth, Y: parameter.PlayerHalfHeight},
	}
}

// NeighborTile is a materialized tile as seen by the resolver
type NeighborTile struct {
	Anchor vmath.Vec2
	Tile   maze.Tile
}

// Neighborhood holds the 3x3 tiles around an actor, top row first, left to right
// Index 4 is the current tile, 1/3/5/7 are top/left/right/bottom, the rest diagonal
type Neighborhood [9]NeighborTile

const (
	nTop     = 1
	nLeft    = 3
	nCurrent = 4
	nRight   = 5
	nBottom  = 7
)

// Current returns the tile the actor stands on
func (n *Neighborhood) Current() NeighborTile {
	return n[nCurrent]
}

// GatherNeighborhood picks the tiles within reach of center on both axes and orders them
// Returns false when fewer than 9 tiles qualify, resolution must then be skipped
func GatherNeighborhood(center vmath.Vec2, candidates []NeighborTile, tileExtent float64) (Neighborhood, bool) {
	var n Neighborhood
	reach := parameter.NeighborhoodReach * tileExtent

	nearby := make([]NeighborTile, 0, len(n))
	for _, c := range candidates {
		diff := c.Anchor.Sub(center).Abs()
		if diff.X < reach && diff.Y < reach {
			nearby = append(nearby, c)
		}
	}
	if len(nearby) < len(n) {
		return n, false
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].Anchor.Y != nearby[j].Anchor.Y {
			return nearby[i].Anchor.Y > nearby[j].Anchor.Y
		}
		return nearby[i].Anchor.X < nearby[j].Anchor.X
	})
	copy(n[:], nearby)
	return n, true
}

// Correction reports what a resolution pass changed
type Correction struct {
	Delta vmath.Vec2

	// Walls has bit 1<<Direction set for every side the actor was pushed out of
	Walls uint8

	// Corners uses the maze.Corner* bits
	Corners uint8

	// Horizontal is true when corners were resolved along X
	Horizontal bool
}

// Applied reports whether the actor moved
func (c Correction) Applied() bool {
	return c.Walls != 0 || c.Corners != 0
}

// Resolver pushes actors out of closed walls and corners of the current tile
type Resolver struct {
	// InnerHalf is the half size of the walkable area inside a tile
	InnerHalf vmath.Vec2
}

// NewResolver derives the inner bound from unscaled tile size and wall thickness
func NewResolver(tileSize, wallThickness, scale float64) Resolver {
	return Resolver{InnerHalf: vmath.Splat((tileSize/2 - wallThickness) * scale)}
}

// DefaultResolver uses the parameter tile geometry
func DefaultResolver() Resolver {
	return NewResolver(parameter.TileSize, parameter.WallThickness, parameter.TileScale)
}

// penetrationEpsilon absorbs rounding left by snapping, a snapped body must not penetrate again
const penetrationEpsilon = 1e-9

// snapTo places the actor so that its edge on side d lies on bound
func snapTo(a *Actor, d maze.Direction, bound float64) {
	switch d {
	case maze.Top:
		a.Position.Y = bound - a.HalfExtents.Y
	case maze.Right:
		a.Position.X = bound - a.HalfExtents.X
	case maze.Bottom:
		a.Position.Y = bound + a.HalfExtents.Y
	case maze.Left:
		a.Position.X = bound + a.HalfExtents.X
	}
}

// box edges, same order as maze.Direction
type edges [4]float64

func actorEdges(a *Actor) edges {
	return edges{
		a.Position.Y + a.HalfExtents.Y,
		a.Position.X + a.HalfExtents.X,
		a.Position.Y - a.HalfExtents.Y,
		a.Position.X - a.HalfExtents.X,
	}
}

// Resolve corrects actor in place against neighborhood n
// Walls of the current tile are handled first; corners only see penetration left over after that
func (r Resolver) Resolve(actor *Actor, n *Neighborhood) Correction {
	var c Correction
	start := actor.Position
	cur := n[nCurrent]

	inner := edges{
		cur.Anchor.Y + r.InnerHalf.Y,
		cur.Anchor.X + r.InnerHalf.X,
		cur.Anchor.Y - r.InnerHalf.Y,
		cur.Anchor.X - r.InnerHalf.X,
	}
	body := actorEdges(actor)

	var pen [4]bool
	pen[maze.Top] = body[maze.Top] > inner[maze.Top]+penetrationEpsilon
	pen[maze.Right] = body[maze.Right] > inner[maze.Right]+penetrationEpsilon
	pen[maze.Bottom] = body[maze.Bottom] < inner[maze.Bottom]-penetrationEpsilon
	pen[maze.Left] = body[maze.Left] < inner[maze.Left]-penetrationEpsilon

	for _, d := range maze.Directions {
		if !pen[d] || cur.Tile.IsOpen(d) {
			continue
		}
		snapTo(actor, d, inner[d])
		body = actorEdges(actor)
		pen[d] = false
		c.Walls |= 1 << d
	}

	// Further from the center along Y means the actor sits in a vertical passage, the blocking face is along X
	diff := actor.Position.Sub(cur.Anchor).Abs()
	c.Horizontal = diff.Y > diff.X

	corners := [4]struct {
		bit        uint8
		vert, horz maze.Direction
		blocked    bool
	}{
		{maze.CornerTopLeft, maze.Top, maze.Left, n[nLeft].Tile.IsClosed(maze.Top) || n[nTop].Tile.IsClosed(maze.Left)},
		{maze.CornerBottomLeft, maze.Bottom, maze.Left, n[nLeft].Tile.IsClosed(maze.Bottom) || n[nBottom].Tile.IsClosed(maze.Left)},
		{maze.CornerTopRight, maze.Top, maze.Right, n[nRight].Tile.IsClosed(maze.Top) || n[nTop].Tile.IsClosed(maze.Right)},
		{maze.CornerBottomRight, maze.Bottom, maze.Right, n[nRight].Tile.IsClosed(maze.Bottom) || n[nBottom].Tile.IsClosed(maze.Right)},
	}

	for _, k := range corners {
		if !k.blocked || !pen[k.vert] || !pen[k.horz] {
			continue
		}
		side := k.vert
		if c.Horizontal {
			side = k.horz
		}
		snapTo(actor, side, inner[side])
		body = actorEdges(actor)
		pen[side] = false
		c.Corners |= k.bit
	}

	c.Delta = actor.Position.Sub(start)
	return c
}

// ResolveMaze gathers the materialized tiles around the actor and resolves against them
// The bool is false when the neighborhood was incomplete and nothing was done
func (r Resolver) ResolveMaze(actor *Actor, m *maze.Maze, materialized func(maze.TilePosition) bool) (Correction, bool) {
	center := m.TileAt(actor.Position)

	candidates := make([]NeighborTile, 0, 9)
	for y := center.Y - 1; y <= center.Y+1; y++ {
		for x := center.X - 1; x <= center.X+1; x++ {
			p := maze.TilePosition{X: x, Y: y}
			if !m.InBounds(x, y) {
				// Outside the grid is solid rock
				candidates = append(candidates, NeighborTile{Anchor: m.Anchor(p), Tile: maze.NewTile()})
				continue
			}
			if materialized != nil && !materialized(p) {
				continue
			}
			candidates = append(candidates, NeighborTile{Anchor: m.Anchor(p), Tile: boundedTile(m, p)})
		}
	}

	n, ok := GatherNeighborhood(actor.Position, candidates, parameter.TileExtent)
	if !ok {
		return Correction{}, false
	}
	return r.Resolve(actor, &n), true
}

// boundedTile returns the tile at p with sides facing out of the grid closed
// Border rooms stay open in the maze but are never an exit
func boundedTile(m *maze.Maze, p maze.TilePosition) maze.Tile {
	t := m.Get(p.X, p.Y)
	if p.Y == m.Height-1 {
		t.Close(maze.Top)
	}
	if p.X == m.Width-1 {
		t.Close(maze.Right)
	}
	if p.Y == 0 {
		t.Close(maze.Bottom)
	}
	if p.X == 0 {
		t.Close(maze.Left)
	}
	return t
}
