package maze

// Edge descriptor bits
// Low nibble mirrors the closed sides, high nibble marks diagonal corners blocked by a neighbor
const (
	EdgeTop    uint8 = 1 << 0
	EdgeRight  uint8 = 1 << 1
	EdgeBottom uint8 = 1 << 2
	EdgeLeft   uint8 = 1 << 3

	CornerTopLeft     uint8 = 1 << 4
	CornerTopRight    uint8 = 1 << 5
	CornerBottomLeft  uint8 = 1 << 6
	CornerBottomRight uint8 = 1 << 7

	edgeSideMask uint8 = 0x0F
)

// EdgeBits derives the 8-bit render descriptor of (x, y)
// A corner is blocked when an orthogonal neighbor closes the side facing that corner,
// e.g. top-left: the left neighbor's Top or the top neighbor's Left
// Border tiles only report their own sides
func (m *Maze) EdgeBits(x, y int) uint8 {
	tile := m.Get(x, y)
	bits := tile.ClosedBits()

	if x == 0 || y == 0 || x == m.Width-1 || y == m.Height-1 {
		return bits
	}

	left := m.Get(x-1, y)
	right := m.Get(x+1, y)
	top := m.Get(x, y+1)
	bottom := m.Get(x, y-1)

	if left.IsClosed(Top) || top.IsClosed(Left) {
		bits |= CornerTopLeft
	}
	if right.IsClosed(Top) || top.IsClosed(Right) {
		bits |= CornerTopRight
	}
	if left.IsClosed(Bottom) || bottom.IsClosed(Left) {
		bits |= CornerBottomLeft
	}
	if right.IsClosed(Bottom) || bottom.IsClosed(Right) {
		bits |= CornerBottomRight
	}
	return bits
}

// SubtileIsWall classifies sub-tile (sx, sy) in [-SubtileSpan, SubtileSpan]² of (x, y)
func (m *Maze) SubtileIsWall(x, y, sx, sy int) bool {
	return ClassifySubtile(m.EdgeBits(x, y), sx, sy)
}

// ClassifySubtile reports whether a sub-tile of a 5x5 tile is wall given its edge descriptor
// Only the outer ring can be wall; the inner 3x3 is floor unless the tile is fully closed
func ClassifySubtile(bits uint8, sx, sy int) bool {
	if bits&edgeSideMask == edgeSideMask {
		return true
	}

	has := func(b uint8) bool { return bits&b != 0 }
	inner := func(v int) bool { return v >= -1 && v <= 1 }

	switch {
	case sy == 2 && inner(sx):
		return has(EdgeTop)
	case sx == 2 && inner(sy):
		return has(EdgeRight)
	case sy == -2 && inner(sx):
		return has(EdgeBottom)
	case sx == -2 && inner(sy):
		return has(EdgeLeft)
	case sx == -2 && sy == 2:
		return has(EdgeTop) || has(EdgeLeft) || has(CornerTopLeft)
	case sx == 2 && sy == 2:
		return has(EdgeTop) || has(EdgeRight) || has(CornerTopRight)
	case sx == -2 && sy == -2:
		return has(EdgeBottom) || has(EdgeLeft) || has(CornerBottomLeft)
	case sx == 2 && sy == -2:
		return has(EdgeBottom) || has(EdgeRight) || has(CornerBottomRight)
	}
	return false
}
