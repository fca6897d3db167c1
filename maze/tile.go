package maze

// Direction is one of the four tile sides
type Direction uint8

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists all sides in carving order
var Directions = [4]Direction{Top, Right, Bottom, Left}

// Opposite returns the facing side, Top<->Bottom and Right<->Left
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Tile is a bitfield: bits 0-3 set when the Top/Right/Bottom/Left side is closed, bit 4 food
// The zero value is fully open, generated tiles start from NewTile
type Tile uint8

const (
	tileClosedMask Tile = 0x0F
	tileFoodBit    Tile = 1 << 4
)

// NewTile returns a fully closed tile without food
func NewTile() Tile {
	return tileClosedMask
}

func (d Direction) bit() Tile {
	return 1 << d
}

// Open clears the closed bit of side, returns the tile for chaining
func (t *Tile) Open(side Direction) *Tile {
	*t &^= side.bit()
	return t
}

// Close sets the closed bit of side, returns the tile for chaining
func (t *Tile) Close(side Direction) *Tile {
	*t |= side.bit()
	return t
}

func (t Tile) IsOpen(side Direction) bool {
	return t&side.bit() == 0
}

func (t Tile) IsClosed(side Direction) bool {
	return !t.IsOpen(side)
}

// IsFullyClosed reports whether no side is passable
func (t Tile) IsFullyClosed() bool {
	return t&tileClosedMask == tileClosedMask
}

// ClosedBits returns the four side bits in the low nibble
func (t Tile) ClosedBits() uint8 {
	return uint8(t & tileClosedMask)
}

func (t Tile) HasFood() bool {
	return t&tileFoodBit != 0
}

// SetFood updates the food bit, returns false when the tile was already in the requested state
func (t *Tile) SetFood(food bool) bool {
	if t.HasFood() == food {
		return false
	}
	*t ^= tileFoodBit
	return true
}
