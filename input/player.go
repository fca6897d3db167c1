package input

import (
	"math"

	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/vmath"
)

// PlayerInput is the per-frame movement request, both axes in [-1, 1]
// Up is positive toward the top of the maze, Right toward the right
type PlayerInput struct {
	Up    float64
	Right float64
}

// Normalize zeroes axes inside the deadzone and clamps the rest to [-1, 1]
func Normalize(up, right float64) PlayerInput {
	return PlayerInput{Up: normalizeAxis(up), Right: normalizeAxis(right)}
}

func normalizeAxis(v float64) float64 {
	if math.IsNaN(v) || math.Abs(v) < parameter.InputDeadzone {
		return 0
	}
	return vmath.Clamp(v, -1, 1)
}

// IsMoving reports whether either axis is non-zero
func (p PlayerInput) IsMoving() bool {
	return p.Up != 0 || p.Right != 0
}

// Vec returns the input as a world-space direction
func (p PlayerInput) Vec() vmath.Vec2 {
	return vmath.Vec2{X: p.Right, Y: p.Up}
}
