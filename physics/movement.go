package physics

import (
	"time"

	"github.com/lixenwraith/web-bg/vmath"
)

// Movement tracks the facing and walking state used for sprite selection
type Movement struct {
	IsRight   bool
	IsWalking bool
}

// Update records facing from the horizontal input, zero keeps the previous facing
func (m *Movement) Update(dir vmath.Vec2) {
	if dir.X > 0 {
		m.IsRight = true
	} else if dir.X < 0 {
		m.IsRight = false
	}
	m.IsWalking = !dir.IsZero()
}

// Step advances pos by dir scaled with speed over dt, dir components are in [-1, 1]
func Step(pos, dir vmath.Vec2, speed float64, dt time.Duration) vmath.Vec2 {
	return pos.Add(dir.Scale(speed * dt.Seconds()))
}
