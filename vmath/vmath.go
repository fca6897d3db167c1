package vmath

import "math"

// Vec2 is a world-space vector, Y grows upward
type Vec2 struct {
	X, Y float64
}

// Splat returns a vector with both components set to v
func Splat(v float64) Vec2 { return Vec2{X: v, Y: v} }

func (v Vec2) Add(o Vec2) Vec2           { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2           { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2      { return Vec2{X: v.X * f, Y: v.Y * f} }
func (v Vec2) Mul(o Vec2) Vec2           { return Vec2{X: v.X * o.X, Y: v.Y * o.Y} }
func (v Vec2) Abs() Vec2                 { return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)} }
func (v Vec2) LengthSq() float64         { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Length() float64           { return math.Sqrt(v.LengthSq()) }
func (v Vec2) DistanceSq(o Vec2) float64 { return v.Sub(o).LengthSq() }

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt limits x to [lo, hi]
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
