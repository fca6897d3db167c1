package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/web-bg/vmath"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbUnstreamed = tcell.NewRGBColor(0, 0, 0)       // Tiles not materialized
	RgbWall       = tcell.NewRGBColor(120, 110, 100) // Stone
	RgbFloorA     = tcell.NewRGBColor(44, 40, 36)
	RgbFloorB     = tcell.NewRGBColor(52, 47, 41)
	RgbFloorDot   = tcell.NewRGBColor(80, 72, 62)
	RgbFood       = tcell.NewRGBColor(255, 200, 60)  // Warm gold
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange, same as the normal cursor
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(36, 40, 59)
)

// DarkFactor is applied to cells outside the light radius
const DarkFactor = 0.3

// Scale multiplies every channel of c by f in [0, 1]
func Scale(c tcell.Color, f float64) tcell.Color {
	f = vmath.Clamp(f, 0, 1)
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	return tcell.NewRGBColor(
		int32(float64(r)*f),
		int32(float64(g)*f),
		int32(float64(b)*f),
	)
}

// Lit returns the brightness of a cell at distance d from a light of the given radius
// Full inside half the radius, fading to DarkFactor at the edge and beyond
func Lit(d, radius float64) float64 {
	if radius <= 0 {
		return DarkFactor
	}
	t := d / radius
	switch {
	case t <= 0.5:
		return 1
	case t >= 1:
		return DarkFactor
	}
	return 1 - (1-DarkFactor)*(t-0.5)*2
}
