package parameter

import "time"

// Player body and movement
const (
	// PlayerSpriteWidth and PlayerSpriteHeight are the unscaled sprite bounds
	PlayerSpriteWidth  = 24.0
	PlayerSpriteHeight = 32.0

	// PlayerScale is the world scale of the player sprite
	PlayerScale = 2.0

	// PlayerHalfWidth and PlayerHalfHeight are the collision half-extents
	PlayerHalfWidth  = PlayerSpriteWidth * PlayerScale / 2
	PlayerHalfHeight = PlayerSpriteHeight * PlayerScale / 2

	// PlayerSpeed is movement in world units per second at full input
	PlayerSpeed = 150.0
)

// Player light
const (
	// LightInitialIntensity is the nominal light intensity, flicker varies in [0.5, 1.0] of it
	LightInitialIntensity = 100_000_000.0

	// LightRange is the lit radius in world units at nominal intensity
	LightRange = 1000.0

	// LightMaxFlickerInterval bounds the random delay between flicker changes
	LightMaxFlickerInterval = 200 * time.Millisecond

	// LightNoiseStep advances the flicker noise sample per change
	LightNoiseStep = 0.37
)
