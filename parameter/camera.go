package parameter

// Tile streaming around the camera
// Visible margin must stay below despawn margin, the gap is the hysteresis band
const (
	// StreamVisibleMarginTiles expands the viewport for materialization, in tiles
	StreamVisibleMarginTiles = 1.0

	// StreamDespawnMarginTiles expands the viewport for dematerialization, in tiles
	StreamDespawnMarginTiles = 3.0

	// StreamDespawnPerFrame caps tiles removed per frame
	StreamDespawnPerFrame = 1
)

// Terminal projection
const (
	// RenderColumnsPerSubtile compensates for terminal cells being roughly twice as tall as wide
	RenderColumnsPerSubtile = 2

	// RenderRowsPerSubtile is the number of terminal rows per sub-tile
	RenderRowsPerSubtile = 1
)

// Floor shading
const (
	// FloorNoiseScale converts sub-tile coordinates to noise space, smaller is smoother
	FloorNoiseScale = 0.35

	// FloorVariantThreshold splits floor noise between the two floor glyphs
	FloorVariantThreshold = 0.5
)
