package parameter

// Tile geometry, world units
const (
	// TileSize is the unscaled tile edge length (sprite pixels)
	TileSize = 32.0

	// TileScale is the world scale applied to every tile
	TileScale = 5.0

	// WallThickness is the unscaled wall inset from the tile border
	WallThickness = 4.0

	// TileExtent is the world-space edge length of one tile
	TileExtent = TileSize * TileScale

	// SubtileSpan is the half width of the sub-tile grid, tiles are drawn as (2*span+1)² sub-tiles
	SubtileSpan = 2

	// SubtileExtent is the world-space edge length of one sub-tile
	SubtileExtent = TileExtent / (2*SubtileSpan + 1)

	// NeighborhoodReach is the per-axis distance, in tile extents, of tiles considered for collision
	NeighborhoodReach = 1.5
)
