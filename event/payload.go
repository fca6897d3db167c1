package event

import "github.com/lixenwraith/web-bg/maze"

// FoodEatenPayload carries the tile the food was removed from
type FoodEatenPayload struct {
	Tile  maze.TilePosition
	Score int // Total eaten this session, including this one
}

// TilesStreamedPayload summarizes a streaming pass
type TilesStreamedPayload struct {
	Spawned      int
	Despawned    int
	Materialized int
}

// WallHitPayload mirrors the resolver correction bits
type WallHitPayload struct {
	Walls   uint8
	Corners uint8
}
