package system

import (
	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/event"
	"github.com/lixenwraith/web-bg/maze"
	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/physics"
)

// CollisionSystem keeps the player inside open space after movement
type CollisionSystem struct {
	world    *engine.World
	resolver physics.Resolver
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{
		world:    world,
		resolver: physics.DefaultResolver(),
	}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update() {
	res := s.world.Resources
	player := res.RequirePlayer()
	m := res.RequireMaze()

	var materialized func(p maze.TilePosition) bool
	if res.Stream != nil {
		materialized = res.Stream.IsMaterialized
	}

	c, ok := s.resolver.ResolveMaze(&player.Actor, m, materialized)
	if !ok {
		// Neighborhood not streamed in yet
		return
	}
	player.LastCorrection = c

	if c.Applied() {
		res.Emit(event.EventWallHit, &event.WallHitPayload{Walls: c.Walls, Corners: c.Corners})
	}
}
