package system

import (
	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/event"
	"github.com/lixenwraith/web-bg/parameter"
)

// StreamSystem materializes tiles around the camera
type StreamSystem struct {
	world *engine.World
}

func NewStreamSystem(world *engine.World) *StreamSystem {
	return &StreamSystem{world: world}
}

func (s *StreamSystem) Name() string {
	return "stream"
}

func (s *StreamSystem) Priority() int {
	return parameter.PriorityStream
}

func (s *StreamSystem) Update() {
	res := s.world.Resources
	if res.Stream == nil || res.Camera == nil {
		return
	}
	m := res.RequireMaze()

	spawn, despawn := res.Stream.Update(res.Camera.View())
	if len(spawn) == 0 && len(despawn) == 0 {
		return
	}

	if res.Food != nil {
		for _, p := range spawn {
			if m.Get(p.X, p.Y).HasFood() {
				res.Food.Variant[p] = res.Rng.Intn(parameter.FoodVariants)
			}
		}
		for _, p := range despawn {
			res.Food.Forget(p)
		}
	}

	res.Emit(event.EventTilesStreamed, &event.TilesStreamedPayload{
		Spawned:      len(spawn),
		Despawned:    len(despawn),
		Materialized: res.Stream.Count(),
	})
}
