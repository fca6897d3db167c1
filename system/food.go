package system

import (
	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/event"
	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/vmath"
)

// FoodSystem eats food under the player and fades the rest with distance
type FoodSystem struct {
	world *engine.World
}

func NewFoodSystem(world *engine.World) *FoodSystem {
	return &FoodSystem{world: world}
}

func (s *FoodSystem) Name() string {
	return "food"
}

func (s *FoodSystem) Priority() int {
	return parameter.PriorityFood
}

func (s *FoodSystem) Update() {
	res := s.world.Resources
	if res.Stream == nil || res.Food == nil {
		return
	}
	m := res.RequireMaze()
	pos := res.RequirePlayer().Actor.Position

	clear(res.Food.Alpha)
	eaten := false

	for _, p := range res.Stream.Materialized() {
		tile := m.At(p.X, p.Y)
		if !tile.HasFood() {
			continue
		}

		d2 := m.Anchor(p).DistanceSq(pos)

		// At most one per frame
		if !eaten && d2 < parameter.FoodEatingThreshold {
			tile.SetFood(false)
			res.Food.Forget(p)
			res.Food.Eaten++
			eaten = true
			res.Emit(event.EventFoodEaten, &event.FoodEatenPayload{Tile: p, Score: res.Food.Eaten})
			continue
		}

		res.Food.Alpha[p] = foodAlpha(d2)
	}
}

// foodAlpha fades food with squared distance d2
func foodAlpha(d2 float64) float64 {
	if d2 <= 0 {
		return 1
	}
	return vmath.Clamp(parameter.FoodDimNumerator/d2, 0, 1)
}
