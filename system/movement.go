package system

import (
	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/physics"
	"github.com/lixenwraith/web-bg/vmath"
)

// MovementSystem moves the player by the current input
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update() {
	res := s.world.Resources
	player := res.RequirePlayer()

	var dir vmath.Vec2
	if res.Input != nil {
		dir = res.Input.Vec()
	}

	player.Movement.Update(dir)
	player.Actor.Position = physics.Step(player.Actor.Position, dir, player.Speed, res.Time.Delta)
}
