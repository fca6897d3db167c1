package system

import (
	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/parameter"
)

// CameraSystem centers the view on the player
type CameraSystem struct {
	world *engine.World
}

func NewCameraSystem(world *engine.World) *CameraSystem {
	return &CameraSystem{world: world}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update() {
	res := s.world.Resources
	if res.Camera == nil {
		return
	}
	res.Camera.Center = res.RequirePlayer().Actor.Position
}
