package system

import (
	"time"

	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/vmath"
)

// LightSystem flickers the player light at random intervals
type LightSystem struct {
	world *engine.World
	noise *vmath.Noise
}

// NewLightSystem samples flicker strength from a noise curve seeded with seed
func NewLightSystem(world *engine.World, seed int64) *LightSystem {
	return &LightSystem{
		world: world,
		noise: vmath.NewNoise(seed),
	}
}

func (s *LightSystem) Name() string {
	return "light"
}

func (s *LightSystem) Priority() int {
	return parameter.PriorityLight
}

func (s *LightSystem) Update() {
	res := s.world.Resources
	light := res.Light
	if light == nil {
		return
	}

	light.Remaining -= res.Time.Delta
	if light.Remaining > 0 {
		return
	}

	rng := res.Rng
	light.NoiseT += parameter.LightNoiseStep * (1 + rng.Float64())
	r := s.noise.At1D(light.NoiseT)

	// Strength in [0.5, 1] of nominal
	light.Intensity = parameter.LightInitialIntensity * (r + 1) / 2
	light.Remaining = time.Duration(rng.Float64() * float64(parameter.LightMaxFlickerInterval))
}

// LightRadius returns the lit world radius for the current intensity
func LightRadius(light *engine.LightResource) float64 {
	if light == nil {
		return parameter.LightRange
	}
	return parameter.LightRange * light.Intensity / parameter.LightInitialIntensity
}
