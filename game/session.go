package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/web-bg/config"
	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/event"
	"github.com/lixenwraith/web-bg/input"
	"github.com/lixenwraith/web-bg/maze"
	"github.com/lixenwraith/web-bg/metrics"
	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/physics"
	"github.com/lixenwraith/web-bg/system"
	"github.com/lixenwraith/web-bg/vmath"
)

// Options assembles a session, only Config is required
type Options struct {
	Config  config.Config
	Log     logrus.FieldLogger
	Metrics *metrics.Metrics
	Audio   engine.AudioPlayer
	Clock   engine.TimeSource // Defaults to the system clock
}

// Session is one generated maze with a player exploring it
type Session struct {
	World  *engine.World
	Result maze.Result
	Seed   uint64

	clock    engine.TimeSource
	lastTick time.Time

	camera *system.CameraSystem
	stream *system.StreamSystem
}

// NewSession generates the maze and wires every system
// A zero Config.Seed is replaced by a clock-derived one, Session.Seed reports the value used
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}

	gen, err := cfg.GeneratorConfig()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	began := time.Now()
	result := maze.Generate(gen, rng)
	opts.Metrics.ObserveGeneration(result.Mode.String(), time.Since(began))

	m := result.Maze
	start := m.Anchor(result.Start)

	res := &engine.Resource{
		Time: &engine.TimeResource{},
		Maze: m,
		Stream: maze.NewStreamer(m,
			cfg.Stream.VisibleMargin*parameter.TileExtent,
			cfg.Stream.DespawnMargin*parameter.TileExtent,
			cfg.Stream.DespawnPerFrame,
		),
		Player: &engine.PlayerResource{
			Actor: physics.NewPlayerActor(start),
			Speed: cfg.Player.Speed,
		},
		Input:   &input.PlayerInput{},
		Camera:  &engine.CameraResource{Center: start},
		Light:   &engine.LightResource{Intensity: parameter.LightInitialIntensity},
		Food:    engine.NewFoodResource(),
		Events:  event.NewEventQueue(),
		Rng:     rng,
		Log:     opts.Log,
		Metrics: opts.Metrics,
		Audio:   opts.Audio,
	}

	world := engine.NewWorld(res)
	s := &Session{
		World:  world,
		Result: result,
		Seed:   seed,
		clock:  opts.Clock,
		camera: system.NewCameraSystem(world),
		stream: system.NewStreamSystem(world),
	}

	world.AddSystem(system.NewMovementSystem(world))
	world.AddSystem(system.NewCollisionSystem(world))
	world.AddSystem(system.NewFoodSystem(world))
	world.AddSystem(system.NewLightSystem(world, int64(seed)))
	world.AddSystem(s.camera)
	world.AddSystem(s.stream)
	world.AddSystem(system.NewFeedbackSystem(world))

	res.Logger("session").WithFields(logrus.Fields{
		"seed":    seed,
		"mode":    result.Mode.String(),
		"visited": result.Visited,
		"rooms":   len(result.Rooms),
		"elapsed": time.Since(began),
	}).Info("maze generated")

	s.prime()
	s.lastTick = opts.Clock.Now()
	return s, nil
}

// SetViewport resizes the camera and streams in whatever became visible
func (s *Session) SetViewport(half vmath.Vec2) {
	s.World.Resources.Camera.HalfExtents = half
	s.prime()
}

// prime centers the camera and materializes the view so the next frame collides against real tiles
func (s *Session) prime() {
	s.camera.Update()
	s.stream.Update()
}

// Step runs one frame with the given input
func (s *Session) Step(now time.Time, dt time.Duration, in input.PlayerInput) {
	began := time.Now()

	*s.World.Resources.Input = in
	s.World.Step(now, dt)

	s.World.Resources.Metrics.ObserveFrame(time.Since(began))
}

// Tick steps one frame at the clock's current time, dt is measured from the previous tick
func (s *Session) Tick(in input.PlayerInput) {
	now := s.clock.Now()
	dt := now.Sub(s.lastTick)
	s.lastTick = now
	s.Step(now, dt, in)
}

// Resources exposes the session state to the renderer
func (s *Session) Resources() *engine.Resource {
	return s.World.Resources
}

// Score is the number of food items eaten
func (s *Session) Score() int {
	return s.World.Resources.Food.Eaten
}
