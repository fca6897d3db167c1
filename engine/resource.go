package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/web-bg/event"
	"github.com/lixenwraith/web-bg/input"
	"github.com/lixenwraith/web-bg/maze"
	"github.com/lixenwraith/web-bg/metrics"
	"github.com/lixenwraith/web-bg/physics"
	"github.com/lixenwraith/web-bg/vmath"
)

// Resource holds the singletons of one session, accessed by systems via World.Resources
type Resource struct {
	Time   *TimeResource
	Maze   *maze.Maze
	Stream *maze.Streamer
	Player *PlayerResource
	Input  *input.PlayerInput
	Camera *CameraResource
	Light  *LightResource
	Food   *FoodResource
	Events *event.EventQueue
	Rng    *vmath.FastRand

	// Optional collaborators, nil disables them
	Log     logrus.FieldLogger
	Metrics *metrics.Metrics
	Audio   AudioPlayer
}

// RequirePlayer returns the player or panics, a session without one is mis-wired
func (r *Resource) RequirePlayer() *PlayerResource {
	if r.Player == nil {
		panic("engine: player resource missing")
	}
	return r.Player
}

// RequireMaze returns the maze or panics
func (r *Resource) RequireMaze() *maze.Maze {
	if r.Maze == nil {
		panic("engine: maze resource missing")
	}
	return r.Maze
}

// Emit queues an event stamped with the current frame
func (r *Resource) Emit(t event.EventType, payload any) {
	if r.Events == nil {
		return
	}
	r.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: r.Time.FrameNumber})
}

// Logger returns a component-scoped logger, discarding when none is configured
func (r *Resource) Logger(component string) logrus.FieldLogger {
	if r.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		return l.WithField("component", component)
	}
	return r.Log.WithField("component", component)
}

// AudioPlayer is the sound output used for gameplay cues
type AudioPlayer interface {
	PlayPickup()
}

// TimeResource is updated once at the start of every frame
type TimeResource struct {
	Now         time.Time
	Delta       time.Duration
	Elapsed     time.Duration
	FrameNumber int64
}

// Advance moves the clock to now with delta dt
func (tr *TimeResource) Advance(now time.Time, dt time.Duration) {
	tr.Now = now
	tr.Delta = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// PlayerResource is the controlled actor
type PlayerResource struct {
	Actor    physics.Actor
	Movement physics.Movement
	Speed    float64

	// Last resolver result, for rendering and diagnostics
	LastCorrection physics.Correction
}

// CameraResource describes the world-space view
type CameraResource struct {
	Center vmath.Vec2

	// HalfExtents is half the visible world area, derived from the terminal size
	HalfExtents vmath.Vec2
}

// View returns the visible world rectangle
func (c *CameraResource) View() maze.Rect {
	return maze.RectAround(c.Center, c.HalfExtents)
}

// LightResource is the player's flickering light
type LightResource struct {
	Intensity float64

	// Remaining time until the next flicker
	Remaining time.Duration

	// NoiseT is the position along the flicker noise curve
	NoiseT float64
}

// FoodResource tracks collectible presentation and score
type FoodResource struct {
	// Alpha per materialized food tile, in [0, 1]
	Alpha map[maze.TilePosition]float64

	// Variant is the glyph variant picked when the food tile materialized
	Variant map[maze.TilePosition]int

	Eaten int
}

func NewFoodResource() *FoodResource {
	return &FoodResource{
		Alpha:   make(map[maze.TilePosition]float64),
		Variant: make(map[maze.TilePosition]int),
	}
}

// Forget drops presentation state of a tile that left the view or lost its food
func (f *FoodResource) Forget(p maze.TilePosition) {
	delete(f.Alpha, p)
	delete(f.Variant, p)
}
