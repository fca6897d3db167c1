package engine

import (
	"time"

	"github.com/lixenwraith/web-bg/parameter"
)

// System is a per-frame update step
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// World owns the resources and the ordered system list of one session
// Single goroutine: the game loop drives Update, nothing else touches the world
type World struct {
	Resources *Resource
	Router    *EventRouter

	systems []System
}

// NewWorld creates a world around res, the router reads res.Events
func NewWorld(res *Resource) *World {
	return &World{
		Resources: res,
		Router:    NewEventRouter(res.Events),
		systems:   make([]System, 0, 8),
	}
}

// AddSystem adds a system and keeps the list sorted by priority
// Systems that also implement EventHandler are registered with the router
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N), equal priorities keep insertion order
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	if h, ok := system.(EventHandler); ok {
		w.Router.Register(h)
	}
}

// Systems returns a copy of the ordered system list
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Step advances the frame clock by dt, dispatches last frame's events, then runs all systems
// dt is capped at parameter.MaxFrameDelta so a stalled terminal does not tunnel the player through walls
func (w *World) Step(now time.Time, dt time.Duration) {
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	w.Resources.Time.Advance(now, dt)

	w.Router.DispatchAll(w)

	for _, system := range w.systems {
		system.Update()
	}
}
