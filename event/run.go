package event

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// RunKind enumerates process lifecycle milestones
type RunKind uint8

const (
	// RunLoaded fires near the start of main with the game name
	RunLoaded RunKind = iota
	// RunInitialized fires after world setup
	RunInitialized
	// RunStarted fires once a frame has been presented
	RunStarted
	// RunPanicked fires from the crash handler
	RunPanicked

	runKindCount
)

// RunEvent is one lifecycle milestone
type RunEvent struct {
	Kind    RunKind
	Game    string        // RunLoaded only
	Elapsed time.Duration // Since lifecycle creation, RunInitialized and RunStarted
	Panic   string        // RunPanicked only
}

// Name returns the external event name
func (e RunEvent) Name() string {
	switch e.Kind {
	case RunLoaded:
		return "web-bg-load"
	case RunInitialized:
		return "web-bg-init"
	case RunStarted:
		return "web-bg-start"
	case RunPanicked:
		return "web-bg-panic"
	default:
		return "web-bg-unknown"
	}
}

func (e RunEvent) String() string {
	switch e.Kind {
	case RunLoaded:
		return fmt.Sprintf("web-bg loaded, starting '%s'", e.Game)
	case RunInitialized:
		return fmt.Sprintf("web-bg initialized in %d ms", e.Elapsed.Milliseconds())
	case RunStarted:
		return fmt.Sprintf("web-bg started in %d ms", e.Elapsed.Milliseconds())
	case RunPanicked:
		if e.Panic == "" {
			return "web-bg panicked"
		}
		return "web-bg panicked:\n" + e.Panic
	default:
		return e.Name()
	}
}

// Lifecycle fires each RunKind at most once
// Started ignores its first call so that it reports after a frame was actually shown
// Safe for concurrent use, the crash handler may run on another goroutine
type Lifecycle struct {
	mu      sync.Mutex
	now     func() time.Time
	start   time.Time
	fired   [runKindCount]bool
	skipped bool
	log     logrus.FieldLogger

	// OnEvent, when set, receives every fired event after logging
	OnEvent func(RunEvent)
}

// NewLifecycle starts the startup clock, now defaults to time.Now
func NewLifecycle(log logrus.FieldLogger, now func() time.Time) *Lifecycle {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Lifecycle{
		now:   now,
		start: now(),
		log:   log.WithField("component", "lifecycle"),
	}
}

func (l *Lifecycle) Loaded(game string) bool {
	return l.fire(RunEvent{Kind: RunLoaded, Game: game})
}

func (l *Lifecycle) Initialized() bool {
	return l.fire(RunEvent{Kind: RunInitialized})
}

// Started must be called every frame, it fires on the second call
func (l *Lifecycle) Started() bool {
	l.mu.Lock()
	if !l.skipped {
		l.skipped = true
		l.mu.Unlock()
		return false
	}
	l.mu.Unlock()
	return l.fire(RunEvent{Kind: RunStarted})
}

func (l *Lifecycle) Panicked(info string) bool {
	return l.fire(RunEvent{Kind: RunPanicked, Panic: info})
}

// Fired reports whether kind already fired
func (l *Lifecycle) Fired(kind RunKind) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return kind < runKindCount && l.fired[kind]
}

func (l *Lifecycle) fire(ev RunEvent) bool {
	l.mu.Lock()
	if l.fired[ev.Kind] {
		l.mu.Unlock()
		return false
	}
	l.fired[ev.Kind] = true
	if ev.Kind == RunInitialized || ev.Kind == RunStarted {
		ev.Elapsed = l.now().Sub(l.start)
	}
	hook := l.OnEvent
	l.mu.Unlock()

	entry := l.log.WithField("event", ev.Name())
	if ev.Kind == RunPanicked {
		entry.Error(ev.String())
	} else {
		entry.Info(ev.String())
	}

	if hook != nil {
		hook(ev)
	}
	return true
}
