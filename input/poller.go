package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Action is the result of feeding one terminal event to the Poller
type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionQuit
	ActionResize
)

// Poller turns tcell key events into held-key state
// Terminals never report key release, a key counts as held until
// HoldWindow elapses without a new press or auto-repeat
type Poller struct {
	HoldWindow time.Duration

	lastPress map[Key]time.Time
}

// Key is a logical movement key, WASD and arrows map onto the same four
type Key uint8

const (
	KeyUp Key = iota
	KeyRight
	KeyDown
	KeyLeft
)

// NewPoller creates a poller with the given hold window
func NewPoller(hold time.Duration) *Poller {
	return &Poller{
		HoldWindow: hold,
		lastPress:  make(map[Key]time.Time, 4),
	}
}

var runeKeys = map[rune]Key{
	'w': KeyUp, 'W': KeyUp,
	'd': KeyRight, 'D': KeyRight,
	's': KeyDown, 'S': KeyDown,
	'a': KeyLeft, 'A': KeyLeft,
}

var specialKeys = map[tcell.Key]Key{
	tcell.KeyUp:    KeyUp,
	tcell.KeyRight: KeyRight,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
}

// Handle records a terminal event received at now
func (p *Poller) Handle(ev tcell.Event, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
			return ActionQuit
		}
		if ev.Key() == tcell.KeyRune {
			if ev.Rune() == 'q' {
				return ActionQuit
			}
			if k, ok := runeKeys[ev.Rune()]; ok {
				p.lastPress[k] = now
				return ActionMove
			}
			return ActionNone
		}
		if k, ok := specialKeys[ev.Key()]; ok {
			p.lastPress[k] = now
			return ActionMove
		}
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

// Held reports whether k was pressed within the hold window before now
func (p *Poller) Held(k Key, now time.Time) bool {
	t, ok := p.lastPress[k]
	return ok && now.Sub(t) < p.HoldWindow
}

// Input sums held keys into a normalized PlayerInput
// Opposite keys cancel out
func (p *Poller) Input(now time.Time) PlayerInput {
	var up, right float64
	if p.Held(KeyUp, now) {
		up++
	}
	if p.Held(KeyDown, now) {
		up--
	}
	if p.Held(KeyRight, now) {
		right++
	}
	if p.Held(KeyLeft, now) {
		right--
	}
	return Normalize(up, right)
}

// Release forgets every held key
func (p *Poller) Release() {
	clear(p.lastPress)
}
