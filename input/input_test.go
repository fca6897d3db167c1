package input

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		up, right float64
		want      PlayerInput
	}{
		{"zero", 0, 0, PlayerInput{}},
		{"deadzone", 0.04, -0.049, PlayerInput{}},
		{"at deadzone", 0.05, -0.05, PlayerInput{Up: 0.05, Right: -0.05}},
		{"pass through", 0.5, -0.75, PlayerInput{Up: 0.5, Right: -0.75}},
		{"clamp", 3, -2, PlayerInput{Up: 1, Right: -1}},
		{"nan", math.NaN(), 1, PlayerInput{Right: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.up, tt.right)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.IsMoving(), got.IsMoving())
		})
	}
}

func TestPlayerInputVec(t *testing.T) {
	p := PlayerInput{Up: 1, Right: -0.5}
	v := p.Vec()
	assert.Equal(t, -0.5, v.X)
	assert.Equal(t, 1.0, v.Y)
	assert.True(t, p.IsMoving())
	assert.False(t, PlayerInput{}.IsMoving())
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestPollerHoldWindow(t *testing.T) {
	p := NewPoller(150 * time.Millisecond)
	t0 := time.Unix(10, 0)

	assert.Equal(t, ActionMove, p.Handle(runeKey('w'), t0))
	assert.Equal(t, ActionMove, p.Handle(key(tcell.KeyRight), t0))

	assert.Equal(t, PlayerInput{Up: 1, Right: 1}, p.Input(t0.Add(100*time.Millisecond)))
	assert.Equal(t, PlayerInput{}, p.Input(t0.Add(150*time.Millisecond)))
}

func TestPollerOppositeKeysCancel(t *testing.T) {
	p := NewPoller(time.Second)
	now := time.Unix(0, 0)
	p.Handle(runeKey('a'), now)
	p.Handle(runeKey('D'), now)
	p.Handle(key(tcell.KeyDown), now)

	assert.Equal(t, PlayerInput{Up: -1}, p.Input(now))

	p.Release()
	assert.False(t, p.Input(now).IsMoving())
}

func TestPollerActions(t *testing.T) {
	p := NewPoller(time.Second)
	now := time.Now()

	assert.Equal(t, ActionQuit, p.Handle(key(tcell.KeyEscape), now))
	assert.Equal(t, ActionQuit, p.Handle(key(tcell.KeyCtrlC), now))
	assert.Equal(t, ActionQuit, p.Handle(runeKey('q'), now))
	assert.Equal(t, ActionNone, p.Handle(runeKey('x'), now))
	assert.Equal(t, ActionNone, p.Handle(key(tcell.KeyTab), now))
	assert.Equal(t, ActionResize, p.Handle(tcell.NewEventResize(80, 24), now))
}
