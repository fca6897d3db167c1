package parameter

import "time"

const (
	// FrameInterval is the target frame duration (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta fed to systems after stalls
	MaxFrameDelta = 100 * time.Millisecond

	// EventQueueSize is the event ring capacity, oldest events drop beyond it
	EventQueueSize = 64

	// InputDeadzone zeroes axis input with smaller magnitude
	InputDeadzone = 0.05

	// InputHoldWindow keeps a key held after its last press or repeat, terminals report no release
	InputHoldWindow = 150 * time.Millisecond
)
