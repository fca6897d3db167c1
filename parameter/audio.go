package parameter

import "time"

const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// PickupToneHz is the pitch of the food pickup chime
	PickupToneHz = 880

	// PickupDuration is the length of the food pickup chime
	PickupDuration = 80 * time.Millisecond

	// PickupVolume is the chime gain in beep/effects.Volume units (base 2)
	PickupVolume = -2.0
)
