package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/web-bg/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays gameplay cues through a single speaker mixer
// Every method is safe to call before Initialize or after a failed one, the game runs silent
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker, calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sound reaches the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences everything and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayPickup plays the short food chime
func (sm *SoundManager) PlayPickup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	chime := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(parameter.PickupDuration), NewChimeGenerator(sampleRate, parameter.PickupToneHz, parameter.PickupDuration.Seconds())),
		Base:     2,
		Volume:   parameter.PickupVolume,
	}

	speaker.Lock()
	sm.mixer.Add(chime)
	speaker.Unlock()
}

// ChimeGenerator is a sine with a fifth overtone and exponential decay
type ChimeGenerator struct {
	sr       beep.SampleRate
	freq     float64
	duration float64
	pos      int
}

// NewChimeGenerator builds a chime of freq Hz fading out over duration seconds
func NewChimeGenerator(sr beep.SampleRate, freq, duration float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq, duration: duration}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-5 * t / g.duration)
		v := math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*1.5*t)
		v *= 0.4 * envelope

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
