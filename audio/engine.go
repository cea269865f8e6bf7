// Package audio synthesizes the game's sound effects with beep.
// Every effect is a short generated tone; there are no sample assets.
// When the speaker cannot be initialized the engine degrades to a
// silent no-op instead of failing the game
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/seltf/shape-game/core"
)

const sampleRate = beep.SampleRate(44100)

// effect describes one synthesized sound
type effect struct {
	freq     float64
	sweep    float64
	volume   float64
	duration time.Duration
}

// effectTable maps each sound id to its synth parameters
var effectTable = [core.SoundCount]effect{
	core.SoundFire:         {freq: 880, sweep: -440, volume: 0.25, duration: 80 * time.Millisecond},
	core.SoundHit:          {freq: 330, sweep: -110, volume: 0.30, duration: 60 * time.Millisecond},
	core.SoundKill:         {freq: 520, sweep: 260, volume: 0.30, duration: 120 * time.Millisecond},
	core.SoundShrapnel:     {freq: 1320, sweep: -880, volume: 0.20, duration: 70 * time.Millisecond},
	core.SoundShieldBlock:  {freq: 220, sweep: 110, volume: 0.35, duration: 100 * time.Millisecond},
	core.SoundShieldDown:   {freq: 220, sweep: -160, volume: 0.40, duration: 250 * time.Millisecond},
	core.SoundWellDetonate: {freq: 110, sweep: -70, volume: 0.45, duration: 400 * time.Millisecond},
	core.SoundLevelUp:      {freq: 660, sweep: 660, volume: 0.35, duration: 300 * time.Millisecond},
	core.SoundPlayerHurt:   {freq: 180, sweep: -90, volume: 0.40, duration: 200 * time.Millisecond},
	core.SoundDash:         {freq: 990, sweep: 440, volume: 0.20, duration: 60 * time.Millisecond},
	core.SoundGameOver:     {freq: 440, sweep: -330, volume: 0.45, duration: 800 * time.Millisecond},
}

// Engine implements the AudioPlayer interface over a beep mixer
type Engine struct {
	mixer    *beep.Mixer
	muted    atomic.Bool
	disabled atomic.Bool
}

// NewEngine initializes the speaker and starts the mixer.
// Initialization failure returns a working engine in silent mode
func NewEngine(enabled bool) *Engine {
	e := &Engine{mixer: &beep.Mixer{}}
	e.muted.Store(!enabled)

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		e.disabled.Store(true)
		return e
	}
	speaker.Play(e.mixer)
	return e
}

// Play queues a sound effect. Returns false when dropped
func (e *Engine) Play(sound core.SoundType) bool {
	if e.disabled.Load() || e.muted.Load() {
		return false
	}
	if sound <= core.SoundNone || sound >= core.SoundCount {
		return false
	}
	fx := effectTable[sound]
	if fx.duration == 0 {
		return false
	}

	streamer := newTone(fx.freq, fx.sweep, fx.volume, sampleRate.N(fx.duration))
	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute flag and returns the new state
func (e *Engine) ToggleMute() bool {
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the mute flag
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsDisabled reports whether the speaker failed to initialize
func (e *Engine) IsDisabled() bool {
	return e.disabled.Load()
}

// Close silences the mixer
func (e *Engine) Close() {
	if e.disabled.Load() {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
}
