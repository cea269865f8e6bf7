package engine

import (
	"sync"
	"time"

	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/weapon"
)

// Resource bundles global singletons shared by systems
type Resource struct {
	Time     *TimeResource
	Config   *ConfigResource
	Input    *InputResource
	Player   *PlayerResource
	Weapon   *WeaponResource
	Progress *ProgressResource
	Audio    *AudioResource
}

func newResource() *Resource {
	return &Resource{
		Time:     &TimeResource{},
		Config:   &ConfigResource{},
		Input:    &InputResource{},
		Player:   &PlayerResource{},
		Weapon:   &WeaponResource{Stats: weapon.BaseStats()},
		Progress: NewProgressResource(),
		Audio:    &AudioResource{},
	}
}

// TimeResource tracks simulation time; updated in place once per tick
type TimeResource struct {
	GameTime    time.Duration // Elapsed simulation time
	RealTime    time.Time     // Wall clock at tick start
	DeltaTime   time.Duration // Fixed tick interval
	FrameNumber uint64
}

// Update advances the time resource for the next tick
func (t *TimeResource) Update(real time.Time, delta time.Duration) {
	t.GameTime += delta
	t.RealTime = real
	t.DeltaTime = delta
	t.FrameNumber++
}

// ConfigResource holds the arena and run configuration
type ConfigResource struct {
	Width      float64
	Height     float64
	Seed       uint64
	StartLevel int
}

// InputResource carries shell input into the simulation.
// The shell writes from its event loop; systems read during the tick.
// Fire and Dash are edge-triggered and cleared on consume
type InputResource struct {
	mu           sync.Mutex
	axisX, axisY float64
	firePressed  bool
	dashPressed  bool
	aimX, aimY   float64
	aimValid     bool
}

// SetAxes stores the movement axes (-1, 0, +1 per axis)
func (in *InputResource) SetAxes(x, y float64) {
	in.mu.Lock()
	in.axisX, in.axisY = x, y
	in.mu.Unlock()
}

// PressFire arms the fire trigger, optionally with an aim point
func (in *InputResource) PressFire(aimX, aimY float64, aimValid bool) {
	in.mu.Lock()
	in.firePressed = true
	in.aimX, in.aimY = aimX, aimY
	in.aimValid = aimValid
	in.mu.Unlock()
}

// PressDash arms the dash trigger
func (in *InputResource) PressDash() {
	in.mu.Lock()
	in.dashPressed = true
	in.mu.Unlock()
}

// Axes returns the current movement axes
func (in *InputResource) Axes() (x, y float64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.axisX, in.axisY
}

// ConsumeFire returns and clears the fire trigger
func (in *InputResource) ConsumeFire() (pressed bool, aimX, aimY float64, aimValid bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	pressed = in.firePressed
	in.firePressed = false
	return pressed, in.aimX, in.aimY, in.aimValid
}

// ConsumeDash returns and clears the dash trigger
func (in *InputResource) ConsumeDash() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	pressed := in.dashPressed
	in.dashPressed = false
	return pressed
}

// Reset clears all input state
func (in *InputResource) Reset() {
	in.mu.Lock()
	in.axisX, in.axisY = 0, 0
	in.firePressed = false
	in.dashPressed = false
	in.aimValid = false
	in.mu.Unlock()
}

// PlayerResource identifies the player entity
type PlayerResource struct {
	Entity core.Entity
}

// WeaponResource holds the owned upgrade multiset and its compiled stats
type WeaponResource struct {
	Owned []weapon.UpgradeID
	Stats weapon.Stats
}

// AddUpgrade appends an upgrade and recompiles stats
func (w *WeaponResource) AddUpgrade(id weapon.UpgradeID) {
	w.Owned = append(w.Owned, id)
	w.Stats = weapon.Compute(w.Owned)
}

// Reset restores the base weapon
func (w *WeaponResource) Reset() {
	w.Owned = w.Owned[:0]
	w.Stats = weapon.BaseStats()
}

// ProgressResource tracks XP, level, and score
type ProgressResource struct {
	XP          int
	Level       int
	NextLevelXP int
	Score       int
	Kills       int
}

func NewProgressResource() *ProgressResource {
	p := &ProgressResource{}
	p.Reset()
	return p
}

// Reset restores run-start progression
func (p *ProgressResource) Reset() {
	p.XP = 0
	p.Level = 0
	p.NextLevelXP = parameter.XPBaseThreshold
	p.Score = 0
	p.Kills = 0
}

// AddXP accumulates XP and returns true for each level crossed
func (p *ProgressResource) AddXP(amount int, growth float64) (leveled bool) {
	p.XP += amount
	for p.XP >= p.NextLevelXP {
		p.XP -= p.NextLevelXP
		p.Level++
		p.NextLevelXP = int(float64(p.NextLevelXP) * growth)
		leveled = true
	}
	return leveled
}

// AudioPlayer is the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource bridges the audio backend into the ECS
// Player is nil when audio is unavailable
type AudioResource struct {
	Player AudioPlayer
}
