package system

import (
	"time"

	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/core"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/vmath"
)

// SpawnSystem owns the enemy population: the initial wave and the
// periodic respawn batches. All counts and the variant mix scale with
// the effective level (run level plus the configured start level)
type SpawnSystem struct {
	world *engine.World
	rng   *vmath.FastRand

	nextRespawnAt time.Duration
}

func NewSpawnSystem(world *engine.World, seed uint64) *SpawnSystem {
	s := &SpawnSystem{
		world: world,
		rng:   vmath.NewFastRand(seed),
	}
	s.Init()
	return s
}

// Init clears the population and places the initial wave
func (s *SpawnSystem) Init() {
	w := s.world

	w.DestroyBatch(w.Component.Enemy.All())

	level := s.effectiveLevel()
	count := scaledCount(parameter.InitialEnemyCount, parameter.InitialCountPerLevel, level)
	for i := 0; i < count; i++ {
		s.spawnEnemy(level)
	}
	s.nextRespawnAt = w.Resource.Time.GameTime + s.respawnInterval()
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *SpawnSystem) Update() {
	w := s.world

	now := w.Resource.Time.GameTime
	if now < s.nextRespawnAt {
		return
	}
	s.nextRespawnAt = now + s.respawnInterval()

	level := s.effectiveLevel()
	maxCount := scaledCount(parameter.MaxEnemyCount, parameter.MaxCountPerLevel, level)
	alive := w.Component.Enemy.Count()
	if alive >= maxCount {
		return
	}

	batch := scaledCount(parameter.RespawnBatchSize, parameter.RespawnBatchPerLevel, level)
	if alive+batch > maxCount {
		batch = maxCount - alive
	}
	for i := 0; i < batch; i++ {
		s.spawnEnemy(level)
	}
}

func (s *SpawnSystem) effectiveLevel() int {
	return s.world.Resource.Progress.Level + s.world.Resource.Config.StartLevel
}

// respawnInterval shrinks as the run goes on
func (s *SpawnSystem) respawnInterval() time.Duration {
	minutes := s.world.Resource.Time.GameTime / time.Minute
	interval := parameter.RespawnInterval - time.Duration(minutes)*parameter.RespawnIntervalPerMinute
	if interval < parameter.RespawnIntervalMin {
		interval = parameter.RespawnIntervalMin
	}
	return interval
}

func scaledCount(base int, perLevel float64, level int) int {
	return int(float64(base) * (1 + perLevel*float64(level)))
}

// spawnEnemy places one enemy in the margin band just outside the arena
func (s *SpawnSystem) spawnEnemy(level int) {
	w := s.world

	width := w.Resource.Config.Width
	height := w.Resource.Config.Height

	var x, y float64
	switch s.rng.Intn(4) {
	case 0: // left
		x = -s.rng.Range(0, parameter.SpawnMargin)
		y = s.rng.Range(0, height)
	case 1: // right
		x = width + s.rng.Range(0, parameter.SpawnMargin)
		y = s.rng.Range(0, height)
	case 2: // top
		x = s.rng.Range(0, width)
		y = -s.rng.Range(0, parameter.SpawnMargin)
	default: // bottom
		x = s.rng.Range(0, width)
		y = height + s.rng.Range(0, parameter.SpawnMargin)
	}

	e := w.CreateEntity()
	w.Component.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{X: x, Y: y},
	})
	w.Component.Enemy.Set(e, s.rollVariant(level))
}

// rollVariant picks the archetype by level-scaled chances,
// tank first, then brute, chaser as the fallback
func (s *SpawnSystem) rollVariant(level int) component.EnemyComponent {
	tankChance := parameter.TankChancePerLevel * float64(level)
	if tankChance > parameter.TankChanceCap {
		tankChance = parameter.TankChanceCap
	}
	if s.rng.Float64() < tankChance {
		return component.EnemyComponent{
			Variant: component.EnemyTank,
			Health:  parameter.TankHealth,
			Speed:   parameter.TankSpeed,
			Radius:  parameter.EnemyRadius,
			XP:      parameter.TankXP,
		}
	}

	if level >= parameter.BruteMinLevel {
		bruteChance := parameter.BruteChanceBase + parameter.BruteChancePerLevel*float64(level-parameter.BruteMinLevel)
		if bruteChance > parameter.BruteChanceCap {
			bruteChance = parameter.BruteChanceCap
		}
		if s.rng.Float64() < bruteChance {
			return component.EnemyComponent{
				Variant: component.EnemyBrute,
				Health:  parameter.BruteHealth,
				Speed:   parameter.BruteSpeed,
				Radius:  parameter.EnemyRadius,
				XP:      parameter.BruteXP,
			}
		}
	}

	return component.EnemyComponent{
		Variant: component.EnemyChaser,
		Health:  parameter.ChaserHealth,
		Speed:   parameter.ChaserSpeed,
		Radius:  parameter.EnemyRadius,
		XP:      parameter.ChaserXP,
	}
}
