package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/seltf/shape-game/audio"
	"github.com/seltf/shape-game/config"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/render"
	"github.com/seltf/shape-game/system"
	"github.com/seltf/shape-game/weapon"
)

// Input keys:
//
//	wasd / hjkl / arrows  move
//	space                 fire
//	x                     dash
//	1-3                   pick upgrade
//	m                     mute
//	r                     restart (after game over)
//	q / esc               quit
func main() {
	configPath := flag.String("config", "shape-game.yaml", "config file path")
	mute := flag.Bool("mute", false, "start muted")
	seed := flag.Uint64("seed", 0, "override RNG seed (0 = from config)")
	startLevel := flag.Int("level", -1, "override start level (-1 = from config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shape-game: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *startLevel >= 0 {
		cfg.Game.StartLevel = *startLevel
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shape-game: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "shape-game: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	game := newGame(cfg, screen, *mute)
	defer game.audio.Close()
	game.run()
}

// shellState receives the events the shell itself reacts to
type shellState struct {
	offer    []weapon.UpgradeID
	gameOver bool
}

func (s *shellState) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLevelUp,
		event.EventPlayerDied,
		event.EventGameReset,
	}
}

func (s *shellState) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventLevelUp:
		if p, ok := ev.Payload.(*event.LevelUpPayload); ok {
			s.offer = p.Choices
		}
	case event.EventPlayerDied:
		s.gameOver = true
	case event.EventGameReset:
		s.offer = nil
		s.gameOver = false
	}
}

// heldAxis turns discrete key presses into a movement axis that
// releases shortly after the last press, since terminals never report
// key-up events
type heldAxis struct {
	value    float64
	lastSeen time.Time
}

const keyHoldWindow = 150 * time.Millisecond

func (a *heldAxis) press(value float64) {
	a.value = value
	a.lastSeen = time.Now()
}

func (a *heldAxis) current() float64 {
	if time.Since(a.lastSeen) > keyHoldWindow {
		return 0
	}
	return a.value
}

type game struct {
	world    *engine.World
	clock    *engine.Clock
	screen   tcell.Screen
	renderer *render.Renderer
	audio    *audio.Engine
	shell    *shellState

	axisX, axisY heldAxis
	quit         bool
}

func newGame(cfg config.Config, screen tcell.Screen, mute bool) *game {
	world := engine.NewWorld()
	world.Resource.Config.Width = cfg.Arena.Width
	world.Resource.Config.Height = cfg.Arena.Height
	world.Resource.Config.Seed = cfg.SeedOrNow()
	world.Resource.Config.StartLevel = cfg.Game.StartLevel

	audioEngine := audio.NewEngine(cfg.Audio.Enabled && !mute)
	world.Resource.Audio.Player = audioEngine

	router := event.NewRouter(world.Events())
	shell := &shellState{}
	router.Register(shell)

	seed := world.Resource.Config.Seed
	systems := []engine.System{
		system.NewPlayerSystem(world),
		system.NewSpawnSystem(world, seed),
		system.NewEnemySystem(world),
		system.NewProjectileSystem(world, seed+1),
		system.NewShardSystem(world, seed+2),
		system.NewWellSystem(world),
		system.NewCollisionSystem(world),
		system.NewParticleSystem(world),
		system.NewDeathSystem(world, seed+3),
		system.NewAudioSystem(world),
	}
	for _, s := range systems {
		world.AddSystem(s)
		if h, ok := s.(event.Handler); ok {
			router.Register(h)
		}
	}

	return &game{
		world:    world,
		clock:    engine.NewClock(world, router, parameter.TickInterval),
		screen:   screen,
		renderer: render.NewRenderer(screen, world),
		audio:    audioEngine,
		shell:    shell,
	}
}

func (g *game) run() {
	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	for !g.quit {
		select {
		case ev := <-eventChan:
			g.handleInput(ev)
		case <-ticker.C:
			g.tick()
		}
	}
}

// tick advances the simulation unless an overlay holds it, then draws
func (g *game) tick() {
	paused := g.shell.gameOver || len(g.shell.offer) > 0
	if !paused {
		g.world.Resource.Input.SetAxes(g.axisX.current(), g.axisY.current())
		g.clock.Step()
	}

	g.renderer.Offer = g.shell.offer
	g.renderer.GameOver = g.shell.gameOver
	g.renderer.Muted = g.audio.IsMuted()
	g.renderer.Draw()
}

func (g *game) handleInput(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		g.handleKey(tev)
	}
}

func (g *game) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.quit = true
		return
	case tcell.KeyLeft:
		g.axisX.press(-1)
		return
	case tcell.KeyRight:
		g.axisX.press(1)
		return
	case tcell.KeyUp:
		g.axisY.press(-1)
		return
	case tcell.KeyDown:
		g.axisY.press(1)
		return
	}

	switch ev.Rune() {
	case 'q':
		g.quit = true
	case 'a', 'h':
		g.axisX.press(-1)
	case 'd', 'l':
		g.axisX.press(1)
	case 'w', 'k':
		g.axisY.press(-1)
	case 's', 'j':
		g.axisY.press(1)
	case ' ':
		g.world.Resource.Input.PressFire(0, 0, false)
	case 'x':
		g.world.Resource.Input.PressDash()
	case 'm':
		g.audio.ToggleMute()
	case 'r':
		if g.shell.gameOver {
			g.restart()
		}
	case '1', '2', '3':
		g.chooseUpgrade(int(ev.Rune() - '1'))
	}
}

// chooseUpgrade applies a pick from the pending offer and resumes
func (g *game) chooseUpgrade(index int) {
	if index < 0 || index >= len(g.shell.offer) {
		return
	}
	g.world.PushEvent(event.EventUpgradeChosen, &event.UpgradeChosenPayload{
		ID: g.shell.offer[index],
	})
	g.shell.offer = nil
}

// restart resets every system and shell overlay
func (g *game) restart() {
	g.world.PushEvent(event.EventGameReset, nil)
	g.shell.gameOver = false
	g.shell.offer = nil
	g.axisX = heldAxis{}
	g.axisY = heldAxis{}
}
