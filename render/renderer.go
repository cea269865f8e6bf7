// Package render draws the simulation onto a tcell screen.
// Arena coordinates are scaled to the terminal cell grid each frame;
// the top row carries the HUD and overlays sit above the playfield
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/seltf/shape-game/component"
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/parameter"
	"github.com/seltf/shape-game/weapon"
)

const hudRows = 1

var (
	styleDefault    = tcell.StyleDefault
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleChaser     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBrute      = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleTank       = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleShard      = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleWell       = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleParticle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleShield     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleOverlay    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
)

// Renderer draws world state to the terminal
type Renderer struct {
	screen tcell.Screen
	world  *engine.World

	// Overlay state driven by the shell
	Offer    []weapon.UpgradeID
	GameOver bool
	Muted    bool
}

func NewRenderer(screen tcell.Screen, world *engine.World) *Renderer {
	return &Renderer{screen: screen, world: world}
}

// Draw renders one full frame
func (r *Renderer) Draw() {
	r.screen.Clear()

	width, height := r.screen.Size()
	playHeight := height - hudRows
	if width < 10 || playHeight < 5 {
		r.screen.Show()
		return
	}

	scaleX := float64(width) / r.world.Resource.Config.Width
	scaleY := float64(playHeight) / r.world.Resource.Config.Height

	r.drawWells(scaleX, scaleY)
	r.drawParticles(scaleX, scaleY)
	r.drawShards(scaleX, scaleY)
	r.drawEnemies(scaleX, scaleY)
	r.drawProjectiles(scaleX, scaleY)
	r.drawPlayer(scaleX, scaleY)
	r.drawHUD(width)

	switch {
	case r.GameOver:
		r.drawCenteredBox(width, height, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d  Kills %d", r.world.Resource.Progress.Score, r.world.Resource.Progress.Kills),
			"",
			"[r] restart   [q] quit",
		})
	case len(r.Offer) > 0:
		lines := []string{"LEVEL UP - choose an upgrade", ""}
		for i, id := range r.Offer {
			lines = append(lines, fmt.Sprintf("[%d] %s", i+1, weapon.Name(id)))
		}
		r.drawCenteredBox(width, height, lines)
	}

	r.screen.Show()
}

// cell maps an arena position to a screen cell below the HUD
func (r *Renderer) cell(x, y, scaleX, scaleY float64) (int, int) {
	return int(x * scaleX), hudRows + int(y*scaleY)
}

func (r *Renderer) plot(cx, cy int, ch rune, style tcell.Style) {
	width, height := r.screen.Size()
	if cx < 0 || cx >= width || cy < hudRows || cy >= height {
		return
	}
	r.screen.SetContent(cx, cy, ch, nil, style)
}

func (r *Renderer) drawPlayer(scaleX, scaleY float64) {
	w := r.world
	e := w.Resource.Player.Entity

	pc, ok := w.Component.Player.Get(e)
	if !ok {
		return
	}
	kc, ok := w.Component.Kinetic.Get(e)
	if !ok {
		return
	}

	cx, cy := r.cell(kc.X, kc.Y, scaleX, scaleY)
	r.plot(cx, cy, '◆', stylePlayer)

	// Shield rings as coarse point circles
	for ring := 0; ring < pc.ShieldRings; ring++ {
		radius := pc.Radius + parameter.ShieldRingOffset + float64(ring)*parameter.ShieldRingSpacing
		for step := 0; step < 24; step++ {
			angle := float64(step) * math.Pi / 12
			px := kc.X + math.Cos(angle)*radius
			py := kc.Y + math.Sin(angle)*radius
			rx, ry := r.cell(px, py, scaleX, scaleY)
			r.plot(rx, ry, '·', styleShield)
		}
	}
}

func (r *Renderer) drawEnemies(scaleX, scaleY float64) {
	w := r.world
	for _, e := range w.Component.Enemy.All() {
		ec, ok := w.Component.Enemy.Get(e)
		if !ok {
			continue
		}
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		cx, cy := r.cell(kc.X, kc.Y, scaleX, scaleY)
		switch ec.Variant {
		case component.EnemyTank:
			r.plot(cx, cy, '■', styleTank)
		case component.EnemyBrute:
			r.plot(cx, cy, '▲', styleBrute)
		default:
			r.plot(cx, cy, '›', styleChaser)
		}
	}
}

func (r *Renderer) drawProjectiles(scaleX, scaleY float64) {
	w := r.world
	for _, e := range w.Component.Projectile.All() {
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		pr, ok := w.Component.Projectile.Get(e)
		if !ok {
			continue
		}
		cx, cy := r.cell(kc.X, kc.Y, scaleX, scaleY)
		glyph := '●'
		if pr.Kind == component.ProjectileMiniFork {
			glyph = '∘'
		}
		r.plot(cx, cy, glyph, styleProjectile)
	}
}

func (r *Renderer) drawShards(scaleX, scaleY float64) {
	w := r.world
	for _, e := range w.Component.Shard.All() {
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		cx, cy := r.cell(kc.X, kc.Y, scaleX, scaleY)
		r.plot(cx, cy, '*', styleShard)
	}
}

func (r *Renderer) drawWells(scaleX, scaleY float64) {
	w := r.world
	for _, e := range w.Component.Well.All() {
		wc, ok := w.Component.Well.Get(e)
		if !ok {
			continue
		}
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		cx, cy := r.cell(kc.X, kc.Y, scaleX, scaleY)
		r.plot(cx, cy, '@', styleWell)

		for step := 0; step < 32; step++ {
			angle := float64(step) * math.Pi / 16
			px := kc.X + math.Cos(angle)*wc.Radius
			py := kc.Y + math.Sin(angle)*wc.Radius
			rx, ry := r.cell(px, py, scaleX, scaleY)
			r.plot(rx, ry, '∙', styleWell)
		}
	}
}

func (r *Renderer) drawParticles(scaleX, scaleY float64) {
	w := r.world
	for _, e := range w.Component.Particle.All() {
		kc, ok := w.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		cx, cy := r.cell(kc.X, kc.Y, scaleX, scaleY)
		r.plot(cx, cy, '·', styleParticle)
	}
}

func (r *Renderer) drawHUD(width int) {
	w := r.world
	progress := w.Resource.Progress

	var hp, rings int
	if pc, ok := w.Component.Player.Get(w.Resource.Player.Entity); ok {
		hp = pc.Health
		rings = pc.ShieldRings
	}

	mute := ""
	if r.Muted {
		mute = "  [muted]"
	}
	line := fmt.Sprintf(" HP %d  Shield %d  Lv %d  XP %d/%d  Score %d  Enemies %d%s",
		hp, rings, progress.Level, progress.XP, progress.NextLevelXP,
		progress.Score, w.Component.Enemy.Count(), mute)

	for i := 0; i < width; i++ {
		ch := ' '
		if i < len(line) {
			ch = rune(line[i])
		}
		r.screen.SetContent(i, 0, ch, nil, styleHUD)
	}
}

// drawCenteredBox paints a bordered overlay with the given lines
func (r *Renderer) drawCenteredBox(width, height int, lines []string) {
	boxWidth := 0
	for _, line := range lines {
		if len(line) > boxWidth {
			boxWidth = len(line)
		}
	}
	boxWidth += 4
	boxHeight := len(lines) + 2

	left := (width - boxWidth) / 2
	top := (height - boxHeight) / 2
	if left < 0 || top < 0 {
		return
	}

	for y := 0; y < boxHeight; y++ {
		for x := 0; x < boxWidth; x++ {
			r.screen.SetContent(left+x, top+y, ' ', nil, styleOverlay)
		}
	}
	for i, line := range lines {
		for j, ch := range line {
			r.screen.SetContent(left+2+j, top+1+i, ch, nil, styleOverlay)
		}
	}
}
