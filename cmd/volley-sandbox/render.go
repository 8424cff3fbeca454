package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/parameter"
)

var (
	styleBg         = tcell.StyleDefault.Background(tcell.NewRGBColor(26, 27, 38))
	styleBullet     = styleBg.Foreground(tcell.NewRGBColor(255, 220, 120))
	styleEnemy      = styleBg.Foreground(tcell.NewRGBColor(255, 80, 80)).Bold(true)
	stylePlayer     = styleBg.Foreground(tcell.NewRGBColor(0, 255, 120)).Bold(true)
	stylePlayerDead = styleBg.Foreground(tcell.NewRGBColor(120, 120, 120))
	styleAim        = styleBg.Foreground(tcell.NewRGBColor(0, 255, 255))
	styleFlash      = styleBg.Foreground(tcell.NewRGBColor(255, 255, 255)).Bold(true)
	styleImpact     = styleBg.Foreground(tcell.NewRGBColor(255, 160, 50)).Bold(true)
	styleHUD        = styleBg.Foreground(tcell.NewRGBColor(200, 200, 200))
)

// Frames of the impact and muzzle strips, brightest first
var (
	impactRunes = []rune("@#%*+x=:-..")
	flashRunes  = []rune("*+x:..")
	burnRunes   = []rune(".,;")
)

// view maps world XZ to screen cells with the player at the center and +Z up
type view struct {
	width, height int
	center        mgl64.Vec3
}

func (v view) project(p mgl64.Vec3) (x, y int, ok bool) {
	dx := (p[0] - v.center[0]) * parameter.ViewCellsPerUnitX
	dz := (p[2] - v.center[2]) * parameter.ViewCellsPerUnitZ
	x = v.width/2 + int(math.Round(dx))
	y = (v.height-1)/2 - int(math.Round(dz))
	// Last row is the HUD
	ok = x >= 0 && x < v.width && y >= 0 && y < v.height-1
	return x, y, ok
}

// draw renders one top-down frame; later layers overwrite earlier ones
func draw(screen tcell.Screen, s *sandbox) {
	w, h := screen.Size()
	screen.SetStyle(styleBg)
	screen.Clear()
	v := view{width: w, height: h, center: s.player.Position}

	for _, m := range s.effects.Burns.Marks() {
		if x, y, ok := v.project(m.Position); ok {
			i := min(int(m.Scale()), len(burnRunes)-1)
			shade := int32(40 + 30*m.Scale())
			screen.SetContent(x, y, burnRunes[i], nil, styleBg.Foreground(tcell.NewRGBColor(shade, shade/2, shade/3)))
		}
	}

	for _, p := range s.projectiles.Ledger().Positions() {
		if x, y, ok := v.project(p); ok {
			screen.SetContent(x, y, '·', nil, styleBullet)
		}
	}

	for _, e := range s.enemies {
		if !e.Alive {
			continue
		}
		if x, y, ok := v.project(e.Position); ok {
			screen.SetContent(x, y, 'E', nil, styleEnemy)
		}
	}

	for _, sp := range s.effects.Impacts.Sprites() {
		if x, y, ok := v.project(sp.Position); ok {
			screen.SetContent(x, y, impactRunes[s.effects.Impacts.Frame(sp)], nil, styleImpact)
		}
	}

	if s.player.Alive {
		aim := s.player.Position.Add(s.player.Aim.Mul(parameter.AimMarkerDistance))
		if x, y, ok := v.project(aim); ok {
			screen.SetContent(x, y, '+', nil, styleAim)
		}
		if s.effects.Muzzle.Active() {
			muzzle := s.player.Position.Add(s.player.Aim.Mul(parameter.MuzzleOffset))
			if x, y, ok := v.project(muzzle); ok {
				screen.SetContent(x, y, flashRunes[s.effects.Muzzle.Frame()], nil, styleFlash)
			}
		}
	}

	if x, y, ok := v.project(s.player.Position); ok {
		if s.player.Alive {
			screen.SetContent(x, y, '@', nil, stylePlayer)
		} else {
			screen.SetContent(x, y, 'x', nil, stylePlayerDead)
		}
	}

	drawString(screen, 0, h-1, hudText(s), styleHUD)
	screen.Show()
}

func hudText(s *sandbox) string {
	ledger := s.projectiles.Ledger()
	return fmt.Sprintf("volleys %d/%d | bullets %d | spread %d | workers %d | kills %d | deaths %d | enemies %d | [h/l] aim [space] fire [+/-] spread [q] quit",
		len(ledger.Volleys()), s.cfg.Projectile.MaxVolleys, ledger.Len(), s.spread,
		s.cfg.Projectile.Workers, s.kills, s.deaths, len(s.enemies))
}

func drawString(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	w, _ := screen.Size()
	for i, r := range []rune(text) {
		if x+i >= w {
			return
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
