package effect

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/parameter"
)

// SpriteSheet describes a single-row animation strip
type SpriteSheet struct {
	Columns   int
	FrameTime float64 // Seconds per column
}

var (
	ImpactSheet = SpriteSheet{Columns: parameter.ImpactSpriteColumns, FrameTime: parameter.ImpactSpriteFrameTime}
	MuzzleSheet = SpriteSheet{Columns: parameter.MuzzleFlashColumns, FrameTime: parameter.MuzzleFlashFrameTime}
)

// Duration is the time to play every column once
func (s SpriteSheet) Duration() float64 {
	return float64(s.Columns) * s.FrameTime
}

// Frame maps an age to a column, clamped to the sheet
func (s SpriteSheet) Frame(age float64) int {
	if age <= 0 || s.FrameTime <= 0 {
		return 0
	}
	return min(int(age/s.FrameTime), s.Columns-1)
}

// Sprite is one playing animation instance
type Sprite struct {
	Position mgl64.Vec3
	Age      float64
}

// ImpactSprites plays a one-shot animation at every kill position
type ImpactSprites struct {
	sheet   SpriteSheet
	sprites []Sprite
}

func NewImpactSprites(sheet SpriteSheet) *ImpactSprites {
	return &ImpactSprites{sheet: sheet}
}

func (s *ImpactSprites) Add(pos mgl64.Vec3) {
	s.sprites = append(s.sprites, Sprite{Position: pos})
}

// Update ages sprites and drops those past the sheet duration
func (s *ImpactSprites) Update(dt float64) {
	if len(s.sprites) == 0 {
		return
	}
	limit := s.sheet.Duration()
	n := 0
	for _, sp := range s.sprites {
		sp.Age += dt
		if sp.Age < limit {
			s.sprites[n] = sp
			n++
		}
	}
	s.sprites = s.sprites[:n]
}

func (s *ImpactSprites) Sprites() []Sprite {
	return s.sprites
}

func (s *ImpactSprites) Frame(sp Sprite) int {
	return s.sheet.Frame(sp.Age)
}

// MuzzleFlash tracks overlapping flash animations at the muzzle
// Only ages are kept; the muzzle transform is owned by the player
type MuzzleFlash struct {
	sheet SpriteSheet
	ages  []float64
}

func NewMuzzleFlash(sheet SpriteSheet) *MuzzleFlash {
	return &MuzzleFlash{sheet: sheet}
}

func (m *MuzzleFlash) Add() {
	m.ages = append(m.ages, 0)
}

func (m *MuzzleFlash) Update(dt float64) {
	limit := m.sheet.Duration()
	n := 0
	for _, a := range m.ages {
		a += dt
		if a < limit {
			m.ages[n] = a
			n++
		}
	}
	m.ages = m.ages[:n]
}

// Active reports whether any flash is still playing
func (m *MuzzleFlash) Active() bool {
	return len(m.ages) > 0
}

// Frame returns the column of the youngest flash
func (m *MuzzleFlash) Frame() int {
	if len(m.ages) == 0 {
		return 0
	}
	return m.sheet.Frame(minAge(m.ages))
}

func minAge(ages []float64) float64 {
	youngest := ages[0]
	for _, a := range ages[1:] {
		youngest = min(youngest, a)
	}
	return youngest
}
