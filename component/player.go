package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Player is the chase target and volley source
type Player struct {
	Position mgl64.Vec3
	Aim      mgl64.Vec3 // Unit aim on the XZ plane
	Alive    bool

	// DeathTime is set once on the first fatal contact; zero while alive
	DeathTime time.Time

	LastFire time.Time
}

func NewPlayer(position mgl64.Vec3) Player {
	return Player{Position: position, Aim: mgl64.Vec3{0, 0, 1}, Alive: true}
}

// Kill marks the player dead, keeping the first death time
func (p *Player) Kill(now time.Time) {
	p.Alive = false
	if p.DeathTime.IsZero() {
		p.DeathTime = now
	}
}

// Respawn revives the player in place
func (p *Player) Respawn() {
	p.Alive = true
	p.DeathTime = time.Time{}
}
