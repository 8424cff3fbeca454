package component

import "github.com/go-gl/mathgl/mgl64"

// Impact records one bullet-enemy kill for cosmetic consumers
type Impact struct {
	Position   mgl64.Vec3 // Enemy position at death
	EnemyIndex int        // Index into the enemy slice passed to the frame update
	VolleyID   uint64
	Projectile int // Arena index of the hitting projectile, valid until the next Spawn or Update
}
