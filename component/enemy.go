package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Enemy is the mutable proxy the projectile driver tests and kills (pure data)
// Dir is the unit facing on the XZ plane and orients the capsule body
type Enemy struct {
	Position mgl64.Vec3
	Dir      mgl64.Vec3
	Alive    bool
}

func NewEnemy(position, dir mgl64.Vec3) Enemy {
	return Enemy{Position: position, Dir: dir, Alive: true}
}
