package volley

import (
	"github.com/lixenwraith/vi-volley/parameter"
	"github.com/lixenwraith/vi-volley/physics"
)

// Config holds the tuning the ledger and the frame driver read
// Values are fixed for the lifetime of a Ledger
type Config struct {
	Speed             float64 // World units/sec
	Lifetime          float64 // Seconds, identical for every volley
	RotationPerBullet float64 // Radians between neighbouring grid cells
	MaxVolleys        int

	SubGroups               int  // Culling slices per volley when enemies exist
	Workers                 int  // 1 runs the frame single-threaded
	ParallelSpreadThreshold int  // Spread side above which grid fill fans out
	Culling                 bool // AABB gate before exact tests

	Bullet physics.Capsule
	Enemy  physics.Capsule
}

func DefaultConfig() Config {
	return Config{
		Speed:                   parameter.ProjectileSpeed,
		Lifetime:                parameter.ProjectileLifetime,
		RotationPerBullet:       parameter.RotationPerBullet,
		MaxVolleys:              parameter.MaxVolleys,
		SubGroups:               parameter.SubGroupCount,
		Workers:                 parameter.Parallelism,
		ParallelSpreadThreshold: parameter.ParallelSpreadThreshold,
		Culling:                 true,
		Bullet:                  physics.BulletCapsule,
		Enemy:                   physics.EnemyCapsule,
	}
}

// MaxCollisionDistance is the culling inflation and center early-reject radius
func (c Config) MaxCollisionDistance() float64 {
	return physics.MaxCollisionDistance(c.Bullet, c.Enemy)
}
