package parameter

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projectile Travel
const (
	// ProjectileSpeed is straight-line travel speed in world units/sec
	ProjectileSpeed = 15.0

	// ProjectileLifetime is seconds a volley stays live before bulk retirement
	// Fixed for every volley so expiry order equals spawn order
	ProjectileLifetime = 1.0
)

// Volley Shape
const (
	// SpreadAmount is the side of the square spread grid (SpreadAmount² projectiles per volley)
	SpreadAmount = 20

	// RotationPerBulletDeg is the angular step between neighbouring grid cells in degrees
	RotationPerBulletDeg = 3.0

	// RotationPerBullet is RotationPerBulletDeg in radians
	RotationPerBullet = RotationPerBulletDeg * math.Pi / 180.0

	// ParallelSpreadThreshold is the spread side above which grid fill is split across workers
	ParallelSpreadThreshold = 50
)

// Volley Ledger Limits
const (
	// MaxVolleys caps concurrently live volleys; spawn requests beyond it are rejected
	MaxVolleys = 10
)

// Collision Work Decomposition
const (
	// SubGroupCount is the number of culling slices per volley when enemies exist
	SubGroupCount = 9

	// Parallelism is the worker count for parallel sub-group processing
	// 1 selects the single-threaded reference path
	Parallelism = 4
)

// Orientation Conventions
var (
	// CanonicalDir is the forward axis aim yaw is measured against
	CanonicalDir = mgl64.Vec3{0, 0, 1}

	// UpAxis is the yaw rotation axis
	UpAxis = mgl64.Vec3{0, 1, 0}

	// LateralAxis is the pitch rotation axis for the spread grid
	LateralAxis = mgl64.Vec3{1, 0, 0}
)
