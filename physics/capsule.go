package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/parameter"
	"github.com/lixenwraith/vi-volley/vmath"
)

// Capsule is a segment-with-radius collision shape
// Segment length is Height, centered on the owner position along its direction
type Capsule struct {
	Height float64
	Radius float64
}

// Shape profiles, shared read-only
var (
	BulletCapsule = Capsule{Height: parameter.BulletColliderHeight, Radius: parameter.BulletColliderRadius}
	EnemyCapsule  = Capsule{Height: parameter.EnemyColliderHeight, Radius: parameter.EnemyColliderRadius}
)

func (c Capsule) HalfHeight() float64 {
	return c.Height * 0.5
}

// Segment returns the capsule core endpoints for a body at pos facing dir
// dir is expected unit length
func (c Capsule) Segment(pos, dir mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	half := dir.Mul(c.HalfHeight())
	return pos.Sub(half), pos.Add(half)
}

// ContactDistance is the segment separation at or below which two capsules touch
func ContactDistance(a, b Capsule) float64 {
	return a.Radius + b.Radius
}

// MaxCollisionDistance is the largest center separation at which a and b can still touch
// Sizes the culling inflation and the center-distance early reject
func MaxCollisionDistance(a, b Capsule) float64 {
	return (a.HalfHeight() + a.Radius) + (b.HalfHeight() + b.Radius)
}

// Body is a placed capsule
type Body struct {
	Shape Capsule
	Pos   mgl64.Vec3
	Dir   mgl64.Vec3
}

// CapsulesCollide runs the exact segment test, rejecting pairs whose centers are out of reach first
func CapsulesCollide(a, b Body) bool {
	reach := MaxCollisionDistance(a.Shape, b.Shape)
	if vmath.DistanceSq(a.Pos, b.Pos) > reach*reach {
		return false
	}

	a0, a1 := a.Shape.Segment(a.Pos, a.Dir)
	b0, b1 := b.Shape.Segment(b.Pos, b.Dir)
	return vmath.SegmentSegmentDistance(a0, a1, b0, b1) <= ContactDistance(a.Shape, b.Shape)
}

// SphereTouchesCapsule tests a sphere against a capsule body
func SphereTouchesCapsule(center mgl64.Vec3, radius float64, b Body) bool {
	b0, b1 := b.Shape.Segment(b.Pos, b.Dir)
	return vmath.PointSegmentDistance(center, b0, b1) <= radius+b.Shape.Radius
}
