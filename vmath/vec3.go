package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v has no length
// mgl64's Normalize divides by zero and yields NaN components
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	inv := 1.0 / l
	return mgl64.Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// PlanarDir projects v onto the XZ plane and normalizes it
func PlanarDir(v mgl64.Vec3) mgl64.Vec3 {
	return NormalizeOrZero(mgl64.Vec3{v[0], 0, v[2]})
}

// Distance returns the euclidean distance between a and b
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// DistanceSq skips the sqrt for comparisons against squared thresholds
func DistanceSq(a, b mgl64.Vec3) float64 {
	return a.Sub(b).LenSqr()
}

// TransformPoint applies an affine transform to a point (w = 1)
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
