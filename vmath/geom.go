package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/parameter"
)

// PointSegmentDistance returns the distance from point to the closest point on segment [a,b]
// Projections falling outside the segment clamp to the nearer endpoint
func PointSegmentDistance(point, a, b mgl64.Vec3) float64 {
	ab := b.Sub(a)
	ap := point.Sub(a)
	if ap.Dot(ab) <= 0 {
		return ap.Len()
	}
	bp := point.Sub(b)
	if bp.Dot(ab) >= 0 {
		return bp.Len()
	}
	// Perpendicular distance to the infinite line
	return ab.Cross(ap).Len() / ab.Len()
}

// SegmentSegmentDistance returns the minimum distance between segments [a0,a1] and [b0,b1]
// Non-parallel segments solve for the closest points of the infinite lines, then clamp in two passes
// Parallel segments (squared sine below parameter.GeometryParallelEpsilon) are resolved by their overlap along the shared axis
func SegmentSegmentDistance(a0, a1, b0, b1 mgl64.Vec3) float64 {
	a := a1.Sub(a0)
	b := b1.Sub(b0)
	magA := a.Len()
	magB := b.Len()

	// Zero-length segments collapse to point queries
	switch {
	case magA == 0 && magB == 0:
		return a0.Sub(b0).Len()
	case magA == 0:
		return PointSegmentDistance(a0, b0, b1)
	case magB == 0:
		return PointSegmentDistance(b0, a0, a1)
	}

	a = a.Mul(1 / magA)
	b = b.Mul(1 / magB)

	cross := a.Cross(b)
	denom := cross.LenSqr()

	if denom < parameter.GeometryParallelEpsilon {
		return parallelSegmentDistance(a0, a1, b0, b1, a, magA)
	}

	// Closest points on the infinite lines via determinant ratios
	t := b0.Sub(a0)
	t0 := mgl64.Mat3FromCols(t, b, cross).Det() / denom
	t1 := mgl64.Mat3FromCols(t, a, cross).Det() / denom

	clampedA := t0 < 0 || t0 > magA
	clampedB := t1 < 0 || t1 > magB

	sA := mgl64.Clamp(t0, 0, magA)
	sB := mgl64.Clamp(t1, 0, magB)

	// A clamped: closest point on B against the fixed endpoint of A
	if clampedA {
		pA := a0.Add(a.Mul(sA))
		raw := b.Dot(pA.Sub(b0))
		sB = mgl64.Clamp(raw, 0, magB)
		if raw < 0 || raw > magB {
			clampedB = true
		}
	}

	// B clamped: closest point on A against the fixed point of B
	if clampedB {
		pB := b0.Add(b.Mul(sB))
		sA = mgl64.Clamp(a.Dot(pB.Sub(a0)), 0, magA)
	}

	pA := a0.Add(a.Mul(sA))
	pB := b0.Add(b.Mul(sB))
	return pA.Sub(pB).Len()
}

// parallelSegmentDistance handles the three overlap cases for parallel segments
// dirA is the unit direction of A, magA its length
func parallelSegmentDistance(a0, a1, b0, b1, dirA mgl64.Vec3, magA float64) float64 {
	d0 := dirA.Dot(b0.Sub(a0))
	d1 := dirA.Dot(b1.Sub(a0))

	// B entirely before A
	if d0 <= 0 && d1 <= 0 {
		if math.Abs(d0) < math.Abs(d1) {
			return a0.Sub(b0).Len()
		}
		return a0.Sub(b1).Len()
	}

	// B entirely after A
	if d0 >= magA && d1 >= magA {
		if math.Abs(d0) < math.Abs(d1) {
			return a1.Sub(b0).Len()
		}
		return a1.Sub(b1).Len()
	}

	// Overlapping: every endpoint inside the overlap sits at the line separation
	return min(
		PointSegmentDistance(a0, b0, b1),
		PointSegmentDistance(a1, b0, b1),
		PointSegmentDistance(b0, a0, a1),
		PointSegmentDistance(b1, a0, a1),
	)
}

// OrientedAngle returns the angle in degrees between unit vectors x and y
// Sign is negative when refAxis disagrees with the handedness of x × y
// A zero vector on either side means no rotation
func OrientedAngle(x, y, refAxis mgl64.Vec3) float64 {
	if x.LenSqr() == 0 || y.LenSqr() == 0 {
		return 0
	}

	// Rounding can push the dot of unit vectors past ±1, where Acos is NaN
	angle := mgl64.RadToDeg(math.Acos(mgl64.Clamp(x.Dot(y), -1, 1)))

	if refAxis.Dot(x.Cross(y)) < 0 {
		return -angle
	}
	return angle
}
