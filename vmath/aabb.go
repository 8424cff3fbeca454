package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box accumulator
// A fresh box has inverted bounds (+Inf min, -Inf max) and contains no finite point
type AABB struct {
	Min, Max    mgl64.Vec3
	initialized bool
}

// NewAABB returns an empty box
func NewAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// Reset empties the box for reuse
func (b *AABB) Reset() {
	*b = NewAABB()
}

// Initialized reports whether any point was included
func (b *AABB) Initialized() bool {
	return b.initialized
}

// ExpandToInclude widens the bounds to cover p
func (b *AABB) ExpandToInclude(p mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	b.initialized = true
}

// ExpandBy inflates every bound by margin; no-op on an empty box
func (b *AABB) ExpandBy(margin float64) {
	if !b.initialized {
		return
	}
	for i := 0; i < 3; i++ {
		b.Min[i] -= margin
		b.Max[i] += margin
	}
}

// ContainsPoint is boundary-inclusive on all six bounds
func (b *AABB) ContainsPoint(p mgl64.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Intersects reports whether a and b overlap on every axis, boundary-inclusive
// An empty box intersects nothing
func Intersects(a, b *AABB) bool {
	if !a.initialized || !b.initialized {
		return false
	}
	for i := 0; i < 3; i++ {
		if a.Max[i] < b.Min[i] || b.Max[i] < a.Min[i] {
			return false
		}
	}
	return true
}
