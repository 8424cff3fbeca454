package volley

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/parameter"
	"github.com/lixenwraith/vi-volley/vmath"
)

// spreadTable caches the per-row yaw and per-column pitch rotations for one spread size
// Cell (i, j) orientation is base * yaw[i] * pitch[j]
type spreadTable struct {
	yaw   []mgl64.Quat
	pitch []mgl64.Quat
}

// spreadAngle centers index i of an n-wide grid on zero
// Adjacent cells differ by rot/2; the grid spans ±rot*(n-1)/4
func spreadAngle(i, n int, rot float64) float64 {
	return rot*0.5*float64(i) - rot*float64(n-1)*0.25
}

func newSpreadTable(n int, rot float64) *spreadTable {
	t := &spreadTable{
		yaw:   make([]mgl64.Quat, n),
		pitch: make([]mgl64.Quat, n),
	}
	for i := 0; i < n; i++ {
		angle := spreadAngle(i, n, rot)
		t.yaw[i] = mgl64.QuatRotate(angle, parameter.UpAxis)
		t.pitch[i] = mgl64.QuatRotate(angle, parameter.LateralAxis)
	}
	return t
}

// aimBase returns the volley center orientation for a planar aim
// The X half-turn matches the sprite frame; yaw is the signed angle from the canonical axis
func aimBase(dx, dz float64) mgl64.Quat {
	aim := vmath.PlanarDir(mgl64.Vec3{dx, 0, dz})
	canonical := vmath.PlanarDir(parameter.CanonicalDir)
	theta := -vmath.OrientedAngle(canonical, aim, parameter.UpAxis)
	flip := mgl64.Quat{W: 0, V: mgl64.Vec3{1, 0, 0}}
	return flip.Mul(mgl64.QuatRotate(mgl64.DegToRad(theta), parameter.UpAxis))
}
