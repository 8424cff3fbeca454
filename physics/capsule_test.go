package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"

	"github.com/lixenwraith/vi-volley/vmath"
)

func TestMaxCollisionDistance(t *testing.T) {
	got := MaxCollisionDistance(BulletCapsule, EnemyCapsule)
	if math.Abs(got-0.46) > 1e-12 {
		t.Fatalf("Expected 0.46, got %v", got)
	}
	if MaxCollisionDistance(EnemyCapsule, BulletCapsule) != got {
		t.Error("MaxCollisionDistance not symmetric")
	}
}

func TestMaxCollisionDistance_Symmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.Float64Range(0, 10)
		a := Capsule{Height: r.Draw(t, "ah"), Radius: r.Draw(t, "ar")}
		b := Capsule{Height: r.Draw(t, "bh"), Radius: r.Draw(t, "br")}
		if ab, ba := MaxCollisionDistance(a, b), MaxCollisionDistance(b, a); ab != ba {
			t.Fatalf("MaxCollisionDistance(a, b) = %v, (b, a) = %v", ab, ba)
		}
	})
}

func TestSegment(t *testing.T) {
	p0, p1 := EnemyCapsule.Segment(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1})
	if !p0.ApproxEqual(mgl64.Vec3{1, 0, -0.2}) || !p1.ApproxEqual(mgl64.Vec3{1, 0, 0.2}) {
		t.Errorf("Unexpected segment %v %v", p0, p1)
	}
}

func TestCapsulesCollide(t *testing.T) {
	enemy := Body{Shape: EnemyCapsule, Pos: mgl64.Vec3{}, Dir: mgl64.Vec3{1, 0, 0}}
	fwd := mgl64.Vec3{0, 0, 1}

	tests := []struct {
		name string
		z    float64
		want bool
	}{
		// Bullet tip at z+0.15 must come within 0.11 of the enemy axis
		{"far", -0.5, false},
		{"just out", -0.27, false},
		{"contact", -0.25, true},
		{"overlap", 0, true},
		{"passed", 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bullet := Body{Shape: BulletCapsule, Pos: mgl64.Vec3{0, 0, tt.z}, Dir: fwd}
			if got := CapsulesCollide(bullet, enemy); got != tt.want {
				t.Errorf("CapsulesCollide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapsulesCollide_EarlyRejectIsConservative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.Float64Range(-1, 1)
		dir := func(label string) mgl64.Vec3 {
			d := mgl64.Vec3{r.Draw(t, label+"x"), r.Draw(t, label+"y"), r.Draw(t, label+"z")}
			if d.Len() < 1e-3 {
				return mgl64.Vec3{0, 0, 1}
			}
			return d.Normalize()
		}
		a := Body{Shape: BulletCapsule, Pos: mgl64.Vec3{r.Draw(t, "ax"), r.Draw(t, "ay"), r.Draw(t, "az")}, Dir: dir("ad")}
		b := Body{Shape: EnemyCapsule, Pos: mgl64.Vec3{}, Dir: dir("bd")}

		// Any touching pair must be within reach, so the early reject never hides a hit
		a0, a1 := a.Shape.Segment(a.Pos, a.Dir)
		b0, b1 := b.Shape.Segment(b.Pos, b.Dir)
		touching := vmath.SegmentSegmentDistance(a0, a1, b0, b1) <= ContactDistance(a.Shape, b.Shape)
		if touching && a.Pos.Len() > MaxCollisionDistance(a.Shape, b.Shape)+1e-9 {
			t.Fatalf("touching pair beyond reach at %v", a.Pos)
		}
		if touching != CapsulesCollide(a, b) {
			t.Fatalf("early reject disagrees with exact test at %v", a.Pos)
		}
	})
}

func TestSphereTouchesCapsule(t *testing.T) {
	enemy := Body{Shape: EnemyCapsule, Pos: mgl64.Vec3{1, 0, 0}, Dir: mgl64.Vec3{1, 0, 0}}
	// Enemy segment spans x in [0.8, 1.2]; contact radius 0.43
	if !SphereTouchesCapsule(mgl64.Vec3{0.4, 0, 0}, 0.35, enemy) {
		t.Error("Expected contact at 0.4 from segment tip")
	}
	if SphereTouchesCapsule(mgl64.Vec3{0.3, 0, 0}, 0.35, enemy) {
		t.Error("Unexpected contact at 0.5 from segment tip")
	}
}
