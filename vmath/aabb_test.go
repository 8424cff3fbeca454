package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"
)

func TestAABB_EmptyContainsNothing(t *testing.T) {
	b := NewAABB()
	if b.Initialized() {
		t.Fatal("Fresh box reports initialized")
	}

	for _, p := range []mgl64.Vec3{{0, 0, 0}, {1e9, -1e9, 0}, {-1, 2, -3}} {
		if b.ContainsPoint(p) {
			t.Errorf("Empty box contains %v", p)
		}
	}

	// Inflating an empty box must not make it contain anything
	b.ExpandBy(100)
	if b.ContainsPoint(mgl64.Vec3{}) {
		t.Error("Inflated empty box contains origin")
	}
}

func TestAABB_SinglePoint(t *testing.T) {
	b := NewAABB()
	p := mgl64.Vec3{1, 2, 3}
	b.ExpandToInclude(p)
	b.ExpandBy(0)

	if !b.ContainsPoint(p) {
		t.Fatal("Box does not contain its only point")
	}
	if b.ContainsPoint(mgl64.Vec3{1, 2, 3.0001}) {
		t.Error("Degenerate box contains a neighbor point")
	}
}

func TestAABB_InflationBoundaryInclusive(t *testing.T) {
	b := NewAABB()
	b.ExpandToInclude(mgl64.Vec3{0, 0, 0})
	b.ExpandToInclude(mgl64.Vec3{1, 1, 1})
	b.ExpandBy(0.5)

	if !b.ContainsPoint(mgl64.Vec3{1.5, -0.5, 1.5}) {
		t.Error("Point on inflated bound rejected")
	}
	if b.ContainsPoint(mgl64.Vec3{1.51, 0, 0}) {
		t.Error("Point past inflated bound accepted")
	}
}

func TestAABB_Reset(t *testing.T) {
	b := NewAABB()
	b.ExpandToInclude(mgl64.Vec3{1, 1, 1})
	b.Reset()

	if b.Initialized() || b.ContainsPoint(mgl64.Vec3{1, 1, 1}) {
		t.Fatal("Reset box still holds previous bounds")
	}
	if !math.IsInf(b.Min[0], 1) || !math.IsInf(b.Max[0], -1) {
		t.Errorf("Expected inverted infinite bounds, got %v %v", b.Min, b.Max)
	}
}

func TestIntersects(t *testing.T) {
	box := func(min, max mgl64.Vec3) *AABB {
		b := NewAABB()
		b.ExpandToInclude(min)
		b.ExpandToInclude(max)
		return &b
	}

	a := box(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2})

	tests := []struct {
		name string
		b    *AABB
		want bool
	}{
		{"corner inside", box(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{3, 3, 3}), true},
		{"fully inside", box(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{1, 1, 1}), true},
		{"contains a", box(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{3, 3, 3}), true},
		{"crossing without corners inside", box(mgl64.Vec3{-1, 0.5, 0.5}, mgl64.Vec3{3, 1.5, 1.5}), true},
		{"disjoint", box(mgl64.Vec3{5, 5, 5}, mgl64.Vec3{6, 6, 6}), false},
		{"apart on one axis", box(mgl64.Vec3{0, 0, 2.5}, mgl64.Vec3{2, 2, 3}), false},
		{"touching face", box(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{3, 2, 2}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(a, tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if Intersects(tt.b, a) != tt.want {
				t.Error("Intersects not symmetric")
			}
		})
	}

	empty := NewAABB()
	if Intersects(a, &empty) || Intersects(&empty, a) {
		t.Error("Empty box reported as intersecting")
	}
}

func TestIntersects_SharedPoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genVec(t, "p")
		a, b := NewAABB(), NewAABB()
		a.ExpandToInclude(p)
		a.ExpandToInclude(genVec(t, "a"))
		b.ExpandToInclude(p)
		b.ExpandToInclude(genVec(t, "b"))
		if !Intersects(&a, &b) {
			t.Fatalf("boxes sharing %v reported disjoint", p)
		}
	})
}

func TestAABB_ContainsAllIncluded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pts := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) mgl64.Vec3 {
			return genVec(t, "p")
		}), 1, 32).Draw(t, "points")
		margin := rapid.Float64Range(0, 5).Draw(t, "margin")

		b := NewAABB()
		for _, p := range pts {
			b.ExpandToInclude(p)
		}
		b.ExpandBy(margin)

		for _, p := range pts {
			if !b.ContainsPoint(p) {
				t.Fatalf("box %v..%v lost included point %v", b.Min, b.Max, p)
			}
		}
	})
}
