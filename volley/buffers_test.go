package volley

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func fillSeq(b *buffers, n int) {
	start := b.extend(n)
	for i := start; i < start+n; i++ {
		f := float64(i)
		b.positions[i] = mgl64.Vec3{f, 0, 0}
		b.directions[i] = mgl64.Vec3{0, f, 0}
		b.rotations[i] = mgl64.Quat{W: f}
	}
}

func TestBuffers_DropFront(t *testing.T) {
	var b buffers
	fillSeq(&b, 10)

	b.dropFront(4)
	if b.len() != 6 {
		t.Fatalf("Expected 6 entries, got %d", b.len())
	}
	for i := 0; i < 6; i++ {
		want := float64(i + 4)
		if b.positions[i][0] != want || b.directions[i][1] != want || b.rotations[i].W != want {
			t.Fatalf("entry %d not shifted: %v %v %v", i, b.positions[i], b.directions[i], b.rotations[i])
		}
	}

	b.dropFront(0)
	if b.len() != 6 {
		t.Errorf("dropFront(0) changed length to %d", b.len())
	}

	b.dropFront(100)
	if b.len() != 0 || len(b.directions) != 0 || len(b.rotations) != 0 {
		t.Errorf("Over-drop left %d entries", b.len())
	}
}

func TestBuffers_ExtendReusesCapacity(t *testing.T) {
	var b buffers
	fillSeq(&b, 64)
	c := cap(b.positions)

	b.dropFront(64)
	if start := b.extend(32); start != 0 {
		t.Fatalf("Expected start 0 after full drop, got %d", start)
	}
	if cap(b.positions) != c {
		t.Errorf("Arena reallocated: cap %d -> %d", c, cap(b.positions))
	}
}

func TestBuffers_IntegrateRange(t *testing.T) {
	var b buffers
	b.extend(3)
	for i := range b.directions {
		b.directions[i] = mgl64.Vec3{1, 0, 0}
		b.positions[i] = mgl64.Vec3{}
	}

	b.integrate(1, 2, 0.5)

	if b.positions[0][0] != 0 || b.positions[2][0] != 0 {
		t.Error("Integrate touched entries outside its range")
	}
	if b.positions[1][0] != 0.5 {
		t.Errorf("Expected 0.5, got %v", b.positions[1][0])
	}
}
