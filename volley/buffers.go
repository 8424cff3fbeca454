package volley

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// buffers is the projectile arena: three equal-length sequences addressed by one global index
// Entries are appended at the tail and dropped only from the head
type buffers struct {
	positions  []mgl64.Vec3
	directions []mgl64.Vec3
	rotations  []mgl64.Quat
}

func (b *buffers) len() int {
	return len(b.positions)
}

// extend appends n slots and returns the first new index
// Slot contents are unspecified until the caller fills them
func (b *buffers) extend(n int) int {
	start := len(b.positions)
	b.positions = grow(b.positions, n)
	b.directions = grow(b.directions, n)
	b.rotations = grow(b.rotations, n)
	return start
}

// dropFront removes the first n entries in place, keeping capacity for later spawns
func (b *buffers) dropFront(n int) {
	if n <= 0 {
		return
	}
	if n >= len(b.positions) {
		b.positions = b.positions[:0]
		b.directions = b.directions[:0]
		b.rotations = b.rotations[:0]
		return
	}
	keep := len(b.positions) - n
	copy(b.positions, b.positions[n:])
	copy(b.directions, b.directions[n:])
	copy(b.rotations, b.rotations[n:])
	b.positions = b.positions[:keep]
	b.directions = b.directions[:keep]
	b.rotations = b.rotations[:keep]
}

// integrate advances positions in [start, end) along their directions
func (b *buffers) integrate(start, end int, step float64) {
	pos := b.positions[start:end]
	dir := b.directions[start:end]
	for i := range pos {
		pos[i] = pos[i].Add(dir[i].Mul(step))
	}
}

func grow[T any](s []T, n int) []T {
	s = slices.Grow(s, n)
	return s[:len(s)+n]
}
