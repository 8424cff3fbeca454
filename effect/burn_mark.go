package effect

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/parameter"
)

// BurnMark is a floor decal that shrinks as it fades
type BurnMark struct {
	Position mgl64.Vec3
	TimeLeft float64
}

// Scale is the drawn decal size
func (m BurnMark) Scale() float64 {
	return parameter.BurnMarkScale * m.TimeLeft
}

type BurnMarks struct {
	lifetime float64
	marks    []BurnMark
}

func NewBurnMarks(lifetime float64) *BurnMarks {
	return &BurnMarks{lifetime: lifetime}
}

func (b *BurnMarks) Add(pos mgl64.Vec3) {
	b.marks = append(b.marks, BurnMark{Position: pos, TimeLeft: b.lifetime})
}

// Update counts marks down and drops expired ones
func (b *BurnMarks) Update(dt float64) {
	n := 0
	for _, m := range b.marks {
		m.TimeLeft -= dt
		if m.TimeLeft > 0 {
			b.marks[n] = m
			n++
		}
	}
	b.marks = b.marks[:n]
}

func (b *BurnMarks) Marks() []BurnMark {
	return b.marks
}
