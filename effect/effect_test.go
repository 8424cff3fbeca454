package effect

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/component"
	"github.com/lixenwraith/vi-volley/event"
)

func TestSpriteSheet_Frame(t *testing.T) {
	sheet := SpriteSheet{Columns: 11, FrameTime: 0.05}

	tests := []struct {
		age  float64
		want int
	}{
		{0, 0},
		{0.049, 0},
		{0.051, 1},
		{0.26, 5},
		{0.549, 10},
		{3.0, 10},
	}
	for _, tt := range tests {
		if got := sheet.Frame(tt.age); got != tt.want {
			t.Errorf("Frame(%v) = %d, want %d", tt.age, got, tt.want)
		}
	}

	if math.Abs(sheet.Duration()-0.55) > 1e-12 {
		t.Errorf("Duration = %v, want 0.55", sheet.Duration())
	}
}

func TestImpactSprites_AgeOut(t *testing.T) {
	s := NewImpactSprites(ImpactSheet)
	s.Add(mgl64.Vec3{1, 0, 0})
	s.Update(0.3)
	s.Add(mgl64.Vec3{2, 0, 0})

	s.Update(0.32) // first at 0.62, past 0.55
	sprites := s.Sprites()
	if len(sprites) != 1 || sprites[0].Position[0] != 2 {
		t.Fatalf("Expected only the second sprite, got %+v", sprites)
	}
	if f := s.Frame(sprites[0]); f != 6 {
		t.Errorf("Expected frame 6 at age 0.32, got %d", f)
	}

	s.Update(0.3)
	if len(s.Sprites()) != 0 {
		t.Error("Sprite outlived its sheet")
	}
}

func TestBurnMarks_ShrinkAndExpire(t *testing.T) {
	b := NewBurnMarks(5.0)
	b.Add(mgl64.Vec3{})

	if got := b.Marks()[0].Scale(); got != 2.5 {
		t.Errorf("Fresh scale = %v, want 2.5", got)
	}

	b.Update(4.0)
	if got := b.Marks()[0].Scale(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Scale after 4s = %v, want 0.5", got)
	}

	b.Update(1.0)
	if len(b.Marks()) != 0 {
		t.Error("Mark survived with no time left")
	}
}

func TestMuzzleFlash(t *testing.T) {
	m := NewMuzzleFlash(MuzzleSheet)
	if m.Active() || m.Frame() != 0 {
		t.Fatal("Fresh flash active")
	}

	m.Add()
	m.Update(0.1)
	m.Add()
	if m.Frame() != 0 {
		t.Errorf("Youngest flash should drive the frame, got %d", m.Frame())
	}

	m.Update(0.1) // first at 0.2, past 0.18
	if !m.Active() || len(m.ages) != 1 {
		t.Errorf("Expected one flash left, got %d", len(m.ages))
	}
}

func TestSystem_HandleEvent(t *testing.T) {
	s := NewSystem()
	p := event.KillBatchPool.Acquire()
	p.Entries = append(p.Entries,
		component.Impact{Position: mgl64.Vec3{1, 0, 0}},
		component.Impact{Position: mgl64.Vec3{2, 0, 0}},
	)

	s.HandleEvent(event.GameEvent{Type: event.EventEnemyKilled, Payload: p})
	s.HandleEvent(event.GameEvent{Type: event.EventVolleySpawned})

	if len(s.Impacts.Sprites()) != 2 || len(s.Burns.Marks()) != 2 {
		t.Errorf("Expected 2 sprites and 2 marks, got %d and %d", len(s.Impacts.Sprites()), len(s.Burns.Marks()))
	}
	if !s.Muzzle.Active() {
		t.Error("Volley spawn did not flash")
	}

	s.Update(10)
	if len(s.Impacts.Sprites()) != 0 || len(s.Burns.Marks()) != 0 || s.Muzzle.Active() {
		t.Error("Effects survived a long update")
	}
}
