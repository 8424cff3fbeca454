package component

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPlayer_KillKeepsFirstDeathTime(t *testing.T) {
	p := NewPlayer(mgl64.Vec3{1, 0, 2})
	if !p.Alive || p.Aim != (mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("Unexpected new player: %+v", p)
	}

	first := time.Unix(100, 0)
	p.Kill(first)
	p.Kill(first.Add(time.Second))

	if p.Alive {
		t.Error("Expected dead player")
	}
	if !p.DeathTime.Equal(first) {
		t.Errorf("DeathTime moved: got %v, want %v", p.DeathTime, first)
	}

	p.Respawn()
	if !p.Alive || !p.DeathTime.IsZero() {
		t.Errorf("Respawn did not reset: %+v", p)
	}
	if p.Position != (mgl64.Vec3{1, 0, 2}) {
		t.Errorf("Respawn moved the player: %v", p.Position)
	}
}
