package system

import (
	"log/slog"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/component"
	"github.com/lixenwraith/vi-volley/event"
	"github.com/lixenwraith/vi-volley/parameter"
	"github.com/lixenwraith/vi-volley/physics"
	"github.com/lixenwraith/vi-volley/vmath"
)

// EnemyConfig tunes spawning and chasing
type EnemyConfig struct {
	SpawnInterval     float64 // Seconds between waves
	SpawnsPerInterval int
	SpawnRadius       float64
	Speed             float64
	Height            float64 // Fixed Y of enemy bodies
	PlayerRadius      float64
	Shape             physics.Capsule
}

func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		SpawnInterval:     parameter.EnemySpawnInterval,
		SpawnsPerInterval: parameter.EnemySpawnsPerInterval,
		SpawnRadius:       parameter.EnemySpawnRadius,
		Speed:             parameter.EnemySpeed,
		Height:            parameter.EnemyHeight,
		PlayerRadius:      parameter.PlayerCollisionRadius,
		Shape:             physics.EnemyCapsule,
	}
}

// EnemySystem owns the enemy list lifecycle around the projectile driver
// Spawns waves on a ring around the player, steers every enemy straight at the player
// on the XZ plane and kills the player on contact
type EnemySystem struct {
	cfg       EnemyConfig
	rng       *vmath.FastRand
	events    EventPusher
	logger    *slog.Logger
	countdown float64
	frame     int64
}

func NewEnemySystem(cfg EnemyConfig, opts ...Option) *EnemySystem {
	o := buildOptions(opts)
	s := &EnemySystem{
		cfg:    cfg,
		rng:    vmath.NewFastRand(o.seed),
		events: o.events,
		logger: o.logger,
	}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.countdown = s.cfg.SpawnInterval
	s.frame = 0
}

func (s *EnemySystem) Name() string { return "enemy" }

// Update runs the spawn timer and returns enemies with any new wave appended
func (s *EnemySystem) Update(dt float64, player *component.Player, enemies []component.Enemy) []component.Enemy {
	s.frame++
	s.countdown -= dt
	if s.countdown > 0 {
		return enemies
	}
	s.countdown += s.cfg.SpawnInterval

	for i := 0; i < s.cfg.SpawnsPerInterval; i++ {
		enemies = append(enemies, s.spawn(player.Position))
	}
	return enemies
}

func (s *EnemySystem) spawn(center mgl64.Vec3) component.Enemy {
	theta := s.rng.Float64() * 2 * math.Pi
	sin, cos := math.Sincos(theta)
	pos := mgl64.Vec3{
		center[0] + sin*s.cfg.SpawnRadius,
		s.cfg.Height,
		center[2] + cos*s.cfg.SpawnRadius,
	}

	if s.events != nil {
		s.events.Push(event.GameEvent{
			Type:    event.EventEnemySpawned,
			Payload: &event.EnemySpawnedPayload{Position: pos},
			Frame:   s.frame,
		})
	}
	return component.NewEnemy(pos, parameter.CanonicalDir)
}

// Chase steers live enemies toward the player and tests contact
// Returns true when the player died this call
func (s *EnemySystem) Chase(dt float64, player *component.Player, enemies []component.Enemy, now time.Time) bool {
	target := mgl64.Vec3{player.Position[0], s.cfg.Height, player.Position[2]}
	killed := false

	for i := range enemies {
		e := &enemies[i]
		if !e.Alive {
			continue
		}

		e.Dir = vmath.PlanarDir(player.Position.Sub(e.Position))
		e.Position = e.Position.Add(e.Dir.Mul(dt * s.cfg.Speed))

		if !player.Alive {
			continue
		}
		body := physics.Body{Shape: s.cfg.Shape, Pos: e.Position, Dir: e.Dir}
		if physics.SphereTouchesCapsule(target, s.cfg.PlayerRadius, body) {
			player.Kill(now)
			killed = true
			s.logger.Debug("player killed", "enemy", i, "position", e.Position)
			if s.events != nil {
				s.events.Push(event.GameEvent{
					Type:    event.EventPlayerKilled,
					Payload: &event.PlayerKilledPayload{Position: e.Position, Enemy: i},
					Frame:   s.frame,
				})
			}
		}
	}
	return killed
}

// RemoveDead filters enemies in place, keeping order
func RemoveDead(enemies []component.Enemy) []component.Enemy {
	n := 0
	for _, e := range enemies {
		if e.Alive {
			enemies[n] = e
			n++
		}
	}
	clear(enemies[n:])
	return enemies[:n]
}
