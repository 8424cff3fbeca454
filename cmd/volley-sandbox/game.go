package main

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/component"
	"github.com/lixenwraith/vi-volley/config"
	"github.com/lixenwraith/vi-volley/effect"
	"github.com/lixenwraith/vi-volley/event"
	"github.com/lixenwraith/vi-volley/parameter"
	"github.com/lixenwraith/vi-volley/system"
)

// sandbox owns the simulated world and every system that mutates it
// All methods run on the frame goroutine
type sandbox struct {
	cfg    config.Config
	logger *slog.Logger

	queue  *event.EventQueue
	router *event.Router

	projectiles *system.ProjectileSystem
	enemySys    *system.EnemySystem
	effects     *effect.System

	player  component.Player
	enemies []component.Enemy
	spread  int

	frame  int64
	kills  int
	deaths int
}

func newSandbox(cfg config.Config, logger *slog.Logger, seed uint64) *sandbox {
	queue := event.NewEventQueue()
	s := &sandbox{
		cfg:     cfg,
		logger:  logger,
		queue:   queue,
		router:  event.NewRouter(queue),
		effects: effect.NewSystem(),
		player:  component.NewPlayer(mgl64.Vec3{}),
		spread:  cfg.Projectile.Spread,
	}

	s.projectiles = system.NewProjectileSystem(cfg.Volley(),
		system.WithEvents(queue), system.WithLogger(logger))
	s.enemySys = system.NewEnemySystem(cfg.Enemies(),
		system.WithEvents(queue), system.WithLogger(logger), system.WithSeed(seed))

	s.router.Register(s.effects)
	return s
}

// register adds an extra consumer of the frame's events
func (s *sandbox) register(h event.Handler) {
	s.router.Register(h)
}

// rotateAim turns the player's planar aim by deg around the up axis
func (s *sandbox) rotateAim(deg float64) {
	q := mgl64.QuatRotate(mgl64.DegToRad(deg), parameter.UpAxis)
	s.player.Aim = q.Rotate(s.player.Aim).Normalize()
}

func (s *sandbox) adjustSpread(delta int) {
	s.spread = max(1, s.spread+delta)
}

// muzzle places the spawn transform just ahead of the player at body height
func (s *sandbox) muzzle() mgl64.Mat4 {
	p := s.player.Position.Add(s.player.Aim.Mul(parameter.MuzzleOffset))
	return mgl64.Translate3D(p[0], s.cfg.Enemy.Height, p[2])
}

// fire spawns a volley along the current aim, rate-limited by FireInterval
func (s *sandbox) fire(now time.Time) bool {
	if !s.player.Alive || now.Sub(s.player.LastFire) < parameter.FireInterval {
		return false
	}
	if !s.projectiles.Spawn(s.player.Aim[0], s.player.Aim[2], s.muzzle(), s.spread) {
		return false
	}
	s.player.LastFire = now
	return true
}

// step advances one frame: spawn, projectiles, chase, cleanup, event dispatch
func (s *sandbox) step(dt float64, now time.Time) {
	s.frame++

	if !s.player.Alive && now.Sub(s.player.DeathTime) >= parameter.PlayerRespawnDelay {
		s.player.Respawn()
		s.enemies = s.enemies[:0]
		s.logger.Info("player respawned", "deaths", s.deaths)
	}

	s.enemies = s.enemySys.Update(dt, &s.player, s.enemies)

	impacts := s.projectiles.Update(dt, s.enemies)
	s.kills += len(impacts)

	if s.enemySys.Chase(dt, &s.player, s.enemies, now) {
		s.deaths++
	}
	s.enemies = system.RemoveDead(s.enemies)

	s.router.DispatchAll()
	s.effects.Update(dt)
}
