package system

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-volley/component"
	"github.com/lixenwraith/vi-volley/event"
	"github.com/lixenwraith/vi-volley/physics"
	"github.com/lixenwraith/vi-volley/vmath"
	"github.com/lixenwraith/vi-volley/volley"
)

//go:generate go tool mockgen -destination=./mocks/event_pusher_mock.go -package=mocks . EventPusher

// EventPusher receives the frame's outbound events
type EventPusher interface {
	Push(event.GameEvent)
}

// Option configures a system at construction
type Option func(*options)

type options struct {
	events EventPusher
	logger *slog.Logger
	seed   uint64
}

func WithEvents(p EventPusher) Option {
	return func(o *options) { o.events = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSeed fixes gameplay randomness for reproducible runs
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

func buildOptions(opts []Option) options {
	o := options{seed: uint64(time.Now().UnixNano())}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// kill is one bullet-enemy hit found by a sub-group
type kill struct {
	enemy      int
	projectile int
}

// subGroup is the unit of culling and parallel work: a contiguous slice of one volley
type subGroup struct {
	volley     uint64
	start, end int
	kills      []kill
	box        vmath.AABB // Culling bounds, reused across frames
}

// ProjectileSystem drives volleys frame by frame: integrate, cull, test, retire, emit
// Frame order per live volley: positions advance, each sub-group gets an inflated AABB,
// enemies inside it are tested capsule against capsule, first hit kills
// With Workers > 1 sub-groups run concurrently; alive flags are read-only during that phase
// and per-task kill lists are merged in task order afterwards
type ProjectileSystem struct {
	cfg     volley.Config
	ledger  *volley.Ledger
	events  EventPusher
	logger  *slog.Logger
	reach   float64
	enabled bool

	enemyBox vmath.AABB // Alive enemy positions, rebuilt each frame when culling
	frame   int64

	tasks   []subGroup
	impacts []component.Impact
}

func NewProjectileSystem(cfg volley.Config, opts ...Option) *ProjectileSystem {
	o := buildOptions(opts)
	s := &ProjectileSystem{
		cfg:    cfg,
		ledger: volley.NewLedger(cfg, o.logger),
		events: o.events,
		logger: o.logger,
		reach:  cfg.MaxCollisionDistance(),
	}
	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.ledger.Reset()
	s.frame = 0
	s.enabled = true
}

func (s *ProjectileSystem) Name() string { return "projectile" }

// SetEnabled pauses the system; a disabled system neither spawns nor advances
func (s *ProjectileSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Ledger exposes volleys and arena views for rendering
func (s *ProjectileSystem) Ledger() *volley.Ledger {
	return s.ledger
}

// Spawn fires a spread×spread volley from the muzzle toward planar aim (dx, dz)
// False means the volley cap is reached; callers wait for expiry before retrying
func (s *ProjectileSystem) Spawn(dx, dz float64, muzzle mgl64.Mat4, spread int) bool {
	if !s.enabled {
		return false
	}

	v, ok := s.ledger.Spawn(dx, dz, muzzle, spread)
	if !ok {
		s.push(event.EventVolleyRejected, &event.VolleyRejectedPayload{
			Live: len(s.ledger.Volleys()),
			Max:  s.cfg.MaxVolleys,
		})
		return false
	}

	s.push(event.EventVolleySpawned, &event.VolleySpawnedPayload{
		ID:     v.ID,
		Count:  v.Count,
		Origin: s.ledger.Positions()[v.Start],
	})
	return true
}

// Update advances one frame and returns the kills made in it
// Enemies hit are marked dead in place; removal is left to the enemy owner
// The returned slice is reused by the next Update
func (s *ProjectileSystem) Update(dt float64, enemies []component.Enemy) []component.Impact {
	s.impacts = s.impacts[:0]
	if !s.enabled {
		return s.impacts
	}
	s.frame++
	began := time.Now()

	expired, removed := s.ledger.AdvanceAndRetire(dt, func(live []volley.Volley) {
		s.partition(live, len(enemies) > 0)
		s.run(dt*s.cfg.Speed, enemies)
	})

	if expired > 0 {
		// Hitting projectiles belong to live volleys and shift with them
		for i := range s.impacts {
			s.impacts[i].Projectile -= removed
		}
		s.push(event.EventVolleyExpired, &event.VolleyExpiredPayload{
			Volleys:     expired,
			Projectiles: removed,
			Remaining:   s.ledger.Len(),
		})
	}

	if len(s.impacts) > 0 && s.events != nil {
		event.EmitBatch(s.events, event.KillBatchPool, event.EventEnemyKilled, s.impacts, s.frame)
	}

	s.logger.Debug("projectile frame",
		"frame", s.frame,
		"volleys", len(s.ledger.Volleys()),
		"projectiles", s.ledger.Len(),
		"subgroups", len(s.tasks),
		"kills", len(s.impacts),
		"elapsed", time.Since(began),
	)
	return s.impacts
}

// run integrates and tests every sub-group, committing kills in task order
func (s *ProjectileSystem) run(step float64, enemies []component.Enemy) {
	culling := s.cfg.Culling && len(enemies) > 0
	if culling {
		s.enemyBox.Reset()
		for k := range enemies {
			if enemies[k].Alive {
				s.enemyBox.ExpandToInclude(enemies[k].Position)
			}
		}
	}

	if s.cfg.Workers > 1 && len(s.tasks) > 1 {
		var g errgroup.Group
		g.SetLimit(s.cfg.Workers)
		for i := range s.tasks {
			g.Go(func() error {
				s.runSubGroup(&s.tasks[i], step, enemies, culling)
				return nil
			})
		}
		_ = g.Wait()

		for i := range s.tasks {
			s.commit(&s.tasks[i], enemies)
		}
		return
	}

	// Committing per task lets later sub-groups skip enemies already dead
	for i := range s.tasks {
		s.runSubGroup(&s.tasks[i], step, enemies, culling)
		s.commit(&s.tasks[i], enemies)
	}
}

// partition slices every live volley into sub-groups; the last one absorbs the remainder
// Without enemies there is nothing to cull against and each volley is one group
func (s *ProjectileSystem) partition(live []volley.Volley, hasEnemies bool) {
	n := 1
	if hasEnemies {
		n = max(1, s.cfg.SubGroups)
	}

	need := len(live) * n
	if cap(s.tasks) < need {
		s.tasks = make([]subGroup, need)
	}
	s.tasks = s.tasks[:need]

	t := 0
	for _, v := range live {
		size := v.Count / n
		for g := 0; g < n; g++ {
			start := v.Start + g*size
			end := start + size
			if g == n-1 {
				end = v.End()
			}
			s.tasks[t].volley = v.ID
			s.tasks[t].start = start
			s.tasks[t].end = end
			s.tasks[t].kills = s.tasks[t].kills[:0]
			t++
		}
	}
}

// runSubGroup integrates its slice and collects hits without writing shared state
func (s *ProjectileSystem) runSubGroup(t *subGroup, step float64, enemies []component.Enemy, culling bool) {
	s.ledger.Integrate(t.start, t.end, step)
	if len(enemies) == 0 {
		return
	}

	pos := s.ledger.Positions()[t.start:t.end]
	dir := s.ledger.Directions()[t.start:t.end]

	if culling {
		t.box.Reset()
		for _, p := range pos {
			t.box.ExpandToInclude(p)
		}
		// An empty sub-group hits nothing
		if !t.box.Initialized() {
			return
		}
		t.box.ExpandBy(s.reach)
		if !vmath.Intersects(&t.box, &s.enemyBox) {
			return
		}
	}

	for k := range enemies {
		e := &enemies[k]
		if !e.Alive {
			continue
		}
		if culling && !t.box.ContainsPoint(e.Position) {
			continue
		}

		target := physics.Body{Shape: s.cfg.Enemy, Pos: e.Position, Dir: e.Dir}
		for b := range pos {
			bullet := physics.Body{Shape: s.cfg.Bullet, Pos: pos[b], Dir: dir[b]}
			if physics.CapsulesCollide(bullet, target) {
				t.kills = append(t.kills, kill{enemy: k, projectile: t.start + b})
				break
			}
		}
	}
}

// commit applies a sub-group's kills; an enemy already dead is skipped so each dies once
func (s *ProjectileSystem) commit(t *subGroup, enemies []component.Enemy) {
	for _, k := range t.kills {
		e := &enemies[k.enemy]
		if !e.Alive {
			continue
		}
		e.Alive = false
		s.impacts = append(s.impacts, component.Impact{
			Position:   e.Position,
			EnemyIndex: k.enemy,
			VolleyID:   t.volley,
			Projectile: k.projectile,
		})
	}
}

func (s *ProjectileSystem) push(t event.EventType, payload any) {
	if s.events == nil {
		return
	}
	s.events.Push(event.GameEvent{Type: t, Payload: payload, Frame: s.frame})
}
