package volley

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-volley/parameter"
	"github.com/lixenwraith/vi-volley/vmath"
)

// Volley is one spawned batch: a contiguous [Start, Start+Count) range of the projectile arena
type Volley struct {
	ID    uint64 // Monotonic spawn sequence
	Start int
	Count int
	TTL   float64 // Seconds remaining
}

func (v Volley) End() int {
	return v.Start + v.Count
}

// Ledger tracks live volleys in spawn order over a shared projectile arena
// Spawn order equals expiry order, so expired volleys always form a prefix and
// retirement is one front drop of the arena plus a start-index rebase
// Not safe for concurrent use; the frame driver owns it
type Ledger struct {
	cfg     Config
	buf     buffers
	volleys []Volley
	nextID  uint64
	tables  map[int]*spreadTable
	logger  *slog.Logger
}

func NewLedger(cfg Config, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Ledger{
		cfg:    cfg,
		tables: make(map[int]*spreadTable),
		logger: logger,
	}
}

// Spawn appends a spread×spread volley fired from the muzzle toward the planar aim (dx, dz)
// Returns false without touching any state when the volley cap is reached or spread is not positive
func (l *Ledger) Spawn(dx, dz float64, muzzle mgl64.Mat4, spread int) (Volley, bool) {
	if spread <= 0 {
		return Volley{}, false
	}
	if len(l.volleys) >= l.cfg.MaxVolleys {
		l.logger.Debug("volley rejected", "live", len(l.volleys), "max", l.cfg.MaxVolleys)
		return Volley{}, false
	}

	began := time.Now()

	origin := vmath.TransformPoint(muzzle, mgl64.Vec3{})
	base := aimBase(dx, dz)
	table := l.table(spread)

	count := spread * spread
	start := l.buf.extend(count)

	fillRow := func(i int) {
		row := base.Mul(table.yaw[i])
		idx := start + i*spread
		for j := 0; j < spread; j++ {
			rot := row.Mul(table.pitch[j])
			l.buf.positions[idx+j] = origin
			l.buf.directions[idx+j] = rot.Rotate(parameter.CanonicalDir.Mul(-1))
			l.buf.rotations[idx+j] = rot
		}
	}

	// Rows write disjoint index ranges
	if spread > l.cfg.ParallelSpreadThreshold && l.cfg.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(l.cfg.Workers)
		for i := 0; i < spread; i++ {
			g.Go(func() error {
				fillRow(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := 0; i < spread; i++ {
			fillRow(i)
		}
	}

	l.nextID++
	v := Volley{ID: l.nextID, Start: start, Count: count, TTL: l.cfg.Lifetime}
	l.volleys = append(l.volleys, v)

	l.logger.Debug("volley spawned",
		"id", v.ID,
		"start", v.Start,
		"count", v.Count,
		"fill", time.Since(began),
	)
	return v, true
}

func (l *Ledger) table(spread int) *spreadTable {
	t, ok := l.tables[spread]
	if !ok {
		t = newSpreadTable(spread, l.cfg.RotationPerBullet)
		l.tables[spread] = t
	}
	return t
}

// Age decrements every volley's TTL by dt and returns the length of the expired prefix
func (l *Ledger) Age(dt float64) int {
	expired := 0
	for i := range l.volleys {
		l.volleys[i].TTL -= dt
		if l.volleys[i].TTL <= 0 && i == expired {
			expired++
		}
	}
	return expired
}

// Retire drops the first n volleys and their projectiles in one bulk compaction
// Surviving volleys are rebased by the dropped projectile total
func (l *Ledger) Retire(n int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, len(l.volleys))

	began := time.Now()

	dropped := 0
	for _, v := range l.volleys[:n] {
		dropped += v.Count
	}

	l.buf.dropFront(dropped)

	kept := copy(l.volleys, l.volleys[n:])
	l.volleys = l.volleys[:kept]
	for i := range l.volleys {
		l.volleys[i].Start -= dropped
	}

	l.logger.Debug("volleys retired",
		"volleys", n,
		"projectiles", dropped,
		"remaining", l.buf.len(),
		"elapsed", time.Since(began),
	)
	return dropped
}

// AdvanceAndRetire ages all volleys, hands the live suffix to step, then retires the expired prefix
// Indices seen by step are pre-compaction; anything recorded there shifts down by removed
func (l *Ledger) AdvanceAndRetire(dt float64, step func(live []Volley)) (expired, removed int) {
	expired = l.Age(dt)
	if step != nil {
		step(l.volleys[expired:])
	}
	return expired, l.Retire(expired)
}

// Integrate moves projectiles in [start, end) by step along their directions
// Disjoint ranges may be integrated concurrently
func (l *Ledger) Integrate(start, end int, step float64) {
	l.buf.integrate(start, end, step)
}

// Volleys returns the live volleys in spawn order; the slice is owned by the ledger
func (l *Ledger) Volleys() []Volley {
	return l.volleys
}

// Len is the total projectile count across live volleys
func (l *Ledger) Len() int {
	return l.buf.len()
}

// Arena views, read-only; invalidated by Spawn and Retire
func (l *Ledger) Positions() []mgl64.Vec3  { return l.buf.positions }
func (l *Ledger) Directions() []mgl64.Vec3 { return l.buf.directions }
func (l *Ledger) Rotations() []mgl64.Quat  { return l.buf.rotations }

func (l *Ledger) Config() Config {
	return l.cfg
}

// Reset drops every volley and projectile, keeping arena capacity
func (l *Ledger) Reset() {
	l.Retire(len(l.volleys))
}
