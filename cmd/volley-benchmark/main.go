package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/component"
	"github.com/lixenwraith/vi-volley/config"
	"github.com/lixenwraith/vi-volley/system"
	"github.com/lixenwraith/vi-volley/vmath"
	"github.com/lixenwraith/vi-volley/volley"
)

var (
	frames     = flag.Int("frames", 600, "Frames simulated per mode")
	enemyCount = flag.Int("enemies", 200, "Live enemies kept on the field")
	spread     = flag.Int("spread", 0, "Spread side (0 keeps config)")
	workers    = flag.Int("workers", 0, "Workers for the parallel run (0 keeps config)")
	seed       = flag.Uint64("seed", 42, "Enemy placement seed")
	configPath = flag.String("config", "", "TOML config file overriding defaults")
)

// result summarizes one mode's run
type result struct {
	name   string
	frames []time.Duration
	kills  int
	fired  int
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *spread > 0 {
		cfg.Projectile.Spread = *spread
	}
	if *workers > 0 {
		cfg.Projectile.Workers = *workers
	}

	seq := cfg.Volley()
	seq.Workers = 1
	par := cfg.Volley()
	par.Workers = max(2, par.Workers)

	fmt.Printf("Volley Benchmark: %d frames, %d enemies, spread %d (%d bullets/volley), max %d volleys\n",
		*frames, *enemyCount, cfg.Projectile.Spread, cfg.Projectile.Spread*cfg.Projectile.Spread, seq.MaxVolleys)
	fmt.Println("══════════════════════════════════════════════════════════════════════════")
	fmt.Printf("%-12s %12s %12s %12s %12s %8s %8s\n", "Mode", "Total", "Avg", "P50", "P99", "Volleys", "Kills")
	fmt.Println("──────────────────────────────────────────────────────────────────────────")

	rs := run("sequential", seq, cfg.Projectile.Spread)
	printResult(rs)
	rp := run(fmt.Sprintf("parallel/%d", par.Workers), par, cfg.Projectile.Spread)
	printResult(rp)

	fmt.Println("══════════════════════════════════════════════════════════════════════════")
	if rs.kills != rp.kills {
		fmt.Printf("  MISMATCH: sequential %d kills, parallel %d kills\n", rs.kills, rp.kills)
	} else {
		fmt.Printf("  Kill sets match (%d)\n", rs.kills)
	}
	fmt.Printf("  Speedup:      %.2fx\n", float64(total(rs.frames))/float64(max(total(rp.frames), 1)))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)
}

// run fires whenever the ledger accepts and refills killed enemies at seeded positions
func run(name string, cfg volley.Config, spread int) result {
	s := system.NewProjectileSystem(cfg)
	rng := vmath.NewFastRand(*seed)
	enemies := make([]component.Enemy, *enemyCount)
	for i := range enemies {
		enemies[i] = placeEnemy(rng)
	}

	const dt = 1.0 / 60
	muzzle := mgl64.Translate3D(0, 0, 0)
	r := result{name: name, frames: make([]time.Duration, 0, *frames)}

	for f := 0; f < *frames; f++ {
		// Sweep the aim so volleys cover the field
		angle := math.Sin(float64(f)*0.05) * math.Pi / 3
		if s.Spawn(math.Sin(angle), math.Cos(angle), muzzle, spread) {
			r.fired++
		}

		start := time.Now()
		r.kills += len(s.Update(dt, enemies))
		r.frames = append(r.frames, time.Since(start))

		for i := range enemies {
			if !enemies[i].Alive {
				enemies[i] = placeEnemy(rng)
			}
		}
	}
	return r
}

// placeEnemy drops an enemy in the forward half-disc the volleys sweep
func placeEnemy(rng *vmath.FastRand) component.Enemy {
	theta := (rng.Float64() - 0.5) * math.Pi
	dist := 2 + rng.Float64()*10
	sin, cos := math.Sincos(theta)
	pos := mgl64.Vec3{sin * dist, 0, cos * dist}
	return component.NewEnemy(pos, vmath.PlanarDir(pos.Mul(-1)))
}

func total(ds []time.Duration) time.Duration {
	var t time.Duration
	for _, d := range ds {
		t += d
	}
	return t
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	i := min(int(float64(len(sorted))*p), len(sorted)-1)
	return sorted[i]
}

func printResult(r result) {
	sorted := slices.Clone(r.frames)
	slices.Sort(sorted)
	t := total(r.frames)
	fmt.Printf("%-12s %12v %12v %12v %12v %8d %8d\n",
		r.name, t, t/time.Duration(max(len(r.frames), 1)),
		percentile(sorted, 0.50), percentile(sorted, 0.99), r.fired, r.kills)
}
