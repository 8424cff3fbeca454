package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-volley/component"
	"github.com/lixenwraith/vi-volley/volley"
)

// saturate fills the ledger to MaxVolleys so every frame tests full volleys
func saturate(s *ProjectileSystem) {
	muzzle := mgl64.Translate3D(0, 0, 0)
	for s.Spawn(0, 1, muzzle, 20) {
	}
}

// reviveAll keeps the enemy count constant across iterations
func reviveAll(enemies []component.Enemy) {
	for i := range enemies {
		enemies[i].Alive = true
	}
}

func benchmarkUpdate(b *testing.B, workers int, culling bool) {
	cfg := volley.DefaultConfig()
	cfg.Workers = workers
	cfg.Culling = culling
	// Lifetime long enough that nothing expires mid-benchmark
	cfg.Lifetime = 1e9
	cfg.Speed = 0

	s := NewProjectileSystem(cfg)
	saturate(s)
	enemies := enemyField()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reviveAll(enemies)
		s.Update(1.0/60, enemies)
	}
}

// BenchmarkProjectileUpdate_Sequential measures a full ledger against the enemy field on one goroutine
func BenchmarkProjectileUpdate_Sequential(b *testing.B) { benchmarkUpdate(b, 1, true) }

// BenchmarkProjectileUpdate_Parallel measures the same frame fanned out over four workers
func BenchmarkProjectileUpdate_Parallel(b *testing.B) { benchmarkUpdate(b, 4, true) }

// BenchmarkProjectileUpdate_NoCulling measures exact tests against every enemy
func BenchmarkProjectileUpdate_NoCulling(b *testing.B) { benchmarkUpdate(b, 1, false) }

func BenchmarkProjectileSpawn(b *testing.B) {
	cfg := volley.DefaultConfig()
	cfg.Workers = 1
	s := NewProjectileSystem(cfg)
	muzzle := mgl64.Translate3D(0, 0.5, 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !s.Spawn(0.3, 1, muzzle, 20) {
			s.Ledger().Reset()
		}
	}
}
