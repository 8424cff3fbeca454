// Package config loads TOML overrides on top of the parameter defaults
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-volley/parameter"
	"github.com/lixenwraith/vi-volley/physics"
	"github.com/lixenwraith/vi-volley/system"
	"github.com/lixenwraith/vi-volley/volley"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config mirrors the TOML file layout
// Sections and keys absent from the file keep their defaults
type Config struct {
	Projectile ProjectileConfig `toml:"projectile"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Audio      AudioConfig      `toml:"audio"`
	Log        LogConfig        `toml:"log"`
}

type CapsuleConfig struct {
	Height float64 `toml:"height"`
	Radius float64 `toml:"radius"`
}

type ProjectileConfig struct {
	Speed                   float64       `toml:"speed"`
	Lifetime                float64       `toml:"lifetime"`
	RotationPerBulletDeg    float64       `toml:"rotation_per_bullet_deg"`
	Spread                  int           `toml:"spread"`
	MaxVolleys              int           `toml:"max_volleys"`
	SubGroups               int           `toml:"sub_groups"`
	Workers                 int           `toml:"workers"`
	ParallelSpreadThreshold int           `toml:"parallel_spread_threshold"`
	Culling                 bool          `toml:"culling"`
	Bullet                  CapsuleConfig `toml:"bullet"`
}

type EnemyConfig struct {
	SpawnInterval     float64       `toml:"spawn_interval"`
	SpawnsPerInterval int           `toml:"spawns_per_interval"`
	SpawnRadius       float64       `toml:"spawn_radius"`
	Speed             float64       `toml:"speed"`
	Height            float64       `toml:"height"`
	PlayerRadius      float64       `toml:"player_radius"`
	Capsule           CapsuleConfig `toml:"capsule"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	SampleRate   int     `toml:"sample_rate"`
	MasterVolume float64 `toml:"master_volume"`
	KillVolume   float64 `toml:"kill_volume"`
	ShotVolume   float64 `toml:"shot_volume"`
	MaxCues      int     `toml:"max_cues"`
}

type LogConfig struct {
	Dir      string `toml:"dir"`
	MaxBytes int64  `toml:"max_bytes"`
}

// Default builds a Config from the parameter constants
func Default() Config {
	return Config{
		Projectile: ProjectileConfig{
			Speed:                   parameter.ProjectileSpeed,
			Lifetime:                parameter.ProjectileLifetime,
			RotationPerBulletDeg:    parameter.RotationPerBulletDeg,
			Spread:                  parameter.SpreadAmount,
			MaxVolleys:              parameter.MaxVolleys,
			SubGroups:               parameter.SubGroupCount,
			Workers:                 parameter.Parallelism,
			ParallelSpreadThreshold: parameter.ParallelSpreadThreshold,
			Culling:                 true,
			Bullet: CapsuleConfig{
				Height: parameter.BulletColliderHeight,
				Radius: parameter.BulletColliderRadius,
			},
		},
		Enemy: EnemyConfig{
			SpawnInterval:     parameter.EnemySpawnInterval,
			SpawnsPerInterval: parameter.EnemySpawnsPerInterval,
			SpawnRadius:       parameter.EnemySpawnRadius,
			Speed:             parameter.EnemySpeed,
			Height:            parameter.EnemyHeight,
			PlayerRadius:      parameter.PlayerCollisionRadius,
			Capsule: CapsuleConfig{
				Height: parameter.EnemyColliderHeight,
				Radius: parameter.EnemyColliderRadius,
			},
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   parameter.AudioSampleRate,
			MasterVolume: parameter.MasterVolume,
			KillVolume:   parameter.EnemyDestroyedVolume,
			ShotVolume:   parameter.ShotVolume,
			MaxCues:      parameter.MaxConcurrentCues,
		},
		Log: LogConfig{
			Dir:      parameter.LogDir,
			MaxBytes: parameter.MaxLogBytes,
		},
	}
}

// Load decodes path over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, finish(path, cfg, md)
}

// Parse is Load for in-memory TOML
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	return cfg, finish("<inline>", cfg, md)
}

func finish(source string, cfg Config, md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", source, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", source, err)
	}
	return nil
}

// Validate reports every out-of-range field at once
func (c Config) Validate() error {
	var errs []error
	bad := func(field string, v any) {
		errs = append(errs, fmt.Errorf("%w: %s = %v", ErrInvalid, field, v))
	}

	p := c.Projectile
	if p.Speed <= 0 || !finite(p.Speed) {
		bad("projectile.speed", p.Speed)
	}
	if p.Lifetime <= 0 || !finite(p.Lifetime) {
		bad("projectile.lifetime", p.Lifetime)
	}
	if p.RotationPerBulletDeg < 0 || p.RotationPerBulletDeg >= 180 || math.IsNaN(p.RotationPerBulletDeg) {
		bad("projectile.rotation_per_bullet_deg", p.RotationPerBulletDeg)
	}
	if p.Spread < 1 {
		bad("projectile.spread", p.Spread)
	}
	if p.MaxVolleys < 1 {
		bad("projectile.max_volleys", p.MaxVolleys)
	}
	if p.SubGroups < 1 {
		bad("projectile.sub_groups", p.SubGroups)
	}
	if p.Workers < 1 {
		bad("projectile.workers", p.Workers)
	}
	if p.ParallelSpreadThreshold < 1 {
		bad("projectile.parallel_spread_threshold", p.ParallelSpreadThreshold)
	}
	if !validCapsule(p.Bullet) {
		bad("projectile.bullet", p.Bullet)
	}

	e := c.Enemy
	if e.SpawnInterval <= 0 || !finite(e.SpawnInterval) {
		bad("enemy.spawn_interval", e.SpawnInterval)
	}
	if e.SpawnsPerInterval < 0 {
		bad("enemy.spawns_per_interval", e.SpawnsPerInterval)
	}
	if e.SpawnRadius <= 0 || !finite(e.SpawnRadius) {
		bad("enemy.spawn_radius", e.SpawnRadius)
	}
	if e.Speed < 0 || !finite(e.Speed) {
		bad("enemy.speed", e.Speed)
	}
	if !finite(e.Height) {
		bad("enemy.height", e.Height)
	}
	if e.PlayerRadius < 0 || !finite(e.PlayerRadius) {
		bad("enemy.player_radius", e.PlayerRadius)
	}
	if !validCapsule(e.Capsule) {
		bad("enemy.capsule", e.Capsule)
	}

	a := c.Audio
	if a.SampleRate <= 0 {
		bad("audio.sample_rate", a.SampleRate)
	}
	for field, vol := range map[string]float64{
		"audio.master_volume": a.MasterVolume,
		"audio.kill_volume":   a.KillVolume,
		"audio.shot_volume":   a.ShotVolume,
	} {
		if vol < 0 || vol > 1 || math.IsNaN(vol) {
			bad(field, vol)
		}
	}
	if a.MaxCues < 1 {
		bad("audio.max_cues", a.MaxCues)
	}

	if c.Log.MaxBytes <= 0 {
		bad("log.max_bytes", c.Log.MaxBytes)
	}

	return errors.Join(errs...)
}

func validCapsule(c CapsuleConfig) bool {
	return c.Radius > 0 && c.Height >= 0 && finite(c.Radius) && finite(c.Height)
}

// finite rejects NaN and ±Inf, which TOML accepts as floats
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c CapsuleConfig) capsule() physics.Capsule {
	return physics.Capsule{Height: c.Height, Radius: c.Radius}
}

// Volley projects the projectile section into the ledger/driver config
func (c Config) Volley() volley.Config {
	p := c.Projectile
	return volley.Config{
		Speed:                   p.Speed,
		Lifetime:                p.Lifetime,
		RotationPerBullet:       p.RotationPerBulletDeg * math.Pi / 180,
		MaxVolleys:              p.MaxVolleys,
		SubGroups:               p.SubGroups,
		Workers:                 p.Workers,
		ParallelSpreadThreshold: p.ParallelSpreadThreshold,
		Culling:                 p.Culling,
		Bullet:                  p.Bullet.capsule(),
		Enemy:                   c.Enemy.Capsule.capsule(),
	}
}

func (c Config) Enemies() system.EnemyConfig {
	e := c.Enemy
	return system.EnemyConfig{
		SpawnInterval:     e.SpawnInterval,
		SpawnsPerInterval: e.SpawnsPerInterval,
		SpawnRadius:       e.SpawnRadius,
		Speed:             e.Speed,
		Height:            e.Height,
		PlayerRadius:      e.PlayerRadius,
		Shape:             e.Capsule.capsule(),
	}
}
