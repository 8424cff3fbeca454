package audio

import "github.com/lixenwraith/vi-volley/parameter"

// Config holds playback settings
// Volumes are linear gains in [0, 1]
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	KillVolume   float64
	ShotVolume   float64
	MaxCues      int // Concurrent one-shot cues before new ones are dropped
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.MasterVolume,
		KillVolume:   parameter.EnemyDestroyedVolume,
		ShotVolume:   parameter.ShotVolume,
		MaxCues:      parameter.MaxConcurrentCues,
	}
}
