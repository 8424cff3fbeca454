package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Enemy Destroyed Sound
const (
	EnemyDestroyedDuration = 180 * time.Millisecond
	EnemyDestroyedAttack   = 5 * time.Millisecond
	EnemyDestroyedRelease  = 150 * time.Millisecond

	// EnemyDestroyedToneHz is the low thump mixed under the noise burst
	EnemyDestroyedToneHz = 90.0

	// EnemyDestroyedNoiseMix is the noise share of the mixed cue (tone gets the rest)
	EnemyDestroyedNoiseMix = 0.6

	EnemyDestroyedVolume = 0.5
)

// MaxConcurrentCues caps overlapping kill cues in the mixer
const MaxConcurrentCues = 8

// Shot Sound
const (
	ShotDuration = 60 * time.Millisecond
	ShotAttack   = 2 * time.Millisecond
	ShotRelease  = 50 * time.Millisecond

	// ShotToneHz is the square-wave pitch of the firing click
	ShotToneHz = 330.0

	ShotVolume = 0.25
)

// MasterVolume scales every cue
const MasterVolume = 0.8
