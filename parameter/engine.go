package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the sandbox frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps delta time after a stall so projectiles do not tunnel across the field
	MaxFrameDelta = 0.1
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// Logging
const (
	LogDir      = "logs"
	MaxLogBytes = 10 * 1024 * 1024
)
