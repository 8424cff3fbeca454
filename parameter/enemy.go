package parameter

import "time"

// Enemy Spawning
const (
	// EnemySpawnInterval is the time between spawn waves
	EnemySpawnInterval = 1.0 // seconds

	// EnemySpawnsPerInterval is enemies created per wave
	EnemySpawnsPerInterval = 1

	// EnemySpawnRadius is the ring radius around the player where enemies appear
	EnemySpawnRadius = 10.0
)

// Enemy Movement
const (
	// EnemySpeed is chase speed on the XZ plane in world units/sec
	EnemySpeed = 0.6

	// EnemyHeight is the fixed Y of enemy bodies, level with the muzzle
	EnemyHeight = 0.484
)

// Player
const (
	// PlayerRespawnDelay is how long the sandbox keeps a dead player down
	PlayerRespawnDelay = 2 * time.Second

	// FireInterval is the minimum time between volleys while the trigger is held
	FireInterval = 100 * time.Millisecond
)
