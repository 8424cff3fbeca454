package event

// EventType represents the type of game event
type EventType int

const (
	// === Volley Events ===

	// EventVolleySpawned signals a volley accepted by the ledger
	// Trigger: ProjectileSystem.Spawn
	// Consumer: muzzle flash, diagnostics | Payload: *VolleySpawnedPayload
	EventVolleySpawned EventType = iota + 1

	// EventVolleyRejected signals a spawn refused at the volley cap
	// Trigger: ProjectileSystem.Spawn
	// Consumer: diagnostics | Payload: *VolleyRejectedPayload
	EventVolleyRejected

	// EventVolleyExpired signals bulk retirement of the expired volley prefix
	// Trigger: ProjectileSystem.Update
	// Consumer: diagnostics | Payload: *VolleyExpiredPayload
	EventVolleyExpired

	// === Combat Events ===

	// EventEnemyKilled carries every bullet-enemy kill of one frame
	// Trigger: ProjectileSystem.Update
	// Consumer: ImpactSprites, BurnMarks, SoundManager | Payload: *BatchPayload[component.Impact]
	EventEnemyKilled

	// EventEnemySpawned signals a new enemy on the spawn ring
	// Trigger: EnemySystem.Update
	// Consumer: diagnostics | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// EventPlayerKilled signals enemy contact with the player
	// Trigger: EnemySystem.Chase
	// Consumer: game loop | Payload: *PlayerKilledPayload
	EventPlayerKilled
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
