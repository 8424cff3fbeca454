package event

import (
	"github.com/go-gl/mathgl/mgl64"
)

// VolleySpawnedPayload describes an accepted volley
type VolleySpawnedPayload struct {
	ID     uint64
	Count  int
	Origin mgl64.Vec3
}

// VolleyRejectedPayload reports the ledger occupancy at rejection
type VolleyRejectedPayload struct {
	Live int
	Max  int
}

// VolleyExpiredPayload summarizes one bulk retirement
type VolleyExpiredPayload struct {
	Volleys     int
	Projectiles int
	Remaining   int // Arena size after compaction
}

// EnemySpawnedPayload contains the spawn position on the ring
type EnemySpawnedPayload struct {
	Position mgl64.Vec3
}

// PlayerKilledPayload contains the contact point
type PlayerKilledPayload struct {
	Position mgl64.Vec3
	Enemy    int // Index of the enemy that made contact
}
