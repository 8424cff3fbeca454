package parameter

// Capsule Colliders
// Body segment length is Height, centered on the entity position along its direction
const (
	BulletColliderHeight = 0.3
	BulletColliderRadius = 0.03

	EnemyColliderHeight = 0.4
	EnemyColliderRadius = 0.08

	// PlayerCollisionRadius is the sphere radius used for enemy contact against the player
	PlayerCollisionRadius = 0.35
)

// GeometryParallelEpsilon is the squared cross-product length under which two segment directions are treated as parallel
const GeometryParallelEpsilon = 0.001
