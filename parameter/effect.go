package parameter

// Impact Sprite
const (
	// ImpactSpriteColumns is the number of frames in the impact sprite sheet
	ImpactSpriteColumns = 11

	// ImpactSpriteFrameTime is seconds per sprite sheet frame
	ImpactSpriteFrameTime = 0.05
)

// Burn Mark
const (
	// BurnMarkLifetime is seconds a burn mark stays on the floor
	BurnMarkLifetime = 5.0

	// BurnMarkScale is the decal scale per remaining second
	BurnMarkScale = 0.5
)

// Muzzle Flash
const (
	MuzzleFlashColumns   = 6
	MuzzleFlashFrameTime = 0.03
)
