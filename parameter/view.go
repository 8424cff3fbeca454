package parameter

// Sandbox Top-Down View
const (
	// ViewCellsPerUnitX is terminal columns per world unit along X
	ViewCellsPerUnitX = 3.0

	// ViewCellsPerUnitZ is terminal rows per world unit along Z (cells are ~2:1)
	ViewCellsPerUnitZ = 1.5

	// AimStepDeg is the aim rotation per key press
	AimStepDeg = 15.0

	// AimMarkerDistance places the aim reticle ahead of the player in world units
	AimMarkerDistance = 2.0
)

// MuzzleOffset is the muzzle distance ahead of the player along the aim
const MuzzleOffset = 0.5
