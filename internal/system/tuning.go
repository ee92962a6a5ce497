package system

const (
	// RespawnPadding scales half a sprite's extent to give the inset of a
	// respawned center from the edge it re-enters at. It stays above
	// geom.Fuzz so the collision box clears that edge.
	RespawnPadding = 0.98

	// PowerUpExpiryMs is how long an uncollected power-up survives.
	PowerUpExpiryMs = 14000.0
	// PowerUpShuffleMs is the interval between power-up hops along a carrier.
	PowerUpShuffleMs = 2000.0

	// slotEpsilon absorbs float drift when comparing ride positions.
	slotEpsilon = 1e-6
)
