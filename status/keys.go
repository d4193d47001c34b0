package status

// Metric keys written by systems
const (
	KeyTicks    = "engine.ticks"
	KeyFPS      = "engine.fps"
	KeyPaused   = "engine.paused"
	KeyEntities = "world.entities"

	KeyPlayerY       = "player.y"
	KeyPlayerSpeed   = "player.speed"
	KeyPlayerHooked  = "player.hooked"
	KeyPlayerMissing = "player.missing"

	KeyTier1Interval = "spawn.tier1_interval_ms"
	KeyTier2Interval = "spawn.tier2_interval_ms"
	KeySpawned       = "spawn.spawned"
	KeyRejected      = "spawn.rejected"

	KeyDespawned = "lifecycle.despawned"
	KeyFaded     = "lifecycle.faded"

	KeyScoreTotal = "score.total"
	KeySpent      = "economy.spent"
	KeyPurchases  = "economy.purchases"

	KeyHint = "hint.current"
)
