package parameter

// System Execution Priorities (lower runs first)
// Order follows the tick phases: input -> player -> physics -> spawning -> lifecycle -> economy -> presentation
const (
	PriorityPlayer      = 10
	PriorityPhysics     = 20
	PrioritySpawn       = 30
	PriorityDespawn     = 40
	PriorityFadeout     = 50
	PriorityScore       = 60
	PriorityShop        = 70
	PriorityHint        = 80
	PriorityDiagnostics = 1000 // After all others, telemetry collection
)
