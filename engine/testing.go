package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyhook/config"
)

// NewTestWorld creates a world over default config with a fixed seed and no log output
func NewTestWorld(seed uint64) *World {
	cfg := config.Default()
	cfg.Seed = seed
	return NewWorld(NewResource(cfg, zerolog.Nop()))
}
