// Package config loads gameplay tuning from YAML layered over parameter defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skyhook/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full tuning surface, zero-config runs use Default()
type Config struct {
	TickRate int    `yaml:"tick_rate"`
	Seed     uint64 `yaml:"seed"` // 0 = time-seeded

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Player  PlayerConfig  `yaml:"player"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Score   ScoreConfig   `yaml:"score"`
	Hints   []HintConfig  `yaml:"hints"`
}

// LogConfig controls the zerolog file sink
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Dir     string `yaml:"dir"`
	File    string `yaml:"file"`
}

// MetricsConfig controls the prometheus exporter, empty Addr disables it
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// PlayerConfig holds movement, hook and dash tuning
type PlayerConfig struct {
	Acceleration         float64       `yaml:"acceleration"`
	JumpVelocity         float64       `yaml:"jump_velocity"`
	LookSensitivity      float64       `yaml:"look_sensitivity"`
	HookBaseRange        float64       `yaml:"hook_base_range"`
	HookRangePerLevel    float64       `yaml:"hook_range_per_level"`
	HookSpeed            float64       `yaml:"hook_speed"`
	HookStrengthPerLevel float64       `yaml:"hook_strength_per_level"`
	HookReactionFactor   float64       `yaml:"hook_reaction_factor"`
	SmashDistance        float64       `yaml:"smash_distance"`
	DashPower            float64       `yaml:"dash_power"`
	DashStrengthPerLevel float64       `yaml:"dash_strength_per_level"`
	DashCooldown         time.Duration `yaml:"dash_cooldown"`
}

// SpawnConfig holds spawn director and lifecycle tuning
type SpawnConfig struct {
	Tiers                  []TierConfig  `yaml:"tiers"`
	StaticSphereChance     float64       `yaml:"static_sphere_chance"`
	ThingamajigChance      float64       `yaml:"thingamajig_chance"`
	MinSphereDistance      float64       `yaml:"min_sphere_distance"`
	MinThingamajigDistance float64       `yaml:"min_thingamajig_distance"`
	DespawnY               float64       `yaml:"despawn_y"`
	FadeoutDuration        time.Duration `yaml:"fadeout_duration"`
}

// TierConfig is one altitude step, first row with AboveY < y applies
type TierConfig struct {
	AboveY float64       `yaml:"above_y"`
	Tier1  time.Duration `yaml:"tier1"`
	Tier2  time.Duration `yaml:"tier2"`
}

// ScoreConfig holds reveal timing
type ScoreConfig struct {
	RevealInterval time.Duration `yaml:"reveal_interval"`
	HeightPerPoint float64       `yaml:"height_per_point"`
}

// HintConfig is one altitude-triggered hint
type HintConfig struct {
	AboveY   float64       `yaml:"above_y"`
	Text     string        `yaml:"text"`
	Icon     string        `yaml:"icon"`
	Duration time.Duration `yaml:"duration"`
}

// Default returns the built-in tuning
func Default() *Config {
	tiers := make([]TierConfig, 0, len(parameter.DefaultSpawnTiers))
	for _, t := range parameter.DefaultSpawnTiers {
		tiers = append(tiers, TierConfig{AboveY: t.AboveY, Tier1: t.Tier1, Tier2: t.Tier2})
	}
	hints := make([]HintConfig, 0, len(parameter.DefaultHints))
	for _, h := range parameter.DefaultHints {
		hints = append(hints, HintConfig{AboveY: h.AboveY, Text: h.Text, Icon: h.Icon, Duration: h.Duration})
	}

	return &Config{
		TickRate: parameter.DefaultTickRate,
		Log: LogConfig{
			Level: "info",
			Dir:   "logs",
			File:  "skyhook.log",
		},
		Player: PlayerConfig{
			Acceleration:         parameter.Acceleration,
			JumpVelocity:         parameter.JumpVelocity,
			LookSensitivity:      parameter.LookSensitivity,
			HookBaseRange:        parameter.HookBaseRange,
			HookRangePerLevel:    parameter.HookRangePerLevel,
			HookSpeed:            parameter.HookSpeed,
			HookStrengthPerLevel: parameter.HookStrengthPerLevel,
			HookReactionFactor:   parameter.HookReactionFactor,
			SmashDistance:        parameter.SmashDistance,
			DashPower:            parameter.DashPower,
			DashStrengthPerLevel: parameter.DashStrengthPerLevel,
			DashCooldown:         parameter.DashCooldown,
		},
		Spawn: SpawnConfig{
			Tiers:                  tiers,
			StaticSphereChance:     parameter.StaticSphereChance,
			ThingamajigChance:      parameter.ThingamajigChance,
			MinSphereDistance:      parameter.MinSphereDistance,
			MinThingamajigDistance: parameter.MinThingamajigDistance,
			DespawnY:               parameter.DespawnY,
			FadeoutDuration:        parameter.FadeoutDuration,
		},
		Score: ScoreConfig{
			RevealInterval: parameter.ScoreRevealInterval,
			HeightPerPoint: parameter.HeightPerPoint,
		},
		Hints: hints,
	}
}

// Load reads a YAML file over Default(), empty path returns defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields absent from data, then validates
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return cfg.Validate()
}

// Validate checks invariants the systems rely on
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if len(c.Spawn.Tiers) == 0 {
		return fmt.Errorf("%w: spawn.tiers is empty", ErrInvalid)
	}
	for i, t := range c.Spawn.Tiers {
		if t.Tier1 < 0 || t.Tier2 < 0 {
			return fmt.Errorf("%w: spawn.tiers[%d] has negative interval", ErrInvalid, i)
		}
		if i > 0 && t.AboveY >= c.Spawn.Tiers[i-1].AboveY {
			return fmt.Errorf("%w: spawn.tiers must be ordered by descending above_y", ErrInvalid)
		}
	}
	for name, p := range map[string]float64{
		"static_sphere_chance": c.Spawn.StaticSphereChance,
		"thingamajig_chance":   c.Spawn.ThingamajigChance,
		"hook_reaction_factor": c.Player.HookReactionFactor,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %g", ErrInvalid, name, p)
		}
	}
	if c.Spawn.FadeoutDuration <= 0 {
		return fmt.Errorf("%w: spawn.fadeout_duration must be positive", ErrInvalid)
	}
	if c.Score.RevealInterval <= 0 {
		return fmt.Errorf("%w: score.reveal_interval must be positive", ErrInvalid)
	}
	if c.Score.HeightPerPoint <= 0 {
		return fmt.Errorf("%w: score.height_per_point must be positive", ErrInvalid)
	}
	if c.Player.DashCooldown < 0 {
		return fmt.Errorf("%w: player.dash_cooldown must not be negative", ErrInvalid)
	}
	return nil
}

// TickInterval returns the fixed frame period
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
