// Package config provides configuration loading and access for the
// decision core, grounded on the teacher's config/config.go: embedded YAML
// defaults, optionally overridden by a user file.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable the decision core reads at runtime.
type Config struct {
	Sight      SightConfig      `yaml:"sight"`
	Cooldowns  CooldownsConfig  `yaml:"cooldowns"`
	Relaxation RelaxationConfig `yaml:"relaxation"`
	Selector   SelectorConfig   `yaml:"selector"`
	Crafter    CrafterConfig    `yaml:"crafter"`
}

// SightConfig holds the trigger distances predicates scan within.
type SightConfig struct {
	EnemyTriggerDist  float64 `yaml:"enemy_trigger_dist"`
	PlayerTriggerDist float64 `yaml:"player_trigger_dist"`
	PatrolDist        float64 `yaml:"patrol_dist"`
}

// CooldownsConfig holds timer lengths for resting/healing routines.
type CooldownsConfig struct {
	SleepTimer              int `yaml:"sleep_timer"`
	PlayerHealingCooldown   int `yaml:"player_healing_cooldown"`
	HealsNeededBeforeResting int `yaml:"heals_needed_before_resting"`
}

// RelaxationConfig bounds the dungeon grid a Dijkstra map is built over and
// the standoff distance the mage map aims for.
type RelaxationConfig struct {
	MinCoord          int     `yaml:"min_coord"`
	MaxCoord          int     `yaml:"max_coord"`
	MageStandoffDist  float64 `yaml:"mage_standoff_dist"`
}

// SelectorConfig holds the inertial utility selector's bonus/cooldown
// constants.
type SelectorConfig struct {
	InertiaBonus    float64 `yaml:"inertia_bonus"`
	InertiaCooldown float64 `yaml:"inertia_cooldown"`
}

// CrafterConfig holds the hitpoints threshold below which a crafter stops
// planting and returns to base.
type CrafterConfig struct {
	LowHPThreshold float64 `yaml:"low_hp_threshold"`
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}
