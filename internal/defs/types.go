// internal/defs/types.go
package defs

import "go-tower-sim/pkg/grid"

// MapDefinition describes a map layout and its metadata.
type MapDefinition struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Tileset     string       `json:"tileset"`
	Path        []grid.Coord
	SpawnDelay  float64      `json:"spawn_delay"`
	Description string       `json:"description"`
}

// WaveBlueprint — raw wave definition as loaded from the CSV table.
type WaveBlueprint struct {
	Wave       int
	EnemyType  string
	Count      int
	BaseHealth float64
	BaseSpeed  float64
	Special    string // empty = none
}

// WaveConfig is a blueprint after difficulty scaling. Never mutated
// after creation.
type WaveConfig struct {
	Wave           int
	EnemyType      string
	Count          int
	Health         float64
	Speed          float64
	Special        string // empty = none
	DifficultyTags []string
}

// UpgradeDefinition describes one rung of a tower's upgrade ladder.
type UpgradeDefinition struct {
	Cost          int     `json:"cost"`
	RangeBonus    float64 `json:"range_bonus"`
	FireRateBonus float64 `json:"fire_rate_bonus"`
	DamageBonus   int     `json:"damage_bonus"`
}

// TowerDefinition describes a buildable tower type.
type TowerDefinition struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Cost            int                 `json:"cost"`
	Range           float64             `json:"range"`
	FireRate        float64             `json:"fire_rate"` // shots per second
	Damage          int                 `json:"damage"`
	ProjectileSpeed float64             `json:"projectile_speed"`
	Upgrades        []UpgradeDefinition `json:"upgrades"`
}

// EnemyDefinition carries the per-type data that wave blueprints do not:
// the kill reward credited to the player.
type EnemyDefinition struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reward int    `json:"reward"`
}
