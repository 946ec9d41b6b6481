// internal/defs/loader.go
package defs

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"go-tower-sim/pkg/grid"
)

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// mapFile mirrors the on-disk JSON layout of a map definition.
type mapFile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tileset     string   `json:"tileset"`
	Path        [][2]int `json:"path"`
	SpawnDelay  *float64 `json:"spawn_delay"`
	Description string   `json:"description"`
}

// LoadMapDefinitions reads every *.json map inside dir, sorted by file name.
func LoadMapDefinitions(dir string) ([]MapDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var maps []MapDefinition
	for _, name := range names {
		def, err := loadMapFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		maps = append(maps, def)
	}

	if len(maps) == 0 {
		return nil, fmt.Errorf("no map files found in %q", dir)
	}
	return maps, nil
}

func loadMapFile(path string) (MapDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return MapDefinition{}, fmt.Errorf("failed to read map file: %w", err)
	}

	var raw mapFile
	if err := json.Unmarshal(file, &raw); err != nil {
		return MapDefinition{}, fmt.Errorf("failed to unmarshal map %q: %w", path, err)
	}

	switch {
	case raw.ID == "":
		return MapDefinition{}, fmt.Errorf("map %q: missing required field %q", path, "id")
	case raw.Name == "":
		return MapDefinition{}, fmt.Errorf("map %q: missing required field %q", path, "name")
	case raw.Tileset == "":
		return MapDefinition{}, fmt.Errorf("map %q: missing required field %q", path, "tileset")
	case len(raw.Path) == 0:
		return MapDefinition{}, fmt.Errorf("map %q: missing required field %q", path, "path")
	case raw.SpawnDelay == nil:
		return MapDefinition{}, fmt.Errorf("map %q: missing required field %q", path, "spawn_delay")
	case *raw.SpawnDelay < 0:
		return MapDefinition{}, fmt.Errorf("map %q: spawn_delay must not be negative", path)
	}

	coords := make([]grid.Coord, 0, len(raw.Path))
	for _, p := range raw.Path {
		coords = append(coords, grid.Coord{X: p[0], Y: p[1]})
	}

	return MapDefinition{
		ID:          raw.ID,
		Name:        raw.Name,
		Tileset:     raw.Tileset,
		Path:        coords,
		SpawnDelay:  *raw.SpawnDelay,
		Description: raw.Description,
	}, nil
}

// LoadWaveBlueprints reads the wave table for the given map id from
// <dir>/<mapID>.csv. An empty table is an error.
func LoadWaveBlueprints(mapID, dir string) ([]WaveBlueprint, error) {
	path := filepath.Join(dir, mapID+".csv")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wave table for map %q: %w", mapID, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse wave table %q: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no waves defined for map %q", mapID)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"wave", "enemy_type", "count", "base_health", "base_speed"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("wave table %q: missing column %q", path, required)
		}
	}

	var blueprints []WaveBlueprint
	for line, row := range records[1:] {
		bp, err := parseWaveRow(row, col)
		if err != nil {
			return nil, fmt.Errorf("wave table %q row %d: %w", path, line+2, err)
		}
		blueprints = append(blueprints, bp)
	}
	return blueprints, nil
}

func parseWaveRow(row []string, col map[string]int) (WaveBlueprint, error) {
	wave, err := strconv.Atoi(row[col["wave"]])
	if err != nil || wave < 1 {
		return WaveBlueprint{}, fmt.Errorf("invalid wave number %q", row[col["wave"]])
	}
	count, err := strconv.Atoi(row[col["count"]])
	if err != nil || count < 1 {
		return WaveBlueprint{}, fmt.Errorf("invalid count %q", row[col["count"]])
	}
	health, err := strconv.ParseFloat(row[col["base_health"]], 64)
	if err != nil || health <= 0 {
		return WaveBlueprint{}, fmt.Errorf("invalid base_health %q", row[col["base_health"]])
	}
	speed, err := strconv.ParseFloat(row[col["base_speed"]], 64)
	if err != nil || speed <= 0 {
		return WaveBlueprint{}, fmt.Errorf("invalid base_speed %q", row[col["base_speed"]])
	}
	enemyType := row[col["enemy_type"]]
	if enemyType == "" {
		return WaveBlueprint{}, fmt.Errorf("empty enemy_type")
	}

	special := ""
	if i, ok := col["special"]; ok && i < len(row) {
		special = row[i]
	}

	return WaveBlueprint{
		Wave:       wave,
		EnemyType:  enemyType,
		Count:      count,
		BaseHealth: health,
		BaseSpeed:  speed,
		Special:    special,
	}, nil
}

// DumpWaveBlueprints writes blueprints back to CSV, useful for debugging
// and exports.
func DumpWaveBlueprints(blueprints []WaveBlueprint, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create wave dump %q: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"wave", "enemy_type", "count", "base_health", "base_speed", "special"}); err != nil {
		return err
	}
	for _, bp := range blueprints {
		record := []string{
			strconv.Itoa(bp.Wave),
			bp.EnemyType,
			strconv.Itoa(bp.Count),
			strconv.FormatFloat(bp.BaseHealth, 'f', -1, 64),
			strconv.FormatFloat(bp.BaseSpeed, 'f', -1, 64),
			bp.Special,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadTowerDefinitions reads the tower configuration file and populates the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}
