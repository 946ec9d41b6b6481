// cmd/sim/data.go
package main

import (
	"fmt"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
)

// loadLibraries наполняет библиотеки башен и врагов из файлов данных.
func loadLibraries(cfg config.Config) error {
	if err := defs.LoadTowerDefinitions(cfg.Data.TowersFile); err != nil {
		return err
	}
	return defs.LoadEnemyDefinitions(cfg.Data.EnemiesFile)
}

// pickMap выбирает карту по id; пустой id означает первую карту.
func pickMap(maps []defs.MapDefinition, id string) (defs.MapDefinition, error) {
	if id == "" {
		return maps[0], nil
	}
	for _, m := range maps {
		if m.ID == id {
			return m, nil
		}
	}
	return defs.MapDefinition{}, fmt.Errorf("unknown map %q", id)
}
