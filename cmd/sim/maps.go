// cmd/sim/maps.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List available maps",
	RunE:  listMaps,
}

func listMaps(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	maps, err := defs.LoadMapDefinitions(cfg.Data.MapsDir)
	if err != nil {
		return err
	}

	for _, m := range maps {
		fmt.Printf("%-12s %-20s path=%d tiles, spawn delay %.2fs\n", m.ID, m.Name, len(m.Path), m.SpawnDelay)
		if m.Description != "" {
			fmt.Printf("             %s\n", m.Description)
		}
	}
	return nil
}
