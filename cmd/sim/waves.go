// cmd/sim/waves.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
)

var (
	wavesMapID string
	wavesDump  string
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Preview scaled waves for a map",
	RunE:  previewWaves,
}

func init() {
	wavesCmd.Flags().StringVar(&wavesMapID, "map", "", "map id (default: first map)")
	wavesCmd.Flags().StringVar(&wavesDump, "dump", "", "write raw blueprints to this CSV file")
}

func previewWaves(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	maps, err := defs.LoadMapDefinitions(cfg.Data.MapsDir)
	if err != nil {
		return err
	}
	mapDef, err := pickMap(maps, wavesMapID)
	if err != nil {
		return err
	}
	blueprints, err := defs.LoadWaveBlueprints(mapDef.ID, cfg.Data.WavesDir)
	if err != nil {
		return err
	}

	if wavesDump != "" {
		if err := defs.DumpWaveBlueprints(blueprints, wavesDump); err != nil {
			return err
		}
		fmt.Printf("Wrote %d blueprints to %s\n", len(blueprints), wavesDump)
	}

	campaign, err := app.BuildCampaign(mapDef, blueprints, defs.DefaultDifficultyCurve())
	if err != nil {
		return err
	}

	fmt.Printf("Map %q (%s), spawn delay %.2fs\n", campaign.Map.ID, campaign.Metadata.Tileset, campaign.Metadata.SpawnDelay)
	for _, wave := range campaign.Waves {
		tags := ""
		if len(wave.DifficultyTags) > 0 {
			tags = "  [" + strings.Join(wave.DifficultyTags, ", ") + "]"
		}
		fmt.Printf("wave %2d: %2dx %-10s hp=%-7.2f speed=%-6.2f%s\n",
			wave.Wave, wave.Count, wave.EnemyType, wave.Health, wave.Speed, tags)
	}
	return nil
}
