// internal/app/campaign.go
package app

import (
	"go-tower-sim/internal/defs"
)

// Campaign — карта с уже масштабированными волнами, готовая к запуску
// или предпросмотру.
type Campaign struct {
	Map      defs.MapDefinition
	Waves    []defs.WaveConfig
	Metadata CampaignMetadata
}

// CampaignMetadata — сводка параметров кампании для предпросмотра.
type CampaignMetadata struct {
	SpawnDelay   float64
	Tileset      string
	HealthGrowth float64
	SpeedGrowth  float64
	CountGrowth  float64
}

// BuildCampaign масштабирует блюпринты кривой сложности и собирает
// кампанию для карты.
func BuildCampaign(mapDef defs.MapDefinition, blueprints []defs.WaveBlueprint, curve defs.DifficultyCurve) (Campaign, error) {
	waves, err := defs.ApplyDifficulty(blueprints, curve)
	if err != nil {
		return Campaign{}, err
	}
	return Campaign{
		Map:   mapDef,
		Waves: waves,
		Metadata: CampaignMetadata{
			SpawnDelay:   mapDef.SpawnDelay,
			Tileset:      mapDef.Tileset,
			HealthGrowth: curve.HealthGrowth,
			SpeedGrowth:  curve.SpeedGrowth,
			CountGrowth:  curve.CountGrowth,
		},
	}, nil
}
