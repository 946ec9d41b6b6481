// internal/defs/difficulty.go
package defs

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go-tower-sim/pkg/geom"
)

// DifficultyCurve задаёт параметры роста сложности от волны к волне.
type DifficultyCurve struct {
	HealthGrowth     float64
	SpeedGrowth      float64
	CountGrowth      float64
	SpecialFrequency int
	ExtraSpecials    []string
}

// DefaultDifficultyCurve возвращает кривую сложности по умолчанию.
func DefaultDifficultyCurve() DifficultyCurve {
	return DifficultyCurve{
		HealthGrowth:     0.22,
		SpeedGrowth:      0.05,
		CountGrowth:      0.08,
		SpecialFrequency: 3,
		ExtraSpecials:    []string{"elite", "armored", "ethereal"},
	}
}

// Validate отклоняет кривую с недопустимыми параметрами.
func (c DifficultyCurve) Validate() error {
	if c.HealthGrowth < 0 || c.SpeedGrowth < 0 || c.CountGrowth < 0 {
		return errors.New("difficulty growth rates must not be negative")
	}
	if c.SpecialFrequency <= 0 {
		return errors.New("special frequency must be positive")
	}
	if len(c.ExtraSpecials) == 0 {
		return errors.New("extra specials list must not be empty")
	}
	return nil
}

// HealthMultiplier возвращает множитель здоровья для волны wave.
func (c DifficultyCurve) HealthMultiplier(wave int) float64 {
	return math.Pow(1+c.HealthGrowth, float64(wave-1))
}

// SpeedMultiplier возвращает множитель скорости для волны wave.
func (c DifficultyCurve) SpeedMultiplier(wave int) float64 {
	return math.Pow(1+c.SpeedGrowth, float64(wave-1))
}

// CountMultiplier возвращает множитель количества для волны wave.
func (c DifficultyCurve) CountMultiplier(wave int) float64 {
	return math.Pow(1+c.CountGrowth, float64(wave-1))
}

// PickSpecial выбирает особого врага для волны wave по фиксированному циклу.
func (c DifficultyCurve) PickSpecial(wave int) string {
	idx := (wave / c.SpecialFrequency) - 1
	return c.ExtraSpecials[idx%len(c.ExtraSpecials)]
}

// ApplyDifficulty превращает сырые блюпринты в итоговые конфигурации волн.
// Блюпринты обрабатываются в порядке возрастания номера волны; исходный
// срез не изменяется.
func ApplyDifficulty(blueprints []WaveBlueprint, curve DifficultyCurve) ([]WaveConfig, error) {
	if err := curve.Validate(); err != nil {
		return nil, err
	}

	ordered := make([]WaveBlueprint, len(blueprints))
	copy(ordered, blueprints)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Wave < ordered[j].Wave
	})

	waves := make([]WaveConfig, 0, len(ordered))
	for _, bp := range ordered {
		healthMul := curve.HealthMultiplier(bp.Wave)
		speedMul := curve.SpeedMultiplier(bp.Wave)
		countMul := curve.CountMultiplier(bp.Wave)

		scaledHealth := geom.Round2(bp.BaseHealth * healthMul)
		scaledSpeed := geom.Round2(bp.BaseSpeed * speedMul)
		scaledCount := int(math.Ceil(float64(bp.Count) * countMul))
		if scaledCount < 1 {
			scaledCount = 1
		}

		var tags []string
		if healthMul > 1 {
			tags = append(tags, percentTag("+health", healthMul))
		}
		if speedMul > 1 {
			tags = append(tags, percentTag("+speed", speedMul))
		}
		if scaledCount > bp.Count {
			tags = append(tags, countTag(scaledCount-bp.Count))
		}

		special := bp.Special
		if special == "" && bp.Wave >= curve.SpecialFrequency && bp.Wave%curve.SpecialFrequency == 0 {
			special = curve.PickSpecial(bp.Wave)
			tags = append(tags, "special "+special)
		} else if special != "" {
			tags = append(tags, "special "+special)
		}

		waves = append(waves, WaveConfig{
			Wave:           bp.Wave,
			EnemyType:      bp.EnemyType,
			Count:          scaledCount,
			Health:         scaledHealth,
			Speed:          scaledSpeed,
			Special:        special,
			DifficultyTags: tags,
		})
	}
	return waves, nil
}

func percentTag(prefix string, multiplier float64) string {
	percent := int(math.Round((multiplier - 1) * 100))
	return fmt.Sprintf("%s %d%%", prefix, percent)
}

func countTag(extra int) string {
	return fmt.Sprintf("+count %d", extra)
}
