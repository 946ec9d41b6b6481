// internal/save/snapshot.go
package save

import (
	"errors"

	"go-tower-sim/internal/component"
)

// SnapshotVersion — текущая версия формата снапшота.
const SnapshotVersion = 1

// ErrInvalidState возвращается при попытке восстановить снапшот,
// несовместимый с загруженной таблицей волн.
var ErrInvalidState = errors.New("invalid wave progress state")

// WaveProgress — версионированный снапшот прогресса планировщика волн.
type WaveProgress struct {
	Version         int                    `json:"version"`
	CurrentIndex    int                    `json:"current_index"`
	WaveInProgress  bool                   `json:"wave_in_progress"`
	RemainingSpawns []component.EnemySpawn `json:"remaining_spawns"`
	Elapsed         float64                `json:"elapsed"`
}

// Validate проверяет снапшот против таблицы из waveCount волн.
// Само состояние планировщика при ошибке не меняется.
func (p WaveProgress) Validate(waveCount int) error {
	if p.Version != SnapshotVersion {
		return ErrInvalidState
	}
	if p.CurrentIndex < -1 || p.CurrentIndex >= waveCount {
		return ErrInvalidState
	}
	return nil
}
