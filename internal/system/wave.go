// internal/system/wave.go
package system

import (
	"sort"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/save"
)

// SpawnCallback вызывается на каждый запланированный спавн.
// Вызывающая сторона сама создаёт врага по строке типа.
type SpawnCallback func(enemyType string)

// WaveSystem — машина состояний планировщика волн.
// Idle (index = -1) → StartNextWave → Active → очередь пуста → Idle.
// После последней волны без цикла планировщик терминален до Reset.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	waves           [][]component.EnemySpawn
	spawnCallback   SpawnCallback
	loopWaves       bool

	currentIndex int
}

// NewWaveSystem создаёт планировщик. Каждая волна сортируется по времени
// спавна один раз при создании; сортировка стабильная, ничьи сохраняют
// исходный порядок.
func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, waves [][]component.EnemySpawn, spawnCallback SpawnCallback, loopWaves bool) *WaveSystem {
	sorted := make([][]component.EnemySpawn, len(waves))
	for i, wave := range waves {
		spawns := make([]component.EnemySpawn, len(wave))
		copy(spawns, wave)
		sort.SliceStable(spawns, func(a, b int) bool {
			return spawns[a].SpawnTime < spawns[b].SpawnTime
		})
		sorted[i] = spawns
	}

	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		waves:           sorted,
		spawnCallback:   spawnCallback,
		loopWaves:       loopWaves,
		currentIndex:    -1,
	}
}

// StartNextWave активирует следующую волну. Возвращает false, если волна
// уже идёт или волн больше нет (и цикл выключен).
func (s *WaveSystem) StartNextWave() bool {
	if s.ecs.Wave != nil {
		return false
	}

	next := s.currentIndex + 1
	if next >= len(s.waves) {
		if s.loopWaves && len(s.waves) > 0 {
			next = 0
		} else {
			return false
		}
	}

	s.currentIndex = next
	pending := make([]component.EnemySpawn, len(s.waves[next]))
	copy(pending, s.waves[next])
	s.ecs.Wave = &component.Wave{
		Number:  next + 1,
		Pending: pending,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: next + 1})
	return true
}

// Update продвигает таймер волны и выпускает все созревшие спавны в
// порядке возрастания времени. Последний спавн и завершение волны могут
// случиться в один тик.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}

	wave.Elapsed += deltaTime
	for len(wave.Pending) > 0 && wave.Pending[0].SpawnTime <= wave.Elapsed {
		spawn := wave.Pending[0]
		wave.Pending = wave.Pending[1:]
		s.spawnCallback(spawn.EnemyType)
	}

	if len(wave.Pending) == 0 {
		s.ecs.Wave = nil
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// Reset возвращает планировщик в исходное состояние.
func (s *WaveSystem) Reset() {
	s.currentIndex = -1
	s.ecs.Wave = nil
}

// CurrentWaveIndex — 0-based индекс активной волны, -1 в простое.
func (s *WaveSystem) CurrentWaveIndex() int {
	return s.currentIndex
}

// CurrentWaveNumber — 1-based номер волны для интерфейса, 0 в простое.
func (s *WaveSystem) CurrentWaveNumber() int {
	if s.ecs.Wave == nil {
		return 0
	}
	return s.currentIndex + 1
}

// WaveInProgress сообщает, идёт ли волна.
func (s *WaveSystem) WaveInProgress() bool {
	return s.ecs.Wave != nil
}

// TotalWaves — число волн в таблице.
func (s *WaveSystem) TotalWaves() int {
	return len(s.waves)
}

// IsFinished — true, когда последняя волна завершена и цикл выключен.
func (s *WaveSystem) IsFinished() bool {
	return !s.loopWaves && s.currentIndex >= len(s.waves)-1 && s.ecs.Wave == nil
}

// RemainingWaves возвращает число незавершённых волн, включая текущую.
// При включённом цикле unbounded = true, а счётчик не имеет смысла.
func (s *WaveSystem) RemainingWaves() (count int, unbounded bool) {
	if s.loopWaves {
		return 0, true
	}
	if s.ecs.Wave == nil {
		return max(0, len(s.waves)-(s.currentIndex+1)), false
	}
	return max(0, len(s.waves)-s.currentIndex), false
}

// Serialize снимает снапшот прогресса для сохранения.
func (s *WaveSystem) Serialize() save.WaveProgress {
	progress := save.WaveProgress{
		Version:         save.SnapshotVersion,
		CurrentIndex:    s.currentIndex,
		RemainingSpawns: []component.EnemySpawn{},
	}
	if wave := s.ecs.Wave; wave != nil {
		progress.WaveInProgress = true
		progress.RemainingSpawns = append(progress.RemainingSpawns, wave.Pending...)
		progress.Elapsed = wave.Elapsed
	}
	return progress
}

// Restore восстанавливает планировщик из снапшота. Несовместимый снапшот
// отклоняется с save.ErrInvalidState, текущее состояние не меняется.
func (s *WaveSystem) Restore(progress save.WaveProgress) error {
	if err := progress.Validate(len(s.waves)); err != nil {
		return err
	}

	s.currentIndex = progress.CurrentIndex
	if progress.WaveInProgress && progress.CurrentIndex >= 0 {
		pending := make([]component.EnemySpawn, len(progress.RemainingSpawns))
		copy(pending, progress.RemainingSpawns)
		s.ecs.Wave = &component.Wave{
			Number:  progress.CurrentIndex + 1,
			Pending: pending,
			Elapsed: progress.Elapsed,
		}
	} else {
		s.ecs.Wave = nil
	}
	return nil
}

// SchedulesFromConfigs разворачивает масштабированные конфигурации волн
// в таймированные расписания спавнов: враги одной волны появляются через
// spawnDelay секунд друг после друга.
func SchedulesFromConfigs(configs []defs.WaveConfig, spawnDelay float64) [][]component.EnemySpawn {
	schedules := make([][]component.EnemySpawn, 0, len(configs))
	for _, cfg := range configs {
		wave := make([]component.EnemySpawn, 0, cfg.Count)
		for i := 0; i < cfg.Count; i++ {
			wave = append(wave, component.EnemySpawn{
				EnemyType: cfg.EnemyType,
				SpawnTime: float64(i) * spawnDelay,
			})
		}
		schedules = append(schedules, wave)
	}
	return schedules
}
