// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
)

// ECS хранит все компоненты симуляции в картах по EntityID.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	Wave        *component.Wave
	Player      *component.PlayerStats
}

// NewECS создаёт пустой мир.
func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
	}
}

// NewEntity выдаёт следующий идентификатор.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SortedEnemyIDs возвращает ID живых врагов в порядке появления.
// Порядок обхода карты в Go случайный, а выбору цели нужен стабильный
// порядок кандидатов.
func (ecs *ECS) SortedEnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedTowerIDs возвращает ID башен в порядке постройки.
func (ecs *ECS) SortedTowerIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Towers))
	for id := range ecs.Towers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedProjectileIDs возвращает ID снарядов в порядке выпуска.
func (ecs *ECS) SortedProjectileIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id := range ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
