// internal/system/movement.go
package system

import (
	"math"

	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/pkg/geom"
)

// Advance продвигает позицию вдоль пути на бюджет speed*dt.
// index — индекс последнего достигнутого вейпоинта; функция возвращает
// новую позицию и новый индекс. За один вызов можно пройти несколько
// близко стоящих вейпоинтов: прилипание в радиусе tolerance не тратит
// бюджет перемещения. Суммарный сдвиг никогда не превышает speed*dt,
// не считая таких прилипаний.
func Advance(pos geom.Point, waypoints []geom.Point, index int, speed, dt, tolerance float64) (geom.Point, int) {
	remaining := speed * dt

	for {
		next := index + 1
		if next >= len(waypoints) {
			// Путь пройден.
			return pos, index
		}

		target := waypoints[next]
		dist := geom.Dist(pos, target)

		if dist <= tolerance {
			pos = target
			index = next
			continue
		}

		if remaining <= 0 {
			return pos, index
		}

		step := math.Min(remaining, dist)
		pos = geom.MoveToward(pos, target, step)
		remaining -= step

		if step < dist {
			return pos, index
		}
		index = next
	}
}

// MovementSystem ведёт врагов по их путям и сообщает об утечках.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedEnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if enemy.ReachedEnd {
			// Враг уже помечен на удаление и больше не двигается.
			continue
		}
		if health, ok := s.ecs.Healths[id]; ok && health.Value <= 0 {
			continue
		}

		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}

		newPos, newIndex := Advance(
			pos.Point(), path.Waypoints, path.CurrentIndex,
			vel.Speed, deltaTime, enemy.ArrivalTolerance,
		)
		pos.Set(newPos)
		path.CurrentIndex = newIndex

		if newIndex == len(path.Waypoints)-1 {
			enemy.ReachedEnd = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
		}
	}
}
