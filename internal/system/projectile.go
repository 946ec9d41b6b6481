// internal/system/projectile.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
	"go-tower-sim/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Снаряды самонаводящиеся: каждый тик заново целятся в живую позицию цели.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		if proj.Finished {
			continue
		}

		pos, ok := s.ecs.Positions[id]
		if !ok {
			proj.Finished = true
			continue
		}

		target := enemyTarget{ecs: s.ecs, id: proj.TargetID}
		if !target.IsAlive() {
			// Цель умерла после выстрела — снаряд пропадает без урона.
			proj.Finished = true
			continue
		}

		targetPos := target.Position()
		dist := geom.Dist(pos.Point(), targetPos)
		travel := proj.Speed * deltaTime

		if travel >= dist {
			pos.Set(targetPos)
			s.hitTarget(proj, target)
			continue
		}

		pos.Set(geom.MoveToward(pos.Point(), targetPos, travel))
	}
}

// hitTarget наносит урон при попадании. Живость перепроверяется прямо
// перед уроном: цель могла умереть раньше в этом же боевом проходе.
func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target enemyTarget) {
	if target.IsAlive() {
		target.TakeDamage(proj.Damage)
	}
	proj.Finished = true
}
