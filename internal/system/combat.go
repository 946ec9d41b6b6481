// internal/system/combat.go
package system

import (
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"
)

// Target — минимальный контракт цели для башен и снарядов.
type Target interface {
	Position() geom.Point
	IsAlive() bool
	TakeDamage(amount int)
}

// SelectTarget выбирает ближайшую живую цель в радиусе. При равных
// расстояниях побеждает первая встреченная; кандидатов нужно подавать
// в стабильном порядке. Возвращает nil, если подходящих целей нет.
func SelectTarget(towerPos geom.Point, radius float64, candidates []Target) Target {
	var closest Target
	closestDist := math.Inf(1)
	for _, candidate := range candidates {
		if !candidate.IsAlive() {
			continue
		}
		dist := geom.Dist(towerPos, candidate.Position())
		if dist <= radius && dist < closestDist {
			closest = candidate
			closestDist = dist
		}
	}
	return closest
}

// enemyTarget адаптирует вражескую сущность ECS под контракт Target.
type enemyTarget struct {
	ecs *entity.ECS
	id  types.EntityID
}

func (t enemyTarget) Position() geom.Point {
	if pos, ok := t.ecs.Positions[t.id]; ok {
		return pos.Point()
	}
	return geom.Point{}
}

func (t enemyTarget) IsAlive() bool {
	enemy, ok := t.ecs.Enemies[t.id]
	if !ok || enemy.ReachedEnd {
		return false
	}
	health, ok := t.ecs.Healths[t.id]
	return ok && health.Value > 0
}

func (t enemyTarget) TakeDamage(amount int) {
	if !t.IsAlive() {
		return
	}
	t.ecs.Healths[t.id].Value -= amount
}

// CombatSystem обновляет башни: перезарядка, выбор цели, выстрелы.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedTowerIDs() {
		tower := s.ecs.Towers[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		if tower.Cooldown > 0 {
			tower.Cooldown = math.Max(0, tower.Cooldown-deltaTime)
		}

		if !s.targetStillValid(tower, pos.Point()) {
			tower.TargetID = s.selectTargetID(pos.Point(), tower.Range)
		}

		if tower.HasTarget() && tower.Cooldown <= 0 {
			s.shoot(id, tower, pos.Point())
		}
	}
}

// targetStillValid проверяет, что текущая цель жива и в радиусе.
func (s *CombatSystem) targetStillValid(tower *component.Tower, towerPos geom.Point) bool {
	if !tower.HasTarget() {
		return false
	}
	target := enemyTarget{ecs: s.ecs, id: tower.TargetID}
	if !target.IsAlive() {
		return false
	}
	return geom.Dist(towerPos, target.Position()) <= tower.Range
}

func (s *CombatSystem) selectTargetID(towerPos geom.Point, radius float64) types.EntityID {
	ids := s.ecs.SortedEnemyIDs()
	candidates := make([]Target, 0, len(ids))
	for _, id := range ids {
		candidates = append(candidates, enemyTarget{ecs: s.ecs, id: id})
	}

	selected := SelectTarget(towerPos, radius, candidates)
	if selected == nil {
		return 0
	}
	return selected.(enemyTarget).id
}

// shoot выпускает снаряд в текущую позицию цели и сбрасывает перезарядку.
func (s *CombatSystem) shoot(towerID types.EntityID, tower *component.Tower, towerPos geom.Point) {
	targetPos, ok := s.ecs.Positions[tower.TargetID]
	if !ok {
		tower.TargetID = 0
		return
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[id] = &component.Projectile{
		OwnerID:  towerID,
		TargetID: tower.TargetID,
		Speed:    tower.ProjectileSpeed,
		Damage:   tower.Damage,
	}

	if tower.FireRate > 0 {
		tower.Cooldown = 1.0 / tower.FireRate
	} else {
		tower.Cooldown = 0
	}

	// Разворот башни к цели нужен только внешнему рендеру.
	tower.Facing = math.Atan2(targetPos.Y-towerPos.Y, targetPos.X-towerPos.X)
}

// CanUpgrade сообщает, остались ли у башни ступени улучшений.
func CanUpgrade(tower *component.Tower) bool {
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return false
	}
	return tower.Level-1 < len(def.Upgrades)
}

// UpgradeCost возвращает стоимость следующей ступени.
func UpgradeCost(tower *component.Tower) (int, bool) {
	if !CanUpgrade(tower) {
		return 0, false
	}
	return defs.TowerLibrary[tower.DefID].Upgrades[tower.Level-1].Cost, true
}

// ApplyUpgrade добавляет бонусы следующей ступени к текущим
// характеристикам башни. Бонусы аддитивные и действуют сразу;
// идущая перезарядка не трогается.
func ApplyUpgrade(tower *component.Tower) bool {
	if !CanUpgrade(tower) {
		return false
	}
	rung := defs.TowerLibrary[tower.DefID].Upgrades[tower.Level-1]
	tower.Range += rung.RangeBonus
	tower.FireRate += rung.FireRateBonus
	tower.Damage += rung.DamageBonus
	tower.Level++
	return true
}
