// internal/component/projectile.go
package component

import "go-tower-sim/internal/types"

// Projectile представляет летящий снаряд. Снаряд самонаводящийся:
// каждый тик он заново целится в текущую позицию цели.
type Projectile struct {
	OwnerID  types.EntityID // Башня, выпустившая снаряд
	TargetID types.EntityID // Не владеющая ссылка на цель
	Speed    float64
	Damage   int
	Finished bool // Завершённый снаряд убирается на следующем проходе очистки
}
