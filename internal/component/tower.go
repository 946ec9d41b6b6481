// internal/component/tower.go
package component

import (
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
)

// Tower хранит боевое состояние башни. Базовые параметры берутся из
// towers.json и растут апгрейдами; Level-1 не превышает длину лестницы
// апгрейдов определения.
type Tower struct {
	DefID           string     // ID из towers.json
	Tile            grid.Coord // Клетка, на которой стоит башня
	Range           float64    // Радиус действия в пикселях
	FireRate        float64    // Выстрелов в секунду
	Damage          int
	ProjectileSpeed float64
	Cooldown        float64 // Секунд до следующего выстрела
	Level           int

	// TargetID — текущая цель; 0, когда цели нет. Не владеющая ссылка.
	TargetID types.EntityID

	// Facing — направление на цель в радианах, только для рендера.
	Facing float64
}

// HasTarget сообщает, удерживает ли башня цель.
func (t *Tower) HasTarget() bool {
	return t.TargetID != 0
}
