// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID            string  // ID из enemies.json (тип врага)
	Reward           int     // Деньги за убийство
	ArrivalTolerance float64 // Радиус засчитывания вейпоинта
	ReachedEnd       bool    // Достиг ли враг конца пути
}

// Health — очки здоровья сущности.
type Health struct {
	Value int
}
