// internal/component/movement.go
package component

import "go-tower-sim/pkg/geom"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Point возвращает позицию как geom.Point.
func (p *Position) Point() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// Set записывает точку в компонент.
func (p *Position) Set(pt geom.Point) {
	p.X = pt.X
	p.Y = pt.Y
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64 // pixels per second
}

// Path — компонент пути. CurrentIndex указывает на последний
// достигнутый вейпоинт.
type Path struct {
	Waypoints    []geom.Point
	CurrentIndex int
}
