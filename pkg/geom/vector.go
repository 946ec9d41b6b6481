// pkg/geom/vector.go
package geom

import "math"

// Point — точка на плоскости в пиксельных координатах.
type Point struct {
	X, Y float64
}

// Dist возвращает евклидово расстояние между двумя точками.
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MoveToward сдвигает from в сторону to ровно на step.
// Если step покрывает всё расстояние, возвращается to.
func MoveToward(from, to Point, step float64) Point {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 || step >= dist {
		return to
	}
	ratio := step / dist
	return Point{X: from.X + dx*ratio, Y: from.Y + dy*ratio}
}

// Round2 округляет значение до двух знаков после запятой.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
