// pkg/grid/grid.go
package grid

import (
	"math"

	"go-tower-sim/pkg/geom"
)

// Coord представляет клетку квадратной сетки.
type Coord struct {
	X, Y int
}

// Snap конвертирует пиксельные координаты в клетку сетки.
// Деление с округлением вниз: отрицательные пиксели попадают
// в отрицательные клетки, а не прилипают к нулевой.
func Snap(p geom.Point, tileSize int) Coord {
	return Coord{
		X: int(math.Floor(p.X / float64(tileSize))),
		Y: int(math.Floor(p.Y / float64(tileSize))),
	}
}

// ToPixel возвращает пиксельные координаты левого верхнего угла клетки.
func (c Coord) ToPixel(tileSize int) geom.Point {
	return geom.Point{
		X: float64(c.X * tileSize),
		Y: float64(c.Y * tileSize),
	}
}

// Center возвращает пиксельные координаты центра клетки.
func (c Coord) Center(tileSize int) geom.Point {
	half := float64(tileSize) / 2
	return geom.Point{
		X: float64(c.X*tileSize) + half,
		Y: float64(c.Y*tileSize) + half,
	}
}

// TileSet — множество клеток (занятые башнями, заблокированные путём и т.д.).
type TileSet map[Coord]struct{}

// NewTileSet создаёт множество из перечисленных клеток.
func NewTileSet(coords ...Coord) TileSet {
	set := make(TileSet, len(coords))
	for _, c := range coords {
		set[c] = struct{}{}
	}
	return set
}

// Contains проверяет, входит ли клетка в множество.
func (s TileSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Add добавляет клетку в множество.
func (s TileSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Waypoints конвертирует путь из клеток в пиксельные точки по центрам клеток.
func Waypoints(path []Coord, tileSize int) []geom.Point {
	points := make([]geom.Point, 0, len(path))
	for _, c := range path {
		points = append(points, c.Center(tileSize))
	}
	return points
}
