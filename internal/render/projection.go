// Package render содержит общее для плоских видов (окно сверху и терминал).
package render

import (
	"math"

	"go-kingshot/pkg/geom"
)

// Projection отображает землю (X, Z) на экран: база в центре, +Z вверх.
type Projection struct {
	Width, Height  int
	ScaleX, ScaleZ float64 // пикселей (или клеток) на единицу мира
}

// ToScreen returns the screen position of p; Y is ignored.
func (p Projection) ToScreen(v geom.Vec3) (float64, float64) {
	return float64(p.Width)/2 + v.X()*p.ScaleX, float64(p.Height)/2 - v.Z()*p.ScaleZ
}

// Cell rounds ToScreen to a terminal cell.
func (p Projection) Cell(v geom.Vec3) (int, int) {
	x, y := p.ToScreen(v)
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToWorld is the inverse of ToScreen on the ground plane.
func (p Projection) ToWorld(x, y float64) (float64, float64) {
	return (x - float64(p.Width)/2) / p.ScaleX, (float64(p.Height)/2 - y) / p.ScaleZ
}
