// pkg/geom/vec.go
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 — точка или направление в мировых координатах сцены.
type Vec3 = mgl64.Vec3

// V — короткий конструктор для Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Distance возвращает евклидово расстояние между двумя точками.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// Normalize возвращает единичный вектор. Нулевой вектор возвращается как есть,
// чтобы не получить NaN.
func Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Direction — единичный вектор от from к to.
func Direction(from, to Vec3) Vec3 {
	return Normalize(to.Sub(from))
}

// Advance сдвигает точку from в сторону to на step. Перелёт через to не
// исключается: вызывающий сам решает, когда цель считается достигнутой.
func Advance(from, to Vec3, step float64) Vec3 {
	return from.Add(Direction(from, to).Mul(step))
}

// ClosestPointOnSegment проецирует p на отрезок [a, b].
// Параметр t зажат в [0, 1]; для вырожденного отрезка возвращается a.
func ClosestPointOnSegment(p, a, b Vec3) (Vec3, float64) {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return a, 0
	}
	t := p.Sub(a).Dot(ab) / den
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Mul(t)), t
}

// DistanceToSegment — расстояние от p до ближайшей точки отрезка [a, b].
func DistanceToSegment(p, a, b Vec3) float64 {
	closest, _ := ClosestPointOnSegment(p, a, b)
	return Distance(p, closest)
}

// Midpoint returns the middle of segment [a, b].
func Midpoint(a, b Vec3) Vec3 {
	return a.Add(b.Sub(a).Mul(0.5))
}
