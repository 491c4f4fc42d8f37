// internal/utils/math.go
package utils

import (
	"math"

	"go-kingshot/pkg/geom"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp зажимает v в [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle - math.Pi
}

// LookDirection — единичный вектор взгляда по рысканию и тангажу.
// Нулевой yaw смотрит вдоль +Z, положительный pitch — вверх.
func LookDirection(yaw, pitch float64) geom.Vec3 {
	cp := math.Cos(pitch)
	return geom.V(cp*math.Sin(yaw), math.Sin(pitch), cp*math.Cos(yaw))
}

// YawPitch — обратное к LookDirection. Для нулевого вектора возвращает нули.
func YawPitch(dir geom.Vec3) (yaw, pitch float64) {
	dir = geom.Normalize(dir)
	if dir.Len() == 0 {
		return 0, 0
	}
	return math.Atan2(dir.X(), dir.Z()), math.Asin(Clamp(dir.Y(), -1, 1))
}
