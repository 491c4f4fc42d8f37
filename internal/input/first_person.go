package input

import (
	"math"

	"go-kingshot/internal/component"
	"go-kingshot/internal/utils"
	"go-kingshot/pkg/geom"
)

// maxPitch не даёт камере перевернуться через зенит.
const maxPitch = math.Pi/2 - 0.01

// FirstPerson — камера от первого лица: WASD двигают по земле,
// мышь крутит взгляд. Высота камеры не меняется.
type FirstPerson struct {
	Position geom.Vec3
	Yaw      float64
	Pitch    float64
}

// NewFirstPerson ставит камеру в позу pose.
func NewFirstPerson(pose component.CameraPose) *FirstPerson {
	yaw, pitch := utils.YawPitch(pose.Target.Sub(pose.Position))
	return &FirstPerson{Position: pose.Position, Yaw: yaw, Pitch: pitch}
}

// Look поворачивает взгляд. Положительный dx — вправо, положительный dy — вниз.
func (c *FirstPerson) Look(dx, dy float64) {
	c.Yaw = utils.NormalizeAngle(c.Yaw - dx)
	c.Pitch = utils.Clamp(c.Pitch-dy, -maxPitch, maxPitch)
}

// Move сдвигает камеру в горизонтальной плоскости относительно взгляда.
func (c *FirstPerson) Move(forward, right, distance float64) {
	if forward == 0 && right == 0 {
		return
	}
	ahead := geom.V(math.Sin(c.Yaw), 0, math.Cos(c.Yaw))
	side := geom.V(-math.Cos(c.Yaw), 0, math.Sin(c.Yaw))
	step := geom.Normalize(ahead.Mul(forward).Add(side.Mul(right))).Mul(distance)
	c.Position = c.Position.Add(step)
}

// Pose returns the camera pose with the target one unit ahead.
func (c *FirstPerson) Pose() component.CameraPose {
	return component.CameraPose{
		Position: c.Position,
		Target:   c.Position.Add(utils.LookDirection(c.Yaw, c.Pitch)),
	}
}

// BaseAim — прицел с базы для видов сверху и терминала: выстрел идёт
// из точки над базой в сторону Angle по горизонтали.
type BaseAim struct {
	Origin geom.Vec3
	Angle  float64 // 0 — вдоль +X, против часовой стрелки при взгляде сверху
}

// Rotate поворачивает прицел на delta радиан.
func (a *BaseAim) Rotate(delta float64) {
	a.Angle = utils.NormalizeAngle(a.Angle + delta)
}

// PointAt направляет прицел на точку земли (x, z).
func (a *BaseAim) PointAt(x, z float64) {
	dx, dz := x-a.Origin.X(), z-a.Origin.Z()
	if dx == 0 && dz == 0 {
		return
	}
	a.Angle = math.Atan2(dz, dx)
}

// Pose returns a camera pose usable as the player's shot origin and direction.
func (a *BaseAim) Pose() component.CameraPose {
	dir := geom.V(math.Cos(a.Angle), 0, math.Sin(a.Angle))
	return component.CameraPose{Position: a.Origin, Target: a.Origin.Add(dir)}
}
