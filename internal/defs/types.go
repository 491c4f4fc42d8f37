// internal/defs/types.go
package defs

import "go-kingshot/pkg/geom"

// Point — точка уровня в YAML-представлении ({x: .., y: .., z: ..}).
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec converts the point into a simulation vector.
func (p Point) Vec() geom.Vec3 {
	return geom.V(p.X, p.Y, p.Z)
}

// Level описывает статическую часть сцены: базу игрока, пути врагов и правила.
// После загрузки уровень не меняется.
type Level struct {
	Name   string    `yaml:"name"`
	Base   Point     `yaml:"base"`
	Camera Camera    `yaml:"camera"`
	Paths  [][]Point `yaml:"paths"`
	Rules  Rules     `yaml:"rules"`
}

// Camera — начальная поза камеры от первого лица.
type Camera struct {
	Position Point `yaml:"position"`
	Target   Point `yaml:"target"`
}

// Waypoints возвращает пути в виде векторов; индекс внешнего среза — индекс пути.
func (l Level) Waypoints() [][]geom.Vec3 {
	out := make([][]geom.Vec3, len(l.Paths))
	for i, path := range l.Paths {
		out[i] = make([]geom.Vec3, len(path))
		for j, p := range path {
			out[i][j] = p.Vec()
		}
	}
	return out
}

// Rules — все числовые параметры игрового процесса.
type Rules struct {
	StartingCoins int          `yaml:"starting_coins"`
	Wave          WaveRules    `yaml:"wave"`
	Enemy         EnemyRules   `yaml:"enemy"`
	Tower         TowerRules   `yaml:"tower"`
	Fence         FenceRules   `yaml:"fence"`
	Missile       MissileRules `yaml:"missile"`
	Base          BaseRules    `yaml:"base"`
}

// BaseRules — параметры базы игрока.
type BaseRules struct {
	ContactLimit float64 `yaml:"contact_limit"` // суммарный контакт до поражения, сек
}

// MissileRules describes both player and turret missiles.
type MissileRules struct {
	Speed     float64 `yaml:"speed"`
	Lifetime  float64 `yaml:"lifetime"`
	HitRadius float64 `yaml:"hit_radius"` // добавляется к радиусу врага
}
