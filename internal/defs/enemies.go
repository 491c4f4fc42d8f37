// internal/defs/enemies.go
package defs

// EnemyRules holds the template every spawned enemy starts from.
type EnemyRules struct {
	Radius            float64 `yaml:"radius"`
	Speed             float64 `yaml:"speed"`              // скорость в первой волне
	SpeedStep         float64 `yaml:"speed_step"`         // прирост скорости за волну
	MaxSpeed          float64 `yaml:"max_speed"`          // потолок скорости
	ContactLimit      float64 `yaml:"contact_limit"`      // сколько забор держит врага до гибели
	WaypointTolerance float64 `yaml:"waypoint_tolerance"` // радиус «достижения» точки пути
	BaseContactRadius float64 `yaml:"base_contact_radius"`
	Bounty            int     `yaml:"bounty"` // монет за убийство
}

// NextSpeed повышает базовую скорость новых врагов, не превышая потолок.
func (r EnemyRules) NextSpeed(current float64) float64 {
	next := current + r.SpeedStep
	if next >= r.MaxSpeed {
		next = r.MaxSpeed
	}
	return next
}
