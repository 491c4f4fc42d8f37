// internal/defs/towers.go
package defs

import (
	"math"

	"go-kingshot/pkg/geom"
)

// TowerRules holds purchase, upgrade and placement parameters for towers.
type TowerRules struct {
	Cost               int     `yaml:"cost"`
	Max                int     `yaml:"max"`
	Range              float64 `yaml:"range"`
	Cooldown           float64 `yaml:"cooldown"`           // перезарядка на нулевом уровне
	CooldownPerLevel   float64 `yaml:"cooldown_per_level"` // ускорение перезарядки за уровень
	MaxLevel           int     `yaml:"max_level"`
	UpgradeRange       float64 `yaml:"upgrade_range"`
	UpgradeCooldownCut float64 `yaml:"upgrade_cooldown_cut"` // разовое сокращение текущей перезарядки при улучшении
	MinUpgradeCooldown float64 `yaml:"min_upgrade_cooldown"`
	Length             float64 `yaml:"length"`        // расстояние между двумя турелями
	BaseDistance       float64 `yaml:"base_distance"` // удаление от базы
	DistanceStep       float64 `yaml:"distance_step"`
	TurretHeight       float64 `yaml:"turret_height"`
}

// CooldownFor возвращает полную перезарядку башни уровня level.
func (r TowerRules) CooldownFor(level int) float64 {
	return r.Cooldown - float64(level)*r.CooldownPerLevel
}

// SlotDistance — удаление слотов от базы при towerCount построенных башнях.
// Деление вещественное: 0, 0.25, 0.5, 0.75 ... от шага.
func (r TowerRules) SlotDistance(towerCount int) float64 {
	return r.BaseDistance + r.DistanceStep*(float64(towerCount)/4)
}

// Slot вычисляет концы отрезка для новой башни. Слоты перебираются по кругу:
// запад, восток, юг (+Z), север (-Z).
func (r TowerRules) Slot(base geom.Vec3, towerCount int) (start, end geom.Vec3) {
	d := r.SlotDistance(towerCount)
	half := r.Length / 2
	y := base.Y()
	switch towerCount % 4 {
	case 0:
		return geom.V(-d, y, -half), geom.V(-d, y, half)
	case 1:
		return geom.V(d, y, -half), geom.V(d, y, half)
	case 2:
		return geom.V(-half, y, d), geom.V(half, y, d)
	default:
		return geom.V(-half, y, -d), geom.V(half, y, -d)
	}
}

// UpgradedCooldown — текущая перезарядка после улучшения.
func (r TowerRules) UpgradedCooldown(current float64) float64 {
	return math.Max(r.MinUpgradeCooldown, current-r.UpgradeCooldownCut)
}

// FenceRules holds purchase and durability parameters for fences.
type FenceRules struct {
	Cost         int     `yaml:"cost"`
	Max          int     `yaml:"max"`
	ContactLimit float64 `yaml:"contact_limit"`
	Width        float64 `yaml:"width"`
}

// FenceSlot вычисляет концы отрезка для нового забора. Заборы стоят ближе к базе,
// чем башни; номер слота берётся из числа живых заборов, поэтому после разрушения
// новый забор может встать на уже занятое место.
func FenceSlot(tower TowerRules, base geom.Vec3, towerCount, fenceCount int) (start, end geom.Vec3) {
	d := tower.SlotDistance(towerCount)
	half := tower.Length / 2
	y := base.Y()
	switch fenceCount % 4 {
	case 0:
		return geom.V(-d/1.5, y, -half), geom.V(-d/1.5, y, half)
	case 1:
		return geom.V(d/1.3, y, -half), geom.V(d/1.3, y, half)
	case 2:
		return geom.V(-half, y, d-0.8), geom.V(half, y, d-0.8)
	default:
		return geom.V(-half, y, -d+0.4), geom.V(half, y, -d+0.4)
	}
}
