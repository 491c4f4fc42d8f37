package system

import (
	"go-kingshot/internal/component"
	"go-kingshot/internal/entity"
	"go-kingshot/pkg/geom"
)

// TowerSystem управляет перезарядкой и стрельбой башен.
type TowerSystem struct {
	missileSystem *MissileSystem
}

func NewTowerSystem(missileSystem *MissileSystem) *TowerSystem {
	return &TowerSystem{missileSystem: missileSystem}
}

func (s *TowerSystem) Update(w *entity.World, deltaTime float64) {
	rules := w.Rules.Tower
	for i := range w.Towers {
		tower := &w.Towers[i]
		if !tower.Active {
			continue
		}
		tower.Cooldown -= deltaTime
		if tower.Cooldown > 0 {
			continue
		}

		// Залп с обеих турелей, каждая выбирает цель сама
		for _, turret := range tower.Turrets(rules.TurretHeight) {
			target, ok := findNearestEnemyInRange(w, turret, tower.Range)
			if !ok {
				continue
			}
			direction := geom.Direction(turret, w.Enemies[target].Position)
			s.missileSystem.Launch(w, turret, direction, component.SourceTurret)
		}

		// Перезарядка сбрасывается, даже если никто не выстрелил
		tower.Cooldown = rules.CooldownFor(tower.Level)
	}
}

// findNearestEnemyInRange ищет ближайшего активного врага строго ближе rangeRadius.
// Запасной цели за пределами дальности нет.
func findNearestEnemyInRange(w *entity.World, from geom.Vec3, rangeRadius float64) (int, bool) {
	nearest := -1
	minDistance := rangeRadius
	for i := range w.Enemies {
		enemy := &w.Enemies[i]
		if !enemy.Active {
			continue
		}
		if d := geom.Distance(from, enemy.Position); d < minDistance {
			minDistance = d
			nearest = i
		}
	}
	return nearest, nearest >= 0
}
