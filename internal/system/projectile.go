// internal/system/projectile.go
package system

import (
	"go-kingshot/internal/component"
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
	"go-kingshot/pkg/geom"
)

// MissileSystem двигает ракеты, проверяет попадания и чистит мир в конце кадра.
type MissileSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewMissileSystem(eventDispatcher *event.Dispatcher) *MissileSystem {
	return &MissileSystem{eventDispatcher: eventDispatcher}
}

// Launch выпускает ракету. Двигаться она начнёт в ближайшем Update.
func (s *MissileSystem) Launch(w *entity.World, origin, direction geom.Vec3, source component.MissileSource) {
	rules := w.Rules.Missile
	w.Missiles = append(w.Missiles, component.Missile{
		Position:  origin,
		Direction: direction,
		Active:    true,
		Speed:     rules.Speed,
		Lifetime:  rules.Lifetime,
		Source:    source,
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MissileFired,
		Data: event.MissileFiredData{Source: source},
	})
}

func (s *MissileSystem) Update(w *entity.World, deltaTime float64) {
	hitRadius := w.Rules.Missile.HitRadius
	for i := range w.Missiles {
		missile := &w.Missiles[i]
		if !missile.Active {
			continue
		}
		missile.Position = missile.Position.Add(missile.Direction.Mul(missile.Speed * deltaTime))
		missile.Lifetime -= deltaTime

		// Одна ракета — не больше одного врага за кадр
		for j := range w.Enemies {
			enemy := &w.Enemies[j]
			if !enemy.Active {
				continue
			}
			if geom.Distance(missile.Position, enemy.Position) < enemy.Radius+hitRadius {
				s.hitTarget(w, missile, enemy)
				break
			}
		}

		if missile.Lifetime <= 0 {
			missile.Active = false
		}
	}

	w.Compact()
}

func (s *MissileSystem) hitTarget(w *entity.World, missile *component.Missile, enemy *component.Enemy) {
	enemy.Active = false
	missile.Active = false
	bounty := w.Rules.Enemy.Bounty
	w.Award(bounty)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Cause: event.KilledByMissile, Bounty: bounty},
	})
}
