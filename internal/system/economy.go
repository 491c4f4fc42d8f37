// internal/system/economy.go
package system

import (
	"go-kingshot/internal/component"
	"go-kingshot/internal/defs"
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
)

// EconomySystem обрабатывает покупки. Награды за убийства начисляют
// EnemySystem и MissileSystem в момент смерти врага.
type EconomySystem struct {
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(eventDispatcher *event.Dispatcher) *EconomySystem {
	return &EconomySystem{eventDispatcher: eventDispatcher}
}

// BuildOrUpgradeTower ставит новую башню, пока их меньше максимума,
// иначе улучшает первую по порядку постройки башню ниже максимального уровня.
// Если монет не хватает или улучшать нечего, ничего не происходит.
func (s *EconomySystem) BuildOrUpgradeTower(w *entity.World) bool {
	rules := w.Rules.Tower
	if w.Player.Coins < rules.Cost {
		return false
	}
	if w.TowerCount < rules.Max {
		s.placeTower(w)
		return true
	}
	return s.upgradeTower(w)
}

func (s *EconomySystem) placeTower(w *entity.World) {
	rules := w.Rules.Tower
	start, end := rules.Slot(w.Base, w.TowerCount)
	w.Towers = append(w.Towers, component.Tower{
		Start:    start,
		End:      end,
		Active:   true,
		Cooldown: 0,
		Range:    rules.Range,
		Level:    0,
	})
	w.TowerCount++
	w.Spend(rules.Cost)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerBuilt,
		Data: event.TowerData{Index: len(w.Towers) - 1, Level: 0, Cost: rules.Cost},
	})
}

func (s *EconomySystem) upgradeTower(w *entity.World) bool {
	rules := w.Rules.Tower
	for i := range w.Towers {
		tower := &w.Towers[i]
		if tower.Level >= rules.MaxLevel {
			continue
		}
		tower.Level++
		tower.Range += rules.UpgradeRange
		tower.Cooldown = rules.UpgradedCooldown(tower.Cooldown)
		w.Spend(rules.Cost)

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TowerUpgraded,
			Data: event.TowerData{Index: i, Level: tower.Level, Cost: rules.Cost},
		})
		return true
	}
	return false
}

// BuildFence ставит забор. Заборы доступны только при полном наборе башен.
func (s *EconomySystem) BuildFence(w *entity.World) bool {
	rules := w.Rules.Fence
	if w.Player.Coins < rules.Cost || w.TowerCount != w.Rules.Tower.Max || w.FenceCount >= rules.Max {
		return false
	}

	start, end := defs.FenceSlot(w.Rules.Tower, w.Base, w.TowerCount, w.FenceCount)
	w.Fences = append(w.Fences, component.Fence{
		Start:        start,
		End:          end,
		Active:       true,
		ContactLimit: rules.ContactLimit,
	})
	w.FenceCount++
	w.Spend(rules.Cost)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.FenceBuilt,
		Data: event.FenceData{Cost: rules.Cost},
	})
	return true
}
