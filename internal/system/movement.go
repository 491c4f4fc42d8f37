// internal/system/movement.go
package system

import (
	"go-kingshot/internal/component"
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
	"go-kingshot/pkg/geom"
)

// EnemySystem двигает врагов по путям, останавливает их заборами
// и считает общий контакт с базой.
type EnemySystem struct {
	eventDispatcher *event.Dispatcher
	stateSystem     *StateSystem
	fenceSystem     *FenceSystem
}

func NewEnemySystem(eventDispatcher *event.Dispatcher, stateSystem *StateSystem, fenceSystem *FenceSystem) *EnemySystem {
	return &EnemySystem{
		eventDispatcher: eventDispatcher,
		stateSystem:     stateSystem,
		fenceSystem:     fenceSystem,
	}
}

func (s *EnemySystem) Update(w *entity.World, deltaTime float64) {
	rules := w.Rules
	w.BaseContact.InContact = false
	for i := range w.Fences {
		w.Fences[i].InContact = false
	}

	anyFree := false
	for i := range w.Enemies {
		enemy := &w.Enemies[i]
		if !enemy.Active {
			continue
		}
		enemy.Stopped = false

		if s.touchFences(w, enemy, deltaTime) {
			enemy.ContactTimer += deltaTime
			if enemy.ContactTimer >= enemy.ContactLimit {
				s.killEnemy(w, enemy)
				continue
			}
		} else {
			enemy.ContactTimer = 0
			anyFree = true
		}

		path := w.Path(enemy.Path)
		if enemy.Waypoint < len(path) && !enemy.Stopped {
			target := path[enemy.Waypoint]
			enemy.Position = geom.Advance(enemy.Position, target, enemy.Speed*deltaTime)
			if geom.Distance(enemy.Position, target) < rules.Enemy.WaypointTolerance {
				enemy.Waypoint++
			}
		}

		// Конец пути приводит к поражению, только если база уже «выдохлась».
		if enemy.Waypoint >= len(path) && w.BaseContact.Timer >= rules.Base.ContactLimit {
			enemy.Active = false
			s.stateSystem.EndGame(w)
		}

		// Каждый враг у базы добавляет свой dt к общему таймеру.
		if geom.Distance(enemy.Position, w.Base) < enemy.Radius+rules.Enemy.BaseContactRadius {
			w.BaseContact.InContact = true
			w.BaseContact.Timer += deltaTime
		}
	}

	// Заборы, которых в этом кадре никто не касался, «отдыхают»
	if anyFree {
		for i := range w.Fences {
			fence := &w.Fences[i]
			if fence.Active && !fence.InContact {
				fence.ContactTimer = 0
			}
		}
	}

	s.updateBaseContact(w, deltaTime)
}

// touchFences проверяет касание врага со всеми активными заборами и копит износ
// тех, которых он касается. Возвращает true, если враг упёрся хотя бы в один.
func (s *EnemySystem) touchFences(w *entity.World, enemy *component.Enemy, deltaTime float64) bool {
	halfWidth := w.Rules.Fence.Width / 2
	touching := false
	for i := range w.Fences {
		fence := &w.Fences[i]
		if !fence.Active {
			continue
		}
		if geom.DistanceToSegment(enemy.Position, fence.Start, fence.End) >= enemy.Radius+halfWidth {
			continue
		}
		touching = true
		enemy.Stopped = true
		fence.InContact = true
		fence.ContactTimer += deltaTime
		if fence.ContactTimer >= fence.ContactLimit {
			s.fenceSystem.Destroy(fence)
		}
	}
	return touching
}

func (s *EnemySystem) killEnemy(w *entity.World, enemy *component.Enemy) {
	enemy.Active = false
	bounty := w.Rules.Enemy.Bounty
	w.Award(bounty)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Cause: event.KilledByFence, Bounty: bounty},
	})
}

// updateBaseContact добавляет ещё один dt за кадр с контактом, обрезает таймер
// по лимиту с поражением и сбрасывает его в кадре без контакта.
func (s *EnemySystem) updateBaseContact(w *entity.World, deltaTime float64) {
	limit := w.Rules.Base.ContactLimit
	if !w.BaseContact.InContact {
		w.BaseContact.Timer = 0
		return
	}
	w.BaseContact.Timer += deltaTime
	if w.BaseContact.Timer >= limit {
		w.BaseContact.Timer = limit
		s.stateSystem.EndGame(w)
	}
}
