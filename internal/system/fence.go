package system

import (
	"go-kingshot/internal/component"
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
)

// FenceSystem следит за износом заборов.
type FenceSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewFenceSystem(eventDispatcher *event.Dispatcher) *FenceSystem {
	return &FenceSystem{eventDispatcher: eventDispatcher}
}

// Update — отдельный проход по заборам: нужен в кадрах, где EnemySystem
// не дошёл до забора (например, врагов нет).
func (s *FenceSystem) Update(w *entity.World, deltaTime float64) {
	for i := range w.Fences {
		fence := &w.Fences[i]
		if fence.Active && fence.ContactTimer >= fence.ContactLimit {
			s.Destroy(fence)
		}
	}
}

// Destroy выключает забор. Таймер не превышает предела; повторно событие не шлётся.
func (s *FenceSystem) Destroy(fence *component.Fence) {
	if !fence.Active {
		return
	}
	if fence.ContactTimer > fence.ContactLimit {
		fence.ContactTimer = fence.ContactLimit
	}
	fence.Active = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.FenceDestroyed})
}
