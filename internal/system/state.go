package system

import (
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
)

// StateSystem управляет глобальными флагами паузы и поражения.
type StateSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{eventDispatcher: eventDispatcher}
}

// TogglePause переключает паузу. После поражения пауза не переключается.
func (s *StateSystem) TogglePause(w *entity.World) {
	if w.State.GameOver {
		return
	}
	w.State.Paused = !w.State.Paused
	s.eventDispatcher.Dispatch(event.Event{Type: event.PauseToggled, Data: w.State.Paused})
}

// EndGame фиксирует поражение. Повторные вызовы ничего не делают.
func (s *StateSystem) EndGame(w *entity.World) {
	if w.State.GameOver {
		return
	}
	w.State.GameOver = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.WaveData{Number: w.Wave.Number, MaxEnemies: w.Wave.MaxEnemies},
	})
}

// Reset начинает партию заново, сохраняя статику уровня.
func (s *StateSystem) Reset(w *entity.World) {
	w.Reset()
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameReset})
}
