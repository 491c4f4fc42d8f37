// internal/state/menu_state.go
package state

import (
	"go-kingshot/internal/interfaces"
)

// GameFactory создаёт новую партию при выходе из меню.
type GameFactory func() interfaces.GameContext

// MenuState — стартовый экран, ждёт команды Start.
type MenuState struct {
	sm       *StateMachine
	frontend interfaces.Frontend
	newGame  GameFactory
}

func NewMenuState(sm *StateMachine, frontend interfaces.Frontend, newGame GameFactory) *MenuState {
	return &MenuState{sm: sm, frontend: frontend, newGame: newGame}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if m.frontend.PollCommands().Start {
		m.sm.SetState(NewGameState(m.sm, m.frontend, m.newGame()))
	}
}

func (m *MenuState) Draw() {
	m.frontend.DrawMenu()
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
