// internal/state/game_state.go
package state

import (
	"go-kingshot/internal/interfaces"
)

// GameState — состояние игры: каждый кадр передаёт команды фронтенда
// в симуляцию и рисует её снимок.
type GameState struct {
	sm       *StateMachine
	frontend interfaces.Frontend
	game     interfaces.GameContext
}

func NewGameState(sm *StateMachine, frontend interfaces.Frontend, game interfaces.GameContext) *GameState {
	return &GameState{sm: sm, frontend: frontend, game: game}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	g.game.Update(deltaTime, g.frontend.PollCommands())
}

func (g *GameState) Draw() {
	g.frontend.DrawGame(g.game.Snapshot())
}

// Game returns the simulation driven by this state.
func (g *GameState) Game() interfaces.GameContext {
	return g.game
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
