// internal/interfaces/game_context.go
package interfaces

import (
	"go-kingshot/internal/app"
	"go-kingshot/internal/input"
)

// GameContext — то, что экран игры знает о симуляции.
type GameContext interface {
	Update(deltaTime float64, cmds input.Commands)
	Snapshot() app.Snapshot
	IsGameOver() bool
}

var _ GameContext = (*app.Game)(nil)
