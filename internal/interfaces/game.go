package interfaces

import (
	"go-kingshot/internal/app"
	"go-kingshot/internal/input"
)

// Frontend — окно, терминал или любой другой способ показать игру.
// Опрос ввода и отрисовка идут из одного потока кадра.
type Frontend interface {
	PollCommands() input.Commands
	DrawMenu()
	DrawGame(snapshot app.Snapshot)
}
