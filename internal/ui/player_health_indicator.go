// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BaseLifeIndicator — полоса оставшегося «терпения» базы.
// Пустеет, пока враги стоят у базы, и восстанавливается, когда их нет.
type BaseLifeIndicator struct {
	Position rl.Vector2
	Width    float32
	Height   float32
}

// NewBaseLifeIndicator создает новый индикатор базы.
func NewBaseLifeIndicator(x, y, width, height float32) *BaseLifeIndicator {
	return &BaseLifeIndicator{
		Position: rl.NewVector2(x, y),
		Width:    width,
		Height:   height,
	}
}

// Draw рисует полосу; life в диапазоне [0, 1].
func (i *BaseLifeIndicator) Draw(life float64) {
	x, y := int32(i.Position.X), int32(i.Position.Y)
	w, h := int32(i.Width), int32(i.Height)

	fill := rl.Green
	switch {
	case life < 0.34:
		fill = rl.Red
	case life < 0.67:
		fill = rl.Orange
	}

	rl.DrawRectangle(x, y, w, h, rl.Black)
	rl.DrawRectangle(x, y, int32(float64(w)*life), h, fill)
	rl.DrawRectangleLines(x, y, w, h, rl.White)

	label := fmt.Sprintf("BASE %d%%", int(life*100+0.5))
	rl.DrawText(label, x, y-22, 20, rl.White)
}

// GetHeight возвращает общую высоту индикатора вместе с подписью.
func (i *BaseLifeIndicator) GetHeight() float32 {
	return i.Height + 22
}
