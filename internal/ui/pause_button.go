// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseIconRL показывает состояние паузы: «||» во время игры, треугольник на паузе.
// Иконка только рисуется; переключает паузу клавиша P.
type PauseIconRL struct {
	X, Y           float32
	Size           float32
	PauseColor     color.Color
	PlayColor      color.Color
	isPaused       bool
	lastToggleTime time.Time
}

func NewPauseIconRL(x, y, size float32, pauseColor, playColor color.Color) *PauseIconRL {
	return &PauseIconRL{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// Draw рисует иконку для состояния paused и вспыхивает при его смене.
func (b *PauseIconRL) Draw(paused bool) {
	if paused != b.isPaused {
		b.isPaused = paused
		b.lastToggleTime = time.Now()
	}
	elapsed := time.Since(b.lastToggleTime).Seconds()
	rectSize := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if b.isPaused {
		c := colorToRL(b.PlayColor)
		p1 := rl.NewVector2(b.X-rectSize, b.Y-rectSize*1.2)
		p2 := rl.NewVector2(b.X-rectSize, b.Y+rectSize*1.2)
		p3 := rl.NewVector2(b.X+rectSize, b.Y)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}

	c := colorToRL(b.PauseColor)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	for _, left := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		rl.DrawRectangleV(rl.NewVector2(left, b.Y-height/2), rl.NewVector2(width, height), c)
		rl.DrawRectangleLines(int32(left), int32(b.Y-height/2), int32(width), int32(height), rl.White)
	}
}

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// ColorToRL is colorToRL for other raylib packages.
func ColorToRL(c color.Color) rl.Color {
	return colorToRL(c)
}
