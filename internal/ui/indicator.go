// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StateIndicatorRL — кружок состояния волны; вспыхивает при смене состояния.
type StateIndicatorRL struct {
	X, Y       float32
	Radius     float32
	lastChange time.Time
	lastState  bool
}

func NewStateIndicatorRL(x, y, radius float32) *StateIndicatorRL {
	return &StateIndicatorRL{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicatorRL) Draw(active bool, activeColor, idleColor color.RGBA) {
	if active != i.lastState {
		i.lastState = active
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	c := idleColor
	if active {
		c = activeColor
	}
	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, colorToRL(c))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
}
