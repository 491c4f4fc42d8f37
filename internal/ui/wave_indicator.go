package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-kingshot/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	AlarmColor       rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, fontSize float32) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            colorToRL(config.WaveIdleColor),
		AlarmColor:       colorToRL(config.WaveActiveColor),
		OutlineColor:     rl.White,
		OutlineThickness: 2,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := range val {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер волны по центру X. С открытым вторым путём номер красный.
// Между волнами под номером идёт обратный отсчёт.
func (i *WaveIndicator) Draw(waveNumber int, secondPath bool, countdown float64, font rl.Font) {
	if waveNumber <= 0 {
		return
	}

	text := toRoman(waveNumber)
	textColor := i.Color
	if secondPath {
		textColor = i.AlarmColor
	}

	textSize := rl.MeasureTextEx(font, text, i.FontSize, 1)
	textX := i.X - textSize.X/2

	// обводка
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(textX+float32(x), i.Y+float32(y)), i.FontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, rl.NewVector2(textX, i.Y), i.FontSize, 1, textColor)

	if countdown > 0 {
		sub := fmt.Sprintf("%.1f", countdown)
		subSize := i.FontSize / 2
		w := rl.MeasureTextEx(font, sub, subSize, 1).X
		rl.DrawTextEx(font, sub, rl.NewVector2(i.X-w/2, i.Y+textSize.Y), subSize, 1, rl.White)
	}
}
