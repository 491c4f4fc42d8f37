// internal/ui/menu_button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MenuButton — простая кнопка меню.
type MenuButton struct {
	Rect    rl.Rectangle
	Text    string
	bgColor rl.Color
	hlColor rl.Color
	fgColor rl.Color
	font    rl.Font
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect rl.Rectangle, text string, font rl.Font) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		bgColor: rl.Gray,
		hlColor: rl.LightGray,
		fgColor: rl.Black,
		font:    font,
	}
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b *MenuButton) Draw() {
	bg := b.bgColor
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), b.Rect) {
		bg = b.hlColor
	}
	rl.DrawRectangleRec(b.Rect, bg)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.LightGray)

	const textSize = 30
	textWidth := rl.MeasureTextEx(b.font, b.Text, textSize, 1).X
	pos := rl.NewVector2(b.Rect.X+(b.Rect.Width-textWidth)/2, b.Rect.Y+(b.Rect.Height-textSize)/2)
	rl.DrawTextEx(b.font, b.Text, pos, textSize, 1, b.fgColor)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}
