package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-kingshot/internal/app"
	"go-kingshot/internal/config"
)

// HUD собирает все элементы интерфейса поверх 3D-сцены.
type HUD struct {
	font      rl.Font
	wave      *WaveIndicator
	state     *StateIndicatorRL
	baseLife  *BaseLifeIndicator
	pauseIcon *PauseIconRL
}

func NewHUD(font rl.Font, screenWidth, screenHeight int) *HUD {
	w, h := float32(screenWidth), float32(screenHeight)
	pause := NewPauseIconRL(w-config.IndicatorOffsetX*3, config.IndicatorOffsetX, 10, config.TextLightColor, config.WaveIdleColor)
	life := NewBaseLifeIndicator(config.HUDMargin, h-config.HUDMargin-config.LifeBarHeight, config.LifeBarWidth, config.LifeBarHeight)

	return &HUD{
		font:      font,
		wave:      NewWaveIndicator(w/2, config.HUDMargin, 48),
		state:     NewStateIndicatorRL(w-config.IndicatorOffsetX, config.IndicatorOffsetX, config.IndicatorRadius),
		baseLife:  life,
		pauseIcon: pause,
	}
}

// Draw рисует HUD по снимку кадра.
func (h *HUD) Draw(s app.Snapshot) {
	h.wave.Draw(s.Wave, s.SecondPath, s.Countdown, h.font)
	h.state.Draw(s.WaveActive, config.WaveActiveColor, config.WaveIdleColor)
	h.pauseIcon.Draw(s.Paused)
	h.baseLife.Draw(s.BaseLife)

	rl.DrawTextEx(h.font, s.StatusLine(), rl.NewVector2(config.HUDMargin, config.HUDMargin), config.HUDFontSize, 1, rl.White)
	rl.DrawTextEx(h.font, s.HintLine(), rl.NewVector2(config.HUDMargin, config.HUDMargin+config.HUDFontSize+4), config.HUDFontSize, 1, rl.LightGray)

	if !s.Paused && !s.GameOver {
		DrawCrosshair()
	}
	if banner := s.Banner(); banner != "" {
		DrawBanner(h.font, banner)
	}
}

// DrawCrosshair рисует перекрестье в центре экрана.
func DrawCrosshair() {
	cx, cy := int32(rl.GetScreenWidth()/2), int32(rl.GetScreenHeight()/2)
	rl.DrawLine(cx-config.CrosshairSize, cy, cx+config.CrosshairSize, cy, rl.White)
	rl.DrawLine(cx, cy-config.CrosshairSize, cx, cy+config.CrosshairSize, rl.White)
}

// DrawBanner затемняет экран и пишет text по центру.
func DrawBanner(font rl.Font, text string) {
	sw, sh := rl.GetScreenWidth(), rl.GetScreenHeight()
	rl.DrawRectangle(0, 0, int32(sw), int32(sh), colorToRL(config.OverlayColor))

	const size = 40
	w := rl.MeasureTextEx(font, text, size, 1).X
	rl.DrawTextEx(font, text, rl.NewVector2((float32(sw)-w)/2, float32(sh)/2-size/2), size, 1, rl.White)
}
