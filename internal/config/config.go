// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
	MaxDeltaTime = 0.1 // длинные кадры режутся, чтобы не проскочить столкновение

	// 3D-сцена
	GroundSize     = 50.0
	BaseSize       = 1.0
	PathWidth      = 0.3
	TurretSize     = 0.5
	TowerBeamWidth = 0.2
	FenceHeight    = 1.0
	MissileRadius  = 0.1
	CameraFovy     = 45.0
	MoveSpeed      = 6.0   // скорость камеры, единиц в секунду
	MouseSpeed     = 0.003 // радиан на пиксель

	// HUD
	CrosshairSize    = 10
	HUDFontSize      = 20
	HUDMargin        = 10
	LifeBarWidth     = 200
	LifeBarHeight    = 16
	IndicatorOffsetX = 30
	IndicatorRadius  = 18.0

	// Вид сверху: пикселей на единицу мира
	TopDownScale = 20.0
	// Терминал: клеток на единицу мира по X; по Z вдвое меньше из-за формы символа
	TermScale = 2.0
	// Шаг поворота прицела в терминале, радиан
	AimStep = 0.1
)

var (
	BackgroundColor = color.RGBA{10, 10, 20, 255}
	GroundColor     = color.RGBA{90, 90, 100, 255}
	PathColor       = color.RGBA{160, 140, 100, 255}
	BaseColor       = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	MissileColor    = color.RGBA{255, 215, 0, 255}
	TowerColor      = color.RGBA{70, 130, 180, 255}
	TurretColor     = color.RGBA{200, 200, 220, 255}
	FenceColor      = color.RGBA{139, 90, 43, 255}
	FenceWornColor  = color.RGBA{255, 80, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	WaveActiveColor = color.RGBA{220, 60, 60, 220}
	WaveIdleColor   = color.RGBA{70, 130, 180, 220}
	OverlayColor    = color.RGBA{0, 0, 0, 160}

	// Цвет башни по уровню улучшения
	TowerLevelColors = []color.RGBA{
		{70, 130, 180, 255},
		{60, 179, 113, 255},
		{186, 85, 211, 255},
		{255, 215, 0, 255},
	}
)

// TowerLevelColor возвращает цвет башни уровня level, зажимая его в таблицу.
func TowerLevelColor(level int) color.RGBA {
	if level < 0 {
		level = 0
	}
	if level >= len(TowerLevelColors) {
		level = len(TowerLevelColors) - 1
	}
	return TowerLevelColors[level]
}
