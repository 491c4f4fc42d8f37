// Package rlview — окно raylib с видом от первого лица.
package rlview

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-kingshot/internal/app"
	"go-kingshot/internal/assets"
	"go-kingshot/internal/component"
	"go-kingshot/internal/config"
	"go-kingshot/internal/input"
	"go-kingshot/internal/ui"
)

// Frontend реализует interfaces.Frontend поверх raylib.
// WASD двигают камеру, мышь крутит взгляд, SPACE или ЛКМ стреляют.
type Frontend struct {
	camera *input.FirstPerson
	rlCam  rl.Camera3D
	models *assets.ModelManager
	font   rl.Font
	hud    *ui.HUD

	startButton *ui.MenuButton
	mouseLook   bool
}

// New creates the frontend. Call after rl.InitWindow.
func New(pose component.CameraPose, models *assets.ModelManager) *Frontend {
	font := rl.GetFontDefault()
	sw, sh := rl.GetScreenWidth(), rl.GetScreenHeight()

	btnW, btnH := float32(240), float32(60)
	start := ui.NewMenuButton(rl.NewRectangle((float32(sw)-btnW)/2, float32(sh)/2, btnW, btnH), "START", font)

	return &Frontend{
		camera:      input.NewFirstPerson(pose),
		rlCam:       rl.Camera3D{Up: rl.NewVector3(0, 1, 0), Fovy: config.CameraFovy, Projection: rl.CameraPerspective},
		models:      models,
		font:        font,
		hud:         ui.NewHUD(font, sw, sh),
		startButton: start,
	}
}

// PollCommands читает клавиатуру и мышь за текущий кадр.
func (f *Frontend) PollCommands() input.Commands {
	var cmds input.Commands

	cmds.Start = rl.IsKeyPressed(rl.KeyEnter) ||
		(!f.mouseLook && rl.IsMouseButtonPressed(rl.MouseButtonLeft) && f.startButton.IsClicked(rl.GetMousePosition()))
	if !f.mouseLook {
		return cmds
	}

	dt := float64(rl.GetFrameTime())
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		f.camera.Look(float64(d.X)*config.MouseSpeed, float64(d.Y)*config.MouseSpeed)
	}
	f.camera.Move(axis(rl.KeyW, rl.KeyS), axis(rl.KeyD, rl.KeyA), config.MoveSpeed*dt)

	cmds.Fire = rl.IsKeyPressed(rl.KeySpace) || rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	cmds.BuildTower = rl.IsKeyPressed(rl.KeyT)
	cmds.BuildFence = rl.IsKeyPressed(rl.KeyF)
	cmds.TogglePause = rl.IsKeyPressed(rl.KeyP)
	cmds.Reset = rl.IsKeyPressed(rl.KeyR)

	pose := f.camera.Pose()
	return cmds.WithCamera(pose.Position, pose.Target)
}

func axis(plus, minus int32) float64 {
	v := 0.0
	if rl.IsKeyDown(plus) {
		v++
	}
	if rl.IsKeyDown(minus) {
		v--
	}
	return v
}

// DrawMenu рисует стартовый экран.
func (f *Frontend) DrawMenu() {
	if f.mouseLook {
		rl.EnableCursor()
		f.mouseLook = false
	}
	rl.ClearBackground(ui.ColorToRL(config.BackgroundColor))

	const title = "KINGSHOT"
	const size = 64
	w := rl.MeasureTextEx(f.font, title, size, 2).X
	rl.DrawTextEx(f.font, title, rl.NewVector2((float32(rl.GetScreenWidth())-w)/2, float32(rl.GetScreenHeight())/4), size, 2, rl.White)

	f.startButton.Draw()
	rl.DrawText("ENTER to start", int32(f.startButton.Rect.X), int32(f.startButton.Rect.Y+f.startButton.Rect.Height+12), 20, rl.LightGray)
}

// DrawGame рисует 3D-сцену снимка и HUD поверх неё.
func (f *Frontend) DrawGame(s app.Snapshot) {
	if !f.mouseLook {
		rl.DisableCursor()
		f.mouseLook = true
	}
	rl.ClearBackground(ui.ColorToRL(config.BackgroundColor))

	f.rlCam.Position = vec(s.Camera.Position)
	f.rlCam.Target = vec(s.Camera.Target)

	rl.BeginMode3D(f.rlCam)
	f.drawScene(s)
	rl.EndMode3D()

	f.hud.Draw(s)
}
