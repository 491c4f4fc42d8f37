// cmd/game/main.go
package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-kingshot/internal/assets"
	"go-kingshot/internal/bootstrap"
	"go-kingshot/internal/component"
	"go-kingshot/internal/render/rlview"
	"go-kingshot/internal/state"
)

const startFromGame = false // true — начинать с игры, false — с меню

func main() {
	env, err := bootstrap.Setup(".", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer env.Close()
	env.StartPprof()

	settings := env.Settings
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(settings.WindowWidth), int32(settings.WindowHeight), "Kingshot")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.FPS))

	models := assets.NewModelManager("assets", env.Logger)
	models.Load()
	defer models.Cleanup()

	frontend := rlview.New(component.CameraPose{
		Position: env.Level.Camera.Position.Vec(),
		Target:   env.Level.Camera.Target.Vec(),
	}, models)

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, frontend, env.NewGame()))
	} else {
		sm.SetState(state.NewMenuState(sm, frontend, env.NewGame))
	}

	env.Logger.Info().Int("width", settings.WindowWidth).Int("height", settings.WindowHeight).Msg("window opened")
	for !rl.WindowShouldClose() {
		sm.Update(settings.ClampDelta(float64(rl.GetFrameTime())))

		rl.BeginDrawing()
		sm.Draw()
		rl.EndDrawing()
	}
}
