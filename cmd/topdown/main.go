// cmd/topdown/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-kingshot/internal/bootstrap"
	"go-kingshot/internal/config"
	"go-kingshot/internal/render/ebview"
	"go-kingshot/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	frontend       *ebview.Frontend
	settings       config.Settings
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := a.settings.ClampDelta(now.Sub(a.lastUpdateTime).Seconds())
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.frontend.SetScreen(screen)
	a.stateMachine.Draw()
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.WindowWidth, a.settings.WindowHeight
}

func main() {
	env, err := bootstrap.Setup(".", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer env.Close()
	env.StartPprof()

	settings := env.Settings
	frontend := ebview.New(env.Level.Base.Vec(), settings.WindowWidth, settings.WindowHeight)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, frontend, env.NewGame))

	app := &AppGame{
		stateMachine:   sm,
		frontend:       frontend,
		settings:       settings,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Kingshot - top down")
	ebiten.SetTPS(settings.FPS)
	if err := ebiten.RunGame(app); err != nil {
		env.Logger.Error().Err(err).Msg("game stopped")
	}
}
