// cmd/termdefense/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-kingshot/internal/bootstrap"
	"go-kingshot/internal/render/termview"
	"go-kingshot/internal/state"
)

func main() {
	// экран занят игрой, поэтому логи только в файл (log.file)
	env, err := bootstrap.Setup(".", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer env.Close()
	env.StartPprof()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	frontend := termview.New(screen, env.Level.Base.Vec())
	frontend.Listen()

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, frontend, env.NewGame))

	settings := env.Settings
	ticker := time.NewTicker(time.Second / time.Duration(max(settings.FPS, 1)))
	defer ticker.Stop()

	last := time.Now()
	for range ticker.C {
		now := time.Now()
		sm.Update(settings.ClampDelta(now.Sub(last).Seconds()))
		last = now
		if frontend.Quit() {
			return
		}
		sm.Draw()
	}
}
