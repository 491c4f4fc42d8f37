// Package termview — терминальный вид сверху на tcell.
// Стрелки крутят прицел с базы, буквы дублируют клавиши окна.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"go-kingshot/internal/app"
	"go-kingshot/internal/config"
	"go-kingshot/internal/input"
	"go-kingshot/internal/render"
	"go-kingshot/pkg/geom"
)

type Frontend struct {
	screen  tcell.Screen
	events  chan tcell.Event
	aim     *input.BaseAim
	pending input.Commands
	quit    bool
}

// New wraps an initialised screen; the aim starts at base pointing along +X.
func New(screen tcell.Screen, base geom.Vec3) *Frontend {
	return &Frontend{
		screen: screen,
		events: make(chan tcell.Event, 100),
		aim:    &input.BaseAim{Origin: base},
	}
}

// Listen читает события терминала в отдельной горутине до Fini экрана.
func (f *Frontend) Listen() {
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(f.events)
				return
			}
			f.events <- ev
		}
	}()
}

// Quit reports whether the player asked to leave (Esc, Ctrl+C, q).
func (f *Frontend) Quit() bool {
	return f.quit
}

func (f *Frontend) PollCommands() input.Commands {
	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				f.quit = true
				return f.flush()
			}
			f.handle(ev)
		default:
			return f.flush()
		}
	}
}

func (f *Frontend) flush() input.Commands {
	cmds := f.pending
	f.pending = input.Commands{}
	pose := f.aim.Pose()
	return cmds.WithCamera(pose.Position, pose.Target)
}

func (f *Frontend) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			f.quit = true
		case tcell.KeyLeft:
			f.aim.Rotate(config.AimStep)
		case tcell.KeyRight:
			f.aim.Rotate(-config.AimStep)
		case tcell.KeyEnter:
			f.pending.Start = true
		case tcell.KeyRune:
			f.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

func (f *Frontend) handleRune(r rune) {
	switch r {
	case ' ':
		f.pending.Fire = true
	case 't', 'T':
		f.pending.BuildTower = true
	case 'f', 'F':
		f.pending.BuildFence = true
	case 'p', 'P':
		f.pending.TogglePause = true
	case 'r', 'R':
		f.pending.Reset = true
	case 'q', 'Q':
		f.quit = true
	}
}

func (f *Frontend) projection() render.Projection {
	w, h := f.screen.Size()
	return render.Projection{Width: w, Height: h, ScaleX: config.TermScale, ScaleZ: config.TermScale / 2}
}

func (f *Frontend) DrawMenu() {
	f.screen.Clear()
	_, h := f.screen.Size()
	f.centered(h/3, "KINGSHOT", tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	f.centered(h/2, "press ENTER to start", tcell.StyleDefault)
	f.centered(h/2+1, "Esc or q: quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	f.screen.Show()
}

func (f *Frontend) centered(y int, s string, style tcell.Style) {
	w, _ := f.screen.Size()
	f.text((w-len(s))/2, y, s, style)
}

func (f *Frontend) DrawGame(s app.Snapshot) {
	f.screen.Clear()
	f.drawWorld(s, f.projection())
	f.drawHUD(s)
	f.screen.Show()
}
