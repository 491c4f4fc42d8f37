// Package ebview — вид сверху на ebiten. Прицел с базы следует за мышью.
package ebview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-kingshot/internal/app"
	"go-kingshot/internal/config"
	"go-kingshot/internal/input"
	"go-kingshot/internal/render"
	"go-kingshot/pkg/geom"
)

// Frontend рисует на экран, переданный через SetScreen перед Draw машины состояний.
type Frontend struct {
	screen   *ebiten.Image
	aim      *input.BaseAim
	fontFace font.Face
	proj     render.Projection
	width    int
	height   int
}

// New creates a top-down frontend. Выстрелы идут из базы на высоте врагов.
func New(base geom.Vec3, width, height int) *Frontend {
	return &Frontend{
		aim:      &input.BaseAim{Origin: base},
		fontFace: basicfont.Face7x13,
		proj:     render.Projection{Width: width, Height: height, ScaleX: config.TopDownScale, ScaleZ: config.TopDownScale},
		width:    width,
		height:   height,
	}
}

// SetScreen задаёт холст для следующего DrawMenu/DrawGame.
func (f *Frontend) SetScreen(screen *ebiten.Image) {
	f.screen = screen
}

// ToScreen переводит точку земли в пиксели.
func (f *Frontend) ToScreen(p geom.Vec3) (float32, float32) {
	x, y := f.proj.ToScreen(p)
	return float32(x), float32(y)
}

func (f *Frontend) PollCommands() input.Commands {
	var cmds input.Commands
	cmds.Start = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	cx, cy := ebiten.CursorPosition()
	f.aim.PointAt(f.proj.ToWorld(float64(cx), float64(cy)))
	cmds.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	cmds.BuildTower = inpututil.IsKeyJustPressed(ebiten.KeyT)
	cmds.BuildFence = inpututil.IsKeyJustPressed(ebiten.KeyF)
	cmds.TogglePause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	cmds.Reset = inpututil.IsKeyJustPressed(ebiten.KeyR)

	pose := f.aim.Pose()
	return cmds.WithCamera(pose.Position, pose.Target)
}

func (f *Frontend) DrawMenu() {
	if f.screen == nil {
		return
	}
	f.screen.Fill(config.BackgroundColor)
	f.centered("KINGSHOT", f.height/3, config.TextLightColor)
	f.centered("click or press ENTER to start", f.height/2, config.TextLightColor)
}

func (f *Frontend) DrawGame(s app.Snapshot) {
	if f.screen == nil {
		return
	}
	f.screen.Fill(config.BackgroundColor)
	f.drawWorld(s)
	f.drawHUD(s)
}

func (f *Frontend) centered(str string, y int, clr color.Color) {
	bounds := text.BoundString(f.fontFace, str)
	text.Draw(f.screen, str, f.fontFace, (f.width-bounds.Dx())/2, y, clr)
}
