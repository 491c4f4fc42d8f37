package termview

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-kingshot/internal/app"
	"go-kingshot/internal/config"
	"go-kingshot/internal/render"
	"go-kingshot/pkg/geom"
)

func fg(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (f *Frontend) put(x, y int, r rune, style tcell.Style) {
	w, h := f.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	f.screen.SetContent(x, y, r, nil, style)
}

func (f *Frontend) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		f.put(x+i, y, r, style)
	}
}

// segment закрашивает клетки вдоль отрезка a-b.
func (f *Frontend) segment(p render.Projection, a, b geom.Vec3, r rune, style tcell.Style) {
	x0, y0 := p.ToScreen(a)
	x1, y1 := p.ToScreen(b)
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		f.put(int(math.Floor(x0+(x1-x0)*t)), int(math.Floor(y0+(y1-y0)*t)), r, style)
	}
}

func (f *Frontend) drawWorld(s app.Snapshot, p render.Projection) {
	for i, path := range s.Paths {
		if i > 0 && !s.SecondPath {
			continue
		}
		for j := 1; j < len(path); j++ {
			f.segment(p, path[j-1], path[j], '.', fg(config.PathColor))
		}
	}

	for _, t := range s.Towers {
		if !t.Active {
			continue
		}
		style := fg(config.TowerLevelColor(t.Level))
		f.segment(p, t.Start, t.End, '=', style)
		for _, end := range [2]geom.Vec3{t.Start, t.End} {
			x, y := p.Cell(end)
			f.put(x, y, 'T', style.Bold(true))
		}
	}

	for _, fc := range s.Fences {
		style := fg(config.FenceColor)
		if fc.Wear() > 0.5 {
			style = fg(config.FenceWornColor)
		}
		f.segment(p, fc.Start, fc.End, '#', style)
	}

	bx, by := p.Cell(s.Base)
	f.put(bx, by, 'B', fg(config.BaseColor).Bold(true))

	// прицел: три клетки от базы
	pose := f.aim.Pose()
	dir := pose.Target.Sub(pose.Position)
	for i := 1; i <= 3; i++ {
		x, y := p.Cell(pose.Position.Add(dir.Mul(float64(i) / config.TermScale * 1.5)))
		f.put(x, y, '+', fg(config.TextLightColor))
	}

	for _, e := range s.Enemies {
		x, y := p.Cell(e.Position)
		f.put(x, y, 'e', fg(config.EnemyColor).Bold(true))
	}
	for _, m := range s.Missiles {
		x, y := p.Cell(m.Position)
		f.put(x, y, '*', fg(config.MissileColor))
	}
}

func (f *Frontend) drawHUD(s app.Snapshot) {
	f.text(0, 0, s.StatusLine(), tcell.StyleDefault)
	f.text(0, 1, s.HintLine()+"  [<-/->] aim  [q] quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	_, h := f.screen.Size()
	const barWidth = 20
	filled := int(math.Round(s.BaseLife * barWidth))
	f.text(0, h-1, "BASE ", tcell.StyleDefault)
	for i := 0; i < barWidth; i++ {
		r, style := '-', tcell.StyleDefault.Foreground(tcell.ColorGray)
		if i < filled {
			r, style = '|', fg(config.BaseColor)
		}
		f.put(5+i, h-1, r, style)
	}

	if banner := s.Banner(); banner != "" {
		f.centered(h/2, banner, tcell.StyleDefault.Reverse(true))
	}
}
