package ebview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-kingshot/internal/app"
	"go-kingshot/internal/config"
	"go-kingshot/pkg/geom"
)

func (f *Frontend) line(a, b geom.Vec3, width float32, clr color.Color) {
	x0, y0 := f.ToScreen(a)
	x1, y1 := f.ToScreen(b)
	vector.StrokeLine(f.screen, x0, y0, x1, y1, width, clr, true)
}

func (f *Frontend) circle(p geom.Vec3, radius float64, clr color.Color) {
	x, y := f.ToScreen(p)
	vector.DrawFilledCircle(f.screen, x, y, float32(radius*config.TopDownScale), clr, true)
}

func (f *Frontend) drawWorld(s app.Snapshot) {
	for i, path := range s.Paths {
		if i > 0 && !s.SecondPath {
			continue
		}
		for j := 1; j < len(path); j++ {
			f.line(path[j-1], path[j], config.PathWidth*config.TopDownScale, config.PathColor)
		}
	}

	half := float32(config.BaseSize * config.TopDownScale / 2)
	bx, by := f.ToScreen(s.Base)
	vector.DrawFilledRect(f.screen, bx-half, by-half, 2*half, 2*half, config.BaseColor, true)

	for _, t := range s.Towers {
		if !t.Active {
			continue
		}
		c := config.TowerLevelColor(t.Level)
		f.line(t.Start, t.End, config.TowerBeamWidth*config.TopDownScale, c)
		for _, p := range [2]geom.Vec3{t.Start, t.End} {
			f.circle(p, config.TurretSize/2, config.TurretColor)
			x, y := f.ToScreen(p)
			vector.StrokeCircle(f.screen, x, y, float32(t.Range*config.TopDownScale), 1, c, true)
		}
	}

	for _, fc := range s.Fences {
		c := config.FenceColor
		if fc.Wear() > 0.5 {
			c = config.FenceWornColor
		}
		f.line(fc.Start, fc.End, 4, c)
	}

	for _, e := range s.Enemies {
		f.circle(e.Position, e.Radius, config.EnemyColor)
	}
	for _, m := range s.Missiles {
		f.circle(m.Position, config.MissileRadius*2, config.MissileColor)
	}

	// прицел
	pose := f.aim.Pose()
	tip := pose.Position.Add(pose.Target.Sub(pose.Position).Mul(3))
	f.line(pose.Position, tip, 2, config.TextLightColor)
}

func (f *Frontend) drawHUD(s app.Snapshot) {
	x, y := config.HUDMargin, config.HUDMargin+13
	text.Draw(f.screen, s.StatusLine(), f.fontFace, x, y, config.TextLightColor)
	text.Draw(f.screen, s.HintLine(), f.fontFace, x, y+18, config.TextLightColor)

	barY := float32(f.height - config.HUDMargin - config.LifeBarHeight)
	vector.DrawFilledRect(f.screen, config.HUDMargin, barY, config.LifeBarWidth, config.LifeBarHeight, color.Black, false)
	vector.DrawFilledRect(f.screen, config.HUDMargin, barY, float32(s.BaseLife*config.LifeBarWidth), config.LifeBarHeight, config.BaseColor, false)
	vector.StrokeRect(f.screen, config.HUDMargin, barY, config.LifeBarWidth, config.LifeBarHeight, 1, config.TextLightColor, false)

	if banner := s.Banner(); banner != "" {
		vector.DrawFilledRect(f.screen, 0, 0, float32(f.width), float32(f.height), config.OverlayColor, false)
		f.centered(banner, f.height/2, config.TextLightColor)
	}
}
