package rlview

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-kingshot/internal/app"
	"go-kingshot/internal/assets"
	"go-kingshot/internal/component"
	"go-kingshot/internal/config"
	"go-kingshot/internal/ui"
	"go-kingshot/internal/utils"
	"go-kingshot/pkg/geom"
)

func vec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

func (f *Frontend) drawScene(s app.Snapshot) {
	if ground, ok := f.models.GetModel(assets.GroundModel); ok {
		rl.DrawModel(ground, rl.Vector3Zero(), 1, rl.White)
	} else {
		rl.DrawPlane(rl.Vector3Zero(), rl.NewVector2(config.GroundSize, config.GroundSize), ui.ColorToRL(config.GroundColor))
	}

	pathColor := ui.ColorToRL(config.PathColor)
	for i, path := range s.Paths {
		if i > 0 && !s.SecondPath {
			continue
		}
		for j := 1; j < len(path); j++ {
			rl.DrawCylinderEx(vec(path[j-1]), vec(path[j]), config.PathWidth/2, config.PathWidth/2, 4, pathColor)
		}
	}

	f.drawBase(s)

	enemyColor := ui.ColorToRL(config.EnemyColor)
	model, hasModel := f.models.GetModel(assets.EnemyModel)
	for _, e := range s.Enemies {
		if hasModel {
			rl.DrawModel(model, vec(e.Position), float32(e.Radius), rl.White)
			continue
		}
		rl.DrawSphere(vec(e.Position), float32(e.Radius), enemyColor)
	}

	missileColor := ui.ColorToRL(config.MissileColor)
	for _, m := range s.Missiles {
		rl.DrawSphere(vec(m.Position), config.MissileRadius, missileColor)
	}

	for i := range s.Towers {
		drawTower(&s.Towers[i], s.TurretHeight)
	}
	for i := range s.Fences {
		drawFence(&s.Fences[i])
	}
}

func (f *Frontend) drawBase(s app.Snapshot) {
	if model, ok := f.models.GetModel(assets.BaseModel); ok {
		rl.DrawModel(model, vec(s.Base), config.BaseSize, rl.White)
		return
	}
	pos := vec(s.Base)
	rl.DrawCube(pos, config.BaseSize, config.BaseSize, config.BaseSize, ui.ColorToRL(config.BaseColor))
	rl.DrawCubeWires(pos, config.BaseSize, config.BaseSize, config.BaseSize, rl.White)
}

func drawTower(t *component.Tower, turretHeight float64) {
	if !t.Active {
		return
	}
	c := ui.ColorToRL(config.TowerLevelColor(t.Level))
	turrets := t.Turrets(turretHeight)
	rl.DrawCylinderEx(vec(turrets[0]), vec(turrets[1]), config.TowerBeamWidth/2, config.TowerBeamWidth/2, 6, c)
	for _, p := range turrets {
		rl.DrawCylinderEx(vec(p.Sub(geom.V(0, turretHeight, 0))), vec(p), config.TowerBeamWidth/2, config.TowerBeamWidth/2, 6, c)
		rl.DrawCube(vec(p), config.TurretSize, config.TurretSize, config.TurretSize, ui.ColorToRL(config.TurretColor))
		rl.DrawCubeWires(vec(p), config.TurretSize, config.TurretSize, config.TurretSize, c)
	}
}

// drawFence рисует забор; по мере износа он краснеет.
func drawFence(fc *component.Fence) {
	wear := float32(fc.Wear())
	from, to := ui.ColorToRL(config.FenceColor), ui.ColorToRL(config.FenceWornColor)
	c := rl.NewColor(
		uint8(utils.Lerp(float64(from.R), float64(to.R), float64(wear))),
		uint8(utils.Lerp(float64(from.G), float64(to.G), float64(wear))),
		uint8(utils.Lerp(float64(from.B), float64(to.B), float64(wear))),
		255,
	)

	mid := geom.Midpoint(fc.Start, fc.End).Add(geom.V(0, config.FenceHeight/2, 0))
	length := float32(geom.Distance(fc.Start, fc.End))
	dir := fc.End.Sub(fc.Start)
	w, d := length, float32(config.TowerBeamWidth)
	if dir.X() == 0 {
		w, d = d, length
	}
	rl.DrawCube(vec(mid), w, config.FenceHeight, d, c)
	rl.DrawCubeWires(vec(mid), w, config.FenceHeight, d, rl.Black)
}
