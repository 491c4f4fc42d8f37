// internal/app/tower_management.go
package app

import (
	"go-kingshot/internal/component"
	"go-kingshot/internal/input"
	"go-kingshot/pkg/geom"
)

// applyCommands выполняет действия игрока до систем кадра, поэтому ракета
// игрока успевает сдвинуться уже в этом кадре.
func (g *Game) applyCommands(cmds input.Commands) {
	if cmds.Fire {
		g.FireMissile()
	}
	if cmds.BuildTower {
		g.PlaceTower()
	}
	if cmds.BuildFence {
		g.PlaceFence()
	}
}

// FireMissile launches the player's missile from the camera toward its target.
func (g *Game) FireMissile() {
	camera := g.World.Player.Camera
	direction := geom.Direction(camera.Position, camera.Target)
	g.MissileSystem.Launch(g.World, camera.Position, direction, component.SourcePlayer)
}

// PlaceTower attempts to build a tower, or upgrade one when all slots are taken.
func (g *Game) PlaceTower() bool {
	return g.EconomySystem.BuildOrUpgradeTower(g.World)
}

// PlaceFence attempts to build a fence in the next free slot.
func (g *Game) PlaceFence() bool {
	return g.EconomySystem.BuildFence(g.World)
}

// CanPlaceTower reports whether a tower purchase or upgrade would go through.
func (g *Game) CanPlaceTower() bool {
	w := g.World
	rules := w.Rules.Tower
	if w.Player.Coins < rules.Cost {
		return false
	}
	if w.TowerCount < rules.Max {
		return true
	}
	for i := range w.Towers {
		if w.Towers[i].Level < rules.MaxLevel {
			return true
		}
	}
	return false
}

// CanPlaceFence reports whether a fence purchase would go through.
func (g *Game) CanPlaceFence() bool {
	w := g.World
	return w.Player.Coins >= w.Rules.Fence.Cost &&
		w.TowerCount == w.Rules.Tower.Max &&
		w.FenceCount < w.Rules.Fence.Max
}
