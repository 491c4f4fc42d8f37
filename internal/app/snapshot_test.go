package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-kingshot/internal/component"
	"go-kingshot/internal/input"
)

func TestSnapshot_Initial(t *testing.T) {
	g, _ := newTestGame(t)
	s := g.Snapshot()

	assert.Equal(t, 1000, s.Coins)
	assert.Equal(t, 1, s.Wave)
	assert.Equal(t, 15, s.Remaining)
	assert.Zero(t, s.Countdown)
	assert.Equal(t, 1.0, s.BaseLife)
	assert.True(t, s.CanBuyTower)
	assert.False(t, s.CanBuyFence)
	assert.Equal(t, 4, s.MaxTowers)
	assert.Equal(t, 50, s.TowerCost)
	assert.Equal(t, 20, s.FenceCost)
	assert.Equal(t, 1.0, s.TurretHeight)
}

func TestSnapshot_IsACopy(t *testing.T) {
	g, _ := newTestGame(t)
	g.Update(0, input.Commands{BuildTower: true})

	s := g.Snapshot()
	s.Towers[0].Level = 3

	assert.Zero(t, g.World.Towers[0].Level)
}

func TestSnapshot_HidesInactive(t *testing.T) {
	g, _ := newTestGame(t)
	g.World.Enemies = []component.Enemy{{Active: true}, {Active: false}}

	assert.Len(t, g.Snapshot().Enemies, 1)
}

func TestSnapshot_BaseLifeAndCountdown(t *testing.T) {
	g, _ := newTestGame(t)
	w := g.World
	w.BaseContact.Timer = 0.5
	w.Wave.Active = false
	w.Wave.DelayTimer = 1.5

	s := g.Snapshot()
	assert.Equal(t, 0.75, s.BaseLife)
	assert.Equal(t, 3.5, s.Countdown)
	assert.False(t, s.WaveActive)
}

func TestSnapshot_FenceBuyableAfterAllTowers(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < 4; i++ {
		g.Update(0, input.Commands{BuildTower: true})
	}
	assert.True(t, g.Snapshot().CanBuyFence)
}
