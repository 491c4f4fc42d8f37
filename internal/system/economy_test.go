package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kingshot/internal/event"
	"go-kingshot/pkg/geom"
)

func TestEconomy_TowerNeedsCoins(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewEconomySystem(d)
	w.Player.Coins = 40

	assert.False(t, s.BuildOrUpgradeTower(w))
	assert.Zero(t, w.TowerCount)
	assert.Empty(t, w.Towers)
	assert.Equal(t, 40, w.Player.Coins)
	assert.Empty(t, r.events)
}

func TestEconomy_PlacesTowersInSlots(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewEconomySystem(d)

	for i := 0; i < 4; i++ {
		require.True(t, s.BuildOrUpgradeTower(w))
	}

	assert.Equal(t, 4, w.TowerCount)
	assert.Equal(t, 800, w.Player.Coins)
	assert.Equal(t, geom.V(-3, 0.1, -2), w.Towers[0].Start)
	assert.Equal(t, geom.V(-2, 0.1, -4.125), w.Towers[3].Start)
	for _, tower := range w.Towers {
		assert.True(t, tower.Active)
		assert.Zero(t, tower.Cooldown)
		assert.Equal(t, 7.0, tower.Range)
	}
	assert.Equal(t, 4, r.count(event.TowerBuilt))
}

func TestEconomy_UpgradesFirstEligibleTower(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewEconomySystem(d)
	for i := 0; i < 4; i++ {
		s.BuildOrUpgradeTower(w)
	}
	w.Towers[0].Cooldown = 3.0

	require.True(t, s.BuildOrUpgradeTower(w))

	assert.Equal(t, 4, w.TowerCount, "no fifth tower")
	assert.Equal(t, 1, w.Towers[0].Level)
	assert.Equal(t, 9.0, w.Towers[0].Range)
	assert.Equal(t, 2.5, w.Towers[0].Cooldown)
	assert.Zero(t, w.Towers[1].Level)
	assert.Equal(t, 750, w.Player.Coins)
	assert.Equal(t, event.TowerData{Index: 0, Level: 1, Cost: 50}, r.last(t, event.TowerUpgraded).Data)

	// первая башня на максимуме — очередь второй
	s.BuildOrUpgradeTower(w)
	s.BuildOrUpgradeTower(w)
	s.BuildOrUpgradeTower(w)
	assert.Equal(t, 3, w.Towers[0].Level)
	assert.Equal(t, 1, w.Towers[1].Level)
}

func TestEconomy_NothingLeftToUpgrade(t *testing.T) {
	w, d, _ := newTestWorld(t)
	s := NewEconomySystem(d)
	for i := 0; i < 4+4*3; i++ {
		require.True(t, s.BuildOrUpgradeTower(w))
	}
	coins := w.Player.Coins

	assert.False(t, s.BuildOrUpgradeTower(w))
	assert.Equal(t, coins, w.Player.Coins)
	for _, tower := range w.Towers {
		assert.Equal(t, 3, tower.Level)
		assert.LessOrEqual(t, tower.Level, w.Rules.Tower.MaxLevel)
	}
}

func TestEconomy_FenceRequiresAllTowers(t *testing.T) {
	w, d, _ := newTestWorld(t)
	s := NewEconomySystem(d)
	for i := 0; i < 3; i++ {
		s.BuildOrUpgradeTower(w)
	}

	assert.False(t, s.BuildFence(w))
	assert.Zero(t, w.FenceCount)

	s.BuildOrUpgradeTower(w)
	require.True(t, s.BuildFence(w))
	assert.Equal(t, 1, w.FenceCount)
	assert.Equal(t, 780, w.Player.Coins)
	assert.InDelta(t, -3.0, w.Fences[0].Start.X(), 1e-9)
	assert.Equal(t, 3.0, w.Fences[0].ContactLimit)
}

func TestEconomy_FenceLimit(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewEconomySystem(d)
	for i := 0; i < 4; i++ {
		s.BuildOrUpgradeTower(w)
	}
	for i := 0; i < 6; i++ {
		s.BuildFence(w)
	}

	assert.Equal(t, 4, w.FenceCount)
	assert.Len(t, w.Fences, 4)
	assert.Equal(t, 4, r.count(event.FenceBuilt))
}

func TestEconomy_DestroyedFenceFreesSlot(t *testing.T) {
	w, d, _ := newTestWorld(t)
	s := NewEconomySystem(d)
	missiles := NewMissileSystem(d)
	for i := 0; i < 4; i++ {
		s.BuildOrUpgradeTower(w)
	}
	for i := 0; i < 4; i++ {
		require.True(t, s.BuildFence(w))
	}
	require.False(t, s.BuildFence(w))

	w.Fences[1].Active = false
	missiles.Update(w, 0.01)

	assert.Equal(t, 3, w.FenceCount)
	assert.True(t, s.BuildFence(w))
}

func TestEconomy_FenceNeedsCoins(t *testing.T) {
	w, d, _ := newTestWorld(t)
	s := NewEconomySystem(d)
	for i := 0; i < 4; i++ {
		s.BuildOrUpgradeTower(w)
	}
	w.Player.Coins = 19

	assert.False(t, s.BuildFence(w))
	assert.Equal(t, 19, w.Player.Coins)
}
