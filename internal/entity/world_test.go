package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kingshot/internal/component"
	"go-kingshot/internal/defs"
	"go-kingshot/pkg/geom"
)

func TestNewWorld_InitialState(t *testing.T) {
	w := NewWorld(defs.DefaultLevel())

	assert.Equal(t, 1000, w.Player.Coins)
	assert.Equal(t, 1, w.Wave.Number)
	assert.Equal(t, 15, w.Wave.MaxEnemies)
	assert.Equal(t, 1.0, w.Wave.SpawnDelay)
	assert.Equal(t, 3.0, w.Wave.EnemySpeed)
	assert.True(t, w.Wave.Active)
	assert.False(t, w.Wave.SecondPath)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Missiles)
	assert.Empty(t, w.Towers)
	assert.Empty(t, w.Fences)
	assert.True(t, w.State.Running())
	assert.Equal(t, geom.V(0, 0.1, 0), w.Base)
	require.Len(t, w.Paths, 2)
	assert.Equal(t, geom.V(0, 5, -10), w.Player.Camera.Position)
}

func TestWorld_ResetPreservesStaticSetup(t *testing.T) {
	w := NewWorld(defs.DefaultLevel())
	paths := w.Paths
	w.Player.Camera.Position = geom.V(1, 2, 3)

	w.Player.Coins = 3
	w.Wave.Number = 12
	w.Wave.SecondPath = true
	w.Enemies = append(w.Enemies, component.Enemy{Active: true})
	w.Towers = append(w.Towers, component.Tower{Active: true})
	w.TowerCount = 1
	w.State.GameOver = true
	w.BaseContact.Timer = 2

	w.Reset()

	assert.Equal(t, 1000, w.Player.Coins)
	assert.Equal(t, 1, w.Wave.Number)
	assert.False(t, w.Wave.SecondPath)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Towers)
	assert.Zero(t, w.TowerCount)
	assert.False(t, w.State.GameOver)
	assert.Zero(t, w.BaseContact.Timer)
	assert.Equal(t, paths, w.Paths)
	assert.Equal(t, geom.V(1, 2, 3), w.Player.Camera.Position)
}

func TestWorld_ResetIsIdempotent(t *testing.T) {
	w := NewWorld(defs.DefaultLevel())
	w.Player.Coins = 7
	w.State.GameOver = true

	w.Reset()
	first := *w
	w.Reset()

	assert.Equal(t, first, *w)
}

func TestWorld_Compact(t *testing.T) {
	w := NewWorld(defs.DefaultLevel())
	w.Enemies = []component.Enemy{
		{Active: true, Path: 0},
		{Active: false, Path: 1},
		{Active: true, Path: 2},
	}
	w.Missiles = []component.Missile{{Active: false}, {Active: true, Speed: 5}}
	w.Fences = []component.Fence{{Active: false}, {Active: true}, {Active: false}}
	w.FenceCount = 3

	removed := w.Compact()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, w.FenceCount)
	require.Len(t, w.Enemies, 2)
	assert.Equal(t, 0, w.Enemies[0].Path, "order is stable")
	assert.Equal(t, 2, w.Enemies[1].Path)
	require.Len(t, w.Missiles, 1)
	assert.Equal(t, 5.0, w.Missiles[0].Speed)
	assert.Len(t, w.Fences, 1)
}

func TestWorld_LiveEnemies(t *testing.T) {
	w := NewWorld(defs.DefaultLevel())
	w.Enemies = []component.Enemy{{Active: true}, {Active: false}, {Active: true}}
	assert.Equal(t, 2, w.LiveEnemies())
}

func TestWorld_SpendAndAward(t *testing.T) {
	w := NewWorld(defs.DefaultLevel())
	w.Player.Coins = 40

	assert.False(t, w.Spend(50))
	assert.Equal(t, 40, w.Player.Coins)

	assert.True(t, w.Spend(40))
	assert.Zero(t, w.Player.Coins)

	w.Award(1)
	assert.Equal(t, 1, w.Player.Coins)
}
