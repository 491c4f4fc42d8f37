package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kingshot/pkg/geom"
)

func TestDefaultLevelIsValid(t *testing.T) {
	level := DefaultLevel()
	require.NoError(t, level.Validate())
	assert.Len(t, level.Paths, 2)
	assert.Equal(t, geom.V(-15, 0.1, -10), level.Waypoints()[0][0])
	assert.Equal(t, geom.V(15, 0.1, -10), level.Waypoints()[1][0])
}

func TestLoadLevel_MissingFileReturnsDefaults(t *testing.T) {
	level, err := LoadLevel(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel(), level)
}

func TestLoadLevel_OverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	content := `
name: crater
paths:
  - [{x: -20, y: 0.1, z: 0}, {x: 0, y: 0.1, z: 0}]
  - [{x: 20, y: 0.1, z: 0}, {x: 0, y: 0.1, z: 0}]
rules:
  starting_coins: 200
  tower:
    cost: 75
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	level, err := LoadLevel(path)
	require.NoError(t, err)

	assert.Equal(t, "crater", level.Name)
	assert.Equal(t, 200, level.Rules.StartingCoins)
	assert.Equal(t, 75, level.Rules.Tower.Cost)
	// untouched fields keep their defaults
	assert.Equal(t, 4, level.Rules.Tower.Max)
	assert.Equal(t, 7.0, level.Rules.Tower.Range)
	assert.Equal(t, 3.0, level.Rules.Enemy.Speed)
	require.Len(t, level.Paths, 2)
	assert.Len(t, level.Paths[0], 2)
}

func TestParseLevel_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"no paths", "paths: []", ErrNoPaths},
		{"empty path", "paths: [[], [{x: 1}]]", ErrEmptyPath},
		{"second path missing", "paths: [[{x: 1}]]", ErrBadRules},
		{"bad spawn delay", "rules: {wave: {spawn_delay: 0}}", ErrBadRules},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := DefaultLevel()
			err := ParseLevel([]byte(tt.yaml), &level)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseLevel_SinglePathWithoutSecondWave(t *testing.T) {
	level := DefaultLevel()
	err := ParseLevel([]byte("paths: [[{x: 1}]]\nrules: {wave: {second_path_wave: 0}}"), &level)
	assert.NoError(t, err)
}

func TestWaveRules(t *testing.T) {
	r := DefaultRules().Wave
	assert.Equal(t, 15, r.MaxEnemies(1, false))
	assert.Equal(t, 20, r.MaxEnemies(2, false))
	assert.Equal(t, 70, r.MaxEnemies(10, true))

	assert.InDelta(t, 0.9, r.NextSpawnDelay(1.0), 1e-9)
	assert.Equal(t, 0.3, r.NextSpawnDelay(0.35))
	assert.Equal(t, 0.3, r.NextSpawnDelay(0.3))
}

func TestEnemyRules_NextSpeed(t *testing.T) {
	r := DefaultRules().Enemy
	assert.InDelta(t, 3.2, r.NextSpeed(3.0), 1e-9)
	assert.Equal(t, 7.0, r.NextSpeed(6.9))
	assert.Equal(t, 7.0, r.NextSpeed(7.0))
}

func TestTowerSlots(t *testing.T) {
	r := DefaultRules().Tower
	base := geom.V(0, 0.1, 0)

	start, end := r.Slot(base, 0)
	assert.Equal(t, geom.V(-3, 0.1, -2), start)
	assert.Equal(t, geom.V(-3, 0.1, 2), end)

	start, end = r.Slot(base, 1)
	assert.Equal(t, geom.V(3.375, 0.1, -2), start)
	assert.Equal(t, geom.V(3.375, 0.1, 2), end)

	start, end = r.Slot(base, 2)
	assert.Equal(t, geom.V(-2, 0.1, 3.75), start)
	assert.Equal(t, geom.V(2, 0.1, 3.75), end)

	start, end = r.Slot(base, 3)
	assert.Equal(t, geom.V(-2, 0.1, -4.125), start)
	assert.Equal(t, geom.V(2, 0.1, -4.125), end)
}

func TestTowerCooldowns(t *testing.T) {
	r := DefaultRules().Tower
	assert.Equal(t, 3.5, r.CooldownFor(0))
	assert.Equal(t, 2.0, r.CooldownFor(3))
	assert.Equal(t, 0.5, r.UpgradedCooldown(0.7))
	assert.Equal(t, 2.5, r.UpgradedCooldown(3.0))
}

func TestFenceSlots(t *testing.T) {
	r := DefaultRules().Tower
	base := geom.V(0, 0.1, 0)

	start, _ := FenceSlot(r, base, 4, 0)
	assert.InDelta(t, -3.0, start.X(), 1e-9)

	start, _ = FenceSlot(r, base, 4, 1)
	assert.InDelta(t, 4.5/1.3, start.X(), 1e-9)

	start, end := FenceSlot(r, base, 4, 2)
	assert.InDelta(t, 3.7, start.Z(), 1e-9)
	assert.InDelta(t, 3.7, end.Z(), 1e-9)

	start, _ = FenceSlot(r, base, 4, 3)
	assert.InDelta(t, -4.1, start.Z(), 1e-9)
}
