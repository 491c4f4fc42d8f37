package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kingshot/internal/component"
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
	"go-kingshot/pkg/geom"
)

// towerAt ставит вырожденную башню: обе турели в одной точке (0, 1.1, 0).
func towerAt(w *entity.World, level int) component.Tower {
	p := geom.V(0, 0.1, 0)
	return component.Tower{
		Start:  p,
		End:    p,
		Active: true,
		Range:  w.Rules.Tower.Range,
		Level:  level,
	}
}

func TestTowerSystem_IgnoresEnemyOutOfRange(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewTowerSystem(NewMissileSystem(d))
	w.Towers = []component.Tower{towerAt(w, 0)}
	w.Enemies = []component.Enemy{{Active: true, Radius: 0.5, Position: geom.V(0, 1.1, 8)}}

	s.Update(w, 0.1)

	assert.Empty(t, w.Missiles)
	assert.Zero(t, r.count(event.MissileFired))
	assert.Equal(t, 3.5, w.Towers[0].Cooldown, "cooldown resets even without a target")
}

func TestTowerSystem_FiresFromBothTurrets(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewTowerSystem(NewMissileSystem(d))
	w.Towers = []component.Tower{towerAt(w, 0)}
	w.Enemies = []component.Enemy{{Active: true, Radius: 0.5, Position: geom.V(0, 1.1, 6.5)}}

	s.Update(w, 0.1)

	require.Len(t, w.Missiles, 2)
	for _, m := range w.Missiles {
		assert.Equal(t, geom.V(0, 1.1, 0), m.Position)
		assert.InDelta(t, 1.0, m.Direction.Z(), 1e-9)
		assert.Equal(t, component.SourceTurret, m.Source)
		assert.Equal(t, 40.0, m.Speed)
		assert.Equal(t, 2.0, m.Lifetime)
	}
	assert.Equal(t, 2, r.count(event.MissileFired))
}

func TestTowerSystem_WaitsForCooldown(t *testing.T) {
	w, d, _ := newTestWorld(t)
	s := NewTowerSystem(NewMissileSystem(d))
	tower := towerAt(w, 2)
	tower.Cooldown = 1.0
	w.Towers = []component.Tower{tower}
	w.Enemies = []component.Enemy{{Active: true, Radius: 0.5, Position: geom.V(0, 1.1, 3)}}

	s.Update(w, 0.5)
	assert.Empty(t, w.Missiles)
	assert.Equal(t, 0.5, w.Towers[0].Cooldown)

	s.Update(w, 0.5)
	assert.Len(t, w.Missiles, 2)
	assert.Equal(t, 2.5, w.Towers[0].Cooldown)
}

func TestTowerSystem_TargetsNearestEnemy(t *testing.T) {
	w, d, _ := newTestWorld(t)
	s := NewTowerSystem(NewMissileSystem(d))
	w.Towers = []component.Tower{towerAt(w, 0)}
	w.Enemies = []component.Enemy{
		{Active: true, Position: geom.V(5, 1.1, 0)},
		{Active: false, Position: geom.V(0, 1.1, 1)},
		{Active: true, Position: geom.V(0, 1.1, -2)},
	}

	s.Update(w, 0.1)

	require.NotEmpty(t, w.Missiles)
	assert.InDelta(t, -1.0, w.Missiles[0].Direction.Z(), 1e-9)
}

func TestTowerSystem_SkipsInactiveTowers(t *testing.T) {
	w, d, _ := newTestWorld(t)
	s := NewTowerSystem(NewMissileSystem(d))
	tower := towerAt(w, 0)
	tower.Active = false
	w.Towers = []component.Tower{tower}
	w.Enemies = []component.Enemy{{Active: true, Position: geom.V(0, 1.1, 1)}}

	s.Update(w, 0.1)
	assert.Empty(t, w.Missiles)
}
