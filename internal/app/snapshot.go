package app

import (
	"slices"

	"go-kingshot/internal/component"
	"go-kingshot/internal/system"
	"go-kingshot/pkg/geom"
)

// Snapshot — копия состояния для отрисовки. Фронтенды читают только её
// и не трогают мир напрямую.
type Snapshot struct {
	Camera component.CameraPose
	Base   geom.Vec3
	Paths  [][]geom.Vec3

	Enemies  []component.Enemy
	Missiles []component.Missile
	Towers   []component.Tower
	Fences   []component.Fence

	Coins      int
	Wave       int
	Remaining  int     // врагов волны ещё не появилось
	Countdown  float64 // до следующей волны, 0 пока волна идёт
	WaveActive bool
	SecondPath bool
	BaseLife   float64 // 1 — база цела, 0 — поражение

	TowerCount    int
	FenceCount    int
	MaxTowers     int
	MaxFences     int
	TowerCost     int
	FenceCost     int
	CanBuyTower   bool
	CanBuyFence   bool
	MaxTowerLevel int
	TurretHeight  float64

	Paused   bool
	GameOver bool
	GameTime float64
}

// Snapshot собирает снимок текущего кадра.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	rules := w.Rules

	baseLife := 1.0
	if limit := rules.Base.ContactLimit; limit > 0 {
		baseLife = 1 - w.BaseContact.Timer/limit
		baseLife = max(0, min(1, baseLife))
	}

	return Snapshot{
		Camera:        w.Player.Camera,
		Base:          w.Base,
		Paths:         w.Paths,
		Enemies:       activeOnly(w.Enemies, func(e component.Enemy) bool { return e.Active }),
		Missiles:      activeOnly(w.Missiles, func(m component.Missile) bool { return m.Active }),
		Towers:        slices.Clone(w.Towers),
		Fences:        activeOnly(w.Fences, func(f component.Fence) bool { return f.Active }),
		Coins:         w.Player.Coins,
		Wave:          w.Wave.Number,
		Remaining:     w.Wave.Remaining(),
		Countdown:     system.Countdown(w),
		WaveActive:    w.Wave.Active,
		SecondPath:    w.Wave.SecondPath,
		BaseLife:      baseLife,
		TowerCount:    w.TowerCount,
		FenceCount:    w.FenceCount,
		MaxTowers:     rules.Tower.Max,
		MaxFences:     rules.Fence.Max,
		TowerCost:     rules.Tower.Cost,
		FenceCost:     rules.Fence.Cost,
		CanBuyTower:   g.CanPlaceTower(),
		CanBuyFence:   g.CanPlaceFence(),
		MaxTowerLevel: rules.Tower.MaxLevel,
		TurretHeight:  rules.Tower.TurretHeight,
		Paused:        w.State.Paused,
		GameOver:      w.State.GameOver,
		GameTime:      w.GameTime,
	}
}

func activeOnly[T any](items []T, active func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if active(item) {
			out = append(out, item)
		}
	}
	return out
}
