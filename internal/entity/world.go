// internal/entity/world.go
package entity

import (
	"slices"

	"go-kingshot/internal/component"
	"go-kingshot/internal/defs"
	"go-kingshot/pkg/geom"
)

// World — единственный владелец всего изменяемого состояния симуляции.
// Системы получают его явно в Update и не хранят у себя.
//
// Сущности лежат в срезах и удаляются только в Compact, поэтому индексы
// стабильны в пределах кадра, но не между кадрами.
type World struct {
	GameTime float64

	// Статика уровня, не меняется после создания и переживает Reset.
	Rules defs.Rules
	Paths [][]geom.Vec3
	Base  geom.Vec3

	Enemies  []component.Enemy
	Missiles []component.Missile
	Towers   []component.Tower
	Fences   []component.Fence

	TowerCount int
	FenceCount int

	Wave        component.Wave
	State       component.GameState
	BaseContact component.BaseContact
	Player      component.Player
}

// NewWorld строит мир из уже проверенного уровня (см. defs.Level.Validate).
func NewWorld(level defs.Level) *World {
	w := &World{
		Rules: level.Rules,
		Paths: level.Waypoints(),
		Base:  level.Base.Vec(),
	}
	w.Player.Camera = component.CameraPose{
		Position: level.Camera.Position.Vec(),
		Target:   level.Camera.Target.Vec(),
	}
	w.Reset()
	return w
}

// Reset возвращает всё изменяемое состояние к началу партии.
// Пути, база, правила и камера сохраняются.
func (w *World) Reset() {
	w.GameTime = 0
	w.Enemies = nil
	w.Missiles = nil
	w.Towers = nil
	w.Fences = nil
	w.TowerCount = 0
	w.FenceCount = 0
	w.State = component.GameState{}
	w.BaseContact = component.BaseContact{}
	w.Player.Coins = w.Rules.StartingCoins
	w.Wave = component.Wave{
		Number:     1,
		MaxEnemies: w.Rules.Wave.MaxEnemies(1, false),
		SpawnDelay: w.Rules.Wave.SpawnDelay,
		Active:     true,
		EnemySpeed: w.Rules.Enemy.Speed,
	}
}

// Path возвращает точки пути с индексом i.
func (w *World) Path(i int) []geom.Vec3 {
	return w.Paths[i]
}

// LiveEnemies считает активных врагов.
func (w *World) LiveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Active {
			n++
		}
	}
	return n
}

// Compact убирает неактивные ракеты, врагов и заборы, сохраняя порядок
// оставшихся. Счётчик заборов уменьшается на число удалённых, освобождая слоты.
func (w *World) Compact() (removedFences int) {
	w.Missiles = slices.DeleteFunc(w.Missiles, func(m component.Missile) bool { return !m.Active })
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e component.Enemy) bool { return !e.Active })

	before := len(w.Fences)
	w.Fences = slices.DeleteFunc(w.Fences, func(f component.Fence) bool { return !f.Active })
	removedFences = before - len(w.Fences)
	w.FenceCount -= removedFences
	return removedFences
}

// Award начисляет монеты.
func (w *World) Award(coins int) {
	w.Player.Coins += coins
}

// Spend списывает монеты, если их хватает.
func (w *World) Spend(coins int) bool {
	if w.Player.Coins < coins {
		return false
	}
	w.Player.Coins -= coins
	return true
}
