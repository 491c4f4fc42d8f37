// internal/app/game.go
package app

import (
	"go-kingshot/internal/defs"
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
	"go-kingshot/internal/input"
	"go-kingshot/internal/system"
)

// Game holds the world and runs the simulation systems in a fixed order.
type Game struct {
	World           *entity.World
	EventDispatcher *event.Dispatcher

	StateSystem   *system.StateSystem
	WaveSystem    *system.WaveSystem
	SpawnSystem   *system.SpawnSystem
	EnemySystem   *system.EnemySystem
	FenceSystem   *system.FenceSystem
	TowerSystem   *system.TowerSystem
	MissileSystem *system.MissileSystem
	EconomySystem *system.EconomySystem
}

// NewGame initializes a new game instance. Слушатели (звук, логи, метрики)
// подписываются на eventDispatcher снаружи; nil означает собственный диспетчер.
func NewGame(level defs.Level, eventDispatcher *event.Dispatcher) *Game {
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}

	world := entity.NewWorld(level)
	g := &Game{
		World:           world,
		EventDispatcher: eventDispatcher,
		StateSystem:     system.NewStateSystem(eventDispatcher),
		WaveSystem:      system.NewWaveSystem(eventDispatcher),
		SpawnSystem:     system.NewSpawnSystem(eventDispatcher),
		FenceSystem:     system.NewFenceSystem(eventDispatcher),
		MissileSystem:   system.NewMissileSystem(eventDispatcher),
		EconomySystem:   system.NewEconomySystem(eventDispatcher),
	}
	g.EnemySystem = system.NewEnemySystem(eventDispatcher, g.StateSystem, g.FenceSystem)
	g.TowerSystem = system.NewTowerSystem(g.MissileSystem)

	return g
}

// Update продвигает игру на один кадр.
//
// Камера обновляется всегда, даже на паузе. Остальные команды и все системы
// работают, только пока игра не на паузе и не проиграна. Сброс выполняется
// в конце кадра и только после поражения.
func (g *Game) Update(deltaTime float64, cmds input.Commands) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	w := g.World

	if cmds.HasCamera {
		w.Player.Camera = cmds.Camera
	}
	if cmds.TogglePause {
		g.StateSystem.TogglePause(w)
	}

	if w.State.Running() {
		g.applyCommands(cmds)
		g.step(deltaTime)
	}

	if cmds.Reset && w.State.GameOver {
		g.Reset()
	}
}

// step — один проход симуляции. Порядок систем важен: каждая следующая
// видит изменения, сделанные предыдущими в этом же кадре.
func (g *Game) step(deltaTime float64) {
	w := g.World
	w.GameTime += deltaTime

	g.WaveSystem.Update(w, deltaTime)
	g.SpawnSystem.Update(w, deltaTime)
	g.EnemySystem.Update(w, deltaTime)
	g.FenceSystem.Update(w, deltaTime)
	g.TowerSystem.Update(w, deltaTime)
	g.MissileSystem.Update(w, deltaTime)
}

// Reset возвращает партию в начальное состояние, сохраняя пути и камеру.
func (g *Game) Reset() {
	g.StateSystem.Reset(g.World)
}

// IsGameOver reports whether the base has fallen.
func (g *Game) IsGameOver() bool {
	return g.World.State.GameOver
}

// IsPaused reports whether the simulation is paused.
func (g *Game) IsPaused() bool {
	return g.World.State.Paused
}

// GetGameTime returns simulated seconds since the last reset.
func (g *Game) GetGameTime() float64 {
	return g.World.GameTime
}
