package system

import (
	"go-kingshot/internal/component"
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
)

// SpawnSystem выпускает врагов волны с заданным интервалом.
type SpawnSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{eventDispatcher: eventDispatcher}
}

func (s *SpawnSystem) Update(w *entity.World, deltaTime float64) {
	wave := &w.Wave
	if !wave.Active || wave.QuotaReached() {
		return
	}

	wave.SpawnTimer += deltaTime
	if wave.SpawnTimer >= wave.SpawnDelay {
		s.spawnEnemy(w)
		wave.Spawned++
		wave.SpawnTimer = 0
	}
}

func (s *SpawnSystem) spawnEnemy(w *entity.World) {
	rules := w.Rules.Enemy

	// При открытом втором пути чётные враги идут по первому, нечётные — по второму
	path := 0
	if w.Wave.SecondPath {
		path = w.Wave.Spawned % 2
	}

	w.Enemies = append(w.Enemies, component.Enemy{
		Position:     w.Path(path)[0],
		Radius:       rules.Radius,
		Active:       true,
		Speed:        w.Wave.EnemySpeed,
		Waypoint:     0,
		Stopped:      false,
		Path:         path,
		ContactTimer: 0,
		ContactLimit: rules.ContactLimit,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: path})
}
