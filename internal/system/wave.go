// internal/system/wave.go
package system

import (
	"go-kingshot/internal/entity"
	"go-kingshot/internal/event"
)

// WaveSystem ведёт номер волны, квоту и рост сложности.
type WaveSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{eventDispatcher: eventDispatcher}
}

func (s *WaveSystem) Update(w *entity.World, deltaTime float64) {
	rules := w.Rules.Wave
	wave := &w.Wave

	// Второй путь открывается один раз и навсегда
	if rules.SecondPathWave > 0 && wave.Number >= rules.SecondPathWave && !wave.SecondPath {
		wave.SecondPath = true
		wave.MaxEnemies = rules.MaxEnemies(wave.Number, true)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.SecondPathOpened,
			Data: event.WaveData{Number: wave.Number, MaxEnemies: wave.MaxEnemies},
		})
	}

	// Волна заканчивается, только когда выпущены все враги И живых не осталось
	if wave.Active && wave.QuotaReached() && w.LiveEnemies() == 0 {
		wave.Active = false
		wave.DelayTimer = 0
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WaveData{Number: wave.Number, MaxEnemies: wave.MaxEnemies},
		})
	}

	if !wave.Active {
		wave.DelayTimer += deltaTime
		if wave.DelayTimer >= rules.WaveDelay {
			s.startNextWave(w)
		}
	}
}

// startNextWave усложняет игру. Новая скорость достаётся только тем врагам,
// которые появятся после этого, живые не ускоряются.
func (s *WaveSystem) startNextWave(w *entity.World) {
	rules := w.Rules
	wave := &w.Wave

	wave.Number++
	wave.SpawnDelay = rules.Wave.NextSpawnDelay(wave.SpawnDelay)
	wave.EnemySpeed = rules.Enemy.NextSpeed(wave.EnemySpeed)
	wave.MaxEnemies = rules.Wave.MaxEnemies(wave.Number, wave.SecondPath)
	wave.Spawned = 0
	wave.Active = true

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: wave.Number, MaxEnemies: wave.MaxEnemies},
	})
}

// Countdown — сколько секунд осталось до следующей волны; 0, пока волна идёт.
func Countdown(w *entity.World) float64 {
	if w.Wave.Active {
		return 0
	}
	left := w.Rules.Wave.WaveDelay - w.Wave.DelayTimer
	if left < 0 {
		return 0
	}
	return left
}
