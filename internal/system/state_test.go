package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-kingshot/internal/event"
)

func TestStateSystem_TogglePause(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewStateSystem(d)

	s.TogglePause(w)
	assert.True(t, w.State.Paused)
	assert.False(t, w.State.Running())

	s.TogglePause(w)
	assert.False(t, w.State.Paused)
	assert.Equal(t, 2, r.count(event.PauseToggled))
}

func TestStateSystem_PauseIgnoredAfterGameOver(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewStateSystem(d)

	s.EndGame(w)
	s.TogglePause(w)

	assert.False(t, w.State.Paused)
	assert.Zero(t, r.count(event.PauseToggled))
}

func TestStateSystem_EndGameOnce(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewStateSystem(d)

	s.EndGame(w)
	s.EndGame(w)

	assert.True(t, w.State.GameOver)
	assert.Equal(t, 1, r.count(event.GameOver))
	assert.Equal(t, event.WaveData{Number: 1, MaxEnemies: 15}, r.last(t, event.GameOver).Data)
}

func TestStateSystem_Reset(t *testing.T) {
	w, d, r := newTestWorld(t)
	s := NewStateSystem(d)
	w.Player.Coins = 5
	s.EndGame(w)

	s.Reset(w)

	assert.False(t, w.State.GameOver)
	assert.Equal(t, 1000, w.Player.Coins)
	assert.Equal(t, 1, r.count(event.GameReset))
}
