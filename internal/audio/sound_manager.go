package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-kingshot/internal/event"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays short effects in response to simulation events.
// Пока Initialize не вызван (или устройство не открылось), всё молча игнорируется.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Subscribe registers the manager for every event it has a sound for.
func (sm *SoundManager) Subscribe(dispatcher *event.Dispatcher) {
	dispatcher.SubscribeAll(sm,
		event.MissileFired, event.EnemyKilled,
		event.TowerBuilt, event.TowerUpgraded, event.FenceBuilt, event.FenceDestroyed,
		event.WaveStarted, event.GameOver,
	)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	sm.Play(SoundFor(e))
}

// Play mixes the effect into the output. No-op before Initialize.
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sound == SoundNone {
		return
	}
	s := NewSound(sound, sm.volume, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SoundFor picks the effect for a simulation event.
func SoundFor(e event.Event) SoundType {
	switch e.Type {
	case event.MissileFired:
		return SoundShot
	case event.EnemyKilled:
		return SoundKill
	case event.TowerBuilt, event.FenceBuilt:
		return SoundBuild
	case event.TowerUpgraded:
		return SoundUpgrade
	case event.FenceDestroyed:
		return SoundFenceBreak
	case event.WaveStarted:
		return SoundWave
	case event.GameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}
