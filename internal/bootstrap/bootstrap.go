// Package bootstrap собирает общее для всех бинарников окружение:
// настройки, логгер, уровень, диспетчер событий и его подписчиков.
package bootstrap

import (
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/rs/zerolog"

	"go-kingshot/internal/app"
	"go-kingshot/internal/audio"
	"go-kingshot/internal/config"
	"go-kingshot/internal/defs"
	"go-kingshot/internal/event"
	"go-kingshot/internal/interfaces"
	"go-kingshot/internal/logging"
	"go-kingshot/internal/telemetry"
)

type Env struct {
	Settings   config.Settings
	Logger     zerolog.Logger
	Level      defs.Level
	Dispatcher *event.Dispatcher
	Metrics    *telemetry.Metrics
	Sound      *audio.SoundManager // nil, если звук выключен или устройство не открылось

	logFile *os.File
}

// Setup loads settings from configDir and wires logging, metrics and audio
// onto a fresh dispatcher. defaultLog receives logs unless log.file is set.
func Setup(configDir string, defaultLog io.Writer) (*Env, error) {
	settings, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	env := &Env{Settings: settings, Dispatcher: event.NewDispatcher()}

	out := defaultLog
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", settings.LogFile, err)
		}
		env.logFile = f
		out = f
	}
	env.Logger = logging.New(settings.LogLevel, settings.LogPretty && env.logFile == nil, out)

	env.Level = defs.DefaultLevel()
	if settings.LevelFile != "" {
		env.Level, err = defs.LoadLevel(settings.LevelFile)
		if err != nil {
			env.Close()
			return nil, err
		}
		env.Logger.Info().Str("file", settings.LevelFile).Str("level", env.Level.Name).Msg("level loaded")
	}

	logging.NewEventLogger(env.Logger, env.Dispatcher)

	env.Metrics, err = telemetry.New()
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}
	env.Metrics.Subscribe(env.Dispatcher)

	if settings.AudioEnabled {
		sound := audio.NewSoundManager(settings.AudioVolume)
		if err := sound.Initialize(); err != nil {
			// без звука играть можно
			env.Logger.Warn().Err(err).Msg("audio disabled")
		} else {
			sound.Subscribe(env.Dispatcher)
			env.Sound = sound
		}
	}

	return env, nil
}

// NewGame creates a game on the loaded level sharing the environment's dispatcher.
func (e *Env) NewGame() interfaces.GameContext {
	e.Logger.Info().Str("level", e.Level.Name).Msg("new game")
	return app.NewGame(e.Level, e.Dispatcher)
}

// StartPprof serves net/http/pprof on the configured address, if any.
func (e *Env) StartPprof() {
	addr := e.Settings.PprofAddr
	if addr == "" {
		return
	}
	go func() {
		e.Logger.Info().Str("addr", addr).Msg("pprof listening")
		if err := http.ListenAndServe(addr, nil); err != nil {
			e.Logger.Error().Err(err).Msg("pprof stopped")
		}
	}()
}

// Close releases audio and the log file.
func (e *Env) Close() {
	if e.Sound != nil {
		e.Sound.Cleanup()
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}
