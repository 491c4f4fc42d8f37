package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings — параметры запуска, которые можно поменять без пересборки.
type Settings struct {
	WindowWidth  int
	WindowHeight int
	FPS          int

	LogLevel  string
	LogPretty bool
	LogFile   string // пусто — stderr

	AudioEnabled bool
	AudioVolume  float64 // 0..1

	PprofAddr    string // пусто — профилировщик выключен
	LevelFile    string // пусто — встроенный уровень
	MaxDeltaTime float64
}

// Load reads kingshot.{yaml,json,toml} from configDir on top of the defaults.
// KINGSHOT_* environment variables override both (KINGSHOT_LOG_LEVEL -> log.level).
// A missing file is not an error.
func Load(configDir string) (Settings, error) {
	viper.SetDefault("window.width", ScreenWidth)
	viper.SetDefault("window.height", ScreenHeight)
	viper.SetDefault("window.fps", TargetFPS)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)
	viper.SetDefault("log.file", "")

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.5)

	viper.SetDefault("debug.pprofAddr", "")
	viper.SetDefault("level.file", "")
	viper.SetDefault("sim.maxDeltaTime", MaxDeltaTime)

	viper.SetConfigName("kingshot")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("KINGSHOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	s := Settings{
		WindowWidth:  viper.GetInt("window.width"),
		WindowHeight: viper.GetInt("window.height"),
		FPS:          viper.GetInt("window.fps"),
		LogLevel:     viper.GetString("log.level"),
		LogPretty:    viper.GetBool("log.pretty"),
		LogFile:      viper.GetString("log.file"),
		AudioEnabled: viper.GetBool("audio.enabled"),
		AudioVolume:  viper.GetFloat64("audio.volume"),
		PprofAddr:    viper.GetString("debug.pprofAddr"),
		LevelFile:    viper.GetString("level.file"),
		MaxDeltaTime: viper.GetFloat64("sim.maxDeltaTime"),
	}
	if s.MaxDeltaTime <= 0 {
		s.MaxDeltaTime = MaxDeltaTime
	}
	s.AudioVolume = min(1, max(0, s.AudioVolume))

	return s, nil
}

// ClampDelta режет время кадра сверху до MaxDeltaTime и снизу до нуля.
func (s Settings) ClampDelta(deltaTime float64) float64 {
	if deltaTime > s.MaxDeltaTime {
		return s.MaxDeltaTime
	}
	if deltaTime < 0 {
		return 0
	}
	return deltaTime
}
