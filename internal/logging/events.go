package logging

import (
	"github.com/rs/zerolog"

	"go-kingshot/internal/event"
)

// EventLogger пишет в лог вехи партии. Частые события (появление врага,
// выстрел) идут на уровне trace, чтобы не засорять обычный вывод.
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger creates an EventLogger and subscribes it to every simulation event.
func NewEventLogger(logger zerolog.Logger, dispatcher *event.Dispatcher) *EventLogger {
	l := &EventLogger{logger: logger.With().Str("component", "sim").Logger()}
	dispatcher.SubscribeAll(l, event.AllTypes...)
	return l
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.WaveData:
		l.logger.Info().Int("wave", data.Number).Int("enemies", data.MaxEnemies).Msg(string(e.Type))
	case event.TowerData:
		l.logger.Info().Int("tower", data.Index).Int("level", data.Level).Int("cost", data.Cost).Msg(string(e.Type))
	case event.FenceData:
		l.logger.Info().Int("cost", data.Cost).Msg(string(e.Type))
	case event.EnemyKilledData:
		l.logger.Debug().Str("cause", string(data.Cause)).Int("bounty", data.Bounty).Msg(string(e.Type))
	case event.MissileFiredData:
		l.logger.Trace().Stringer("source", data.Source).Msg(string(e.Type))
	case bool:
		l.logger.Info().Bool("paused", data).Msg(string(e.Type))
	case int:
		l.logger.Trace().Int("path", data).Msg(string(e.Type))
	default:
		l.logger.Info().Msg(string(e.Type))
	}
}
