package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"go-kingshot/internal/event"
)

const instrumentationName = "go-kingshot/internal/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics переводит события симуляции в счётчики OpenTelemetry.
// Без настроенного провайдера глобальный meter — noop, и запись ничего не стоит.
type Metrics struct {
	enemiesKilled  metric.Int64Counter
	missilesFired  metric.Int64Counter
	wavesCompleted metric.Int64Counter
	coinsSpent     metric.Int64Counter
	currentWave    metric.Int64UpDownCounter

	wave int64 // последнее записанное значение currentWave
}

// New creates the instruments on the global meter.
func New() (*Metrics, error) {
	return NewWithMeter(meter())
}

// NewWithMeter creates the instruments on m.
func NewWithMeter(m metric.Meter) (*Metrics, error) {
	var (
		mt   Metrics
		err  error
		errs []error
	)

	mt.enemiesKilled, err = m.Int64Counter("kingshot.enemies.killed",
		metric.WithDescription("Enemies killed, by cause"))
	errs = append(errs, err)

	mt.missilesFired, err = m.Int64Counter("kingshot.missiles.fired",
		metric.WithDescription("Missiles launched, by source"))
	errs = append(errs, err)

	mt.wavesCompleted, err = m.Int64Counter("kingshot.waves.completed",
		metric.WithDescription("Waves cleared"))
	errs = append(errs, err)

	mt.coinsSpent, err = m.Int64Counter("kingshot.coins.spent",
		metric.WithDescription("Coins spent on towers, upgrades and fences"),
		metric.WithUnit("{coin}"))
	errs = append(errs, err)

	mt.currentWave, err = m.Int64UpDownCounter("kingshot.wave.current",
		metric.WithDescription("Current wave number"))
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &mt, nil
}

// Subscribe registers the metrics listener on the dispatcher.
func (m *Metrics) Subscribe(dispatcher *event.Dispatcher) {
	dispatcher.SubscribeAll(m,
		event.EnemyKilled, event.MissileFired, event.WaveEnded, event.WaveStarted,
		event.TowerBuilt, event.TowerUpgraded, event.FenceBuilt, event.GameReset,
	)
	m.setWave(1)
}

func (m *Metrics) OnEvent(e event.Event) {
	ctx := context.Background()
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		m.enemiesKilled.Add(ctx, 1, metric.WithAttributes(attribute.String("cause", string(data.Cause))))
	case event.MissileFiredData:
		m.missilesFired.Add(ctx, 1, metric.WithAttributes(attribute.String("source", data.Source.String())))
	case event.TowerData:
		m.coinsSpent.Add(ctx, int64(data.Cost), metric.WithAttributes(attribute.String("item", itemName(e.Type))))
	case event.FenceData:
		m.coinsSpent.Add(ctx, int64(data.Cost), metric.WithAttributes(attribute.String("item", "fence")))
	case event.WaveData:
		switch e.Type {
		case event.WaveEnded:
			m.wavesCompleted.Add(ctx, 1)
		case event.WaveStarted:
			m.setWave(int64(data.Number))
		}
	default:
		if e.Type == event.GameReset {
			m.setWave(1)
		}
	}
}

// setWave переводит счётчик в абсолютное значение через разницу.
func (m *Metrics) setWave(n int64) {
	if delta := n - m.wave; delta != 0 {
		m.currentWave.Add(context.Background(), delta)
		m.wave = n
	}
}

func itemName(t event.EventType) string {
	if t == event.TowerUpgraded {
		return "upgrade"
	}
	return "tower"
}
