package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"go-kingshot/internal/component"
	"go-kingshot/internal/event"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader, *event.Dispatcher) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewWithMeter(provider.Meter(instrumentationName))
	require.NoError(t, err)
	d := event.NewDispatcher()
	m.Subscribe(d)
	return m, reader, d
}

// sums собирает суммы по имени метрики и набору атрибутов.
func sums(t *testing.T, reader *sdkmetric.ManualReader) map[string]map[attribute.Distinct]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]map[attribute.Distinct]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			out[m.Name] = make(map[attribute.Distinct]int64)
			for _, dp := range sum.DataPoints {
				out[m.Name][dp.Attributes.Equivalent()] = dp.Value
			}
		}
	}
	return out
}

func attrs(kv ...attribute.KeyValue) attribute.Distinct {
	set := attribute.NewSet(kv...)
	return set.Equivalent()
}

func TestMetrics_CountsEvents(t *testing.T) {
	_, reader, d := newTestMetrics(t)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Cause: event.KilledByMissile, Bounty: 1}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Cause: event.KilledByMissile, Bounty: 1}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Cause: event.KilledByFence, Bounty: 1}})
	d.Dispatch(event.Event{Type: event.MissileFired, Data: event.MissileFiredData{Source: component.SourceTurret}})
	d.Dispatch(event.Event{Type: event.TowerBuilt, Data: event.TowerData{Cost: 50}})
	d.Dispatch(event.Event{Type: event.FenceBuilt, Data: event.FenceData{Cost: 20}})
	d.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Number: 1}})

	got := sums(t, reader)
	assert.Equal(t, int64(2), got["kingshot.enemies.killed"][attrs(attribute.String("cause", "missile"))])
	assert.Equal(t, int64(1), got["kingshot.enemies.killed"][attrs(attribute.String("cause", "fence"))])
	assert.Equal(t, int64(1), got["kingshot.missiles.fired"][attrs(attribute.String("source", "turret"))])
	assert.Equal(t, int64(50), got["kingshot.coins.spent"][attrs(attribute.String("item", "tower"))])
	assert.Equal(t, int64(20), got["kingshot.coins.spent"][attrs(attribute.String("item", "fence"))])
	assert.Equal(t, int64(1), got["kingshot.waves.completed"][attrs()])
}

func TestMetrics_CurrentWave(t *testing.T) {
	_, reader, d := newTestMetrics(t)

	assert.Equal(t, int64(1), sums(t, reader)["kingshot.wave.current"][attrs()])

	d.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 4}})
	assert.Equal(t, int64(4), sums(t, reader)["kingshot.wave.current"][attrs()])

	d.Dispatch(event.Event{Type: event.GameReset})
	assert.Equal(t, int64(1), sums(t, reader)["kingshot.wave.current"][attrs()])
}

func TestNew_GlobalMeter(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		m.OnEvent(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Cause: event.KilledByFence}})
	})
}
