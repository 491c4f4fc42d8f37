package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kingshot/internal/component"
	"go-kingshot/internal/event"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", false, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Int("wave", 3).Msg("shown")

	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "shown", got[0]["message"])
	assert.Equal(t, "kingshot", got[0]["app"])
	assert.EqualValues(t, 3, got[0]["wave"])
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", true, &buf)
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestEventLogger(t *testing.T) {
	var buf bytes.Buffer
	d := event.NewDispatcher()
	NewEventLogger(New("debug", false, &buf), d)

	d.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 2, MaxEnemies: 20}})
	d.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{Index: 1, Level: 2, Cost: 50}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Cause: event.KilledByFence, Bounty: 1}})
	d.Dispatch(event.Event{Type: event.MissileFired, Data: event.MissileFiredData{Source: component.SourcePlayer}})
	d.Dispatch(event.Event{Type: event.GameReset})

	got := lines(t, &buf)
	require.Len(t, got, 4, "trace-level missile log is filtered out")
	assert.Equal(t, "WaveStarted", got[0]["message"])
	assert.EqualValues(t, 2, got[0]["wave"])
	assert.EqualValues(t, 2, got[1]["level"])
	assert.Equal(t, "fence", got[2]["cause"])
	assert.Equal(t, "sim", got[3]["component"])
	assert.Equal(t, "GameReset", got[3]["message"])
}
