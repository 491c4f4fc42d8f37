package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kingshot/internal/input"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kingshot.yaml"), []byte(content), 0o644))
}

func TestSetup_LogsGameEvents(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	writeConfig(t, dir, "audio:\n  enabled: false\nlog:\n  pretty: false\n")

	var buf bytes.Buffer
	env, err := Setup(dir, &buf)
	require.NoError(t, err)
	defer env.Close()

	assert.Nil(t, env.Sound)
	assert.Equal(t, "moon", env.Level.Name)

	game := env.NewGame()
	game.Update(0, input.Commands{BuildTower: true})

	assert.Contains(t, buf.String(), `"message":"TowerBuilt"`)
	assert.Contains(t, buf.String(), `"app":"kingshot"`)
}

func TestSetup_LevelAndLogFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	levelPath := filepath.Join(dir, "crater.yaml")
	logPath := filepath.Join(dir, "kingshot.log")
	require.NoError(t, os.WriteFile(levelPath, []byte("name: crater\nrules: {starting_coins: 200}\n"), 0o644))
	writeConfig(t, dir, "audio:\n  enabled: false\nlevel:\n  file: "+levelPath+"\nlog:\n  file: "+logPath+"\n")

	var buf bytes.Buffer
	env, err := Setup(dir, &buf)
	require.NoError(t, err)

	assert.Equal(t, "crater", env.Level.Name)
	assert.Equal(t, 200, env.NewGame().Snapshot().Coins)
	env.Close()

	assert.Empty(t, buf.String(), "logs go to the file")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level loaded")
}

func TestSetup_BadLevel(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	levelPath := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(levelPath, []byte("paths: []"), 0o644))
	writeConfig(t, dir, "audio:\n  enabled: false\nlevel:\n  file: "+levelPath+"\n")

	_, err := Setup(dir, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse level file")
}
