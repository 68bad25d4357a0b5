package config //nolint:testpackage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "info", config.LogLevel)
	require.Equal(t, "tic-tac-toe", config.Game)
	require.Equal(t, "user", config.PlayerOne)
	require.Equal(t, "medium", config.PlayerTwo)
	require.EqualValues(t, 0, config.Seed)
	require.False(t, config.Parallel)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `log-level: debug
game: reversi
player-one: easy
player-two: nightmare
seed: 42
parallel: true
`)

	config, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "debug", config.LogLevel)
	require.Equal(t, "reversi", config.Game)
	require.Equal(t, "easy", config.PlayerOne)
	require.Equal(t, "nightmare", config.PlayerTwo)
	require.EqualValues(t, 42, config.Seed)
	require.True(t, config.Parallel)
}

func TestLoadEnvironmentWins(t *testing.T) {
	t.Setenv("SQUARES_GAME", "reversi")
	t.Setenv("SQUARES_SEED", "7")

	path := writeConfigFile(t, "game: tic-tac-toe\nseed: 1\n")

	config, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "reversi", config.Game)
	require.EqualValues(t, 7, config.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorContains(t, err, "loading config file")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn uppercase", level: "WARN"},
		{name: "error mixed case", level: "Error"},
		{name: "unknown", level: "verbose", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := SetLogLevel(test.level)
			if test.wantErr {
				require.ErrorContains(t, err, "invalid log level")
				return
			}
			require.NoError(t, err)
		})
	}
}
