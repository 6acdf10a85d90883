package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SvenDH/go-card-board/board"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, board.DefaultConfig(), cfg.Board)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 5, cfg.Game.HandSize)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "cardboard.db", cfg.Store.Path)
}

func TestFileEnvAndFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
board:
  field_capacity: 3
  hand_spacing: 80
game:
  player: Alice
  seed: 42
`), 0o644))
	t.Setenv("CARDBOARD_GAME_OPPONENT", "Bob")
	t.Setenv("CARDBOARD_BOARD_HAND_SPACING", "90")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("deck", "", "")
	require.NoError(t, flags.Parse([]string{"--deck", "aggro"}))

	cfg, err := Load(path, WithFlag("game.deck", flags.Lookup("deck")))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Board.FieldCapacity)
	assert.Equal(t, 90.0, cfg.Board.HandSpacing, "env beats file")
	assert.Equal(t, 175.0, cfg.Board.FieldSpacing)
	assert.Equal(t, "Alice", cfg.Game.Player)
	assert.Equal(t, "Bob", cfg.Game.Opponent)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, "aggro", cfg.Game.Deck)
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  format: xml
board:
  field_band_min: 0.8
  field_band_max: 0.6
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field band")
	assert.Contains(t, err.Error(), "log.format")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
