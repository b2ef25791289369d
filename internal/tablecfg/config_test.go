package tablecfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load("/nonexistent/table.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesTableAndPlayers(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
table {
  small_blind = 5
  big_blind   = 10
  hands       = 100
  seed        = 42
}

player "Hero" {
  chips    = 500
  strategy = "random"
}

player "Villain" {
  chips = 300
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Table.SmallBlind)
	assert.Equal(t, 10, cfg.Table.BigBlind)
	assert.Equal(t, 100, cfg.Table.Hands)
	assert.Equal(t, int64(42), cfg.Table.Seed)

	require.Len(t, cfg.Players, 2)
	assert.Equal(t, "Hero", cfg.Players[0].Name)
	assert.Equal(t, 500, cfg.Players[0].Chips)
	assert.Equal(t, "random", cfg.Players[0].Strategy)
	assert.Equal(t, "call", cfg.Players[1].Strategy, "strategy defaults to call")
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
table {}

player "A" {}
player "B" {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Table.Hands)
	assert.Equal(t, 30, cfg.Table.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Table.LogLevel)
	assert.Equal(t, 200, cfg.Players[0].Chips)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "table {}\nplayer \"Solo\" {}\n"))
	assert.Error(t, err, "one player is not a table")

	_, err = Load(writeConfig(t, `
table {
  small_blind = 10
  big_blind   = 5
}
player "A" {}
player "B" {}
`))
	assert.Error(t, err, "inverted blinds are rejected")

	_, err = Load(writeConfig(t, `table { this is not hcl`))
	assert.Error(t, err)
}
