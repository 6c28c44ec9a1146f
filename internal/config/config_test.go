package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.TickIntervalDuration())
	assert.Equal(t, "dolphin", cfg.Theme)
	assert.Equal(t, 2*time.Second, cfg.MessageDurationValue())
	assert.NotEmpty(t, cfg.SavePath)
	assert.Equal(t, cfg.SavePath+".db", cfg.LedgerPath)
	assert.True(t, cfg.LedgerEnabled())
}

func TestLoadOverridesAndLedgerFollowsSave(t *testing.T) {
	path := writeConfig(t, `
save_path: /tmp/game/clicks.save
tick_interval: 1s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/game/clicks.save", cfg.SavePath)
	assert.Equal(t, "/tmp/game/clicks.save.db", cfg.LedgerPath)
	assert.Equal(t, time.Second, cfg.TickIntervalDuration())
	assert.Equal(t, "soclicker_debug.log", cfg.LogPath)
}

func TestLoadEmptyLedgerDisablesIt(t *testing.T) {
	cfg, err := Load(writeConfig(t, "ledger_path: \"\"\n"))
	require.NoError(t, err)
	assert.False(t, cfg.LedgerEnabled())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"unparsable duration": "tick_interval: soon\n",
		"negative duration":   "message_duration: -1s\n",
		"zero tick":           "tick_interval: 0s\n",
		"empty save path":     "save_path: \"\"\n",
		"broken yaml":         "tick_interval: [1s\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().TickInterval, cfg.TickInterval)
}
