package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyberquest.log")

	log, err := New("prod", path)
	require.NoError(t, err)
	log.With("player", "alice").Info("submission recorded", "score", 40)
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "submission recorded")
	assert.Contains(t, string(data), `"player":"alice"`)
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Debug("ignored")
	log.Error("ignored", "k", "v")
	log.Sync()
}
