package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betternotes/internal/config"
)

func execute(t *testing.T, dir string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append([]string{"--store", config.StoreFile, "--data-dir", dir}, args...))
	return run()
}

func TestRun_ClosesAppWhenCommandFails(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, execute(t, dir, "section", "add", "Bosses"))
	assert.Nil(t, app, "app closed after a successful command")

	err := execute(t, dir, "note", "show", "no-such-note")
	require.Error(t, err)
	assert.Nil(t, app, "app closed after a failing command")

	require.NoError(t, execute(t, dir, "list"))
	assert.Equal(t, dir, cfg.DataDir)
	if os.Getenv("BETTERNOTES_LOG_FILE") == "" {
		assert.Equal(t, filepath.Join(dir, "betternotes.log"), cfg.LogFile)
	}
}
