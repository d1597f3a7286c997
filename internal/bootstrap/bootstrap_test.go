package bootstrap

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betternotes/internal/application"
	"betternotes/internal/config"
)

func testConfig(t *testing.T, store string) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:  t.TempDir(),
		Store:    store,
		Debounce: 10 * time.Millisecond,
	}
}

func TestOpen_Backends(t *testing.T) {
	for _, store := range []string{config.StoreSQLite, config.StoreFile, config.StoreMemory} {
		t.Run(store, func(t *testing.T) {
			cfg := testConfig(t, store)

			app, err := Open(cfg, nil)
			require.NoError(t, err)
			assert.True(t, app.Report.OK())

			_, err = app.Notebook.AddSection("Bosses")
			require.NoError(t, err)
			require.NoError(t, app.Close())

			if store == config.StoreMemory {
				return
			}

			reopened, err := Open(cfg, nil)
			require.NoError(t, err)
			defer reopened.Close()

			snap := reopened.Notebook.Snapshot()
			require.Len(t, snap.Sections, 1)
			assert.Equal(t, "Bosses", snap.Sections[0].Name)
		})
	}
}

func TestOpen_UnknownStore(t *testing.T) {
	_, err := Open(testConfig(t, "redis"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store")
}

func TestOpen_BadIconCatalogFallsBack(t *testing.T) {
	cfg := testConfig(t, config.StoreMemory)
	cfg.IconCatalog = "/nonexistent/icons.yaml"

	app, err := Open(cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	assert.NotEmpty(t, app.Icons.Sprites())
}

func TestLoadWarning(t *testing.T) {
	tests := []struct {
		name   string
		report application.LoadReport
		want   string
	}{
		{"clean", application.LoadReport{FreshUnassigned: true}, ""},
		{"decode", application.LoadReport{SectionsErr: errors.New("bad json")}, "reset"},
		{"read", application.LoadReport{ReadErr: errors.New("disk gone")}, "will not be saved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoadWarning(tt.report)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
		})
	}
}
