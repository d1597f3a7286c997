package application

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNotebook_Export(t *testing.T) {
	nb := NewNotebook(newFakeStore(), Options{})
	s, err := nb.AddSection("Bosses")
	require.NoError(t, err)
	n, err := nb.AddNote(s.ID, "Vorkath")
	require.NoError(t, err)
	require.NoError(t, nb.SetNoteItemIcon(n.ID, 22103))

	t.Run("json", func(t *testing.T) {
		out, err := nb.Export(FormatJSON)
		require.NoError(t, err)

		var snap Snapshot
		require.NoError(t, json.Unmarshal(out, &snap))
		require.Len(t, snap.Sections, 1)
		assert.Equal(t, "Vorkath", snap.Sections[0].Notes[0].Name)
		assert.Equal(t, 22103, snap.Sections[0].Notes[0].ItemID)
		require.NotNil(t, snap.Unassigned)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := nb.Export("YAML")
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(out, &doc))
		assert.Contains(t, doc, "sections")
		assert.Contains(t, doc, "unassigned_notes")
		assert.Contains(t, string(out), "itemId: 22103")
		assert.Contains(t, string(out), "spriteId: -1")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := nb.Export("xml")
		var valErr *ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "format", valErr.Field)
	})
}
