package application

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betternotes/internal/domain"
)

func snapshotJSON(t *testing.T, nb *Notebook) string {
	t.Helper()
	data, err := json.Marshal(nb.Snapshot())
	require.NoError(t, err)
	return string(data)
}

func TestDataManager_RoundTrip(t *testing.T) {
	store := newFakeStore()
	nb := NewNotebook(store, Options{})

	bosses, err := nb.AddSection("Bosses")
	require.NoError(t, err)
	_, err = nb.AddSection("Skilling")
	require.NoError(t, err)

	vorkath, err := nb.AddNote(bosses.ID, "Vorkath")
	require.NoError(t, err)
	require.NoError(t, nb.SetNoteContent(vorkath.ID, "<b>antifire</b> + <i>ruby bolts</i>"))
	require.NoError(t, nb.SetNoteSpriteIcon(vorkath.ID, 42))
	_, err = nb.AddNote(bosses.ID, "Zulrah")
	require.NoError(t, err)
	require.NoError(t, nb.SetSectionExpanded(false, bosses.ID))

	loose, err := nb.AddNoteToUnassigned("loose")
	require.NoError(t, err)
	require.NoError(t, nb.SetNoteExpanded(loose.ID, false))

	reloaded := NewNotebook(store, Options{})
	report := reloaded.Load()

	require.True(t, report.OK())
	assert.False(t, report.FreshUnassigned)
	assert.JSONEq(t, snapshotJSON(t, nb), snapshotJSON(t, reloaded))

	n, _, err := reloaded.Note(vorkath.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NoIcon, n.ItemID)
	assert.Equal(t, 42, n.SpriteID)
	assert.True(t, n.HasIcon())
	assert.False(t, n.HasItemIcon())
	assert.True(t, n.HasSpriteIcon())
}

func TestDataManager_LoadAbsentKeys(t *testing.T) {
	nb := NewNotebook(newFakeStore(), Options{})

	report := nb.Load()

	require.True(t, report.OK())
	assert.True(t, report.FreshUnassigned)

	snap := nb.Snapshot()
	assert.Empty(t, snap.Sections)
	require.NotNil(t, snap.Unassigned)
	assert.Equal(t, domain.UnassignedSectionName, snap.Unassigned.Name)
	assert.True(t, snap.Unassigned.IsUnassignedNotesSection)
}

func TestDataManager_LoadMalformed(t *testing.T) {
	tests := []struct {
		name           string
		sections       string
		unassigned     string
		wantSectionErr bool
		wantUnassigned bool
		wantSections   int
	}{
		{
			name:           "malformed sections",
			sections:       `[{"id":`,
			unassigned:     `{"id":"u","name":"Loose","notes":[]}`,
			wantSectionErr: true,
			wantSections:   0,
		},
		{
			name:           "malformed unassigned",
			sections:       `[{"id":"s1","name":"A","notes":[]}]`,
			unassigned:     `not json`,
			wantUnassigned: true,
			wantSections:   1,
		},
		{
			name:         "empty text is absent",
			sections:     "   ",
			unassigned:   "",
			wantSections: 0,
		},
		{
			name:         "null sections",
			sections:     `null`,
			unassigned:   `null`,
			wantSections: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.put(KeySections, tt.sections)
			store.put(KeyUnassigned, tt.unassigned)
			nb := NewNotebook(store, Options{})

			report := nb.Load()

			assert.Equal(t, tt.wantSectionErr, report.SectionsErr != nil)
			assert.Equal(t, tt.wantUnassigned, report.UnassignedErr != nil)

			snap := nb.Snapshot()
			assert.Len(t, snap.Sections, tt.wantSections)
			require.NotNil(t, snap.Unassigned)
			assert.True(t, snap.Unassigned.IsUnassignedNotesSection)
		})
	}
}

func TestDataManager_LoadBackendErrorKeepsStoredNotebook(t *testing.T) {
	store := newFakeStore()
	seed := NewNotebook(store, Options{})
	for _, name := range []string{"Bosses", "Skilling", "Quests"} {
		_, err := seed.AddSection(name)
		require.NoError(t, err)
	}
	stored := store.raw(KeySections)
	writes := store.writeCount(KeySections)

	store.getErr = errBackend
	nb := NewNotebook(store, Options{})
	report := nb.Load()
	store.getErr = nil

	assert.False(t, report.OK())
	assert.ErrorIs(t, report.ReadErr, errBackend)
	assert.NoError(t, report.SectionsErr)

	_, err := nb.AddSection("Clues")
	require.ErrorIs(t, err, ErrStoreUnreadable)
	assert.Equal(t, stored, store.raw(KeySections))
	assert.Equal(t, writes, store.writeCount(KeySections))

	// a clean load lifts the block
	report = nb.Load()
	require.True(t, report.OK())
	assert.Len(t, nb.Snapshot().Sections, 3)
	_, err = nb.AddSection("Clues")
	require.NoError(t, err)
	assert.Len(t, loadedNotebook(t, store).Snapshot().Sections, 4)
}

// loadedNotebook returns a notebook freshly loaded from store
func loadedNotebook(t *testing.T, store *fakeStore) *Notebook {
	t.Helper()
	nb := NewNotebook(store, Options{})
	require.True(t, nb.Load().OK())
	return nb
}

func TestDataManager_UnassignedMergeKeepsIdentity(t *testing.T) {
	store := newFakeStore()
	store.put(KeyUnassigned, `{"id":"stored-id","name":"Misc","notes":[{"id":"n1","name":"a"}],"isUnassignedNotesSection":false}`)

	collection := domain.NewCollection()
	existing := domain.NewUnassignedSection()
	collection.SetUnassignedSection(existing)

	dm := NewDataManager(store, DefaultGroup, collection, nil, nil)
	dm.Load()

	u := collection.Unassigned()
	assert.Same(t, existing, u)
	assert.Equal(t, existing.ID, u.ID)
	assert.Equal(t, "Misc", u.Name)
	require.Len(t, u.Notes, 1)
	assert.Equal(t, "n1", u.Notes[0].ID)
	assert.True(t, u.IsUnassignedNotesSection)
}

func TestDataManager_UnassignedAdoptsStoredID(t *testing.T) {
	store := newFakeStore()
	store.put(KeyUnassigned, `{"id":"stored-id","name":"Misc","notes":[]}`)

	collection := domain.NewCollection()
	dm := NewDataManager(store, DefaultGroup, collection, nil, nil)
	dm.Load()

	assert.Equal(t, "stored-id", collection.Unassigned().ID)
}

func TestDataManager_LegacySectionsPayload(t *testing.T) {
	store := newFakeStore()
	store.put(KeySections, `[{"id":"s1","name":"Quests","isMaximized":false,"notes":[{"id":"n1","name":"RFD","content":"","itemId":7462,"isMaximized":true},null]}]`)
	nb := NewNotebook(store, Options{})

	require.True(t, nb.Load().OK())

	s, err := nb.Section("s1")
	require.NoError(t, err)
	assert.False(t, s.IsMaximized)
	assert.Equal(t, domain.NoIcon, s.ItemID)
	require.Len(t, s.Notes, 1)
	assert.Equal(t, 7462, s.Notes[0].ItemID)
	assert.Equal(t, domain.NoIcon, s.Notes[0].SpriteID)
}

func TestDataManager_SaveUsesBatchStore(t *testing.T) {
	store := &batchStore{fakeStore: newFakeStore()}
	nb := NewNotebook(store, Options{})

	_, err := nb.AddSection("x")
	require.NoError(t, err)

	assert.Equal(t, 1, store.batches)
	assert.Contains(t, store.raw(KeySections), `"name":"x"`)
	assert.Contains(t, store.raw(KeyUnassigned), `"isUnassignedNotesSection":true`)
}

func TestDataManager_SaveError(t *testing.T) {
	store := newFakeStore()
	store.setErr = errBackend
	nb := NewNotebook(store, Options{})

	_, err := nb.AddSection("x")

	require.Error(t, err)
	assert.ErrorIs(t, err, errBackend)
	assert.Len(t, nb.Snapshot().Sections, 1, "in-memory change is kept")
}

func TestDataManager_PersistedFieldNames(t *testing.T) {
	store := newFakeStore()
	nb := NewNotebook(store, Options{})
	s, err := nb.AddSection("a")
	require.NoError(t, err)
	_, err = nb.AddNote(s.ID, "n")
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(store.raw(KeySections)), &decoded))
	require.Len(t, decoded, 1)

	for _, field := range []string{"id", "name", "notes", "isMaximized", "itemId", "spriteId", "isUnassignedNotesSection"} {
		assert.Contains(t, decoded[0], field)
	}
	assert.Equal(t, float64(domain.NoIcon), decoded[0]["itemId"])
}
