package application

import (
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CollapsesBurst(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		v := int32(i)
		d.Trigger(func() {
			calls.Add(1)
			last.Store(v)
		})
	}
	assert.True(t, d.Pending())

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(5), last.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_FlushAndStop(t *testing.T) {
	d := NewDebouncer(time.Hour)
	var calls atomic.Int32

	assert.False(t, d.Flush(), "nothing pending")

	d.Trigger(func() { calls.Add(1) })
	assert.True(t, d.Flush())
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Flush())

	d.Trigger(func() { calls.Add(1) })
	assert.True(t, d.Stop())
	assert.False(t, d.Pending())
	assert.False(t, d.Flush())
	assert.Equal(t, int32(1), calls.Load())
}

func storedContent(t *testing.T, store *fakeStore, noteID string) string {
	t.Helper()
	var u Section
	require.NoError(t, json.Unmarshal([]byte(store.raw(KeyUnassigned)), &u))
	for _, n := range u.Notes {
		if n.ID == noteID {
			return n.Content
		}
	}
	t.Fatalf("note %s not stored", noteID)
	return ""
}

func TestNotebook_EditNoteContentDebounced(t *testing.T) {
	store := newFakeStore()
	redraws := &redrawCounter{}
	nb := NewNotebook(store, Options{Debounce: 30 * time.Millisecond, Redrawer: redraws})
	n, err := nb.AddNoteToUnassigned("n")
	require.NoError(t, err)

	writes := store.writeCount(KeyUnassigned)
	redrawsBefore := redraws.Count()

	require.NoError(t, nb.EditNoteContent(n.ID, "a"))
	require.NoError(t, nb.EditNoteContent(n.ID, "ab"))
	require.NoError(t, nb.EditNoteContent(n.ID, "abc"))

	got, _, err := nb.Note(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Content, "memory is updated right away")
	assert.Equal(t, writes, store.writeCount(KeyUnassigned), "nothing written yet")

	require.Eventually(t, func() bool {
		return store.writeCount(KeyUnassigned) > writes
	}, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, writes+1, store.writeCount(KeyUnassigned))
	assert.Equal(t, "abc", storedContent(t, store, n.ID))
	assert.Equal(t, redrawsBefore, redraws.Count())
}

func TestNotebook_CloseFlushesPendingContent(t *testing.T) {
	store := newFakeStore()
	nb := NewNotebook(store, Options{Debounce: time.Hour})
	n, err := nb.AddNoteToUnassigned("n")
	require.NoError(t, err)

	require.NoError(t, nb.EditNoteContent(n.ID, "unsaved"))
	require.NoError(t, nb.Close())

	assert.Equal(t, "unsaved", storedContent(t, store, n.ID))
}

func TestNotebook_LoadDropsPendingContent(t *testing.T) {
	store := newFakeStore()
	nb := NewNotebook(store, Options{Debounce: time.Hour})
	n, err := nb.AddNoteToUnassigned("n")
	require.NoError(t, err)
	require.NoError(t, nb.EditNoteContent(n.ID, "discarded"))

	nb.Load()

	assert.False(t, nb.FlushContent())
	got, _, err := nb.Note(n.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Content)
}
