package commands

import (
	"strings"
	"sync"
	"testing"

	"betternotes/internal/application"
)

type mapStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (s *mapStore) Get(group, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[group+"/"+key]
	return v, ok, nil
}

func (s *mapStore) Set(group, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[group+"/"+key] = value
	return nil
}

func (s *mapStore) Unset(group, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, group+"/"+key)
	return nil
}

// fixture is a notebook with two sections and a few notes:
//
//	Bosses: Vorkath, Zulrah
//	Skilling: Agility
//	Unassigned notes: loose
type fixture struct {
	nb       *application.Notebook
	bosses   *application.Section
	skilling *application.Section
	vorkath  *application.Note
	zulrah   *application.Note
	agility  *application.Note
	loose    *application.Note
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	nb := application.NewNotebook(&mapStore{values: map[string]string{}}, application.Options{})
	f := &fixture{nb: nb}

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("fixture: %v", err)
		}
	}

	var err error
	f.bosses, err = nb.AddSection("Bosses")
	must(err)
	f.skilling, err = nb.AddSection("Skilling")
	must(err)
	f.vorkath, err = nb.AddNote(f.bosses.ID, "Vorkath")
	must(err)
	f.zulrah, err = nb.AddNote(f.bosses.ID, "Zulrah")
	must(err)
	f.agility, err = nb.AddNote(f.skilling.ID, "Agility")
	must(err)
	f.loose, err = nb.AddNoteToUnassigned("loose")
	must(err)
	must(nb.SetNoteContent(f.agility.ID, "Ardougne rooftops\nmarks of grace"))

	return f
}

func (f *fixture) noteNames(t *testing.T, sectionID string) []string {
	t.Helper()
	s, err := f.nb.Section(sectionID)
	if err != nil {
		t.Fatalf("section %s: %v", sectionID, err)
	}
	names := make([]string, len(s.Notes))
	for i, n := range s.Notes {
		names[i] = n.Name
	}
	return names
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
