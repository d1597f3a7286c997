package application

import (
	"errors"
	"sync"

	"betternotes/internal/ports"
)

// fakeStore is an in-memory ConfigStore that counts writes per key
type fakeStore struct {
	mu     sync.Mutex
	values map[string]string
	writes map[string]int
	setErr error
	getErr error
}

var _ ports.ConfigStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		values: make(map[string]string),
		writes: make(map[string]int),
	}
}

func (s *fakeStore) Get(group, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[group+"."+key]
	return v, ok, nil
}

func (s *fakeStore) Set(group, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.values[group+"."+key] = value
	s.writes[key]++
	return nil
}

func (s *fakeStore) Unset(group, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, group+"."+key)
	return nil
}

func (s *fakeStore) put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[DefaultGroup+"."+key] = value
}

func (s *fakeStore) raw(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[DefaultGroup+"."+key]
}

func (s *fakeStore) writeCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[key]
}

// batchStore records whether SetMany was used
type batchStore struct {
	*fakeStore
	batches int
}

func (s *batchStore) SetMany(group string, values map[string]string) error {
	s.batches++
	for k, v := range values {
		if err := s.Set(group, k, v); err != nil {
			return err
		}
	}
	return nil
}

var errBackend = errors.New("backend unavailable")

// redrawCounter counts redraw notifications
type redrawCounter struct {
	mu    sync.Mutex
	count int
}

func (r *redrawCounter) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
}

func (r *redrawCounter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
