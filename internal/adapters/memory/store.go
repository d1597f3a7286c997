package memory

import (
	"github.com/patrickmn/go-cache"

	"betternotes/internal/ports"
)

// Store implements ports.ConfigStore in memory. Values never expire; it backs
// tests, dry runs and the "memory" store setting.
type Store struct {
	cache *cache.Cache
}

// Ensure Store implements ConfigStore
var _ ports.ConfigStore = (*Store)(nil)

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func cacheKey(group, key string) string {
	return group + "\x00" + key
}

// Get returns the value stored under group and key
func (s *Store) Get(group, key string) (string, bool, error) {
	if x, found := s.cache.Get(cacheKey(group, key)); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

// Set stores value under group and key
func (s *Store) Set(group, key, value string) error {
	s.cache.Set(cacheKey(group, key), value, cache.NoExpiration)
	return nil
}

// Unset removes group and key
func (s *Store) Unset(group, key string) error {
	s.cache.Delete(cacheKey(group, key))
	return nil
}
