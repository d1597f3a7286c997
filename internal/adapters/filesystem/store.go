package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"betternotes/internal/ports"
)

// Extension of the files values are stored in
const Extension = ".json"

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Store implements ports.ConfigStore with one file per key:
// <root>/<group>/<key>.json
type Store struct {
	mu   sync.Mutex
	root string
}

// Ensure Store implements ConfigStore and BatchConfigStore
var (
	_ ports.ConfigStore      = (*Store)(nil)
	_ ports.BatchConfigStore = (*Store)(nil)
)

// NewStore creates a new filesystem config store rooted at root
func NewStore(root string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return &Store{root: root}
}

// Get returns the value stored under group and key
func (s *Store) Get(group, key string) (string, bool, error) {
	path, err := s.path(group, key)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), true, nil
}

// Set stores value under group and key, replacing the file atomically
func (s *Store) Set(group, key, value string) error {
	path, err := s.path(group, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeAtomic(path, value)
}

// SetMany writes every value. Each file is replaced atomically; a failure
// stops at the first key that could not be written.
func (s *Store) SetMany(group string, values map[string]string) error {
	paths := make(map[string]string, len(values))
	for key := range values {
		path, err := s.path(group, key)
		if err != nil {
			return err
		}
		paths[key] = path
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range values {
		if err := writeAtomic(paths[key], value); err != nil {
			return err
		}
	}
	return nil
}

// Unset removes group and key. Removing an absent key is not an error.
func (s *Store) Unset(group, key string) error {
	path, err := s.path(group, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (s *Store) path(group, key string) (string, error) {
	if !namePattern.MatchString(group) {
		return "", fmt.Errorf("invalid config group: %q", group)
	}
	if !namePattern.MatchString(key) {
		return "", fmt.Errorf("invalid config key: %q", key)
	}
	return filepath.Join(s.root, group, key+Extension), nil
}

// writeAtomic writes to a temp file in the same directory and renames it over
// path so readers never see a partial value.
func writeAtomic(path, value string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
