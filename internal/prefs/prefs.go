// Package prefs persists user preferences (currently only the process sort key)
// across dashboard sessions.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/errors"
)

const (
	// SortKeyName is the preference key holding the process sort key.
	SortKeyName = "sortBy"

	prefsDir  = "moni-dash"
	prefsFile = "prefs.yaml"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// DefaultPath returns $XDG_CONFIG_HOME/moni-dash/prefs.yaml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, prefsDir, prefsFile), nil
}

// FileStore keeps preferences in a flat YAML map on disk.
// Every Set rewrites the whole file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path. The file is created on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrPrefs,
			"Couldn't create the preferences directory",
			"Check that "+filepath.Dir(s.path)+" is writable")
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrPrefs, "Couldn't encode preferences", "")
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrPrefs,
			fmt.Sprintf("Couldn't write %s", s.path),
			"Check that the file is writable")
	}
	return nil
}

// load reads the file. A missing file is an empty store.
func (s *FileStore) load() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrPrefs,
			fmt.Sprintf("Couldn't read %s", s.path), "")
	}

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrPrefs,
			fmt.Sprintf("%s is not valid YAML", s.path),
			"Delete the file to reset your preferences")
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

// MemoryStore is an in-process Store, used when no file should be touched.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// LoadSortKey reads the stored sort key. It always returns a usable key: when
// nothing is stored, or the store can't be read, the default (cpu) is returned
// alongside any error so the caller can log it.
func LoadSortKey(s Store) (api.SortKey, error) {
	v, ok, err := s.Get(SortKeyName)
	if err != nil {
		return api.DefaultSortKey, err
	}
	if !ok {
		return api.DefaultSortKey, nil
	}
	return api.ParseSortKey(v), nil
}

// SaveSortKey persists k.
func SaveSortKey(s Store, k api.SortKey) error {
	return s.Set(SortKeyName, k.String())
}
