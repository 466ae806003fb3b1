package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type fileLayout struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// JSONStore keeps all keys in a single JSON document on disk. Every Set
// rewrites the whole file.
type JSONStore struct {
	path  string
	store *fileLayout
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.store = &fileLayout{
		Version: 1,
		Values:  make(map[string]string),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'agenda init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileLayout{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.store.Values == nil {
		s.store.Values = make(map[string]string)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write to a sibling file and rename so a crash never leaves half a document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string) (string, error) {
	if s.store == nil {
		return "", ErrNotLoaded
	}
	value, ok := s.store.Values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.Values[key] = value
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Running multiple agenda processes against the same file is not supported;
// the last writer wins.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
