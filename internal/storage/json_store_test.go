package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupJSONStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config", "agenda.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store, path
}

func TestJSONStoreSetGet(t *testing.T) {
	store, path := setupJSONStore(t)

	if _, err := store.Get("agenda-tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store = %v, want ErrNotFound", err)
	}
	if err := store.Set("agenda-tasks", "payload"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reopened.Get("agenda-tasks")
	if err != nil || got != "payload" {
		t.Errorf("Get() = %q, %v; want %q", got, err, "payload")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after save")
	}
}

func TestJSONStoreInitKeepsExistingData(t *testing.T) {
	store, path := setupJSONStore(t)
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	again := NewJSONStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if got, _ := again.Get("k"); got != "v" {
		t.Errorf("Init discarded existing value, Get() = %q", got)
	}
}

func TestJSONStoreLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		store := NewJSONStore(filepath.Join(t.TempDir(), "none.json"))
		if err := store.Load(); err == nil {
			t.Error("Load() succeeded on missing file")
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}
		if err := NewJSONStore(path).Load(); err == nil {
			t.Error("Load() succeeded on corrupt file")
		}
	})

	t.Run("not loaded", func(t *testing.T) {
		store := NewJSONStore(filepath.Join(t.TempDir(), "x.json"))
		if _, err := store.Get("k"); !errors.Is(err, ErrNotLoaded) {
			t.Errorf("Get() = %v, want ErrNotLoaded", err)
		}
	})
}
