package sqlite

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/agenda/internal/storage"
)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "agenda.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestSetGet(t *testing.T) {
	store, _ := setupTestStore(t)

	if _, err := store.Get("agenda-tasks"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get on empty store = %v, want ErrNotFound", err)
	}

	if err := store.Set("agenda-tasks", `{"v":1}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("agenda-tasks", `{"v":2}`); err != nil {
		t.Fatalf("Set (overwrite) failed: %v", err)
	}

	got, err := store.Get("agenda-tasks")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != `{"v":2}` {
		t.Errorf("Get() = %q, want latest value", got)
	}
}

func TestReloadKeepsValues(t *testing.T) {
	store, path := setupTestStore(t)
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("k")
	if err != nil || got != "v" {
		t.Errorf("Get() = %q, %v; want %q", got, err, "v")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	store, _ := setupTestStore(t)
	if err := store.Init(); err != nil {
		t.Errorf("second Init failed: %v", err)
	}
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "agenda init") {
		t.Errorf("Load() = %v, want not-initialized error", err)
	}
}

func TestUseBeforeLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "x.db"))
	if _, err := store.Get("k"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("Get() = %v, want ErrNotLoaded", err)
	}
	if err := store.Set("k", "v"); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("Set() = %v, want ErrNotLoaded", err)
	}
}
