// ABOUTME: Tests for recent configuration management
// ABOUTME: Validates XDG config storage, max limit, deduplication, and invalid entry filtering

package recentconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markalston/ledwall-calc/backend/models"
)

func wall(cols int) models.WallConfig {
	return models.WallConfig{Rows: 4, Cols: cols, CabinetID: "p26-indoor-500"}
}

func TestLoadEmpty(t *testing.T) {
	rc := New(t.TempDir())

	configs, err := rc.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(configs) != 0 {
		t.Errorf("expected empty list, got %d", len(configs))
	}
	if _, ok := rc.Latest(); ok {
		t.Error("expected no latest configuration")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	rc := New(dir)

	if err := rc.Save([]models.WallConfig{wall(10), wall(12)}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := New(dir).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 configs, got %d", len(loaded))
	}
	if loaded[0] != wall(10) || loaded[1] != wall(12) {
		t.Errorf("unexpected order: %+v", loaded)
	}
}

func TestAddMovesToFront(t *testing.T) {
	rc := New(t.TempDir())

	for _, cols := range []int{1, 2, 3} {
		if err := rc.Add(wall(cols)); err != nil {
			t.Fatalf("Add() error: %v", err)
		}
	}
	if err := rc.Add(wall(1)); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	list := rc.List()
	if len(list) != 3 {
		t.Fatalf("expected duplicates removed, got %d entries", len(list))
	}
	latest, ok := rc.Latest()
	if !ok || latest != wall(1) {
		t.Errorf("expected wall(1) first, got %+v", latest)
	}
}

func TestMaxRecentConfigs(t *testing.T) {
	rc := New(t.TempDir())

	for cols := 1; cols <= MaxRecentConfigs+3; cols++ {
		if err := rc.Add(wall(cols)); err != nil {
			t.Fatalf("Add() error: %v", err)
		}
	}

	if got := len(rc.List()); got != MaxRecentConfigs {
		t.Errorf("expected %d entries, got %d", MaxRecentConfigs, got)
	}
}

func TestLoadDropsInvalidEntries(t *testing.T) {
	dir := t.TempDir()
	data := `{"configs":[{"rows":0,"cols":4},{"rows":2,"cols":3,"cabinet_id":"p26-indoor-500"}]}`
	if err := os.WriteFile(filepath.Join(dir, "recent.json"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := New(dir).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Cols != 3 {
		t.Errorf("expected only the valid entry, got %+v", loaded)
	}
}

func TestLoadCorruptFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "recent.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := New(dir).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty list, got %d", len(loaded))
	}
}

func TestInMemoryWhenNoDir(t *testing.T) {
	rc := New("")
	if err := rc.Add(wall(7)); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if latest, ok := rc.Latest(); !ok || latest.Cols != 7 {
		t.Errorf("expected in-memory latest, got %+v", latest)
	}
}

func TestDefaultConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", "ledwall") {
		t.Errorf("DefaultConfigDir() = %q", got)
	}
}
