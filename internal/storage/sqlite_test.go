package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/tilemap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleMap() *tilemap.TileMap {
	m := tilemap.New(16)
	for x := range 5 {
		m.Place(tilemap.K(x, 4), tilemap.KindGrass, 1)
	}
	m.Place(tilemap.K(-2, 3), tilemap.KindStone, 8)
	m.PlaceOffGrid(tilemap.KindLargeDecor, 2, core.V(20.5, 16))
	return m
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMap("cave", sampleMap())
	if err != nil {
		t.Fatalf("SaveMap() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	m, err := store.LoadMap("cave")
	if err != nil {
		t.Fatalf("LoadMap() failed: %v", err)
	}
	if m.Len() != 6 || m.OffGridLen() != 1 || m.TileSize() != 16 {
		t.Errorf("Loaded map has %d/%d tiles, size %d", m.Len(), m.OffGridLen(), m.TileSize())
	}
	if tile, ok := m.Tile(tilemap.K(-2, 3)); !ok || tile.Kind != tilemap.KindStone || tile.Variant != 8 {
		t.Errorf("Tile -2;3 = %+v, %v", tile, ok)
	}
	if og := m.OffGrid()[0]; og.Pos != core.V(20.5, 16) {
		t.Errorf("Offgrid pos = %v", og.Pos)
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveMap("cave", sampleMap())
	if err != nil {
		t.Fatalf("SaveMap() failed: %v", err)
	}
	small := tilemap.New(8)
	small.Place(tilemap.K(0, 0), tilemap.KindDecor, 0)
	second, err := store.SaveMap("cave", small)
	if err != nil {
		t.Fatalf("SaveMap() failed: %v", err)
	}
	if first != second {
		t.Errorf("Expected the same record ID, got %d and %d", first, second)
	}

	m, err := store.LoadMap("cave")
	if err != nil {
		t.Fatalf("LoadMap() failed: %v", err)
	}
	if m.Len() != 1 || m.TileSize() != 8 {
		t.Errorf("Expected the replacement map, got %d tiles size %d", m.Len(), m.TileSize())
	}
}

func TestStoreListMaps(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.ListMaps()
	if err != nil {
		t.Fatalf("ListMaps() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty list, got %d", len(entries))
	}

	for _, name := range []string{"a", "b"} {
		if _, err := store.SaveMap(name, sampleMap()); err != nil {
			t.Fatalf("SaveMap(%s) failed: %v", name, err)
		}
	}

	entries, err = store.ListMaps()
	if err != nil {
		t.Fatalf("ListMaps() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 maps, got %d", len(entries))
	}
	// Same timestamp resolution: newer ID first.
	if entries[0].Name != "b" {
		t.Errorf("Expected most recent map first, got %s", entries[0].Name)
	}
	e := entries[1]
	if e.Tiles != 6 || e.OffGrid != 1 || e.TileSize != 16 {
		t.Errorf("Entry = %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestStoreDeleteMap(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMap("cave", sampleMap()); err != nil {
		t.Fatalf("SaveMap() failed: %v", err)
	}
	if err := store.DeleteMap("cave"); err != nil {
		t.Fatalf("DeleteMap() failed: %v", err)
	}
	if _, err := store.LoadMap("cave"); !errors.Is(err, ErrMapNotFound) {
		t.Errorf("Expected ErrMapNotFound after delete, got %v", err)
	}
	if err := store.DeleteMap("cave"); !errors.Is(err, ErrMapNotFound) {
		t.Errorf("Expected ErrMapNotFound for second delete, got %v", err)
	}
}

func TestStoreRejectsEmptyName(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveMap("", sampleMap()); err == nil {
		t.Error("Expected error for empty name")
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store1.SaveMap("cave", sampleMap()); err != nil {
		t.Fatalf("SaveMap() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	m, err := store2.LoadMap("cave")
	if err != nil {
		t.Fatalf("LoadMap() after reopen failed: %v", err)
	}
	if m.Len() != 6 {
		t.Errorf("Expected 6 tiles after reopen, got %d", m.Len())
	}
}
