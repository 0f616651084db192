// Package storage provides SQLite-based persistence for named maps.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/ninja/internal/tilemap"
	"github.com/vovakirdan/ninja/internal/tilemap/formats"
)

// ErrMapNotFound is returned when no map has the requested name.
var ErrMapNotFound = errors.New("storage: map not found")

// Store manages the SQLite database connection for map persistence.
type Store struct {
	db *sql.DB
}

// MapEntry describes a stored map without its tile data.
type MapEntry struct {
	ID        int64
	Name      string
	TileSize  int
	Tiles     int
	OffGrid   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS maps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			tile_size INTEGER NOT NULL,
			tiles INTEGER NOT NULL DEFAULT 0,
			offgrid INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_maps_updated ON maps(updated_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMap stores m under name, replacing any map already saved with that
// name. Returns the ID of the record.
func (s *Store) SaveMap(name string, m *tilemap.TileMap) (int64, error) {
	if name == "" {
		return 0, errors.New("storage: map name is empty")
	}
	data, err := formats.EncodeJSON(m.Record())
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode map %s: %w", name, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO maps (name, tile_size, tiles, offgrid, data)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			tile_size = excluded.tile_size,
			tiles = excluded.tiles,
			offgrid = excluded.offgrid,
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		name, m.TileSize(), m.Len(), m.OffGridLen(), string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save map %s: %w", name, err)
	}

	var id int64
	if err := s.db.QueryRow("SELECT id FROM maps WHERE name = ?", name).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get map ID: %w", err)
	}
	return id, nil
}

// LoadMap decodes the map saved under name.
func (s *Store) LoadMap(name string) (*tilemap.TileMap, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM maps WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query map %s: %w", name, err)
	}

	rec, err := formats.ParseJSON([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("storage: map %s: %w", name, err)
	}
	m, err := tilemap.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("storage: map %s: %w", name, err)
	}
	return m, nil
}

// ListMaps returns every stored map, most recently updated first.
func (s *Store) ListMaps() ([]MapEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, tile_size, tiles, offgrid, created_at, updated_at
		 FROM maps
		 ORDER BY updated_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query maps: %w", err)
	}
	defer rows.Close()

	var entries []MapEntry
	for rows.Next() {
		var e MapEntry
		var createdAt, updatedAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.TileSize, &e.Tiles, &e.OffGrid, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteMap removes the map saved under name.
func (s *Store) DeleteMap(name string) error {
	res, err := s.db.Exec("DELETE FROM maps WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete map %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete map %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrMapNotFound, name)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
