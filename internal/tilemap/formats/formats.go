// Package formats provides the map file codecs: the JSON record shared with
// the original level editor, the same record as YAML, and the ASCII layout
// format used for hand-authored maps.
package formats

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ninja/internal/tilemap"
)

//go:embed defaults/meadow.yaml
var defaultMeadowYAML []byte

// DefaultName is the name of the builtin map.
const DefaultName = "meadow"

// Default returns a freshly built copy of the builtin map.
func Default() (*tilemap.TileMap, error) {
	return Parse(defaultMeadowYAML, ".yaml")
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// Parse decodes map data by file extension. YAML documents with a "rows" key
// are read as layouts, anything else as a record.
func Parse(data []byte, ext string) (*tilemap.TileMap, error) {
	switch strings.ToLower(ext) {
	case ".json":
		rec, err := ParseJSON(data)
		if err != nil {
			return nil, err
		}
		return tilemap.FromRecord(rec)
	case ".yaml", ".yml":
		var probe struct {
			Rows []string `yaml:"rows"`
		}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		if len(probe.Rows) > 0 {
			return ParseLayout(data)
		}
		rec, err := ParseYAML(data)
		if err != nil {
			return nil, err
		}
		return tilemap.FromRecord(rec)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// ParseJSON decodes the JSON record.
func ParseJSON(data []byte) (tilemap.Record, error) {
	var rec tilemap.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("json unmarshal: %w", err)
	}
	return rec, nil
}

// EncodeJSON encodes a record the way the level editor writes it.
func EncodeJSON(rec tilemap.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ParseYAML decodes the YAML record.
func ParseYAML(data []byte) (tilemap.Record, error) {
	var rec tilemap.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return rec, nil
}

// EncodeYAML encodes a record as YAML.
func EncodeYAML(rec tilemap.Record) ([]byte, error) {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// LoadFile reads and decodes a map file.
func LoadFile(path string) (*tilemap.TileMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	m, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return m, nil
}

// SaveFile writes the map as a record, choosing the codec by extension.
func SaveFile(path string, m *tilemap.TileMap) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = EncodeJSON(m.Record())
	case ".yaml", ".yml":
		data, err = EncodeYAML(m.Record())
	default:
		return fmt.Errorf("unsupported extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
