package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja/internal/tilemap"
	"github.com/vovakirdan/ninja/internal/tilemap/formats"
)

var (
	flagMapName     string
	flagMapAutotile bool
	flagMapOut      string
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Manage maps",
	Long: `Import map files into the database, export them back, and run the
autotiler over hand-made maps.

Map files are JSON (the {"tilemap", "tile_size", "offgrid"} layout) or YAML
with the same fields. YAML files with a "rows" key are ASCII layouts.

Examples:
  ninja maps list
  ninja maps import ./level.json --name cliffs --autotile
  ninja maps export cliffs ./cliffs.yaml
  ninja maps autotile ./level.json --out ./level.tiled.json
  ninja maps delete cliffs`,
}

var mapsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored maps",
	Args:  cobra.NoArgs,
	Run:   runMapsList,
}

var mapsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a map file in the database",
	Args:  cobra.ExactArgs(1),
	Run:   runMapsImport,
}

var mapsExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Write a stored map to a file (format by extension)",
	Args:  cobra.ExactArgs(2),
	Run:   runMapsExport,
}

var mapsAutotileCmd = &cobra.Command{
	Use:   "autotile <file>",
	Short: "Pick grass and stone variants from their neighbors",
	Args:  cobra.ExactArgs(1),
	Run:   runMapsAutotile,
}

var mapsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored map",
	Args:  cobra.ExactArgs(1),
	Run:   runMapsDelete,
}

func init() {
	mapsImportCmd.Flags().StringVar(&flagMapName, "name", "", "Name to store under (default: file name)")
	mapsImportCmd.Flags().BoolVar(&flagMapAutotile, "autotile", false, "Autotile before storing")
	mapsAutotileCmd.Flags().StringVar(&flagMapOut, "out", "", "Output file (default: overwrite the input)")

	mapsCmd.AddCommand(mapsListCmd)
	mapsCmd.AddCommand(mapsImportCmd)
	mapsCmd.AddCommand(mapsExportCmd)
	mapsCmd.AddCommand(mapsAutotileCmd)
	mapsCmd.AddCommand(mapsDeleteCmd)
}

func runMapsList(_ *cobra.Command, _ []string) {
	store := openStore(true)
	defer store.Close()

	entries, err := store.ListMaps()
	if err != nil {
		fail("%v", err)
	}
	if len(entries) == 0 {
		fmt.Println("No stored maps.")
		fmt.Println()
		fmt.Println("Run 'ninja maps import <file>' to add one.")
		return
	}

	// Calculate column widths
	maxName := 4 // "Name" header
	for _, e := range entries {
		maxName = max(maxName, len(e.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %6s  %6s  %4s  %s\n", maxName, "Name", "Tiles", "Decor", "Size", "Updated")
	fmt.Printf("  %-*s  %6s  %6s  %4s  %s\n", maxName, "----", "-----", "-----", "----", "-------")

	for _, e := range entries {
		fmt.Printf("  %-*s  %6d  %6d  %4d  %s\n",
			maxName, e.Name, e.Tiles, e.OffGrid, e.TileSize, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runMapsImport(_ *cobra.Command, args []string) {
	path := args[0]
	m, err := formats.LoadFile(path)
	if err != nil {
		fail("%v", err)
	}
	if flagMapAutotile {
		m.Autotile()
	}

	name := flagMapName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	store := openStore(true)
	defer store.Close()

	id, err := store.SaveMap(name, m)
	if err != nil {
		fail("%v", err)
	}
	logger.Info("map stored", "name", name, "id", id, "tiles", m.Len(), "offgrid", m.OffGridLen())
	fmt.Printf("Stored %q (%d tiles, %d decorations).\n", name, m.Len(), m.OffGridLen())
}

func runMapsExport(_ *cobra.Command, args []string) {
	name, path := args[0], args[1]

	store := openStore(true)
	defer store.Close()

	m, err := store.LoadMap(name)
	if err != nil {
		fail("%v", err)
	}
	if err := formats.SaveFile(path, m); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Wrote %q to %s.\n", name, path)
}

func runMapsAutotile(_ *cobra.Command, args []string) {
	in := args[0]
	m, err := formats.LoadFile(in)
	if err != nil {
		fail("%v", err)
	}

	before := variants(m)
	m.Autotile()
	changed := 0
	for key, v := range variants(m) {
		if before[key] != v {
			changed++
		}
	}

	out := flagMapOut
	if out == "" {
		out = in
	}
	if err := formats.SaveFile(out, m); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Autotiled %d of %d tiles into %s.\n", changed, m.Len(), out)
}

// variants snapshots the grid tile variants for change counting.
func variants(m *tilemap.TileMap) map[tilemap.GridKey]int {
	out := make(map[tilemap.GridKey]int, m.Len())
	for _, key := range m.Keys() {
		if t, ok := m.Tile(key); ok {
			out[key] = t.Variant
		}
	}
	return out
}

func runMapsDelete(_ *cobra.Command, args []string) {
	store := openStore(true)
	defer store.Close()

	if err := store.DeleteMap(args[0]); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Deleted %q.\n", args[0])
}
