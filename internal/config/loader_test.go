package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	isolate(t)
	cfg, src, err := LoadNinjaFrom("")
	if err != nil {
		t.Fatalf("LoadNinjaFrom: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != DefaultNinjaConfig() {
		t.Errorf("embedded defaults drifted from hardcoded:\n%+v\n%+v", cfg, DefaultNinjaConfig())
	}
}

func TestSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "ninja.yaml"), "clouds:\n  count: 4\n")
	cfg, src, err := LoadNinjaFrom("")
	if err != nil {
		t.Fatalf("LoadNinjaFrom: %v", err)
	}
	if cfg.Clouds.Count != 4 || src != filepath.Join("configs", "ninja.yaml") {
		t.Errorf("local config: count=%d source=%q", cfg.Clouds.Count, src)
	}

	userPath := filepath.Join(home, ".ninja", "configs", "ninja.yaml")
	writeFile(t, userPath, "clouds:\n  count: 8\n")
	cfg, src, _ = LoadNinjaFrom("")
	if cfg.Clouds.Count != 8 || src != userPath {
		t.Errorf("user config: count=%d source=%q", cfg.Clouds.Count, src)
	}

	custom := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, custom, "clouds:\n  count: 2\n")
	cfg, src, _ = LoadNinjaFrom(custom)
	if cfg.Clouds.Count != 2 || src != custom {
		t.Errorf("custom config: count=%d source=%q", cfg.Clouds.Count, src)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "camera:\n  damping: 12\n")

	cfg, err := LoadNinja(path)
	if err != nil {
		t.Fatalf("LoadNinja: %v", err)
	}
	if cfg.Camera.Damping != 12 {
		t.Errorf("damping = %v, expected 12", cfg.Camera.Damping)
	}
	if cfg.Player != DefaultNinjaConfig().Player {
		t.Errorf("player = %+v, expected defaults", cfg.Player)
	}
}

func TestCustomPathErrors(t *testing.T) {
	isolate(t)
	if _, err := LoadNinja(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "display: [not, a, map]\n")
	if _, err := LoadNinja(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestBrokenUserConfigFallsThrough(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".ninja", "configs", "ninja.yaml"), "display: [1, 2]\n")

	_, src, err := LoadNinjaFrom("")
	if err != nil {
		t.Fatalf("LoadNinjaFrom: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected fallback to embedded", src)
	}
}

func TestNormalize(t *testing.T) {
	cfg := NinjaConfig{
		Clouds: CloudsConfig{Count: -3},
		Camera: CameraConfig{Damping: 0.5},
		Leaves: LeavesConfig{MaxStartFrame: -1},
	}
	cfg.Normalize()
	d := DefaultNinjaConfig()
	if cfg.Display != d.Display || cfg.World.TileSize != 16 || cfg.Input != d.Input {
		t.Errorf("normalized = %+v", cfg)
	}
	if cfg.Clouds.Count != 0 || cfg.Camera.Damping != 30 || cfg.Leaves.MaxStartFrame != 0 {
		t.Errorf("normalized = %+v", cfg)
	}
	if cfg.Leaves.RateDivisor != 30000 {
		t.Errorf("rate divisor = %v", cfg.Leaves.RateDivisor)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	isolate(t)
	want := DefaultNinjaConfig()
	want.World.Map = "levels/cave.json"
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	writeFile(t, path, string(data))
	got, err := LoadNinja(path)
	if err != nil {
		t.Fatalf("LoadNinja: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v", got)
	}
}
