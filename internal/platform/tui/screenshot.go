package tui

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/ninja/internal/gfx"
)

// ScreenshotDir returns ~/.ninja/screenshots.
func ScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".ninja", "screenshots")
	}
	return filepath.Join(home, ".ninja", "screenshots")
}

// SaveScreenshot writes the logical frame as a PNG named after the game and
// the time and returns its path.
func SaveScreenshot(dir, id string, frame *gfx.Image, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	w, h := frame.Size()
	img := &image.NRGBA{
		Pix:    frame.RGBA(make([]byte, 0, w*h*4)),
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", id, now.Format("20060102_150405")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("tui: screenshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("tui: screenshot %s: %w", path, err)
	}
	return path, nil
}
