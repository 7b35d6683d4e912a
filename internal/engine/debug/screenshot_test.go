package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFlipRows(t *testing.T) {
	// Two rows, bottom row first as OpenGL returns them
	pixels := []byte{
		1, 1, 1, 255, 2, 2, 2, 255, // bottom
		3, 3, 3, 255, 4, 4, 4, 255, // top
	}
	img, err := FlipRows(pixels, 2, 2)
	if err != nil {
		t.Fatalf("FlipRows: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{3, 3, 3, 255}) {
		t.Errorf("top left = %v, want the last input row", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{2, 2, 2, 255}) {
		t.Errorf("bottom right = %v", got)
	}

	if _, err := FlipRows(pixels[:4], 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "tilewalk")
	sc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	name, err := sc.CaptureFromPixels(make([]byte, 4*3*2), 4, 3)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	want := filepath.Join(dir, "tilewalk_2026-01-02_03-04-05.000.png")
	if name != want {
		t.Errorf("file = %s, want %s", name, want)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
}

func TestGenerateFilenameNoDir(t *testing.T) {
	sc := NewScreenshotCapture("", "shot")
	name := sc.GenerateFilename()
	if filepath.Dir(name) != "." || !strings.HasPrefix(name, "shot_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("unexpected name %s", name)
	}
}
