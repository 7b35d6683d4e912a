package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestManagerLoadPriority(t *testing.T) {
	low := t.TempDir()
	high := t.TempDir()
	writeFile(t, filepath.Join(low, "maps", "a.yaml"), "low")
	writeFile(t, filepath.Join(low, "only-low.txt"), "only")
	writeFile(t, filepath.Join(high, "maps", "a.yaml"), "high")

	m := NewManager()
	if err := m.AddDir(low); err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	if err := m.AddDir(high); err != nil {
		t.Fatalf("AddDir: %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"maps/a.yaml", "high"},
		{"only-low.txt", "only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := m.Load(tt.name)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Load(%q) = %q, want %q", tt.name, data, tt.want)
			}
		})
	}

	if _, err := m.Load("missing.png"); err == nil {
		t.Error("expected error for missing asset")
	}
	if _, err := m.Load("../escape.txt"); err == nil {
		t.Error("expected error for name outside the roots")
	}
}

func TestManagerCacheAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "map.yaml")
	writeFile(t, p, "v1")

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}

	if data, _ := m.Load("map.yaml"); string(data) != "v1" {
		t.Fatalf("first load = %q", data)
	}
	writeFile(t, p, "v2")

	if data, _ := m.Load("map.yaml"); string(data) != "v1" {
		t.Errorf("cached load = %q, want v1", data)
	}
	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits %d misses, want 1/1", hits, misses)
	}

	m.Invalidate("map.yaml")
	if data, _ := m.Load("map.yaml"); string(data) != "v2" {
		t.Errorf("load after invalidate = %q, want v2", data)
	}
}

func TestManagerAbsolutePath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "level.yaml")
	writeFile(t, p, "abs")

	m := NewManager()
	data, err := m.Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "abs" {
		t.Errorf("Load = %q", data)
	}
	if got := m.Locate(p); got != p {
		t.Errorf("Locate = %q, want %q", got, p)
	}
}

func TestManagerLocate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "maps", "a.yaml"), "x")

	m := NewManager()
	m.AddFS(fstest.MapFS{"maps/b.yaml": {Data: []byte("mem")}})
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}

	if got := m.Locate("maps/a.yaml"); got != filepath.Join(dir, "maps", "a.yaml") {
		t.Errorf("Locate(a) = %q", got)
	}
	// In-memory roots have no disk path
	if got := m.Locate("maps/b.yaml"); got != "" {
		t.Errorf("Locate(b) = %q, want empty", got)
	}
	if data, err := m.Load("maps/b.yaml"); err != nil || string(data) != "mem" {
		t.Errorf("Load(b) = %q, %v", data, err)
	}
}

func TestAddDirErrors(t *testing.T) {
	m := NewManager()
	if err := m.AddDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing dir")
	}

	f := filepath.Join(t.TempDir(), "file")
	writeFile(t, f, "")
	if err := m.AddDir(f); err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("expected not a directory error, got %v", err)
	}
}

func TestLoadImageColorKey(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{255, 0, 255, 255})
	img.Set(1, 0, color.RGBA{10, 20, 30, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	m := NewManager()
	m.AddFS(fstest.MapFS{"sheet.png": {Data: buf.Bytes()}})

	rgba, err := m.LoadImage("sheet.png", "#ff00ff")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if a := rgba.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("keyed pixel alpha = %d, want 0", a)
	}
	if c := rgba.RGBAAt(1, 0); c != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("plain pixel = %v", c)
	}

	if _, err := m.LoadImage("sheet.png", "magenta"); err == nil {
		t.Error("expected error for bad color key")
	}
}

func TestCache(t *testing.T) {
	c := NewCache()
	c.Set("a", []byte("1"))

	if _, ok := c.Get("a"); !ok {
		t.Error("expected hit")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("expected miss")
	}
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after delete")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 2 {
		t.Errorf("stats = %d/%d, want 1/2", hits, misses)
	}

	c.Clear()
	if hits, misses := c.Stats(); hits != 0 || misses != 0 {
		t.Errorf("stats after clear = %d/%d", hits, misses)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
