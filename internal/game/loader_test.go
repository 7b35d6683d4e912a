package game

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Faultbox/tilewalk/internal/assets"
	"github.com/Faultbox/tilewalk/internal/config"
	"github.com/Faultbox/tilewalk/internal/engine/sprite"
	"github.com/Faultbox/tilewalk/internal/engine/texture"
	"github.com/Faultbox/tilewalk/pkg/math"
)

type fakeUploader struct {
	uploads int
}

func (f *fakeUploader) Upload(img *image.RGBA) (texture.Texture, error) {
	f.uploads++
	b := img.Bounds()
	return texture.Texture{ID: uint32(f.uploads), Width: b.Dx(), Height: b.Dy()}, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func testAssets(t *testing.T, files map[string]string) *assets.Manager {
	t.Helper()
	fsys := fstest.MapFS{
		"sprites/player.png": {Data: pngBytes(t, 256, 256)},
		"sprites/props.png":  {Data: pngBytes(t, 64, 64)},
		"tiles/tileset.png":  {Data: pngBytes(t, 512, 512)},
	}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	m := assets.NewManager()
	m.AddFS(fsys)
	return m
}

func TestLoadStateDefaults(t *testing.T) {
	cfg := config.Default()
	up := &fakeUploader{}

	s, err := LoadState(cfg, testAssets(t, nil), up)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	if up.uploads != 3 {
		t.Errorf("uploads = %d, want 3", up.uploads)
	}
	if s.Layer.Width != 48 || s.Layer.Height != 42 {
		t.Errorf("layer = %dx%d, want the built-in level", s.Layer.Width, s.Layer.Height)
	}
	if s.TileSet.Len() != 256 {
		t.Errorf("tile set has %d tiles, want 256", s.TileSet.Len())
	}
	if len(s.Props) != 1 || s.Props[0].Position != (math.Vec2{X: 320, Y: 256}) {
		t.Errorf("props = %+v", s.Props)
	}
	if s.Player.Current != sprite.IdleDown {
		t.Errorf("start key = %v, want idle-down", s.Player.Current)
	}
	if s.Player.Position != (math.Vec2{X: 64, Y: 64}) {
		t.Errorf("start = %v, want (64, 64)", s.Player.Position)
	}
	// The camera starts on the player center
	if s.Camera.Position() != (math.Vec2{X: 96, Y: 96}) {
		t.Errorf("camera = %v, want (96, 96)", s.Camera.Position())
	}
}

func TestLoadStateSharesTextures(t *testing.T) {
	cfg := config.Default()
	cfg.Props = append(cfg.Props, config.PropConfig{
		Texture: "sprites/props.png", Width: 32, Height: 32, X: 10, Y: 10,
	})
	up := &fakeUploader{}

	s, err := LoadState(cfg, testAssets(t, nil), up)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if up.uploads != 3 {
		t.Errorf("uploads = %d, want 3", up.uploads)
	}
	if s.Props[0].Texture != s.Props[1].Texture {
		t.Error("props from one image should share a texture")
	}
}

func TestLoadStateMapFile(t *testing.T) {
	cfg := config.Default()
	cfg.Map.File = "maps/small.yaml"
	cfg.Player.StartX = 500

	m := testAssets(t, map[string]string{
		"maps/small.yaml": "width: 4\nheight: 3\nrows:\n  - [1, 2, 3, 4]\n  - [5, 6, 7, 8]\n  - [9, 10, 11, 12]\n",
	})

	s, err := LoadState(cfg, m, &fakeUploader{})
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if s.Layer.Width != 4 || s.Layer.Height != 3 {
		t.Fatalf("layer = %dx%d, want 4x3", s.Layer.Width, s.Layer.Height)
	}
	// 4x3 cells of 32 px: the 64 px player fits at x <= 64, y <= 32
	if s.Player.Position != (math.Vec2{X: 64, Y: 32}) {
		t.Errorf("start = %v, want clamped to (64, 32)", s.Player.Position)
	}
}

func TestLoadStateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		files   map[string]string
		wantErr string
	}{
		{"missing sheet", func(c *config.Config) { c.Player.Sheet = "nope.png" }, nil, "player"},
		{"bad start key", func(c *config.Config) { c.Player.StartKey = "run-up" }, nil, "run-up"},
		{"missing animation", func(c *config.Config) {
			c.Player.Animations = config.DefaultAnimations()
			delete(c.Player.Animations, "walk-up")
		}, nil, "walk-up"},
		{"missing tileset", func(c *config.Config) { c.TileSet.Texture = "nope.png" }, nil, "tileset"},
		{"missing prop", func(c *config.Config) { c.Props[0].Texture = "nope.png" }, nil, "props[0]"},
		{"missing map", func(c *config.Config) { c.Map.File = "maps/none.yaml" }, nil, "map"},
		{"bad map", func(c *config.Config) { c.Map.File = "maps/bad.yaml" },
			map[string]string{"maps/bad.yaml": "width: 2\nheight: 2\ntiles: [1, 2, 3]\n"}, "maps/bad.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			_, err := LoadState(cfg, testAssets(t, tt.files), &fakeUploader{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildAnimations(t *testing.T) {
	pc := config.Default().Player
	pc.Animations["walk-left"] = config.AnimationConfig{Row: 2, Column: 1, Frames: 3}

	anims, err := BuildAnimations(pc)
	if err != nil {
		t.Fatalf("BuildAnimations: %v", err)
	}

	a := anims[sprite.WalkLeft]
	if a.FrameCount() != 3 {
		t.Errorf("frames = %d, want 3", a.FrameCount())
	}
	if got := a.CurrentFrame(); got != math.NewRect(64, 128, 64, 64) {
		t.Errorf("first frame = %v, want (64,128 64x64)", got)
	}
	if got := anims[sprite.IdleUp].CurrentFrame(); got != math.NewRect(0, 64, 64, 64) {
		t.Errorf("idle-up frame = %v", got)
	}

	pc.Animations["idle-left"] = config.AnimationConfig{Frames: 0}
	if _, err := BuildAnimations(pc); err == nil {
		t.Error("expected error for zero frames")
	}
}
