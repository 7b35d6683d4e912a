package game

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/tilewalk/internal/assets"
	"github.com/Faultbox/tilewalk/internal/config"
	"github.com/Faultbox/tilewalk/internal/engine/animation"
	"github.com/Faultbox/tilewalk/internal/engine/camera"
	"github.com/Faultbox/tilewalk/internal/engine/sprite"
	"github.com/Faultbox/tilewalk/internal/engine/texture"
	"github.com/Faultbox/tilewalk/internal/engine/tilemap"
	"github.com/Faultbox/tilewalk/internal/logger"
	"github.com/Faultbox/tilewalk/pkg/math"
)

// Uploader turns decoded pixels into a drawable texture.
type Uploader interface {
	Upload(img *image.RGBA) (texture.Texture, error)
}

// loader uploads each texture once per name.
type loader struct {
	assets   *assets.Manager
	uploader Uploader
	textures map[string]texture.Texture
}

func (l *loader) texture(name, colorKey string) (texture.Texture, error) {
	if tex, ok := l.textures[name]; ok {
		return tex, nil
	}
	img, err := l.assets.LoadImage(name, colorKey)
	if err != nil {
		return texture.Texture{}, err
	}
	tex, err := l.uploader.Upload(img)
	if err != nil {
		return texture.Texture{}, fmt.Errorf("uploading %s: %w", name, err)
	}
	l.textures[name] = tex
	return tex, nil
}

// LoadState builds the initial state from configuration. Textures come from
// the asset manager; the level is the configured map file or the built-in one.
func LoadState(cfg *config.Config, am *assets.Manager, up Uploader) (State, error) {
	l := &loader{assets: am, uploader: up, textures: make(map[string]texture.Texture)}

	player, err := l.player(cfg.Player)
	if err != nil {
		return State{}, fmt.Errorf("player: %w", err)
	}

	tsCfg := cfg.TileSet
	tsTex, err := l.texture(tsCfg.Texture, tsCfg.ColorKey)
	if err != nil {
		return State{}, fmt.Errorf("tileset: %w", err)
	}
	tileSet := tilemap.NewTileSet(tsTex, tsCfg.TilesWide, tsCfg.TilesHigh, tsCfg.TileWidth, tsCfg.TileHeight)

	layer := BuiltinLevel()
	if cfg.Map.File != "" {
		layer, err = LoadLayer(am, cfg.Map.File)
		if err != nil {
			return State{}, err
		}
	}

	props := make([]sprite.Sprite, 0, len(cfg.Props))
	for i, p := range cfg.Props {
		tex, err := l.texture(p.Texture, p.ColorKey)
		if err != nil {
			return State{}, fmt.Errorf("props[%d]: %w", i, err)
		}
		props = append(props, sprite.Sprite{
			Texture:  tex,
			Source:   math.NewRect(p.SourceX, p.SourceY, p.Width, p.Height),
			Position: math.Vec2{X: p.X, Y: p.Y},
		})
	}

	cam := camera.New(cfg.Graphics.Width, cfg.Graphics.Height).
		WithZoom(cfg.Camera.Zoom).
		WithRotation(cfg.Camera.Rotation)

	s := State{
		Player:  player,
		Camera:  cam,
		TileSet: tileSet,
		Props:   props,
	}
	// WithLayer clamps the start position and centers the camera.
	s = s.WithLayer(layer)

	logger.Named("game").Info("level loaded",
		zap.Int("width", layer.Width),
		zap.Int("height", layer.Height),
		zap.Int("props", len(props)),
		zap.Int("textures", len(l.textures)),
	)
	return s, nil
}

func (l *loader) player(cfg config.PlayerConfig) (sprite.Animated, error) {
	anims, err := BuildAnimations(cfg)
	if err != nil {
		return sprite.Animated{}, err
	}
	start, err := sprite.ParseKey(cfg.StartKey)
	if err != nil {
		return sprite.Animated{}, err
	}
	sheet, err := l.texture(cfg.Sheet, cfg.ColorKey)
	if err != nil {
		return sprite.Animated{}, err
	}
	pos := math.Vec2{X: cfg.StartX, Y: cfg.StartY}
	return sprite.NewAnimated(sheet, anims, pos, cfg.Speed, start), nil
}

// BuildAnimations cuts the eight player animations out of the sheet layout.
// Every key must be configured.
func BuildAnimations(cfg config.PlayerConfig) ([sprite.KeyCount]animation.Animation, error) {
	var anims [sprite.KeyCount]animation.Animation
	size := math.Vec2{X: float32(cfg.FrameWidth), Y: float32(cfg.FrameHeight)}

	for k := sprite.Key(0); k < sprite.KeyCount; k++ {
		a, ok := cfg.Animations[k.String()]
		if !ok {
			return anims, fmt.Errorf("animation %q not configured", k)
		}
		if a.Frames < 1 {
			return anims, fmt.Errorf("animation %q has %d frames", k, a.Frames)
		}
		offset := math.Vec2{X: float32(a.Column) * size.X, Y: float32(a.Row) * size.Y}
		anims[k] = animation.New(a.Frames, offset, size, cfg.FPS)
	}
	return anims, nil
}

// LoadLayer reads and parses a YAML map file through the asset manager.
func LoadLayer(am *assets.Manager, name string) (tilemap.Layer, error) {
	data, err := am.Load(name)
	if err != nil {
		return tilemap.Layer{}, fmt.Errorf("map: %w", err)
	}
	layer, err := tilemap.ParseMap(data)
	if err != nil {
		return tilemap.Layer{}, fmt.Errorf("map %s: %w", name, err)
	}
	return layer, nil
}
