// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Player   PlayerConfig   `yaml:"player"`
	TileSet  TileSetConfig  `yaml:"tileset"`
	Map      MapConfig      `yaml:"map"`
	Props    []PropConfig   `yaml:"props"`
	Audio    AudioConfig    `yaml:"audio"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig holds asset search paths. Relative asset names are resolved
// against each path in order.
type DataConfig struct {
	AssetPaths []string `yaml:"asset_paths"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`

	// ScreenshotDir receives F12 captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds the camera knobs.
type CameraConfig struct {
	Zoom     float32 `yaml:"zoom"`
	Rotation float32 `yaml:"rotation"` // radians
}

// AnimationConfig locates a horizontal frame strip on the sprite sheet, in
// frame units.
type AnimationConfig struct {
	Row    int `yaml:"row"`
	Column int `yaml:"column"`
	Frames int `yaml:"frames"`
}

// PlayerConfig describes the animated player sprite.
type PlayerConfig struct {
	Sheet       string  `yaml:"sheet"`
	ColorKey    string  `yaml:"color_key"`
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
	Speed       float32 `yaml:"speed"` // pixels per second
	FPS         float64 `yaml:"fps"`
	StartX      float32 `yaml:"start_x"`
	StartY      float32 `yaml:"start_y"`
	StartKey    string  `yaml:"start_key"`

	// Animations is keyed by animation name ("idle-down", "walk-left", ...).
	Animations map[string]AnimationConfig `yaml:"animations"`
}

// TileSetConfig describes the tile set texture grid.
type TileSetConfig struct {
	Texture    string `yaml:"texture"`
	ColorKey   string `yaml:"color_key"`
	TilesWide  int    `yaml:"tiles_wide"`
	TilesHigh  int    `yaml:"tiles_high"`
	TileWidth  int    `yaml:"tile_width"`
	TileHeight int    `yaml:"tile_height"`
}

// MapConfig selects the level. An empty File uses the built-in level.
type MapConfig struct {
	File  string `yaml:"file"`
	Watch bool   `yaml:"watch"`
}

// PropConfig places a static sprite. Source is in texture pixels.
type PropConfig struct {
	Texture  string  `yaml:"texture"`
	ColorKey string  `yaml:"color_key"`
	SourceX  int     `yaml:"source_x"`
	SourceY  int     `yaml:"source_y"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	X        float32 `yaml:"x"`
	Y        float32 `yaml:"y"`
}

// AudioConfig holds audio settings. Music and Footstep name WAV assets; an
// empty name plays nothing.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
	Music        string  `yaml:"music"`
	Footstep     string  `yaml:"footstep"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,

			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Zoom:     1,
			Rotation: 0,
		},
		Player: PlayerConfig{
			Sheet:       "sprites/player.png",
			FrameWidth:  64,
			FrameHeight: 64,
			Speed:       200,
			FPS:         8,
			StartX:      64,
			StartY:      64,
			StartKey:    "idle-down",
			Animations:  DefaultAnimations(),
		},
		TileSet: TileSetConfig{
			Texture:    "tiles/tileset.png",
			TilesWide:  16,
			TilesHigh:  16,
			TileWidth:  32,
			TileHeight: 32,
		},
		Props: []PropConfig{
			{
				Texture: "sprites/props.png",
				Width:   64,
				Height:  64,
				X:       320,
				Y:       256,
			},
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			MusicVolume:  0.7,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Data: DataConfig{
			AssetPaths: []string{"assets"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultAnimations lays the sheet out one direction per row (down, up,
// left, right). Idle is the first frame of the row; walking uses four.
func DefaultAnimations() map[string]AnimationConfig {
	rows := []string{"down", "up", "left", "right"}
	anims := make(map[string]AnimationConfig, 2*len(rows))
	for row, dir := range rows {
		anims["idle-"+dir] = AnimationConfig{Row: row, Column: 0, Frames: 1}
		anims["walk-"+dir] = AnimationConfig{Row: row, Column: 0, Frames: 4}
	}
	return anims
}

// Validate reports settings that the game cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("camera: zoom must be positive, got %g", c.Camera.Zoom))
	}
	if c.Player.FrameWidth <= 0 || c.Player.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("player: invalid frame size %dx%d", c.Player.FrameWidth, c.Player.FrameHeight))
	}
	if c.Player.FPS <= 0 {
		errs = append(errs, fmt.Errorf("player: fps must be positive, got %g", c.Player.FPS))
	}
	for name, a := range c.Player.Animations {
		if a.Frames < 1 {
			errs = append(errs, fmt.Errorf("player: animation %q has %d frames", name, a.Frames))
		}
	}
	ts := c.TileSet
	if ts.TilesWide <= 0 || ts.TilesHigh <= 0 || ts.TileWidth <= 0 || ts.TileHeight <= 0 {
		errs = append(errs, fmt.Errorf("tileset: invalid grid %dx%d of %dx%d tiles",
			ts.TilesWide, ts.TilesHigh, ts.TileWidth, ts.TileHeight))
	}
	for i, p := range c.Props {
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("props[%d]: invalid size %dx%d", i, p.Width, p.Height))
		}
	}
	return errors.Join(errs...)
}
