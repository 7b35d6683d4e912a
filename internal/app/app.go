// Package app owns the window, renderer and asset watcher and runs the main
// loop around the game state update.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tilewalk/internal/assets"
	"github.com/Faultbox/tilewalk/internal/config"
	"github.com/Faultbox/tilewalk/internal/engine/audio"
	"github.com/Faultbox/tilewalk/internal/engine/debug"
	"github.com/Faultbox/tilewalk/internal/engine/input"
	"github.com/Faultbox/tilewalk/internal/engine/render"
	"github.com/Faultbox/tilewalk/internal/engine/renderer"
	"github.com/Faultbox/tilewalk/internal/engine/window"
	"github.com/Faultbox/tilewalk/internal/game"
	"github.com/Faultbox/tilewalk/internal/logger"
)

// Title is the window title.
const Title = "Tilewalk"

// maxFrameTime is the largest dt in seconds handed to a single Step.
const maxFrameTime = 0.25

// Game is the main game instance.
type Game struct {
	config   *config.Config
	log      *zap.Logger
	window   *window.Window
	renderer *renderer.SpriteBatch
	assets   *assets.Manager
	watcher  *assets.Watcher
	mapPath  string
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture

	state game.State
}

// New creates the window and renderer and loads the level.
func New(cfg *config.Config, am *assets.Manager) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		config: cfg,
		log:    log,
		assets: am,
		shots:  debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "tilewalk"),
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.Size()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: [4]float32{0.1, 0.1, 0.15, 1.0},
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.state, err = game.LoadState(cfg, am, g.renderer)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	g.state = g.state.WithViewport(width, height)

	if cfg.Map.File != "" && cfg.Map.Watch {
		g.startWatcher()
	}
	g.startAudio()

	log.Info("game initialized successfully")
	return g, nil
}

func (g *Game) startWatcher() {
	path := g.assets.Locate(g.config.Map.File)
	if path == "" {
		g.log.Warn("map file is not on disk, hot reload disabled", zap.String("map", g.config.Map.File))
		return
	}
	w, err := assets.NewWatcher(assets.DefaultDebounce, path)
	if err != nil {
		g.log.Warn("failed to watch map file", zap.String("path", path), zap.Error(err))
		return
	}
	g.watcher = w
	g.mapPath = path
	g.log.Info("watching map file", zap.String("path", path))
}

// startAudio opens the audio device when any sound is configured. Audio
// failures leave the game silent rather than stopping it.
func (g *Game) startAudio() {
	ac := g.config.Audio
	if ac.Muted || (ac.Music == "" && ac.Footstep == "") {
		return
	}

	m := audio.New()
	m.SetMasterVolume(ac.MasterVolume)
	m.SetBGMVolume(ac.MusicVolume)
	m.SetSFXVolume(ac.SFXVolume)
	if err := m.Init(); err != nil {
		g.log.Warn("audio disabled", zap.Error(err))
		return
	}
	g.audio = m

	if ac.Footstep != "" {
		data, err := g.assets.Load(ac.Footstep)
		if err == nil {
			err = m.LoadSFX(ac.Footstep, data)
		}
		if err != nil {
			g.log.Warn("footstep sound unavailable", zap.Error(err))
		}
	}
	if ac.Music != "" {
		data, err := g.assets.Load(ac.Music)
		if err == nil {
			err = m.PlayBGM(data, ac.Music, true)
		}
		if err != nil {
			g.log.Warn("music unavailable", zap.Error(err))
		}
	}
}

// Run starts the main game loop. It returns when the player quits.
func (g *Game) Run() error {
	var frameBudget time.Duration
	if g.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.config.Graphics.FPSLimit)
	}

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	counter := &render.Counter{Batch: g.renderer}

	g.log.Info("starting game loop")

	for {
		frameStart := time.Now()
		dt := min(frameStart.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = frameStart

		// 1. Process input; quitting is checked before any update
		snap, events := g.window.Poll()
		if snap.Exit() {
			g.log.Info("quit requested")
			return nil
		}
		screenshot := g.handleEvents(events)
		g.reloadMap()

		// 2. Update game state
		prev := g.state
		g.state = game.Step(prev, snap, dt)
		if game.Footstep(prev, g.state) {
			g.playFootstep()
		}

		// 3. Render
		g.renderer.Clear()
		stats := game.Render(counter, g.state)

		if screenshot {
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("cells_visited", stats.Visited),
				zap.Int("tiles_drawn", stats.Drawn),
				zap.Int("quads", counter.Quads),
				zap.Int("draw_calls", g.renderer.DrawCalls()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if left := frameBudget - time.Since(frameStart); left > 0 {
				time.Sleep(left)
			}
		}
	}
}

func (g *Game) playFootstep() {
	name := g.config.Audio.Footstep
	if g.audio == nil || !g.audio.HasSFX(name) {
		return
	}
	if err := g.audio.PlaySFX(name); err != nil {
		g.log.Debug("footstep failed", zap.Error(err))
	}
}

// handleEvents applies window events and reports whether a screenshot was
// requested for this frame.
func (g *Game) handleEvents(events []input.Event) (screenshot bool) {
	for _, event := range events {
		switch event.Type {
		case input.EventWindowResize:
			width, height := g.window.Size()
			g.renderer.Resize(width, height)
			g.state = g.state.WithViewport(width, height)
		case input.EventKeyDown:
			switch event.Key {
			case input.KeyF11:
				g.window.ToggleFullscreen()
			case input.KeyF12:
				screenshot = true
			}
		}
	}
	return screenshot
}

// screenshot saves the frame just rendered, before it is presented.
func (g *Game) screenshot() {
	pixels, width, height := g.renderer.ReadPixels()
	name, err := g.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}

// reloadMap swaps in a changed map file. A file that fails to parse is
// logged and the current layer kept.
func (g *Game) reloadMap() {
	if g.watcher == nil {
		return
	}

	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("map watcher error", zap.Error(err))
		}
		return
	default:
		return
	}

	g.assets.Invalidate(g.config.Map.File)
	layer, err := game.LoadLayer(g.assets, g.config.Map.File)
	if err != nil {
		g.log.Warn("map reload failed, keeping current map", zap.Error(err))
		return
	}
	g.state = g.state.WithLayer(layer)
	g.log.Info("map reloaded",
		zap.String("path", g.mapPath),
		zap.Int("width", layer.Width),
		zap.Int("height", layer.Height),
	)
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
