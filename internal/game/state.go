// Package game holds the per-tick state update: movement, animation key
// selection, camera follow, and the draw order of a frame.
package game

import (
	"github.com/Faultbox/tilewalk/internal/engine/camera"
	"github.com/Faultbox/tilewalk/internal/engine/input"
	"github.com/Faultbox/tilewalk/internal/engine/render"
	"github.com/Faultbox/tilewalk/internal/engine/sprite"
	"github.com/Faultbox/tilewalk/internal/engine/tilemap"
	"github.com/Faultbox/tilewalk/pkg/math"
)

// State is everything one tick reads and writes. Step never modifies its
// input; it returns the next State.
type State struct {
	Player  sprite.Animated
	Camera  camera.Camera
	Layer   tilemap.Layer
	TileSet tilemap.TileSet
	Props   []sprite.Sprite
}

// Bounds returns the largest top-left position that keeps a sprite of size
// inside the map.
func (s State) Bounds(size math.Vec2) math.Vec2 {
	return s.Layer.PixelSize(s.TileSet).Sub(size)
}

// Step advances the state by dt seconds of input.
func Step(s State, in input.Snapshot, dt float64) State {
	dir, key := ResolveMovement(in, s.Player.Current)
	moving := !dir.IsZero()

	delta := dir.Normalize().Scale(s.Player.Speed * float32(dt))
	size := s.Player.Animation(key).Size()
	pos := s.Player.Position.Add(delta).Clamp(math.Vec2{}, s.Bounds(size))

	next := s
	next.Player = s.Player.Update(key, pos, moving, dt)
	next.Camera = s.Camera.Update(playerCenter(next.Player))
	return next
}

// WithLayer swaps in a new tile layer and pulls the player back inside it.
func (s State) WithLayer(l tilemap.Layer) State {
	next := s
	next.Layer = l
	pos := s.Player.Position.Clamp(math.Vec2{}, next.Bounds(s.Player.Size()))
	next.Player.Position = pos
	next.Camera = s.Camera.Update(playerCenter(next.Player))
	return next
}

// WithViewport resizes the camera viewport.
func (s State) WithViewport(w, h int) State {
	next := s
	next.Camera = s.Camera.WithViewport(w, h)
	return next
}

// Footstep reports whether the walk cycle moved to a new frame between two
// consecutive states.
func Footstep(prev, next State) bool {
	if !next.Player.Animating || prev.Player.Current != next.Player.Current {
		return false
	}
	return prev.Player.CurrentAnimation().Index() != next.Player.CurrentAnimation().Index()
}

func playerCenter(p sprite.Animated) math.Vec2 {
	return p.Position.Add(p.Size().Scale(0.5))
}

// Render draws one frame: tiles first, then static props, then the player,
// all in a single batch under the camera transform.
func Render(b render.Batch, s State) tilemap.DrawStats {
	b.Begin(s.Camera.WorldToScreen())
	stats := s.Layer.Draw(b, s.TileSet, s.Camera)
	for _, p := range s.Props {
		p.Draw(b)
	}
	s.Player.Draw(b)
	b.End()
	return stats
}
