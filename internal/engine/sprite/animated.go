package sprite

import (
	"github.com/Faultbox/tilewalk/internal/engine/animation"
	"github.com/Faultbox/tilewalk/internal/engine/render"
	"github.com/Faultbox/tilewalk/internal/engine/texture"
	"github.com/Faultbox/tilewalk/pkg/math"
)

// Animated is a sprite with one animation per Key, all cut from a single
// sheet. It is updated functionally: Update returns the next snapshot.
type Animated struct {
	Sheet      texture.Texture
	Position   math.Vec2
	Speed      float32 // pixels per second
	Animating  bool
	Current    Key
	animations [KeyCount]animation.Animation
}

// NewAnimated builds a sprite from a complete animation table, facing
// start. Every entry must be a constructed animation.
func NewAnimated(sheet texture.Texture, anims [KeyCount]animation.Animation, pos math.Vec2, speed float32, start Key) Animated {
	for k, a := range anims {
		if a.FrameCount() == 0 {
			panic("sprite: missing animation for " + Key(k).String())
		}
	}
	if !start.Valid() {
		panic("sprite: invalid start key " + start.String())
	}
	return Animated{
		Sheet:      sheet,
		Position:   pos,
		Speed:      speed,
		Current:    start,
		animations: anims,
	}
}

// Animation returns the animation stored under k.
func (s Animated) Animation(k Key) animation.Animation {
	return s.animations[k]
}

// CurrentAnimation returns the selected animation.
func (s Animated) CurrentAnimation() animation.Animation {
	return s.animations[s.Current]
}

// Size returns the frame size of the selected animation.
func (s Animated) Size() math.Vec2 {
	return s.animations[s.Current].Size()
}

// Update returns the next snapshot for the frame. If key matches the
// current selection its animation advances by dt, but only while moving.
// A different key resets the newly selected animation to frame 0.
func (s Animated) Update(key Key, pos math.Vec2, moving bool, dt float64) Animated {
	anim := s.animations[key]
	switch {
	case key != s.Current:
		anim = anim.Reset()
	case moving:
		anim = anim.Update(dt)
	}

	next := s
	next.animations[key] = anim
	next.Current = key
	next.Animating = moving
	next.Position = pos
	return next
}

// Draw queues the current frame at the sprite position.
func (s Animated) Draw(b render.Batch) {
	src := s.animations[s.Current].CurrentFrame()
	b.Draw(s.Sheet, src, src.At(s.Position))
}

// Sprite is a static image cut from a texture.
type Sprite struct {
	Texture  texture.Texture
	Source   math.Rect
	Position math.Vec2
}

// Draw queues the sprite unscaled at its position.
func (s Sprite) Draw(b render.Batch) {
	b.Draw(s.Texture, s.Source, s.Source.At(s.Position))
}
