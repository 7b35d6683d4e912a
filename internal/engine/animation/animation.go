// Package animation implements the frame-timing state machine for sprite
// sheet strips.
package animation

import (
	"fmt"

	"github.com/Faultbox/tilewalk/pkg/math"
)

// Animation is a looping sequence of source rectangles advanced on a fixed
// per-frame duration. It is a value type: Update and Reset return the next
// state and leave the receiver untouched.
type Animation struct {
	frames       []math.Rect
	fps          float64
	frameLength  float64 // seconds per frame, 1/fps
	size         math.Vec2
	currentFrame int
	frameTimer   float64 // seconds accumulated since the last advance
}

// New builds an animation from a horizontal strip of frameCount frames of
// the given size, the first one at offset (pixels into the sheet).
// Panics if frameCount < 1 or fps <= 0.
func New(frameCount int, offset, size math.Vec2, fps float64) Animation {
	if frameCount < 1 {
		panic(fmt.Sprintf("animation: frame count must be >= 1, got %d", frameCount))
	}
	if fps <= 0 {
		panic(fmt.Sprintf("animation: fps must be > 0, got %v", fps))
	}

	frames := make([]math.Rect, frameCount)
	for i := range frames {
		frames[i] = math.Rect{
			X: offset.X + float32(i)*size.X,
			Y: offset.Y,
			W: size.X,
			H: size.Y,
		}
	}

	return Animation{
		frames:      frames,
		fps:         fps,
		frameLength: 1 / fps,
		size:        size,
	}
}

// Update accumulates dt seconds and advances at most one frame once the
// timer reaches the frame length. A dt spanning several frame lengths still
// advances a single frame; there is no catch-up loop.
func (a Animation) Update(dt float64) Animation {
	a.frameTimer += dt
	if a.frameTimer >= a.frameLength {
		a.currentFrame = (a.currentFrame + 1) % len(a.frames)
		a.frameTimer = 0
	}
	return a
}

// Reset returns the animation rewound to frame 0 with a cleared timer.
func (a Animation) Reset() Animation {
	a.currentFrame = 0
	a.frameTimer = 0
	return a
}

// CurrentFrame returns the source rectangle of the current frame.
func (a Animation) CurrentFrame() math.Rect {
	return a.frames[a.currentFrame]
}

// Index returns the current frame index.
func (a Animation) Index() int { return a.currentFrame }

// Timer returns the seconds accumulated toward the next advance.
func (a Animation) Timer() float64 { return a.frameTimer }

// FrameLength returns the duration of one frame in seconds.
func (a Animation) FrameLength() float64 { return a.frameLength }

// FPS returns the playback rate.
func (a Animation) FPS() float64 { return a.fps }

// FrameCount returns the number of frames in the strip.
func (a Animation) FrameCount() int { return len(a.frames) }

// Size returns the frame dimensions.
func (a Animation) Size() math.Vec2 { return a.size }
