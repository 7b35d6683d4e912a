// Package render defines the draw surface the game draws its frame into.
// A backend implements Batch; the GL one lives in package renderer.
package render

import (
	"github.com/Faultbox/tilewalk/internal/engine/texture"
	"github.com/Faultbox/tilewalk/pkg/math"
)

// Batch accepts textured quads for the current frame. Every quad drawn
// between Begin and End shares the transform passed to Begin.
type Batch interface {
	// Begin starts a batch whose quads are mapped to the screen by transform.
	Begin(transform math.Mat4)
	// Draw queues the src sub-rectangle of tex, stretched over dst.
	Draw(tex texture.Texture, src, dst math.Rect)
	// End flushes the queued quads.
	End()
}

// DrawCall is one recorded Draw.
type DrawCall struct {
	Texture texture.Texture
	Src     math.Rect
	Dst     math.Rect
}

// Recorder is a Batch that keeps every call in memory. It backs headless
// runs and tests.
type Recorder struct {
	Transform math.Mat4
	Calls     []DrawCall
	Begun     int
	Ended     int
}

// Begin resets the recorded calls and stores the transform.
func (r *Recorder) Begin(transform math.Mat4) {
	r.Transform = transform
	r.Calls = r.Calls[:0]
	r.Begun++
}

// Draw records the call.
func (r *Recorder) Draw(tex texture.Texture, src, dst math.Rect) {
	r.Calls = append(r.Calls, DrawCall{Texture: tex, Src: src, Dst: dst})
}

// End marks the batch as flushed.
func (r *Recorder) End() {
	r.Ended++
}

// Counter wraps a Batch and counts the quads passed through it.
type Counter struct {
	Batch
	Quads int
}

// Begin resets the count and forwards to the wrapped batch.
func (c *Counter) Begin(transform math.Mat4) {
	c.Quads = 0
	c.Batch.Begin(transform)
}

// Draw counts the quad and forwards it.
func (c *Counter) Draw(tex texture.Texture, src, dst math.Rect) {
	c.Quads++
	c.Batch.Draw(tex, src, dst)
}
