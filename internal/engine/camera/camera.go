// Package camera provides the 2D view transform that maps world space onto
// the screen.
package camera

import (
	"github.com/Faultbox/tilewalk/pkg/math"
)

// Camera centers the view on a tracked world position. It is a value type;
// every method that changes it returns a copy with both matrices rebuilt,
// so ScreenToWorld is always the inverse of the current WorldToScreen.
type Camera struct {
	position math.Vec2 // world-space center of the view
	zoom     float32
	rotation float32 // radians
	viewport math.Vec2

	worldToScreen math.Mat4
	screenToWorld math.Mat4
}

// New creates a camera for a viewport of the given pixel size, looking at
// the world origin with zoom 1 and no rotation.
func New(viewportW, viewportH int) Camera {
	c := Camera{
		zoom:     1,
		viewport: math.Vec2{X: float32(viewportW), Y: float32(viewportH)},
	}
	return c.Update(math.Vec2{})
}

// Update moves the camera to pos and recomputes the transforms:
// translate pos to the origin, rotate, scale by zoom, then translate to the
// viewport center.
func (c Camera) Update(pos math.Vec2) Camera {
	c.position = pos

	center := c.viewport.Scale(0.5)
	c.worldToScreen = math.Translate2D(center).
		Mul(math.Scale(c.zoom, c.zoom, 1)).
		Mul(math.RotateZ(c.rotation)).
		Mul(math.Translate2D(pos.Neg()))
	c.screenToWorld = c.worldToScreen.Inverse()
	return c
}

// WithZoom returns the camera with a new zoom factor. Non-positive values
// are ignored.
func (c Camera) WithZoom(zoom float32) Camera {
	if zoom <= 0 {
		return c
	}
	c.zoom = zoom
	return c.Update(c.position)
}

// WithRotation returns the camera rotated to angle radians.
func (c Camera) WithRotation(angle float32) Camera {
	c.rotation = angle
	return c.Update(c.position)
}

// WithViewport returns the camera resized to a new viewport.
func (c Camera) WithViewport(w, h int) Camera {
	if w <= 0 || h <= 0 {
		return c
	}
	c.viewport = math.Vec2{X: float32(w), Y: float32(h)}
	return c.Update(c.position)
}

// Position returns the tracked world position.
func (c Camera) Position() math.Vec2 { return c.position }

// Zoom returns the zoom factor.
func (c Camera) Zoom() float32 { return c.zoom }

// Rotation returns the rotation in radians.
func (c Camera) Rotation() float32 { return c.rotation }

// Viewport returns the viewport size in pixels.
func (c Camera) Viewport() math.Vec2 { return c.viewport }

// WorldToScreen returns the world to screen transform.
func (c Camera) WorldToScreen() math.Mat4 { return c.worldToScreen }

// ScreenToWorld returns the screen to world transform.
func (c Camera) ScreenToWorld() math.Mat4 { return c.screenToWorld }

// ViewBounds returns the world-space bounding box of the viewport. With no
// rotation this is the camera position plus or minus half the viewport
// extent divided by zoom.
func (c Camera) ViewBounds() math.Rect {
	corners := [4]math.Vec2{
		{},
		{X: c.viewport.X},
		{Y: c.viewport.Y},
		c.viewport,
	}

	lo := c.screenToWorld.TransformVec2(corners[0])
	hi := lo
	for _, p := range corners[1:] {
		w := c.screenToWorld.TransformVec2(p)
		lo.X, lo.Y = min(lo.X, w.X), min(lo.Y, w.Y)
		hi.X, hi.Y = max(hi.X, w.X), max(hi.Y, w.Y)
	}
	return math.Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}
