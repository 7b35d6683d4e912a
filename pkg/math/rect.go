package math

// Rect is an axis-aligned rectangle. X/Y is the top-left corner in a y-down
// space, W/H the extent.
type Rect struct {
	X, Y, W, H float32
}

// NewRect builds a rectangle from integer pixel coordinates.
func NewRect(x, y, w, h int) Rect {
	return Rect{float32(x), float32(y), float32(w), float32(h)}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{r.X, r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.W, r.Y + r.H}
}

// Size returns the rectangle extent.
func (r Rect) Size() Vec2 {
	return Vec2{r.W, r.H}
}

// At returns a copy moved so its top-left corner is p.
func (r Rect) At(p Vec2) Rect {
	return Rect{p.X, p.Y, r.W, r.H}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
