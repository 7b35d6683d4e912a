package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/tilewalk/pkg/math"
)

const eps = 1e-2

func near(a, b math.Vec2) bool {
	return gomath.Abs(float64(a.X-b.X)) < eps && gomath.Abs(float64(a.Y-b.Y)) < eps
}

func TestNewDefaults(t *testing.T) {
	c := New(1280, 720)
	if c.Zoom() != 1 || c.Rotation() != 0 {
		t.Errorf("defaults: zoom %v rotation %v", c.Zoom(), c.Rotation())
	}
	// Looking at the origin puts it at the viewport center.
	got := c.WorldToScreen().TransformVec2(math.Vec2{})
	if !near(got, math.Vec2{X: 640, Y: 360}) {
		t.Errorf("origin on screen = %v, want (640, 360)", got)
	}
}

func TestUpdate_CentersTrackedPosition(t *testing.T) {
	tests := []struct {
		name     string
		zoom     float32
		rotation float32
	}{
		{"plain", 1, 0},
		{"zoomed", 2, 0},
		{"rotated", 1, 0.5},
		{"zoomed and rotated", 0.75, -1.2},
	}

	pos := math.Vec2{X: 812, Y: 410}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1280, 720).WithZoom(tt.zoom).WithRotation(tt.rotation).Update(pos)
			got := c.WorldToScreen().TransformVec2(pos)
			if !near(got, math.Vec2{X: 640, Y: 360}) {
				t.Errorf("tracked position on screen = %v, want (640, 360)", got)
			}
		})
	}
}

func TestUpdate_ZoomScalesOffsets(t *testing.T) {
	c := New(800, 600).WithZoom(2).Update(math.Vec2{X: 100, Y: 100})
	// 10 world pixels right of the target land 20 screen pixels right.
	got := c.WorldToScreen().TransformVec2(math.Vec2{X: 110, Y: 100})
	if !near(got, math.Vec2{X: 420, Y: 300}) {
		t.Errorf("got %v, want (420, 300)", got)
	}
}

func TestScreenToWorldIsInverse(t *testing.T) {
	positions := []math.Vec2{{}, {X: 736, Y: 640}, {X: -50, Y: 1300}}
	zooms := []float32{0.5, 1, 3}
	rotations := []float32{0, 0.25, gomath.Pi}

	for _, p := range positions {
		for _, z := range zooms {
			for _, r := range rotations {
				c := New(1280, 720).WithZoom(z).WithRotation(r).Update(p)
				id := c.ScreenToWorld().Mul(c.WorldToScreen())
				if !id.ApproxEqual(math.Identity(), eps) {
					t.Errorf("pos %v zoom %v rot %v: inverse product = %v", p, z, r, id)
				}
			}
		}
	}
}

func TestUpdate_NeverStale(t *testing.T) {
	c := New(640, 480)
	before := c.ScreenToWorld()
	c = c.Update(math.Vec2{X: 300, Y: 200})
	if c.ScreenToWorld() == before {
		t.Error("ScreenToWorld not recomputed after Update")
	}
	got := c.ScreenToWorld().TransformVec2(math.Vec2{X: 320, Y: 240})
	if !near(got, math.Vec2{X: 300, Y: 200}) {
		t.Errorf("screen center in world = %v, want (300, 200)", got)
	}
}

func TestWithZoomIgnoresNonPositive(t *testing.T) {
	c := New(640, 480).WithZoom(2)
	if c.WithZoom(0).Zoom() != 2 || c.WithZoom(-1).Zoom() != 2 {
		t.Error("non-positive zoom should be ignored")
	}
}

func TestViewBounds(t *testing.T) {
	c := New(1280, 720).Update(math.Vec2{X: 1000, Y: 500})
	b := c.ViewBounds()
	if !near(b.Min(), math.Vec2{X: 360, Y: 140}) || !near(b.Max(), math.Vec2{X: 1640, Y: 860}) {
		t.Errorf("bounds = %v", b)
	}

	z := c.WithZoom(2).ViewBounds()
	if !near(z.Min(), math.Vec2{X: 680, Y: 320}) || !near(z.Max(), math.Vec2{X: 1320, Y: 680}) {
		t.Errorf("zoomed bounds = %v", z)
	}

	// A quarter turn swaps the extents.
	r := c.WithRotation(gomath.Pi / 2).ViewBounds()
	if gomath.Abs(float64(r.W-720)) > eps || gomath.Abs(float64(r.H-1280)) > eps {
		t.Errorf("rotated bounds size = %vx%v, want 720x1280", r.W, r.H)
	}
}

func TestWithViewport(t *testing.T) {
	c := New(640, 480).Update(math.Vec2{X: 10, Y: 10}).WithViewport(1920, 1080)
	got := c.WorldToScreen().TransformVec2(math.Vec2{X: 10, Y: 10})
	if !near(got, math.Vec2{X: 960, Y: 540}) {
		t.Errorf("after resize = %v, want (960, 540)", got)
	}
	if c.WithViewport(0, 10).Viewport() != c.Viewport() {
		t.Error("invalid viewport should be ignored")
	}
}
