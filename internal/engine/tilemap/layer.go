package tilemap

import (
	"fmt"

	"github.com/Faultbox/tilewalk/internal/engine/camera"
	"github.com/Faultbox/tilewalk/internal/engine/render"
	"github.com/Faultbox/tilewalk/pkg/math"
)

// Layer is a row-major grid of one-based tile ids. Id 0 is an empty cell;
// id n > 0 refers to tile set index n-1.
type Layer struct {
	Tiles   []int
	Width   int
	Height  int
	Visible bool
}

// NewLayer creates a visible layer. Panics unless len(tiles) == width*height.
func NewLayer(tiles []int, width, height int) Layer {
	if width <= 0 || height <= 0 || len(tiles) != width*height {
		panic(fmt.Sprintf("tilemap: layer %dx%d needs %d tiles, got %d",
			width, height, width*height, len(tiles)))
	}
	return Layer{Tiles: tiles, Width: width, Height: height, Visible: true}
}

// TileID returns the zero-based tile set index at cell (x, y). It is total:
// any cell outside the grid, or holding id <= 0, reports no tile.
//
// The upper bound test is x > Width / y > Height, so the row and column just
// past the grid fall through to the flat index check. Column Width of a row
// aliases the first cell of the next row there; row Height is always past
// the end of Tiles.
func (l Layer) TileID(x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	if x > l.Width || y > l.Height {
		return 0, false
	}

	i := y*l.Width + x
	if i >= len(l.Tiles) {
		return 0, false
	}
	id := l.Tiles[i]
	if id <= 0 {
		return 0, false
	}
	return id - 1, true
}

// PixelSize returns the layer extent in world pixels for the given tile set.
func (l Layer) PixelSize(ts TileSet) math.Vec2 {
	return math.Vec2{
		X: float32(l.Width * ts.TileWidth),
		Y: float32(l.Height * ts.TileHeight),
	}
}

// VectorToCell converts a world position to grid cell coordinates,
// truncating toward zero.
func VectorToCell(pos math.Vec2, ts TileSet) (int, int) {
	return int(pos.X) / ts.TileWidth, int(pos.Y) / ts.TileHeight
}

// CellRange is an inclusive rectangle of grid cells.
type CellRange struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Empty reports whether the range holds no cells.
func (r CellRange) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Cells returns the number of cells in the range.
func (r CellRange) Cells() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// VisibleCells returns the cells under the camera view, padded by one cell
// on every side and clamped to the grid.
func (l Layer) VisibleCells(cam camera.Camera, ts TileSet) CellRange {
	view := cam.ViewBounds()
	minX, minY := VectorToCell(view.Min(), ts)
	maxX, maxY := VectorToCell(view.Max(), ts)

	return CellRange{
		MinX: clampCell(minX-1, l.Width),
		MinY: clampCell(minY-1, l.Height),
		MaxX: clampCell(maxX+1, l.Width),
		MaxY: clampCell(maxY+1, l.Height),
	}
}

func clampCell(v, n int) int {
	return max(0, min(v, n-1))
}

// DrawStats describes the work done by the last Draw.
type DrawStats struct {
	Visited int // cells inside the visible range
	Drawn   int // tiles queued to the batch
}

// Draw queues every non-empty tile inside the visible range. Tiles are
// emitted unscaled at cell coordinates; the batch transform handles pan,
// zoom and rotation.
func (l Layer) Draw(b render.Batch, ts TileSet, cam camera.Camera) DrawStats {
	var stats DrawStats
	if !l.Visible {
		return stats
	}

	r := l.VisibleCells(cam, ts)
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			stats.Visited++
			id, ok := l.TileID(x, y)
			if !ok {
				continue
			}
			src, ok := ts.Source(id)
			if !ok {
				continue
			}
			dst := math.NewRect(x*ts.TileWidth, y*ts.TileHeight, ts.TileWidth, ts.TileHeight)
			b.Draw(ts.Texture, src, dst)
			stats.Drawn++
		}
	}
	return stats
}
