// Package tilemap implements tile set geometry and tile layers drawn with
// a camera-driven cull.
package tilemap

import (
	"fmt"

	"github.com/Faultbox/tilewalk/internal/engine/texture"
	"github.com/Faultbox/tilewalk/pkg/math"
)

// TileSet slices a texture atlas into equally sized tiles. Tile index i
// lives at column i%TilesWide, row i/TilesWide.
type TileSet struct {
	Texture    texture.Texture
	TilesWide  int
	TilesHigh  int
	TileWidth  int
	TileHeight int

	sources []math.Rect
}

// NewTileSet precomputes the source rectangle of every tile, row-major.
// Panics on non-positive dimensions.
func NewTileSet(tex texture.Texture, tilesWide, tilesHigh, tileWidth, tileHeight int) TileSet {
	if tilesWide <= 0 || tilesHigh <= 0 || tileWidth <= 0 || tileHeight <= 0 {
		panic(fmt.Sprintf("tilemap: invalid tile set %dx%d tiles of %dx%d",
			tilesWide, tilesHigh, tileWidth, tileHeight))
	}

	sources := make([]math.Rect, 0, tilesWide*tilesHigh)
	for y := 0; y < tilesHigh; y++ {
		for x := 0; x < tilesWide; x++ {
			sources = append(sources, math.NewRect(x*tileWidth, y*tileHeight, tileWidth, tileHeight))
		}
	}

	return TileSet{
		Texture:    tex,
		TilesWide:  tilesWide,
		TilesHigh:  tilesHigh,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		sources:    sources,
	}
}

// Len returns the number of tiles in the set.
func (ts TileSet) Len() int {
	return len(ts.sources)
}

// Source returns the source rectangle of tile index i.
func (ts TileSet) Source(i int) (math.Rect, bool) {
	if i < 0 || i >= len(ts.sources) {
		return math.Rect{}, false
	}
	return ts.sources[i], true
}

// TileSize returns the tile dimensions as a vector.
func (ts TileSet) TileSize() math.Vec2 {
	return math.Vec2{X: float32(ts.TileWidth), Y: float32(ts.TileHeight)}
}
