package game

import "github.com/Faultbox/tilewalk/internal/engine/tilemap"

const (
	levelWidth  = 48
	levelHeight = 42
)

// levelTiles is the built-in level, row-major. Ids are 1-based indexes into
// the tile set; 0 would leave a cell empty.
var levelTiles = []int{
	190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190,
	190, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 3, 35, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 190,
	190, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 35, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 190,
	190, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 35, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 190,
	190, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 35, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 190,
	190, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 35, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 190,
	190, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 4, 35, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 190,
	190, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 1, 35, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 190,
	190, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 35, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 121, 121, 121, 121, 121, 121, 121, 121, 3, 2, 1, 7, 3, 2, 1, 4, 3, 190,
	190, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 35, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 121, 120, 120, 120, 120, 120, 120, 121, 4, 3, 2, 1, 4, 3, 2, 1, 4, 190,
	190, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 7, 35, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 121, 120, 120, 120, 120, 120, 120, 121, 1, 4, 3, 2, 1, 4, 3, 2, 1, 190,
	190, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 35, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 121, 120, 120, 120, 120, 120, 120, 121, 2, 1, 4, 3, 7, 1, 4, 3, 2, 190,
	190, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 35, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 121, 120, 120, 120, 120, 120, 120, 121, 3, 2, 1, 4, 3, 2, 1, 4, 3, 190,
	190, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 35, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 121, 120, 120, 120, 120, 120, 120, 121, 4, 3, 2, 1, 4, 3, 2, 1, 4, 190,
	190, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 35, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 121, 121, 121, 121, 121, 121, 121, 121, 1, 4, 3, 2, 1, 7, 3, 2, 1, 190,
	190, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 35, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 190,
	190, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 35, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 190,
	190, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 35, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 190,
	190, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 35, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 190,
	190, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 35, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 190,
	190, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 190,
	190, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 35, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 190,
	190, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 35, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 190,
	190, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 35, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 190,
	190, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 35, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 190,
	190, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 35, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 190,
	190, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 35, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 190,
	190, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 35, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 190,
	190, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 35, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 190,
	190, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 35, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 190,
	190, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 35, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 190,
	190, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 35, 3, 2, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 190,
	190, 4, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 35, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 190,
	190, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 35, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 190,
	190, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 35, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 190,
	190, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 35, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 190,
	190, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 35, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 190,
	190, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 35, 1, 4, 3, 2, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 190,
	190, 2, 1, 4, 3, 7, 1, 4, 3, 2, 1, 4, 35, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 190,
	190, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 35, 7, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 190,
	190, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 35, 4, 3, 2, 1, 4, 3, 2, 1, 7, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 7, 4, 3, 190,
	190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190, 190,
}

// BuiltinLevel returns the level used when no map file is configured.
func BuiltinLevel() tilemap.Layer {
	tiles := make([]int, len(levelTiles))
	copy(tiles, levelTiles)
	return tilemap.NewLayer(tiles, levelWidth, levelHeight)
}
