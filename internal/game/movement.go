package game

import (
	"github.com/Faultbox/tilewalk/internal/engine/input"
	"github.com/Faultbox/tilewalk/internal/engine/sprite"
	"github.com/Faultbox/tilewalk/pkg/math"
)

// movement is one entry of the direction table. Entries are tried in order
// and the first whose keys are all held wins, so diagonals come first.
type movement struct {
	held func(input.Snapshot) bool
	dir  math.Vec2
	key  sprite.Key
}

var movements = [...]movement{
	{func(s input.Snapshot) bool { return s.Up && s.Left }, math.Vec2{X: -1, Y: -1}, sprite.WalkLeft},
	{func(s input.Snapshot) bool { return s.Up && s.Right }, math.Vec2{X: 1, Y: -1}, sprite.WalkRight},
	{func(s input.Snapshot) bool { return s.Down && s.Left }, math.Vec2{X: -1, Y: 1}, sprite.WalkLeft},
	{func(s input.Snapshot) bool { return s.Down && s.Right }, math.Vec2{X: 1, Y: 1}, sprite.WalkRight},
	{func(s input.Snapshot) bool { return s.Up }, math.Vec2{X: 0, Y: -1}, sprite.WalkUp},
	{func(s input.Snapshot) bool { return s.Down }, math.Vec2{X: 0, Y: 1}, sprite.WalkDown},
	{func(s input.Snapshot) bool { return s.Left }, math.Vec2{X: -1, Y: 0}, sprite.WalkLeft},
	{func(s input.Snapshot) bool { return s.Right }, math.Vec2{X: 1, Y: 0}, sprite.WalkRight},
}

// ResolveMovement maps held keys to an unnormalized direction and the
// animation to show. With nothing held the direction is zero and the sprite
// idles facing its current direction.
func ResolveMovement(in input.Snapshot, current sprite.Key) (math.Vec2, sprite.Key) {
	for _, m := range movements {
		if m.held(in) {
			return m.dir, m.key
		}
	}
	return math.Vec2{}, current.Idle()
}
