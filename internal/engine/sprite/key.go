// Package sprite provides the directional animated sprite and static
// sprites drawn on top of the tile map.
package sprite

import "fmt"

// Key selects one of the eight fixed animations of an Animated sprite.
type Key int

// Animation keys, idle and walk for each facing.
const (
	IdleDown Key = iota
	IdleUp
	IdleLeft
	IdleRight
	WalkDown
	WalkUp
	WalkLeft
	WalkRight

	// KeyCount is the number of animation keys.
	KeyCount = 8
)

var keyNames = [KeyCount]string{
	IdleDown:  "idle-down",
	IdleUp:    "idle-up",
	IdleLeft:  "idle-left",
	IdleRight: "idle-right",
	WalkDown:  "walk-down",
	WalkUp:    "walk-up",
	WalkLeft:  "walk-left",
	WalkRight: "walk-right",
}

// Valid reports whether k is one of the eight keys.
func (k Key) Valid() bool {
	return k >= 0 && k < KeyCount
}

// IsWalk reports whether k is a walking animation.
func (k Key) IsWalk() bool {
	return k >= WalkDown && k <= WalkRight
}

// Idle returns the idle animation facing the same way as k.
// Idle keys map to themselves.
func (k Key) Idle() Key {
	if k.IsWalk() {
		return k - WalkDown + IdleDown
	}
	return k
}

// String returns the config name of the key, e.g. "walk-left".
func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey resolves a config name back to its Key.
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("unknown animation key %q", name)
}
