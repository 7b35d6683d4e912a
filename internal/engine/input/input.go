// Package input describes player input for one tick. The window package
// fills it from SDL; game logic only ever sees a Snapshot.
package input

// Snapshot is the state of the movement keys and exit controls at the start
// of a tick. It is immutable once produced.
type Snapshot struct {
	Up    bool // W
	Down  bool // S
	Left  bool // A
	Right bool // D

	// Quit is set by Escape or the window close button.
	Quit bool
	// Back is set by the gamepad BACK button.
	Back bool
}

// Exit reports whether the player asked to leave.
func (s Snapshot) Exit() bool {
	return s.Quit || s.Back
}

// Moving reports whether any movement key is held.
func (s Snapshot) Moving() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// EventType identifies a window event that game code reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event is a processed window event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
}

// Key is a logical key the game binds actions to.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
	KeyF11
	KeyF12
)

// Keys holds the pressed state of logical keys.
type Keys map[Key]bool

// Snapshot builds a movement snapshot from held keys. back is the gamepad
// BACK button; quit is a pending close request.
func (k Keys) Snapshot(back, quit bool) Snapshot {
	return Snapshot{
		Up:    k[KeyW],
		Down:  k[KeyS],
		Left:  k[KeyA],
		Right: k[KeyD],
		Quit:  quit || k[KeyEscape],
		Back:  back,
	}
}
