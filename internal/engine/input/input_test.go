package input

import "testing"

func TestKeysSnapshot(t *testing.T) {
	tests := []struct {
		name       string
		keys       Keys
		back, quit bool
		want       Snapshot
	}{
		{"none", Keys{}, false, false, Snapshot{}},
		{"wasd", Keys{KeyW: true, KeyD: true}, false, false, Snapshot{Up: true, Right: true}},
		{"escape", Keys{KeyEscape: true}, false, false, Snapshot{Quit: true}},
		{"close", nil, false, true, Snapshot{Quit: true}},
		{"back", nil, true, false, Snapshot{Back: true}},
		{"released", Keys{KeyA: false}, false, false, Snapshot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.keys.Snapshot(tt.back, tt.quit)
			if got != tt.want {
				t.Errorf("Snapshot() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSnapshotExit(t *testing.T) {
	if (Snapshot{}).Exit() {
		t.Error("empty snapshot should not exit")
	}
	if !(Snapshot{Quit: true}).Exit() {
		t.Error("Quit should exit")
	}
	if !(Snapshot{Back: true}).Exit() {
		t.Error("Back should exit")
	}
	if (Snapshot{Up: true, Left: true}).Exit() {
		t.Error("movement should not exit")
	}
}

func TestSnapshotMoving(t *testing.T) {
	if (Snapshot{Quit: true}).Moving() {
		t.Error("Quit is not movement")
	}
	if !(Snapshot{Down: true}).Moving() {
		t.Error("Down should be movement")
	}
}
