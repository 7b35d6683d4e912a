package sprite

import (
	"testing"

	"github.com/Faultbox/tilewalk/internal/engine/animation"
	"github.com/Faultbox/tilewalk/internal/engine/render"
	"github.com/Faultbox/tilewalk/internal/engine/texture"
	"github.com/Faultbox/tilewalk/pkg/math"
)

var sheet = texture.Texture{ID: 7, Width: 576, Height: 256}

func testTable() [KeyCount]animation.Animation {
	size := math.Vec2{X: 64, Y: 64}
	var anims [KeyCount]animation.Animation
	for k := Key(0); k < KeyCount; k++ {
		frames := 9
		if !k.IsWalk() {
			frames = 1
		}
		row := float32(k % 4)
		anims[k] = animation.New(frames, math.Vec2{Y: row * 64}, size, 4)
	}
	return anims
}

func newPlayer() Animated {
	return NewAnimated(sheet, testTable(), math.Vec2{X: 100, Y: 100}, 200, IdleDown)
}

func TestKeyIdle(t *testing.T) {
	tests := []struct {
		in, want Key
	}{
		{WalkDown, IdleDown},
		{WalkUp, IdleUp},
		{WalkLeft, IdleLeft},
		{WalkRight, IdleRight},
		{IdleLeft, IdleLeft},
		{IdleUp, IdleUp},
	}
	for _, tt := range tests {
		if got := tt.in.Idle(); got != tt.want {
			t.Errorf("%v.Idle() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	for k := Key(0); k < KeyCount; k++ {
		got, err := ParseKey(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKey(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKey("run-left"); err == nil {
		t.Error("expected error for unknown key")
	}
	if s := Key(12).String(); s != "Key(12)" {
		t.Errorf("invalid key String() = %q", s)
	}
}

func TestNewAnimated_PanicsOnMissingAnimation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	anims := testTable()
	anims[WalkLeft] = animation.Animation{}
	NewAnimated(sheet, anims, math.Vec2{}, 1, IdleDown)
}

func TestUpdate_SameKeyAdvancesWhileMoving(t *testing.T) {
	p := newPlayer()
	p = p.Update(WalkRight, p.Position, true, 0) // select walk-right

	next := p.Update(WalkRight, math.Vec2{X: 110, Y: 100}, true, 0.25)
	if got := next.Animation(WalkRight).Index(); got != 1 {
		t.Errorf("walk-right frame = %d, want 1", got)
	}
	if !next.Animating {
		t.Error("Animating should be true while moving")
	}
	if next.Position != (math.Vec2{X: 110, Y: 100}) {
		t.Errorf("Position = %v", next.Position)
	}
	if p.Animation(WalkRight).Index() != 0 {
		t.Error("previous snapshot was mutated")
	}
}

func TestUpdate_SameKeyHoldsWhenNotMoving(t *testing.T) {
	p := newPlayer()
	next := p.Update(IdleDown, p.Position, false, 1)

	if next.Animation(IdleDown).Timer() != 0 {
		t.Errorf("idle timer = %v, want 0", next.Animation(IdleDown).Timer())
	}
	if next.Animating {
		t.Error("Animating should be false")
	}
}

func TestUpdate_KeySwitchResetsNewAnimation(t *testing.T) {
	p := newPlayer()
	p = p.Update(WalkLeft, p.Position, true, 0)
	for i := 0; i < 3; i++ {
		p = p.Update(WalkLeft, p.Position, true, 0.25)
	}
	p = p.Update(WalkLeft, p.Position, true, 0.1)
	if p.Animation(WalkLeft).Index() != 3 {
		t.Fatalf("setup: walk-left frame = %d", p.Animation(WalkLeft).Index())
	}

	// Leave walk-left mid-cycle and come back: it must restart at frame 0.
	p = p.Update(WalkUp, p.Position, true, 0.25)
	if p.Current != WalkUp || p.Animation(WalkUp).Index() != 0 {
		t.Errorf("walk-up after switch: key %v frame %d", p.Current, p.Animation(WalkUp).Index())
	}

	p = p.Update(WalkLeft, p.Position, true, 0.25)
	a := p.Animation(WalkLeft)
	if a.Index() != 0 || a.Timer() != 0 {
		t.Errorf("walk-left after switch back = (%d, %v), want (0, 0)", a.Index(), a.Timer())
	}
}

func TestAnimatedDraw(t *testing.T) {
	p := newPlayer()
	p = p.Update(WalkDown, math.Vec2{X: 40, Y: 80}, true, 0)
	p = p.Update(WalkDown, math.Vec2{X: 40, Y: 80}, true, 0.25)

	var rec render.Recorder
	p.Draw(&rec)

	if len(rec.Calls) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(rec.Calls))
	}
	call := rec.Calls[0]
	if call.Texture != sheet {
		t.Errorf("texture = %v", call.Texture)
	}
	wantSrc := math.Rect{X: 64, Y: 0, W: 64, H: 64}
	if call.Src != wantSrc {
		t.Errorf("src = %v, want %v", call.Src, wantSrc)
	}
	if call.Dst != (math.Rect{X: 40, Y: 80, W: 64, H: 64}) {
		t.Errorf("dst = %v", call.Dst)
	}
}

func TestStaticDraw(t *testing.T) {
	s := Sprite{
		Texture:  texture.Texture{ID: 2, Width: 128, Height: 128},
		Source:   math.Rect{X: 32, Y: 0, W: 32, H: 48},
		Position: math.Vec2{X: 300, Y: 200},
	}
	var rec render.Recorder
	s.Draw(&rec)

	if len(rec.Calls) != 1 || rec.Calls[0].Dst != (math.Rect{X: 300, Y: 200, W: 32, H: 48}) {
		t.Errorf("calls = %+v", rec.Calls)
	}
}
