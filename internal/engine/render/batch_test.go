package render

import (
	"testing"

	"github.com/Faultbox/tilewalk/internal/engine/texture"
	"github.com/Faultbox/tilewalk/pkg/math"
)

func TestRecorder(t *testing.T) {
	var rec Recorder
	tex := texture.Texture{ID: 4, Width: 32, Height: 32}
	tr := math.Translate(5, 6, 0)

	rec.Begin(tr)
	rec.Draw(tex, math.NewRect(0, 0, 16, 16), math.NewRect(10, 10, 16, 16))
	rec.Draw(tex, math.NewRect(16, 0, 16, 16), math.NewRect(26, 10, 16, 16))
	rec.End()

	if rec.Transform != tr {
		t.Error("transform not recorded")
	}
	if len(rec.Calls) != 2 || rec.Begun != 1 || rec.Ended != 1 {
		t.Fatalf("calls=%d begun=%d ended=%d", len(rec.Calls), rec.Begun, rec.Ended)
	}
	if rec.Calls[1].Src.X != 16 {
		t.Errorf("second call src = %v", rec.Calls[1].Src)
	}

	// A new frame starts empty
	rec.Begin(math.Identity())
	if len(rec.Calls) != 0 {
		t.Errorf("calls after Begin = %d, want 0", len(rec.Calls))
	}
}

func TestCounter(t *testing.T) {
	var rec Recorder
	c := &Counter{Batch: &rec}
	tex := texture.Texture{ID: 1, Width: 8, Height: 8}

	for frame := 0; frame < 2; frame++ {
		c.Begin(math.Identity())
		for i := 0; i < 3; i++ {
			c.Draw(tex, math.NewRect(0, 0, 8, 8), math.NewRect(i*8, 0, 8, 8))
		}
		c.End()
	}

	if c.Quads != 3 {
		t.Errorf("Quads = %d, want 3 per frame", c.Quads)
	}
	if len(rec.Calls) != 3 || rec.Ended != 2 {
		t.Errorf("wrapped batch saw %d calls, %d ends", len(rec.Calls), rec.Ended)
	}
}
