package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec2{}).Normalize(); !z.IsZero() {
		t.Errorf("zero Normalize() = %v, want zero", z)
	}
}

func TestVec2Clamp(t *testing.T) {
	lo := Vec2{0, 0}
	hi := Vec2{1472, 1280}

	tests := []struct {
		in   Vec2
		want Vec2
	}{
		{Vec2{-5, 10}, Vec2{0, 10}},
		{Vec2{1500, 1300}, Vec2{1472, 1280}},
		{Vec2{700, 400}, Vec2{700, 400}},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(lo, hi); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := NewRect(32, 64, 16, 8)
	if r.Max() != (Vec2{48, 72}) {
		t.Errorf("Rect.Max() = %v, want (48, 72)", r.Max())
	}
	moved := r.At(Vec2{1, 2})
	if moved != (Rect{1, 2, 16, 8}) {
		t.Errorf("Rect.At() = %v", moved)
	}
	if !(Rect{0, 0, 0, 4}).Empty() {
		t.Error("zero-width rect should be empty")
	}
}
