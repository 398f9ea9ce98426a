package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 26, 26), NewRect(20, 20, 16, 16), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"touching right edge", NewRect(0, 0, 16, 16), NewRect(16, 0, 16, 16), false},
		{"touching bottom edge", NewRect(0, 0, 16, 16), NewRect(0, 16, 16, 16), false},
		{"contained", NewRect(0, 0, 32, 32), NewRect(11, 11, 6, 8), true},
		{"single pixel", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersectsAnyAll(t *testing.T) {
	probe := NewRect(10, 10, 10, 10)
	list := []Rect{
		NewRect(100, 100, 5, 5),
		NewRect(15, 15, 5, 5),
		NewRect(0, 0, 11, 11),
	}

	if got := probe.IntersectsAny(list); got != 1 {
		t.Errorf("IntersectsAny() = %d, expected 1", got)
	}
	hits := probe.IntersectsAll(list)
	if len(hits) != 2 || hits[0] != 1 || hits[1] != 2 {
		t.Errorf("IntersectsAll() = %v, expected [1 2]", hits)
	}
	if got := NewRect(50, 50, 1, 1).IntersectsAny(list); got != -1 {
		t.Errorf("IntersectsAny() = %d, expected -1", got)
	}
}

func TestRectMoveAndInside(t *testing.T) {
	field := NewRect(0, 0, 416, 416)
	r := NewRect(387, 3, 26, 26)

	if !r.Inside(field) {
		t.Error("tank at right spawn should be inside field")
	}
	if r.Move(4, 0).Inside(field) {
		t.Error("tank moved past right edge should not be inside field")
	}
	if got := r.At(Pt(0, 0)); got != NewRect(0, 0, 26, 26) {
		t.Errorf("At() = %+v", got)
	}
	if got := r.TopLeft().Add(Pt(1, 2)); got != Pt(388, 5) {
		t.Errorf("TopLeft().Add() = %+v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("%s: Contains(%d, %d) = %v, expected %v", tc.name, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		num, base, expected int
	}{
		{0, 16, 0},
		{7, 16, 0},
		{8, 16, 16},
		{30, 16, 32},
		{131, 8, 128},
		{-9, 16, -16},
	}

	for _, tc := range tests {
		if got := Nearest(tc.num, tc.base); got != tc.expected {
			t.Errorf("Nearest(%d, %d) = %d, expected %d", tc.num, tc.base, got, tc.expected)
		}
	}
}
