package vmath

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// Test enumeration size and uniqueness
func TestEnumerateRangeCardinality(t *testing.T) {
	for r := 0; r <= 6; r++ {
		got := EnumerateRange(IVec2{3, -2}, r)
		want := (2*r + 1) * (2*r + 1)
		if len(got) != want {
			t.Errorf("radius %d: Expected %d indices, got %d", r, want, len(got))
		}
		seen := make(map[IVec2]bool, len(got))
		for _, idx := range got {
			if seen[idx] {
				t.Fatalf("radius %d: Expected unique indices, got duplicate %v", r, idx)
			}
			seen[idx] = true
			if !WithinRange(IVec2{3, -2}, idx, r) {
				t.Errorf("radius %d: Expected %v within range", r, idx)
			}
		}
	}
}

// Test rows descend in Y and columns ascend in X
func TestEnumerateRangeOrder(t *testing.T) {
	got := EnumerateRange(IVec2{0, 0}, 1)
	want := []IVec2{
		{-1, 1}, {0, 1}, {1, 1},
		{-1, 0}, {0, 0}, {1, 0},
		{-1, -1}, {0, -1}, {1, -1},
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d indices, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order:\n%s\ngot:\n%s", spew.Sdump(want), spew.Sdump(got))
		}
	}
}

func TestEnumerateRangeZeroAndNegative(t *testing.T) {
	center := IVec2{7, 7}

	zero := EnumerateRange(center, 0)
	if len(zero) != 1 || zero[0] != center {
		t.Errorf("Expected only the center, got %v", zero)
	}

	neg := EnumerateRange(center, -3)
	if len(neg) != 1 || neg[0] != center {
		t.Errorf("Expected negative radius to clamp to center, got %v", neg)
	}
}

func TestWithinRangeBoundary(t *testing.T) {
	c := IVec2{0, 0}
	if !WithinRange(c, IVec2{2, -2}, 2) {
		t.Error("Expected (2,-2) within radius 2")
	}
	if WithinRange(c, IVec2{3, 0}, 2) {
		t.Error("Expected (3,0) outside radius 2")
	}
	if WithinRange(c, IVec2{0, -3}, 2) {
		t.Error("Expected (0,-3) outside radius 2")
	}
}
