package weft

import "testing"

// TestVec2 ports the literal assertions of original_source/src/vec2.rs's
// vec_test: sum/product, swap (value and in-place), min/max/min-max, and
// saturating addition.
func TestVec2(t *testing.T) {
	vec := NewVec2[uint16](5, 6)
	if got := vec.Sum(); got != 11 {
		t.Errorf("Sum() = %d, want 11", got)
	}
	if got := vec.Product(); got != 30 {
		t.Errorf("Product() = %d, want 30", got)
	}

	if got := vec.Swap(); got != (Vec2[uint16]{X: 6, Y: 5}) {
		t.Errorf("Swap() = %+v, want {6 5}", got)
	}
	vec.Swapped()
	if vec != (Vec2[uint16]{X: 6, Y: 5}) {
		t.Errorf("after Swapped(): %+v, want {6 5}", vec)
	}

	other := NewVec2[uint16](2, 7)

	if got := vec.Min(other); got != (Vec2[uint16]{X: 2, Y: 5}) {
		t.Errorf("Min() = %+v, want {2 5}", got)
	}
	if got := vec.Max(other); got != (Vec2[uint16]{X: 6, Y: 7}) {
		t.Errorf("Max() = %+v, want {6 7}", got)
	}
	gotMin, gotMax := vec.MinMax(other)
	if gotMin != vec.Min(other) || gotMax != vec.Max(other) {
		t.Errorf("MinMax() = (%+v, %+v), want (%+v, %+v)", gotMin, gotMax, vec.Min(other), vec.Max(other))
	}

	if got := vec.Add(other); got != (Vec2[uint16]{X: 8, Y: 12}) {
		t.Errorf("Add() = %+v, want {8 12}", got)
	}
	other = other.Add(vec)
	if other != (Vec2[uint16]{X: 8, Y: 12}) {
		t.Errorf("after Add(): %+v, want {8 12}", other)
	}
}

func TestVec2SaturatingArith(t *testing.T) {
	max := NewVec2[uint16](65535, 65535)
	if got := max.Add(NewVec2[uint16](1, 1)); got != max {
		t.Errorf("saturating Add() = %+v, want %+v", got, max)
	}

	zero := NewVec2[uint16](0, 0)
	if got := zero.Sub(NewVec2[uint16](1, 1)); got != zero {
		t.Errorf("saturating Sub() = %+v, want %+v", got, zero)
	}
}

func TestMapVec2(t *testing.T) {
	v := NewVec2[uint16](3, 4)
	got := MapVec2(v, func(n uint16) uint32 { return uint32(n) * 2 })
	if got != (Vec2[uint32]{X: 6, Y: 8}) {
		t.Errorf("MapVec2() = %+v, want {6 8}", got)
	}
}
