package weft

import "testing"

// TestDiffGrid ports the literal differ scenario terminal.rs's
// test_diff_grid exercises: a handful of overlapping writes against a
// grid already holding "Hello World!" and an emoji, checked against the
// exact expected operation sequence (style batching, cursor-position
// elision, double-wide glyph handling, the trailing background reset).
func TestDiffGrid(t *testing.T) {
	oldGrid := NewGrid(Vec2[uint16]{X: 16, Y: 8})
	oldGrid.Write(Vec2[uint16]{X: 2, Y: 5}, "Hello World!", DefaultStyle())
	oldGrid.Write(Vec2[uint16]{X: 3, Y: 6}, "\U0001F603", DefaultStyle())

	newGrid := NewGrid(Vec2[uint16]{X: 16, Y: 8})
	copy(newGrid.cells, oldGrid.cells)

	style := Style{Foreground: Basic(Red), Background: Basic(Blue)}.Bold().Underlined()
	newGrid.Write(Vec2[uint16]{X: 15, Y: 2}, "abcd", style)
	style.Foreground = Basic(Green)
	newGrid.Write(Vec2[uint16]{X: 1, Y: 5}, "foo", style)
	newGrid.Write(Vec2[uint16]{X: 4, Y: 6}, "\U0001F603", style)

	held := &heldState{}
	ops := Diff(oldGrid, newGrid, held)

	want := []Operation{
		{Kind: OpSetForeground, Color: Basic(Red)},
		{Kind: OpSetBackground, Color: Basic(Blue)},
		{Kind: OpSetIntensity, Intensity: IntensityBold},
		{Kind: OpSetUnderlined, Bool: true},
		{Kind: OpSetCursorPos, Pos: Vec2[uint16]{X: 15, Y: 2}},
		{Kind: OpWrite, Text: "a"},
		{Kind: OpSetForeground, Color: Basic(Green)},
		{Kind: OpSetCursorPos, Pos: Vec2[uint16]{X: 1, Y: 5}},
		{Kind: OpWrite, Text: "f"},
		{Kind: OpWrite, Text: "o"},
		{Kind: OpWrite, Text: "o"},
		{Kind: OpSetForeground, Color: DefaultColor()},
		{Kind: OpSetBackground, Color: DefaultColor()},
		{Kind: OpSetIntensity, Intensity: IntensityNormal},
		{Kind: OpSetUnderlined, Bool: false},
		{Kind: OpSetCursorPos, Pos: Vec2[uint16]{X: 3, Y: 6}},
		{Kind: OpWrite, Text: " "},
		{Kind: OpSetForeground, Color: Basic(Green)},
		{Kind: OpSetBackground, Color: Basic(Blue)},
		{Kind: OpSetIntensity, Intensity: IntensityBold},
		{Kind: OpSetUnderlined, Bool: true},
		{Kind: OpWrite, Text: "\U0001F603"},
		{Kind: OpSetBackground, Color: DefaultColor()},
	}

	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d\ngot:  %+v\nwant: %+v", len(ops), len(want), ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d: got %+v, want %+v", i, ops[i], want[i])
		}
	}
}

// TestDiffSkipsEqualCells confirms unchanged cells produce no operations
// beyond the unconditional trailing background reset.
func TestDiffSkipsEqualCells(t *testing.T) {
	old := NewGrid(Vec2[uint16]{X: 4, Y: 1})
	old.Write(Vec2[uint16]{X: 0, Y: 0}, "ab", DefaultStyle())
	new_ := NewGrid(Vec2[uint16]{X: 4, Y: 1})
	copy(new_.cells, old.cells)

	held := &heldState{}
	ops := Diff(old, new_, held)

	if len(ops) != 1 || ops[0].Kind != OpSetBackground {
		t.Fatalf("expected only the trailing background reset, got %+v", ops)
	}
}

func TestDiffCursorShowHidePosition(t *testing.T) {
	held := &heldState{}

	ops := DiffCursor(nil, &Cursor{Pos: Vec2[uint16]{X: 2, Y: 3}, Shape: CursorBar, Blinking: true}, held)
	want := []Operation{
		{Kind: OpShowCursor},
		{Kind: OpSetCursorShape, Shape: CursorBar},
		{Kind: OpSetCursorBlinking, Bool: true},
		{Kind: OpSetCursorPos, Pos: Vec2[uint16]{X: 2, Y: 3}},
	}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d: %+v", len(ops), len(want), ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d: got %+v, want %+v", i, ops[i], want[i])
		}
	}

	old := &Cursor{Pos: Vec2[uint16]{X: 2, Y: 3}, Shape: CursorBar, Blinking: true}
	hideOps := DiffCursor(old, nil, held)
	if len(hideOps) != 1 || hideOps[0].Kind != OpHideCursor {
		t.Fatalf("expected a single hide op, got %+v", hideOps)
	}
}

func TestDiffCursorNoOpWhenUnchanged(t *testing.T) {
	held := &heldState{cursorPos: Vec2[uint16]{X: 5, Y: 5}}
	cur := &Cursor{Pos: Vec2[uint16]{X: 5, Y: 5}, Shape: CursorBlock, Blinking: false}
	ops := DiffCursor(cur, cur, held)
	if len(ops) != 0 {
		t.Fatalf("expected no ops for an unchanged cursor, got %+v", ops)
	}
}
