package weft

import "testing"

func gridContents(g *Grid) []string {
	lines := g.Lines()
	out := make([]string, len(lines))
	for y, row := range lines {
		s := ""
		for _, c := range row {
			if c.Kind == CellContinuation {
				continue
			}
			s += c.Contents
		}
		out[y] = s
	}
	return out
}

func TestGridWriteBasic(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 5, Y: 2})
	g.Write(Vec2[uint16]{X: 0, Y: 0}, "hello", DefaultStyle())
	got := gridContents(g)
	if got[0] != "hello" {
		t.Errorf("row 0 = %q, want %q", got[0], "hello")
	}
	if got[1] != "     " {
		t.Errorf("row 1 = %q, want all blanks", got[1])
	}
}

func TestGridWriteDoubleWideLastColumnDegrades(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 3, Y: 1})
	g.Write(Vec2[uint16]{X: 0, Y: 0}, "ab\U0001F603", DefaultStyle())
	cell2 := g.Get(Vec2[uint16]{X: 2, Y: 0})
	if cell2.Kind != CellChar || cell2.Contents != " " {
		t.Errorf("last-column double-wide glyph should degrade to blank, got %+v", cell2)
	}
}

func TestGridWriteOverwriteOrphansNeighbor(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 4, Y: 1})
	g.Write(Vec2[uint16]{X: 0, Y: 0}, "\U0001F603", DefaultStyle())
	if g.Get(Vec2[uint16]{X: 1, Y: 0}).Kind != CellContinuation {
		t.Fatalf("expected a continuation cell at x=1 before overwrite")
	}
	g.Write(Vec2[uint16]{X: 0, Y: 0}, "x", DefaultStyle())
	right := g.Get(Vec2[uint16]{X: 1, Y: 0})
	if right.Kind != CellChar || right.Contents != " " {
		t.Errorf("overwriting a double-wide glyph should blank its orphaned continuation, got %+v", right)
	}
}

func TestGridResizeWidthTruncatesOrphanedDouble(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 4, Y: 1})
	g.Write(Vec2[uint16]{X: 2, Y: 0}, "\U0001F603", DefaultStyle())
	g.ResizeWidth(3)
	last := g.Get(Vec2[uint16]{X: 2, Y: 0})
	if last.Kind != CellChar || last.Contents != " " {
		t.Errorf("truncating onto a continuation should blank the preceding double-wide, got %+v", last)
	}
}

func TestGridResizeWidthPadsOnRight(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 2, Y: 1})
	g.Write(Vec2[uint16]{X: 0, Y: 0}, "ab", DefaultStyle())
	g.ResizeWidth(4)
	if got := gridContents(g); got[0] != "ab  " {
		t.Errorf("contents after pad = %q, want %q", got[0], "ab  ")
	}
}

func TestResizeHeightWithAnchorShrinkFarSideFirst(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 1, Y: 5})
	for y := uint16(0); y < 5; y++ {
		g.Write(Vec2[uint16]{X: 0, Y: y}, string(rune('0'+y)), DefaultStyle())
	}
	// anchor at row 1 (distance 1 from top, 3 from bottom): shrinking by 2
	// should remove from the bottom (farther side) first.
	g.ResizeHeightWithAnchor(3, 1)
	got := gridContents(g)
	want := []string{"0", "1", "2"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("row %d = %q, want %q", i, got[i], w)
		}
	}
}

func TestResizeHeightWithAnchorGrowFarSideFirst(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 1, Y: 3})
	for y := uint16(0); y < 3; y++ {
		g.Write(Vec2[uint16]{X: 0, Y: y}, string(rune('0'+y)), DefaultStyle())
	}
	// anchor at row 2 (distance 2 from top, 0 from bottom): growing by 2
	// should add blank rows above (farther side) first, keeping the
	// anchor row's content at the same visual offset from the top once
	// accounting for the new rows above it.
	g.ResizeHeightWithAnchor(5, 2)
	got := gridContents(g)
	want := []string{" ", " ", "0", "1", "2"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("row %d = %q, want %q", i, got[i], w)
		}
	}
}

// TestResizeHeightWithAnchorTiedDistanceTrimsSymmetrically covers the
// tied-distance case (anchor equidistant from both edges): one row is
// removed from each side rather than all from one end. This follows the
// spec's own "trimmed symmetrically" parenthetical over its headline claim
// that the anchor row keeps its absolute index, since the two read as
// contradictory and the parenthetical matches splitTrim's tie-breaking.
func TestResizeHeightWithAnchorTiedDistanceTrimsSymmetrically(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 1, Y: 5})
	for y := uint16(0); y < 5; y++ {
		g.Write(Vec2[uint16]{X: 0, Y: y}, string(rune('0'+y)), DefaultStyle())
	}
	g.ResizeHeightWithAnchor(3, 2)
	got := gridContents(g)
	want := []string{"1", "2", "3"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("row %d = %q, want %q", i, got[i], w)
		}
	}
}

func TestGridInBoundsAndGet(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 2, Y: 2})
	if !g.InBounds(Vec2[uint16]{X: 1, Y: 1}) {
		t.Error("expected (1,1) in bounds for a 2x2 grid")
	}
	if g.InBounds(Vec2[uint16]{X: 2, Y: 0}) {
		t.Error("expected (2,0) out of bounds for a 2x2 grid")
	}
	if got := g.Get(Vec2[uint16]{X: 5, Y: 5}); !got.Equal(BlankCell()) {
		t.Errorf("out-of-bounds Get() = %+v, want a blank cell", got)
	}
}
