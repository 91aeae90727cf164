package weft

import "testing"

// TestSpanDraw ports the shape of original_source/src/elements/span.rs's
// test_span: drawing a span into a grid narrower than its text truncates
// at the grid edge, and only the written row picks up the span's style.
func TestSpanDraw(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 3, Y: 2})
	style := Style{Foreground: Basic(Black), Background: Basic(White)}
	span := (&Span[struct{}]{Text: "asdf", Style: style})

	span.Draw(NewGridOutput(&Buffer{Grid: g}))

	got := gridContents(g)
	want := []string{"asd", "   "}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}

	for x := uint16(0); x < 3; x++ {
		top := g.Get(Vec2[uint16]{X: x, Y: 0})
		if !top.Style.Equal(style) {
			t.Errorf("top row cell %d style = %+v, want %+v", x, top.Style, style)
		}
		bottom := g.Get(Vec2[uint16]{X: x, Y: 1})
		if !bottom.Style.Equal(DefaultStyle()) {
			t.Errorf("bottom row cell %d style = %+v, want default", x, bottom.Style)
		}
	}
}

func TestSpanWidthHeight(t *testing.T) {
	span := NewSpan[struct{}]("hello")
	min, max := span.Width(nil)
	if min != 5 || max != 5 {
		t.Errorf("Width() = (%d, %d), want (5, 5)", min, max)
	}
	min, max = span.Height(nil)
	if min != 1 || max != 1 {
		t.Errorf("Height() = (%d, %d), want (1, 1)", min, max)
	}
}

func TestSpanFluentBuilders(t *testing.T) {
	base := NewSpan[struct{}]("x")
	styled := base.Fg(Basic(Red)).Bg(Basic(Blue)).Bold()
	if base.Style.Foreground != DefaultColor() {
		t.Error("Fg/Bg/Bold should not mutate the receiver")
	}
	if styled.Style.Foreground != Basic(Red) || styled.Style.Background != Basic(Blue) {
		t.Errorf("styled.Style = %+v, want fg=Red bg=Blue", styled.Style)
	}
	if styled.Style.Attributes.Intensity != IntensityBold {
		t.Errorf("styled intensity = %v, want bold", styled.Style.Attributes.Intensity)
	}
}
