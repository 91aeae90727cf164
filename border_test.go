package weft

import (
	"io"
	"testing"
)

func TestBorderDrawCornersAndSides(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 5, Y: 4})
	b := BorderThin[struct{}]()
	inner := NewSpan[struct{}]("hi")

	b.Draw(inner, NewGridOutput(&Buffer{Grid: g}))

	got := gridContents(g)
	want := []string{
		"┌───┐",
		"│hi │",
		"│   │",
		"└───┘",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBorderPaddedWidensHorizontalBorder(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 7, Y: 3})
	b := BorderThin[struct{}]()
	b.Padded = true
	inner := NewSpan[struct{}]("ab")

	b.Draw(inner, NewGridOutput(&Buffer{Grid: g}))

	got := gridContents(g)
	if got[1] != "│ ab  │" {
		t.Errorf("padded middle row = %q, want %q", got[1], "│ ab  │")
	}
}

func TestBorderTopTitleAlignment(t *testing.T) {
	g := NewGrid(Vec2[uint16]{X: 10, Y: 3})
	b := BorderThin[struct{}]().TopTitle(AlignMiddle)
	inner := NewFiltered[struct{}](NewSpan[struct{}](""), NewTitle[struct{}]("ok"))

	b.Draw(inner, NewGridOutput(&Buffer{Grid: g}))

	got := gridContents(g)
	if got[0] != "┌───ok───┐" {
		t.Errorf("top row = %q, want %q", got[0], "┌───ok───┐")
	}
}

func TestBorderWidthHeightGrowByBorderThickness(t *testing.T) {
	b := BorderThin[struct{}]()
	inner := NewSpan[struct{}]("abcd")

	min, max := b.Width(inner, nil)
	if min != 6 || max != 6 {
		t.Errorf("Width() = (%d, %d), want (6, 6)", min, max)
	}
	min, max = b.Height(inner, nil)
	if min != 3 || max != 3 {
		t.Errorf("Height() = (%d, %d), want (3, 3)", min, max)
	}
}

func TestBorderHandleTranslatesAndRejectsEdgeClicks(t *testing.T) {
	b := BorderThin[clickEvent]()

	var seen *Mouse
	recorder := elementFunc[clickEvent]{
		handle: func(in Input, sink Sink[clickEvent]) {
			m := in.Mouse
			seen = &m
		},
	}

	size := Vec2[uint16]{X: 10, Y: 5}
	sink := &Collector[clickEvent]{}

	// A click on the border itself should not reach the inner element.
	b.Handle(recorder, MouseInput(Mouse{Kind: MousePress, At: Vec2[uint16]{X: 0, Y: 0}, Size: size}), sink)
	if seen != nil {
		t.Fatalf("expected a border click to be dropped, got %+v", seen)
	}

	// A click inside the border should translate by (1, 1).
	b.Handle(recorder, MouseInput(Mouse{Kind: MousePress, At: Vec2[uint16]{X: 3, Y: 2}, Size: size}), sink)
	if seen == nil {
		t.Fatal("expected the inner click to be forwarded")
	}
	if seen.At != (Vec2[uint16]{X: 2, Y: 1}) {
		t.Errorf("translated At = %+v, want {2 1}", seen.At)
	}
	if seen.Size != (Vec2[uint16]{X: 8, Y: 3}) {
		t.Errorf("translated Size = %+v, want {8 3}", seen.Size)
	}
}

// elementFunc is a minimal test double implementing Element via closures.
type elementFunc[Event any] struct {
	draw   func(Output)
	title  func(w io.Writer) error
	handle func(Input, Sink[Event])
}

func (e elementFunc[Event]) Draw(out Output) {
	if e.draw != nil {
		e.draw(out)
	}
}

func (e elementFunc[Event]) Title(w io.Writer) error {
	if e.title != nil {
		return e.title(w)
	}
	return nil
}

func (e elementFunc[Event]) Width(_ *uint16) (min, max uint16) { return 0, 0 }

func (e elementFunc[Event]) Height(_ *uint16) (min, max uint16) { return 0, 0 }

func (e elementFunc[Event]) Handle(input Input, sink Sink[Event]) {
	if e.handle != nil {
		e.handle(input, sink)
	}
}
