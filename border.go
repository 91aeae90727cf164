package weft

import "io"

// Border draws a box of corner/side glyphs around an inner element,
// optionally labeling the top and/or bottom edge with the inner element's
// title. Grounded on
// original_source/src/elements/filter/border.rs's Border/Filter impl,
// generalized per the normative width rule: the horizontal border width is
// 1 column per side, or 2 when Padded is set, while the vertical border
// stays fixed at 1 row per side.
type Border[Event any] struct {
	BaseFilter[Event]

	// Sides holds, in top/left/right/bottom order, the glyph drawn along
	// each edge.
	Sides [4]string
	// Corners holds, in top-left/top-right/bottom-left/bottom-right order,
	// the glyph drawn at each corner.
	Corners [4]string
	// Style is applied to every border glyph.
	Style Style
	// TitleStyle is applied to the title text, when drawn.
	TitleStyle Style
	// TopTitleAlign, if non-nil, draws the inner element's title along the
	// top edge at the given alignment.
	TopTitleAlign *Alignment
	// BottomTitleAlign is TopTitleAlign's bottom-edge counterpart.
	BottomTitleAlign *Alignment
	// Padded widens the left/right border from 1 column to 2.
	Padded bool
}

// NewBorder builds a Border with the given sides/corners and sets Self for
// BaseFilter's virtual dispatch.
func NewBorder[Event any](sides, corners [4]string) *Border[Event] {
	b := &Border[Event]{Sides: sides, Corners: corners, Style: DefaultStyle(), TitleStyle: DefaultStyle()}
	b.Self = b
	return b
}

// BorderASCIIPlus is a plain ASCII border using pluses.
func BorderASCIIPlus[Event any]() *Border[Event] {
	return NewBorder[Event]([4]string{"-", "|", "|", "-"}, [4]string{"+", "+", "+", "+"})
}

// BorderThin is a single-line box-drawing border.
func BorderThin[Event any]() *Border[Event] {
	return NewBorder[Event]([4]string{"─", "│", "│", "─"}, [4]string{"┌", "┐", "└", "┘"})
}

// BorderDouble is a double-line box-drawing border.
func BorderDouble[Event any]() *Border[Event] {
	return NewBorder[Event]([4]string{"═", "║", "║", "═"}, [4]string{"╔", "╗", "╚", "╝"})
}

// TopTitle sets the top title alignment and returns b for chaining.
func (b *Border[Event]) TopTitle(align Alignment) *Border[Event] {
	b.TopTitleAlign = &align
	return b
}

// BottomTitle sets the bottom title alignment and returns b for chaining.
func (b *Border[Event]) BottomTitle(align Alignment) *Border[Event] {
	b.BottomTitleAlign = &align
	return b
}

func (b *Border[Event]) xBorder() uint16 {
	if b.Padded {
		return 2
	}
	return 1
}

func (b *Border[Event]) Draw(element Element[Event], out Output) {
	size := out.Size()
	xBorder := b.xBorder()

	innerW := subSat(size.X, 2*xBorder)
	innerH := subSat(size.Y, 2)
	element.Draw(Area(out, Vec2[uint16]{X: xBorder, Y: 1}, Vec2[uint16]{X: innerW, Y: innerH}))

	var rightBorder, bottomBorder *uint16
	if size.X > 1 {
		v := size.X - 1
		rightBorder = &v
	}
	if size.Y > 1 {
		v := size.Y - 1
		bottomBorder = &v
	}

	out.WriteChar(Vec2[uint16]{X: 0, Y: 0}, b.Corners[0], b.Style)
	if rightBorder != nil {
		out.WriteChar(Vec2[uint16]{X: *rightBorder, Y: 0}, b.Corners[1], b.Style)
	}
	if bottomBorder != nil {
		out.WriteChar(Vec2[uint16]{X: 0, Y: *bottomBorder}, b.Corners[2], b.Style)
	}
	if rightBorder != nil && bottomBorder != nil {
		out.WriteChar(Vec2[uint16]{X: *rightBorder, Y: *bottomBorder}, b.Corners[3], b.Style)
	}

	for y := uint16(1); y < subSat(size.Y, 1); y++ {
		out.WriteChar(Vec2[uint16]{X: 0, Y: y}, b.Sides[1], b.Style)
		if rightBorder != nil {
			out.WriteChar(Vec2[uint16]{X: *rightBorder, Y: y}, b.Sides[2], b.Style)
		}
	}

	var titleWidth uint16
	titleWidthComputed := false
	getTitleWidth := func() uint16 {
		if !titleWidthComputed {
			var buf countingWriter
			_ = element.Title(&buf)
			titleWidth = buf.width
			titleWidthComputed = true
		}
		return titleWidth
	}

	availableWidth := subSat(size.X, 2*xBorder)
	titleStart := func(align Alignment) uint16 {
		switch align {
		case AlignStart:
			return xBorder
		case AlignMiddle:
			return xBorder + subSat(availableWidth/2, getTitleWidth()/2)
		default: // AlignEnd
			return xBorder + subSat(availableWidth, getTitleWidth())
		}
	}

	var titleStartTop, titleStartBottom *uint16
	if b.TopTitleAlign != nil {
		v := titleStart(*b.TopTitleAlign)
		titleStartTop = &v
	}
	if b.BottomTitleAlign != nil {
		v := titleStart(*b.BottomTitleAlign)
		titleStartBottom = &v
	}

	offsetTop := titleStartTop
	offsetBottom := titleStartBottom
	topOff, bottomOff := uint16(0), uint16(0)
	if offsetTop != nil {
		topOff = *offsetTop
	}
	if offsetBottom != nil {
		bottomOff = *offsetBottom
	}

	if offsetTop != nil || offsetBottom != nil {
		var tw titleWriter
		tw.style = b.TitleStyle
		tw.out = out
		tw.rightBorder = rightBorder
		tw.topOff, tw.haveTop = &topOff, offsetTop != nil
		tw.bottomOff, tw.haveBottom = &bottomOff, offsetBottom != nil
		tw.bottomY = bottomBorder
		_ = element.Title(&tw)
	}

	for x := xBorder; x < subSat(size.X, xBorder); x++ {
		if titleStartTop == nil || x < *titleStartTop || x >= topOff {
			out.WriteChar(Vec2[uint16]{X: x, Y: 0}, b.Sides[0], b.Style)
		}
		if bottomBorder != nil {
			if titleStartBottom == nil || x < *titleStartBottom || x >= bottomOff {
				out.WriteChar(Vec2[uint16]{X: x, Y: *bottomBorder}, b.Sides[3], b.Style)
			}
		}
	}
}

// countingWriter sums the display width of every grapheme cluster written
// to it, used to lazily measure a title's width.
type countingWriter struct {
	width uint16
}

func (c *countingWriter) Write(p []byte) (int, error) {
	for _, cluster := range splitGraphemes(string(p)) {
		c.width += uint16(graphemeWidth(cluster))
	}
	return len(p), nil
}

// titleWriter draws a title's grapheme clusters onto the top and/or bottom
// edge as they stream in, stopping (by returning an error) once an edge
// would overflow the right border.
type titleWriter struct {
	out         Output
	style       Style
	rightBorder *uint16

	haveTop, haveBottom bool
	topOff, bottomOff   *uint16
	bottomY             *uint16
}

var errTitleOverflow = io.ErrShortWrite

func (t *titleWriter) Write(p []byte) (int, error) {
	for _, cluster := range splitGraphemes(string(p)) {
		w := uint16(graphemeWidth(cluster))
		if w == 0 {
			continue
		}
		if t.haveTop {
			after := *t.topOff + w
			if t.rightBorder != nil && after > *t.rightBorder {
				return 0, errTitleOverflow
			}
			t.out.WriteChar(Vec2[uint16]{X: *t.topOff, Y: 0}, cluster, t.style)
			*t.topOff = after
		}
		if t.haveBottom && t.bottomY != nil {
			after := *t.bottomOff + w
			if t.rightBorder != nil && after > *t.rightBorder {
				return 0, errTitleOverflow
			}
			t.out.WriteChar(Vec2[uint16]{X: *t.bottomOff, Y: *t.bottomY}, cluster, t.style)
			*t.bottomOff = after
		}
	}
	return len(p), nil
}

// Width widens the inner element's range by the horizontal border width on
// each side.
// Overriding this (and Height) is required by the normative filter
// contract even though the single available border.rs revision omits it.
func (b *Border[Event]) Width(element Element[Event], height *uint16) (min, max uint16) {
	innerHeight := subSatPtr(height, 2)
	innerMin, innerMax := element.Width(innerHeight)
	return addSat(innerMin, 2*b.xBorder()), addSat(innerMax, 2*b.xBorder())
}

// Height grows the inner element's range by one row on top and bottom.
func (b *Border[Event]) Height(element Element[Event], width *uint16) (min, max uint16) {
	xBorder := b.xBorder()
	innerWidth := subSatPtr(width, 2*xBorder)
	innerMin, innerMax := element.Height(innerWidth)
	return addSat(innerMin, 2), addSat(innerMax, 2)
}

func subSatPtr(v *uint16, n uint16) *uint16 {
	if v == nil {
		return nil
	}
	r := subSat(*v, n)
	return &r
}

// Handle translates mouse coordinates inward by the border thickness,
// rejecting clicks that land on the border itself; key input passes
// through unchanged.
func (b *Border[Event]) Handle(element Element[Event], input Input, sink Sink[Event]) {
	if input.Kind == InputKey {
		element.Handle(input, sink)
		return
	}

	mouse := input.Mouse
	xBorder := b.xBorder()
	if addSat(mouse.At.X, xBorder) >= mouse.Size.X || addSat(mouse.At.Y, 1) >= mouse.Size.Y {
		return
	}
	if mouse.At.X < xBorder || mouse.At.Y < 1 {
		return
	}
	if mouse.Size.X < 2*xBorder || mouse.Size.Y < 2 {
		return
	}
	mouse.At = Vec2[uint16]{X: mouse.At.X - xBorder, Y: mouse.At.Y - 1}
	mouse.Size = Vec2[uint16]{X: mouse.Size.X - 2*xBorder, Y: mouse.Size.Y - 2}
	element.Handle(MouseInput(mouse), sink)
}
