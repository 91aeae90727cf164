package weft

import "io"

// InputPattern reports whether an Input matches some predicate, the
// idiomatic Go stand-in for the original source's input::Pattern trait and
// its accompanying input! matcher macro. Combinators below take one
// directly instead of a macro-generated type.
type InputPattern func(Input) bool

// AnyInput matches every input.
func AnyInput(Input) bool { return true }

// NoInput matches nothing, the Go analog of the Rust source's `()` pattern
// used to mask all input via mask_inputs(()).
func NoInput(Input) bool { return false }

// Key matches a literal character key press with no modifiers held.
func Key(ch rune) InputPattern {
	return func(in Input) bool {
		return in.Kind == InputKey && in.Key.Code == KeyChar && in.Key.Char == ch &&
			!in.Key.Modifiers.Shift && !in.Key.Modifiers.Ctrl && !in.Key.Modifiers.Alt
	}
}

// KeyCodeIs matches a named key code with no modifiers held.
func KeyCodeIs(code KeyCode) InputPattern {
	return func(in Input) bool {
		return in.Kind == InputKey && in.Key.Code == code &&
			!in.Key.Modifiers.Shift && !in.Key.Modifiers.Ctrl && !in.Key.Modifiers.Alt
	}
}

// MousePressed matches a mouse press of the given button anywhere.
func MousePressed(button MouseButton) InputPattern {
	return func(in Input) bool {
		return in.Kind == InputMouse && in.Mouse.Kind == MousePress && in.Mouse.Button == button
	}
}

// AnyOf matches if any of patterns matches, the Go analog of the Rust
// source's tuple-of-patterns input! matching.
func AnyOf(patterns ...InputPattern) InputPattern {
	return func(in Input) bool {
		for _, p := range patterns {
			if p(in) {
				return true
			}
		}
		return false
	}
}

// Wrapped is a fluent builder over an Element, the Go analog of the Rust
// source's ElementExt blanket trait implementation. Each method returns a
// new Wrapped so calls chain: Wrap(e).On(Key('q'), fn).Title("App").
type Wrapped[Event any] struct {
	Element Element[Event]
}

// Wrap begins a fluent chain over element.
func Wrap[Event any](element Element[Event]) Wrapped[Event] {
	return Wrapped[Event]{Element: element}
}

// Filter applies an arbitrary Filter to the wrapped element.
func (w Wrapped[Event]) Filter(f Filter[Event]) Wrapped[Event] {
	return Wrapped[Event]{Element: NewFiltered(w.Element, f)}
}

// On actively handles input: a match emits an event and is not forwarded
// to the inner element.
func (w Wrapped[Event]) On(pattern InputPattern, toEvent func(Input) Event) Wrapped[Event] {
	return w.Filter(NewOn(pattern, toEvent, false))
}

// OnPassive is like On, but the inner element still receives the input
// even when the pattern matches.
func (w Wrapped[Event]) OnPassive(pattern InputPattern, toEvent func(Input) Event) Wrapped[Event] {
	return w.Filter(NewOn(pattern, toEvent, true))
}

// Float positions the wrapped element within extra space along both axes.
func (w Wrapped[Event]) Float(x, y Alignment) Wrapped[Event] {
	return w.Filter(NewFloat(&x, &y))
}

// FloatX floats only the X axis, leaving Y unconstrained.
func (w Wrapped[Event]) FloatX(x Alignment) Wrapped[Event] {
	return w.Filter(NewFloat(&x, nil))
}

// FloatY floats only the Y axis, leaving X unconstrained.
func (w Wrapped[Event]) FloatY(y Alignment) Wrapped[Event] {
	return w.Filter(NewFloat(nil, &y))
}

// Title sets a fixed title, overriding whatever the inner element reports.
func (w Wrapped[Event]) Title(title string) Wrapped[Event] {
	return w.Filter(NewTitle[Event](title))
}

// Width constrains the element to a single fixed width.
func (w Wrapped[Event]) Width(width uint16) Wrapped[Event] {
	return w.Filter(NewSize[Event](&width, nil))
}

// Height constrains the element to a single fixed height.
func (w Wrapped[Event]) Height(height uint16) Wrapped[Event] {
	return w.Filter(NewSize[Event](nil, &height))
}

// Size constrains the element to a single fixed width and height.
func (w Wrapped[Event]) Size(size Vec2[uint16]) Wrapped[Event] {
	return w.Filter(NewSize[Event](&size.X, &size.Y))
}

// MaskInputs restricts which inputs reach the wrapped element.
func (w Wrapped[Event]) MaskInputs(pattern InputPattern) Wrapped[Event] {
	return w.Filter(NewInputMask[Event](pattern))
}

// ScrollX scrolls the element horizontally by offset.
func (w Wrapped[Event]) ScrollX(offset int32) Wrapped[Event] {
	return w.Filter(NewScroll[Event](&offset, nil))
}

// ScrollY scrolls the element vertically by offset.
func (w Wrapped[Event]) ScrollY(offset int32) Wrapped[Event] {
	return w.Filter(NewScroll[Event](nil, &offset))
}

// Scroll scrolls the element by a 2D offset.
func (w Wrapped[Event]) Scroll(by Vec2[int32]) Wrapped[Event] {
	return w.Filter(NewScroll[Event](&by.X, &by.Y))
}

// TileX offsets the drawable area's horizontal origin, wrapping content
// that scrolls off one edge back in from the other.
func (w Wrapped[Event]) TileX(offset uint16) Wrapped[Event] {
	return w.Filter(NewTile[Event](&offset, nil))
}

// TileY is TileX's vertical counterpart.
func (w Wrapped[Event]) TileY(offset uint16) Wrapped[Event] {
	return w.Filter(NewTile[Event](nil, &offset))
}

// Tile offsets both axes.
func (w Wrapped[Event]) Tile(offset Vec2[uint16]) Wrapped[Event] {
	return w.Filter(NewTile[Event](&offset.X, &offset.Y))
}

// FillBackground paints the element's background with color.
func (w Wrapped[Event]) FillBackground(color Color) Wrapped[Event] {
	return w.Filter(NewFillBackground[Event](color))
}

// Ratio tags the element with a layout ratio for container use. Containers
// themselves are out of scope, but the tag is preserved for a future
// container implementation to read.
func (w Wrapped[Event]) Ratio(ratio float64) Wrapped[Event] {
	return w.Filter(NewRatio[Event](ratio))
}

// MapEvent transforms the events the wrapped element emits.
func MapEvent[From, To any](element Element[From], f func(From) To) Element[To] {
	return &mapEventElement[From, To]{inner: element, f: f}
}

type mapEventElement[From, To any] struct {
	inner Element[From]
	f     func(From) To
}

func (m *mapEventElement[From, To]) Draw(out Output) { m.inner.Draw(out) }

func (m *mapEventElement[From, To]) Title(w io.Writer) error { return m.inner.Title(w) }

func (m *mapEventElement[From, To]) Width(height *uint16) (uint16, uint16) {
	return m.inner.Width(height)
}

func (m *mapEventElement[From, To]) Height(width *uint16) (uint16, uint16) {
	return m.inner.Height(width)
}

func (m *mapEventElement[From, To]) Handle(input Input, sink Sink[To]) {
	inner := &Collector[From]{}
	m.inner.Handle(input, inner)
	for _, e := range inner.Events {
		sink.Push(m.f(e))
	}
}
