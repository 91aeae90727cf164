package weft

import "io"

// Alignment is start/middle/end alignment, used by filters that position
// content within extra space (e.g. a border's title).
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignMiddle
	AlignEnd
)

// Filter wraps an arbitrary Element and may override any of its
// draw/title/width/height/handle behavior. Every method receives the
// wrapped element explicitly so the filter decides whether and how to
// recurse (spec §4.3).
//
// Go interfaces cannot carry default method bodies or generic methods, so
// unlike the Rust Filter<Event> trait this interface has no defaults of
// its own; BaseFilter provides them via embedding, following the same
// pattern the teacher's Base/BaseContainer use for Component defaults.
type Filter[Event any] interface {
	Draw(element Element[Event], out Output)
	FilterChar(ch string) string
	FilterStyle(style Style) Style
	WriteChar(base Output, pos Vec2[uint16], ch string, style Style)
	SetCursor(base Output, cursor *Cursor)
	FilterCursor(cursor *Cursor) *Cursor
	Title(element Element[Event], w io.Writer) error
	Width(element Element[Event], height *uint16) (min, max uint16)
	Height(element Element[Event], width *uint16) (min, max uint16)
	Handle(element Element[Event], input Input, sink Sink[Event])
	FilterInput(input Input) Input
	FilterKeyPress(k KeyPress) KeyPress
	FilterMouse(m Mouse) Mouse
}

// BaseFilter implements every Filter method as the identity/forwarding
// default described in spec §4.3, following the teacher's Base/
// BaseContainer embedding idiom: a concrete filter embeds BaseFilter[Event]
// and overrides only the methods it needs to change.
//
// Go embedding has no virtual dispatch: a method promoted from BaseFilter
// that calls another Filter method (e.g. the default Draw calling
// FilterChar/FilterStyle) would otherwise call BaseFilter's own identity
// version even when the outer type overrides it. BaseFilter works around
// this the way other Go libraries handle the same gap: Self must be set to
// the outer, concrete Filter value so defaults call back through the full
// interface. Concrete filters set it once, in their constructor.
type BaseFilter[Event any] struct {
	Self Filter[Event]
}

// self returns Self if set, otherwise the BaseFilter's own identity
// behavior (so a BaseFilter used standalone, with nothing overridden,
// still works without a constructor).
func (b BaseFilter[Event]) self() Filter[Event] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b BaseFilter[Event]) Draw(element Element[Event], out Output) {
	element.Draw(&filterDrawOutput[Event]{inner: out, filter: b.self()})
}

// filterDrawOutput pipes an inner element's WriteChar/SetCursor calls
// through a filter's WriteChar/SetCursor, the Go equivalent of the Rust
// default draw's synthesized DrawFilterOutput.
type filterDrawOutput[Event any] struct {
	inner  Output
	filter Filter[Event]
}

func (d *filterDrawOutput[Event]) Size() Vec2[uint16] { return d.inner.Size() }

func (d *filterDrawOutput[Event]) WriteChar(pos Vec2[uint16], ch string, style Style) {
	d.filter.WriteChar(d.inner, pos, ch, style)
}

func (d *filterDrawOutput[Event]) SetCursor(cursor *Cursor) {
	d.filter.SetCursor(d.inner, cursor)
}

func (BaseFilter[Event]) FilterChar(ch string) string { return ch }

func (BaseFilter[Event]) FilterStyle(style Style) Style { return style }

func (b BaseFilter[Event]) WriteChar(base Output, pos Vec2[uint16], ch string, style Style) {
	self := b.self()
	base.WriteChar(pos, self.FilterChar(ch), self.FilterStyle(style))
}

func (b BaseFilter[Event]) SetCursor(base Output, cursor *Cursor) {
	base.SetCursor(b.self().FilterCursor(cursor))
}

func (BaseFilter[Event]) FilterCursor(cursor *Cursor) *Cursor { return cursor }

func (BaseFilter[Event]) Title(element Element[Event], w io.Writer) error {
	return element.Title(w)
}

func (BaseFilter[Event]) Width(element Element[Event], height *uint16) (uint16, uint16) {
	return element.Width(height)
}

func (BaseFilter[Event]) Height(element Element[Event], width *uint16) (uint16, uint16) {
	return element.Height(width)
}

func (b BaseFilter[Event]) Handle(element Element[Event], input Input, sink Sink[Event]) {
	element.Handle(b.self().FilterInput(input), sink)
}

func (b BaseFilter[Event]) FilterInput(input Input) Input {
	self := b.self()
	switch input.Kind {
	case InputKey:
		return KeyInput(self.FilterKeyPress(input.Key))
	default:
		return MouseInput(self.FilterMouse(input.Mouse))
	}
}

func (BaseFilter[Event]) FilterKeyPress(k KeyPress) KeyPress { return k }

func (BaseFilter[Event]) FilterMouse(m Mouse) Mouse { return m }

// Filtered is an Element with a Filter applied (spec §4.3's composition
// rule). It is itself an Element.
type Filtered[Event any] struct {
	Element Element[Event]
	Filter  Filter[Event]
}

// NewFiltered applies filter to element.
func NewFiltered[Event any](element Element[Event], filter Filter[Event]) *Filtered[Event] {
	return &Filtered[Event]{Element: element, Filter: filter}
}

func (f *Filtered[Event]) Draw(out Output) { f.Filter.Draw(f.Element, out) }

func (f *Filtered[Event]) Title(w io.Writer) error { return f.Filter.Title(f.Element, w) }

func (f *Filtered[Event]) Width(height *uint16) (uint16, uint16) {
	return f.Filter.Width(f.Element, height)
}

func (f *Filtered[Event]) Height(width *uint16) (uint16, uint16) {
	return f.Filter.Height(f.Element, width)
}

func (f *Filtered[Event]) Handle(input Input, sink Sink[Event]) {
	f.Filter.Handle(f.Element, input, sink)
}
