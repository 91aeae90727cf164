package weft

// Float positions an element at its own ideal size within a larger
// available area, aligning it independently on each axis. A nil alignment
// on an axis leaves that axis unconstrained (full available size).
// Grounded on elements/mod.rs's float/float_x/float_y shortcuts.
type Float[Event any] struct {
	BaseFilter[Event]
	AlignX *Alignment
	AlignY *Alignment
}

// NewFloat builds a Float filter from optional per-axis alignments.
func NewFloat[Event any](alignX, alignY *Alignment) *Float[Event] {
	f := &Float[Event]{AlignX: alignX, AlignY: alignY}
	f.Self = f
	return f
}

func (f *Float[Event]) place(element Element[Event], outer Vec2[uint16]) (offset, size Vec2[uint16]) {
	size = outer
	if f.AlignX != nil {
		_, idealW := element.Width(nil)
		if idealW < outer.X {
			size.X = idealW
		}
	}
	if f.AlignY != nil {
		_, idealH := element.Height(nil)
		if idealH < outer.Y {
			size.Y = idealH
		}
	}
	if f.AlignX != nil {
		offset.X = alignOffset(*f.AlignX, outer.X, size.X)
	}
	if f.AlignY != nil {
		offset.Y = alignOffset(*f.AlignY, outer.Y, size.Y)
	}
	return offset, size
}

func alignOffset(align Alignment, outer, inner uint16) uint16 {
	switch align {
	case AlignStart:
		return 0
	case AlignMiddle:
		return subSat(outer, inner) / 2
	default: // AlignEnd
		return subSat(outer, inner)
	}
}

func (f *Float[Event]) Draw(element Element[Event], out Output) {
	offset, size := f.place(element, out.Size())
	element.Draw(Area(out, offset, size))
}

func (f *Float[Event]) Handle(element Element[Event], input Input, sink Sink[Event]) {
	if input.Kind == InputKey {
		element.Handle(input, sink)
		return
	}
	mouse := input.Mouse
	offset, size := f.place(element, mouse.Size)
	if mouse.At.X < offset.X || mouse.At.Y < offset.Y {
		return
	}
	at := Vec2[uint16]{X: mouse.At.X - offset.X, Y: mouse.At.Y - offset.Y}
	if at.X >= size.X || at.Y >= size.Y {
		return
	}
	mouse.At = at
	mouse.Size = size
	element.Handle(MouseInput(mouse), sink)
}
