package weft

// FillBackground paints every cell of the filtered area with Color before
// the inner element draws over it, then leaves writes otherwise
// untouched. Grounded on elements/mod.rs's fill_background() shortcut.
type FillBackground[Event any] struct {
	BaseFilter[Event]
	Color Color
}

// NewFillBackground builds a FillBackground filter.
func NewFillBackground[Event any](color Color) *FillBackground[Event] {
	f := &FillBackground[Event]{Color: color}
	f.Self = f
	return f
}

func (f *FillBackground[Event]) Draw(element Element[Event], out Output) {
	size := out.Size()
	style := DefaultStyle().Bg(f.Color)
	for y := uint16(0); y < size.Y; y++ {
		for x := uint16(0); x < size.X; x++ {
			out.WriteChar(Vec2[uint16]{X: x, Y: y}, " ", style)
		}
	}
	element.Draw(out)
}
