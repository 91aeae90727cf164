package weft

// Size constrains an element to a fixed width and/or height, following
// §4.7's "override draw + size queries in lockstep" rule for filters
// without a Rust source file (only mod.rs's width/height/size shortcut
// methods ground this one).
type Size[Event any] struct {
	BaseFilter[Event]
	Width_  *uint16
	Height_ *uint16
}

// NewSize builds a Size filter from optional fixed width/height.
func NewSize[Event any](width, height *uint16) *Size[Event] {
	s := &Size[Event]{Width_: width, Height_: height}
	s.Self = s
	return s
}

func (s *Size[Event]) Width(element Element[Event], height *uint16) (min, max uint16) {
	if s.Width_ != nil {
		return *s.Width_, *s.Width_
	}
	return element.Width(height)
}

func (s *Size[Event]) Height(element Element[Event], width *uint16) (min, max uint16) {
	if s.Height_ != nil {
		return *s.Height_, *s.Height_
	}
	return element.Height(width)
}

func (s *Size[Event]) Draw(element Element[Event], out Output) {
	size := out.Size()
	w, h := size.X, size.Y
	if s.Width_ != nil && *s.Width_ < w {
		w = *s.Width_
	}
	if s.Height_ != nil && *s.Height_ < h {
		h = *s.Height_
	}
	element.Draw(Area(out, Vec2[uint16]{}, Vec2[uint16]{X: w, Y: h}))
}
