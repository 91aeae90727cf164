package weft

// Scroll shifts an inner element's drawn content by a fixed offset per
// axis: a positive offset scrolls content up/left (toward negative
// coordinates), so cells at canvas position p are drawn at p - offset.
// Cells that land outside the visible area are dropped. Grounded on
// elements/mod.rs's scroll_x/scroll_y/scroll shortcuts.
type Scroll[Event any] struct {
	BaseFilter[Event]
	ByX *int32
	ByY *int32
}

// NewScroll builds a Scroll filter from optional per-axis offsets.
func NewScroll[Event any](byX, byY *int32) *Scroll[Event] {
	s := &Scroll[Event]{ByX: byX, ByY: byY}
	s.Self = s
	return s
}

func (s *Scroll[Event]) offset() (int32, int32) {
	var dx, dy int32
	if s.ByX != nil {
		dx = *s.ByX
	}
	if s.ByY != nil {
		dy = *s.ByY
	}
	return dx, dy
}

func (s *Scroll[Event]) Draw(element Element[Event], out Output) {
	dx, dy := s.offset()
	element.Draw(&scrollOutput{inner: out, dx: dx, dy: dy})
}

type scrollOutput struct {
	inner  Output
	dx, dy int32
}

func (s *scrollOutput) Size() Vec2[uint16] { return s.inner.Size() }

func (s *scrollOutput) translate(pos Vec2[uint16]) (Vec2[uint16], bool) {
	x := int64(pos.X) - int64(s.dx)
	y := int64(pos.Y) - int64(s.dy)
	if x < 0 || y < 0 {
		return Vec2[uint16]{}, false
	}
	size := s.inner.Size()
	if x >= int64(size.X) || y >= int64(size.Y) {
		return Vec2[uint16]{}, false
	}
	return Vec2[uint16]{X: uint16(x), Y: uint16(y)}, true
}

func (s *scrollOutput) WriteChar(pos Vec2[uint16], ch string, style Style) {
	if p, ok := s.translate(pos); ok {
		s.inner.WriteChar(p, ch, style)
	}
}

func (s *scrollOutput) SetCursor(cursor *Cursor) {
	if cursor == nil {
		s.inner.SetCursor(nil)
		return
	}
	p, ok := s.translate(cursor.Pos)
	if !ok {
		s.inner.SetCursor(nil)
		return
	}
	translated := *cursor
	translated.Pos = p
	s.inner.SetCursor(&translated)
}

func (s *Scroll[Event]) Handle(element Element[Event], input Input, sink Sink[Event]) {
	if input.Kind == InputKey {
		element.Handle(input, sink)
		return
	}
	dx, dy := s.offset()
	mouse := input.Mouse
	x := int64(mouse.At.X) + int64(dx)
	y := int64(mouse.At.Y) + int64(dy)
	if x < 0 || y < 0 {
		return
	}
	mouse.At = Vec2[uint16]{X: uint16(x), Y: uint16(y)}
	element.Handle(MouseInput(mouse), sink)
}
