package weft

// Tile offsets the drawable area's origin by a fixed amount per axis,
// wrapping content that would fall off one edge back in from the other —
// useful for elements that tile infinitely, like a scrolling background.
// Grounded on elements/mod.rs's tile_x/tile_y/tile shortcuts.
type Tile[Event any] struct {
	BaseFilter[Event]
	OffsetX *uint16
	OffsetY *uint16
}

// NewTile builds a Tile filter from optional per-axis offsets.
func NewTile[Event any](offsetX, offsetY *uint16) *Tile[Event] {
	t := &Tile[Event]{OffsetX: offsetX, OffsetY: offsetY}
	t.Self = t
	return t
}

func (t *Tile[Event]) offset() (uint16, uint16) {
	var ox, oy uint16
	if t.OffsetX != nil {
		ox = *t.OffsetX
	}
	if t.OffsetY != nil {
		oy = *t.OffsetY
	}
	return ox, oy
}

func (t *Tile[Event]) Draw(element Element[Event], out Output) {
	ox, oy := t.offset()
	element.Draw(&tileOutput{inner: out, ox: ox, oy: oy})
}

type tileOutput struct {
	inner  Output
	ox, oy uint16
}

func (t *tileOutput) Size() Vec2[uint16] { return t.inner.Size() }

func (t *tileOutput) wrap(pos Vec2[uint16]) Vec2[uint16] {
	size := t.inner.Size()
	x, y := pos.X, pos.Y
	if size.X > 0 {
		x = (x + t.ox) % size.X
	}
	if size.Y > 0 {
		y = (y + t.oy) % size.Y
	}
	return Vec2[uint16]{X: x, Y: y}
}

func (t *tileOutput) WriteChar(pos Vec2[uint16], ch string, style Style) {
	t.inner.WriteChar(t.wrap(pos), ch, style)
}

func (t *tileOutput) SetCursor(cursor *Cursor) {
	if cursor == nil {
		t.inner.SetCursor(nil)
		return
	}
	translated := *cursor
	translated.Pos = t.wrap(cursor.Pos)
	t.inner.SetCursor(&translated)
}

func (t *Tile[Event]) Handle(element Element[Event], input Input, sink Sink[Event]) {
	if input.Kind == InputKey {
		element.Handle(input, sink)
		return
	}
	ox, oy := t.offset()
	mouse := input.Mouse
	size := mouse.Size
	x, y := mouse.At.X, mouse.At.Y
	if size.X > 0 {
		x = (x + size.X - ox%size.X) % size.X
	}
	if size.Y > 0 {
		y = (y + size.Y - oy%size.Y) % size.Y
	}
	mouse.At = Vec2[uint16]{X: x, Y: y}
	element.Handle(MouseInput(mouse), sink)
}
