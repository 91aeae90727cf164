package weft

// Buffer is a Grid plus an optional cursor descriptor. It's the unit the
// renderer swaps each frame.
type Buffer struct {
	Grid   *Grid
	Cursor *Cursor
}

// NewBuffer builds a buffer of the given size with no cursor.
func NewBuffer(size Vec2[uint16]) *Buffer {
	return &Buffer{Grid: NewGrid(size)}
}

// Reset clears the grid and drops the cursor.
func (b *Buffer) Reset() {
	b.Grid.Reset()
	b.Cursor = nil
}

// Size returns the buffer's grid size.
func (b *Buffer) Size() Vec2[uint16] { return b.Grid.Size() }
