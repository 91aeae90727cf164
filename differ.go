package weft

// OperationKind tags which backend call an Operation represents.
type OperationKind uint8

const (
	OpSetForeground OperationKind = iota
	OpSetBackground
	OpSetIntensity
	OpSetItalic
	OpSetUnderlined
	OpSetBlinking
	OpSetCrossedOut
	OpSetCursorPos
	OpWrite
	OpShowCursor
	OpHideCursor
	OpSetCursorShape
	OpSetCursorBlinking
)

// Operation is one backend call emitted by the differ, mirroring the
// original source's per-field diff_styles! expansion and cursor
// reconciliation block one call at a time.
type Operation struct {
	Kind      OperationKind
	Color     Color
	Intensity Intensity
	Bool      bool
	Pos       Vec2[uint16]
	Text      string
	Shape     CursorShape
}

// heldState is the controller's model of the backend's current style and
// cursor position, carried across frames to elide redundant ops (spec §3's
// "held style / cursor position").
type heldState struct {
	style     Style
	cursorPos Vec2[uint16]
}

// Diff compares old against new and returns the minimal backend operation
// stream needed to reconcile the two, updating held in place the way the
// Terminal controller's own `self.style`/`self.cursor_pos` fields are
// updated by terminal.rs's diff() method.
func Diff(old, new *Grid, held *heldState) []Operation {
	var ops []Operation
	width := new.Width()
	height := new.Height()

	for y := uint16(0); y < height; y++ {
		for x := uint16(0); x < width; x++ {
			pos := Vec2[uint16]{X: x, Y: y}
			oldCell := old.Get(pos)
			newCell := new.Get(pos)
			if oldCell.Equal(newCell) {
				continue
			}
			if newCell.Kind == CellContinuation {
				continue
			}

			ops = append(ops, diffStyle(&held.style, newCell.Style)...)

			if held.cursorPos != pos {
				ops = append(ops, Operation{Kind: OpSetCursorPos, Pos: pos})
				held.cursorPos = pos
			}

			ops = append(ops, Operation{Kind: OpWrite, Text: newCell.Contents})

			advance := uint16(1)
			if newCell.Double {
				advance = 2
			}
			nextX := x + advance
			if width > 0 && nextX > width-1 {
				nextX = width - 1
			}
			held.cursorPos = Vec2[uint16]{X: nextX, Y: y}
		}
	}

	// Unconditionally reset the background: some terminals paint
	// fill-space with the current background on resize.
	ops = append(ops, Operation{Kind: OpSetBackground, Color: DefaultColor()})
	held.style.Background = DefaultColor()

	return ops
}

// diffStyle emits the set_* ops needed to move held from its current value
// to target, field by field, updating held as it goes.
func diffStyle(held *Style, target Style) []Operation {
	var ops []Operation
	if held.Foreground != target.Foreground {
		ops = append(ops, Operation{Kind: OpSetForeground, Color: target.Foreground})
		held.Foreground = target.Foreground
	}
	if held.Background != target.Background {
		ops = append(ops, Operation{Kind: OpSetBackground, Color: target.Background})
		held.Background = target.Background
	}
	if held.Attributes.Intensity != target.Attributes.Intensity {
		ops = append(ops, Operation{Kind: OpSetIntensity, Intensity: target.Attributes.Intensity})
		held.Attributes.Intensity = target.Attributes.Intensity
	}
	if held.Attributes.Italic != target.Attributes.Italic {
		ops = append(ops, Operation{Kind: OpSetItalic, Bool: target.Attributes.Italic})
		held.Attributes.Italic = target.Attributes.Italic
	}
	if held.Attributes.Underlined != target.Attributes.Underlined {
		ops = append(ops, Operation{Kind: OpSetUnderlined, Bool: target.Attributes.Underlined})
		held.Attributes.Underlined = target.Attributes.Underlined
	}
	if held.Attributes.Blinking != target.Attributes.Blinking {
		ops = append(ops, Operation{Kind: OpSetBlinking, Bool: target.Attributes.Blinking})
		held.Attributes.Blinking = target.Attributes.Blinking
	}
	if held.Attributes.CrossedOut != target.Attributes.CrossedOut {
		ops = append(ops, Operation{Kind: OpSetCrossedOut, Bool: target.Attributes.CrossedOut})
		held.Attributes.CrossedOut = target.Attributes.CrossedOut
	}
	return ops
}

// DiffCursor reconciles cursor show/hide/shape/blinking/position between
// old and new buffer cursors, per spec §4.4 step 3.
func DiffCursor(old, new *Cursor, held *heldState) []Operation {
	var ops []Operation
	switch {
	case new != nil && old == nil:
		// No prior cursor to compare against: always emit shape and
		// blinking, matching the original's map_or(true, ...) comparison.
		ops = append(ops, Operation{Kind: OpShowCursor})
		ops = append(ops, Operation{Kind: OpSetCursorShape, Shape: new.Shape})
		ops = append(ops, Operation{Kind: OpSetCursorBlinking, Bool: new.Blinking})
		if new.Pos != held.cursorPos {
			ops = append(ops, Operation{Kind: OpSetCursorPos, Pos: new.Pos})
			held.cursorPos = new.Pos
		}
	case new != nil && old != nil:
		if new.Shape != old.Shape {
			ops = append(ops, Operation{Kind: OpSetCursorShape, Shape: new.Shape})
		}
		if new.Blinking != old.Blinking {
			ops = append(ops, Operation{Kind: OpSetCursorBlinking, Bool: new.Blinking})
		}
		if new.Pos != held.cursorPos {
			ops = append(ops, Operation{Kind: OpSetCursorPos, Pos: new.Pos})
			held.cursorPos = new.Pos
		}
	case new == nil && old != nil:
		ops = append(ops, Operation{Kind: OpHideCursor})
	}
	return ops
}

// DiffBuffers runs the full frame differ: grid contents (§4.4 step 1-2)
// followed by cursor reconciliation (§4.4 step 3).
func DiffBuffers(old, new *Buffer, held *heldState) []Operation {
	ops := Diff(old.Grid, new.Grid, held)
	ops = append(ops, DiffCursor(old.Cursor, new.Cursor, held)...)
	return ops
}
