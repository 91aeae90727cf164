package weft

import "fmt"

// Output is what an Element sees while drawing: a bounded area it can
// write glyphs and a cursor into.
type Output interface {
	// Size returns the drawable area.
	Size() Vec2[uint16]
	// WriteChar writes ch at pos within Size(). Out-of-bounds positions are
	// a no-op. Writing a double-wide glyph at the last column degrades to
	// a blank, matching Grid.Write.
	WriteChar(pos Vec2[uint16], ch string, style Style)
	// SetCursor sets the frame's cursor; the last call before the frame
	// ends wins.
	SetCursor(cursor *Cursor)
}

// GridOutput is the root Output backed directly by a Buffer's Grid.
type GridOutput struct {
	buf *Buffer
}

// NewGridOutput wraps buf as the root Output for a draw pass.
func NewGridOutput(buf *Buffer) *GridOutput {
	return &GridOutput{buf: buf}
}

func (o *GridOutput) Size() Vec2[uint16] { return o.buf.Grid.Size() }

func (o *GridOutput) WriteChar(pos Vec2[uint16], ch string, style Style) {
	writeSingleGlyph(o.buf.Grid, pos, ch, style)
}

func (o *GridOutput) SetCursor(cursor *Cursor) {
	o.buf.Cursor = cursor
}

// writeSingleGlyph places one already-segmented grapheme cluster at pos,
// applying the same last-column degradation and orphan-blanking rules as
// Grid.Write's per-character loop.
func writeSingleGlyph(g *Grid, pos Vec2[uint16], ch string, style Style) {
	if !g.InBounds(pos) {
		return
	}
	if isControl(ch) {
		return
	}
	w := graphemeWidth(ch)
	double := w >= 2
	if double && pos.X == g.Width()-1 {
		g.writeOne(pos, BlankCell())
		return
	}
	g.writeOne(pos, NewCharCell(ch, double, style))
	if double {
		g.writeOne(Vec2[uint16]{X: pos.X + 1, Y: pos.Y}, ContinuationCell())
	}
}

// ProfiledOutput wraps an Output, downgrading every style through a color
// Profile before it reaches the grid. The Terminal controller wraps its
// root GridOutput in one of these so elements never need to know about
// terminal color capability.
type ProfiledOutput struct {
	inner   Output
	profile *Profile
}

// WithProfile wraps out so writes have their styles downgraded by profile.
func WithProfile(out Output, profile *Profile) *ProfiledOutput {
	return &ProfiledOutput{inner: out, profile: profile}
}

func (p *ProfiledOutput) Size() Vec2[uint16] { return p.inner.Size() }

func (p *ProfiledOutput) WriteChar(pos Vec2[uint16], ch string, style Style) {
	if p.profile != nil {
		style = p.profile.Downgrade(style)
	}
	p.inner.WriteChar(pos, ch, style)
}

func (p *ProfiledOutput) SetCursor(cursor *Cursor) { p.inner.SetCursor(cursor) }

// AreaOutput wraps a parent Output with an offset and a clipped size,
// translating positions and dropping writes outside the sub-rectangle.
// This is the area view of spec §4.1, grounded on the teacher's Region
// sub-rectangle view over Buffer.
type AreaOutput struct {
	parent Output
	offset Vec2[uint16]
	size   Vec2[uint16]
}

// Area builds a sub-region view of parent, offset and sized relative to
// parent's own coordinate space, clipped to parent's bounds.
func Area(parent Output, offset, size Vec2[uint16]) *AreaOutput {
	parentSize := parent.Size()
	maxX := subSat(parentSize.X, offset.X)
	maxY := subSat(parentSize.Y, offset.Y)
	if size.X > maxX {
		size.X = maxX
	}
	if size.Y > maxY {
		size.Y = maxY
	}
	return &AreaOutput{parent: parent, offset: offset, size: size}
}

func (a *AreaOutput) Size() Vec2[uint16] { return a.size }

func (a *AreaOutput) WriteChar(pos Vec2[uint16], ch string, style Style) {
	if pos.X >= a.size.X || pos.Y >= a.size.Y {
		return
	}
	if pos.X == a.size.X-1 && graphemeWidth(ch) >= 2 {
		// A double-wide glyph at the area's last column would spill past
		// the area: degrade to a blank, as Grid.Write does.
		ch, style = " ", DefaultStyle()
	}
	a.parent.WriteChar(Vec2[uint16]{X: a.offset.X + pos.X, Y: a.offset.Y + pos.Y}, ch, style)
}

func (a *AreaOutput) SetCursor(cursor *Cursor) {
	if cursor == nil {
		a.parent.SetCursor(nil)
		return
	}
	if cursor.Pos.X >= a.size.X || cursor.Pos.Y >= a.size.Y {
		return
	}
	translated := *cursor
	translated.Pos = Vec2[uint16]{X: a.offset.X + cursor.Pos.X, Y: a.offset.Y + cursor.Pos.Y}
	a.parent.SetCursor(&translated)
}

// displayWriter streams the bytes fmt.Fprint feeds it straight onto a
// single output row, grapheme cluster by grapheme cluster, so WriteDisplay
// never builds a separate full-string copy of v before writing it.
type displayWriter struct {
	out   Output
	y     uint16
	style Style
	x     uint16
	width uint16
}

func (d *displayWriter) Write(p []byte) (int, error) {
	for _, cluster := range splitGraphemes(string(p)) {
		if isControl(cluster) {
			continue
		}
		if d.x >= d.width {
			break
		}
		d.out.WriteChar(Vec2[uint16]{X: d.x, Y: d.y}, cluster, d.style)
		if graphemeWidth(cluster) >= 2 {
			d.x += 2
		} else {
			d.x++
		}
	}
	return len(p), nil
}

// WriteDisplay writes a fmt.Stringer-like value onto a single row starting
// at pos, advancing by each glyph's display width and dropping control
// characters. v is streamed through fmt.Fprint directly into the output
// grid rather than materialized into an intermediate string first.
func WriteDisplay(out Output, pos Vec2[uint16], v fmt.Stringer, style Style) {
	size := out.Size()
	dw := &displayWriter{out: out, y: pos.Y, style: style, x: pos.X, width: size.X}
	fmt.Fprint(dw, v)
}

// WriteString writes s onto a single row starting at pos.
func WriteString(out Output, pos Vec2[uint16], s string, style Style) {
	x := pos.X
	size := out.Size()
	for _, cluster := range splitGraphemes(s) {
		if isControl(cluster) {
			continue
		}
		if x >= size.X {
			break
		}
		out.WriteChar(Vec2[uint16]{X: x, Y: pos.Y}, cluster, style)
		w := graphemeWidth(cluster)
		if w >= 2 {
			x += 2
		} else {
			x++
		}
	}
}
