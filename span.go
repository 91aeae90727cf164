package weft

import (
	"fmt"
	"io"
)

// Span is a single line of styled text, the simplest concrete Element.
// Grounded on original_source/src/elements/span.rs's Span<T, Event>/span().
type Span[Event any] struct {
	Text  string
	Style Style
}

// NewSpan builds a Span from text using the default style.
func NewSpan[Event any](text string) *Span[Event] {
	return &Span[Event]{Text: text, Style: DefaultStyle()}
}

// Spanf builds a Span from a format string. The text is formatted once, with
// fmt.Sprintf, when the Span is built.
func Spanf[Event any](format string, args ...any) *Span[Event] {
	return &Span[Event]{Text: fmt.Sprintf(format, args...), Style: DefaultStyle()}
}

// width returns the span's display width, summing each grapheme cluster's
// measured width.
func (s *Span[Event]) width() uint16 {
	var w uint16
	for _, cluster := range splitGraphemes(s.Text) {
		w += uint16(graphemeWidth(cluster))
	}
	return w
}

func (s *Span[Event]) Draw(out Output) {
	WriteString(out, Vec2[uint16]{}, s.Text, s.Style)
}

func (s *Span[Event]) Title(w io.Writer) error {
	_, err := io.WriteString(w, s.Text)
	return err
}

func (s *Span[Event]) Width(_ *uint16) (min, max uint16) {
	w := s.width()
	return w, w
}

func (s *Span[Event]) Height(_ *uint16) (min, max uint16) { return 1, 1 }

func (s *Span[Event]) Handle(_ Input, _ Sink[Event]) {}

// Fg returns a copy of s with its foreground color set, matching the
// teacher's fluent Styled-style builders.
func (s *Span[Event]) Fg(c Color) *Span[Event] {
	cp := *s
	cp.Style = cp.Style.Fg(c)
	return &cp
}

// Bg returns a copy of s with its background color set.
func (s *Span[Event]) Bg(c Color) *Span[Event] {
	cp := *s
	cp.Style = cp.Style.Bg(c)
	return &cp
}

// Bold returns a copy of s with bold intensity set.
func (s *Span[Event]) Bold() *Span[Event] {
	cp := *s
	cp.Style = cp.Style.Bold()
	return &cp
}

// WithStyle returns a copy of s with style replaced wholesale.
func (s *Span[Event]) WithStyle(style Style) *Span[Event] {
	cp := *s
	cp.Style = style
	return &cp
}
