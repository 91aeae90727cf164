package weft

import "io"

// Title overrides the inner element's reported title with a fixed string.
// Grounded on elements/mod.rs's title() shortcut; no dedicated Rust source
// file survived distillation, so draw/size/handle pass straight through.
type Title[Event any] struct {
	BaseFilter[Event]
	Text string
}

// NewTitle builds a Title filter that reports text regardless of the
// inner element's own Title.
func NewTitle[Event any](text string) *Title[Event] {
	t := &Title[Event]{Text: text}
	t.Self = t
	return t
}

func (t *Title[Event]) Title(_ Element[Event], w io.Writer) error {
	_, err := io.WriteString(w, t.Text)
	return err
}
