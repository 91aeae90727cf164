package weft

// InputMask forwards an input to the wrapped element only when Pattern
// matches it, dropping everything else. Grounded on elements/mod.rs's
// mask_inputs shortcut.
type InputMask[Event any] struct {
	BaseFilter[Event]
	Pattern InputPattern
}

// NewInputMask builds an InputMask filter.
func NewInputMask[Event any](pattern InputPattern) *InputMask[Event] {
	m := &InputMask[Event]{Pattern: pattern}
	m.Self = m
	return m
}

func (m *InputMask[Event]) Handle(element Element[Event], input Input, sink Sink[Event]) {
	if m.Pattern(input) {
		element.Handle(input, sink)
	}
}
