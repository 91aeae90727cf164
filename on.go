package weft

// On triggers an event when an input matches Pattern. When Passive is
// false the matched input is consumed (not forwarded to the inner
// element); when true the inner element still receives it. Grounded on
// elements/mod.rs's on/on_passive shortcut methods.
type On[Event any] struct {
	BaseFilter[Event]
	Pattern InputPattern
	ToEvent func(Input) Event
	Passive bool
}

// NewOn builds an On filter.
func NewOn[Event any](pattern InputPattern, toEvent func(Input) Event, passive bool) *On[Event] {
	o := &On[Event]{Pattern: pattern, ToEvent: toEvent, Passive: passive}
	o.Self = o
	return o
}

func (o *On[Event]) Handle(element Element[Event], input Input, sink Sink[Event]) {
	matched := o.Pattern(input)
	if matched {
		sink.Push(o.ToEvent(input))
	}
	if !matched || o.Passive {
		element.Handle(input, sink)
	}
}
