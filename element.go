package weft

import "io"

// Sink collects events an Element emits while handling input. Grounded on
// original_source's Events<Event> trait; a plain interface stands in for
// Rust's dyn Events<Event>.
type Sink[Event any] interface {
	Push(event Event)
}

// Collector is a slice-backed Sink, the Go analog of the Rust source's
// events::Vector wrapper used by the Terminal's event inner loop.
type Collector[Event any] struct {
	Events []Event
}

func (c *Collector[Event]) Push(event Event) {
	c.Events = append(c.Events, event)
}

// Element is a drawable, measurable, input-handling unit, generic over the
// Event type it may emit. Implementations must be side-effect-free on
// receiver state during Draw and idempotent for an identical Output.
type Element[Event any] interface {
	// Draw writes cells and cursor into out.
	Draw(out Output)
	// Title streams a short display title; writer errors terminate
	// streaming early without propagating past the caller.
	Title(w io.Writer) error
	// Width returns the inclusive [min, max] width range usable given an
	// optional fixed height.
	Width(height *uint16) (min, max uint16)
	// Height returns the inclusive [min, max] height range usable given an
	// optional fixed width.
	Height(width *uint16) (min, max uint16)
	// Handle dispatches a single input, pushing zero or more events to
	// sink.
	Handle(input Input, sink Sink[Event])
}

// IdealSize derives a preferred size from Width/Height, honoring an
// optional per-axis cap; this mirrors the default ideal_size derivation
// spec §4.2 allows implementations to build from the two range queries.
func IdealSize[Event any](e Element[Event], max Vec2[*uint16]) Vec2[uint16] {
	_, maxW := e.Width(max.Y)
	_, maxH := e.Height(max.X)
	if max.X != nil && *max.X < maxW {
		maxW = *max.X
	}
	if max.Y != nil && *max.Y < maxH {
		maxH = *max.Y
	}
	return Vec2[uint16]{X: maxW, Y: maxH}
}

// IdealWidth returns the preferred width, equal to Width's max component.
func IdealWidth[Event any](e Element[Event], height, maxWidth *uint16) uint16 {
	_, maxW := e.Width(height)
	if maxWidth != nil && *maxWidth < maxW {
		return *maxWidth
	}
	return maxW
}

// IdealHeight returns the preferred height, equal to Height's max
// component.
func IdealHeight[Event any](e Element[Event], width, maxHeight *uint16) uint16 {
	_, maxH := e.Height(width)
	if maxHeight != nil && *maxHeight < maxH {
		return *maxHeight
	}
	return maxH
}
