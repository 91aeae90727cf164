package weft

import "context"

// KeyCode names a non-character key.
type KeyCode uint8

const (
	KeyChar KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF
)

// Modifiers are the keyboard/mouse modifier keys held during an event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// KeyPress is a single key input: either a literal character or a named
// key code (KeyF carries its function-key number in FNum).
type KeyPress struct {
	Code      KeyCode
	Char      rune
	FNum      uint8
	Modifiers Modifiers
}

// MouseButton names a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// MouseKind is the controller's enriched, outward-facing mouse event kind,
// synthesized from the backend's raw Press/Release/Move/Scroll stream plus
// the remembered held button (spec §4.5, §6).
type MouseKind uint8

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseDrag
	MouseMove
	MouseScrollUp
	MouseScrollDown
)

// Mouse is the outward-facing mouse input delivered to elements.
type Mouse struct {
	Kind      MouseKind
	Button    MouseButton // valid for Press, Release, Drag
	At        Vec2[uint16]
	Size      Vec2[uint16]
	Modifiers Modifiers
}

// InputKind tags which variant of Input a value holds.
type InputKind uint8

const (
	InputKey InputKind = iota
	InputMouse
)

// Input is delivered to elements: either a key press or an enriched mouse
// event.
type Input struct {
	Kind  InputKind
	Key   KeyPress
	Mouse Mouse
}

// KeyInput builds a key Input.
func KeyInput(k KeyPress) Input { return Input{Kind: InputKey, Key: k} }

// MouseInput builds a mouse Input.
func MouseInput(m Mouse) Input { return Input{Kind: InputMouse, Mouse: m} }

// TerminalMouseKind is the backend's raw mouse event kind, before the
// controller has derived Drag/Move/Release(button) from held state.
type TerminalMouseKind uint8

const (
	TerminalMousePress TerminalMouseKind = iota
	TerminalMouseRelease
	TerminalMouseMove
	TerminalMouseScrollUp
	TerminalMouseScrollDown
)

// TerminalMouse is a raw mouse event as reported by a Backend.
type TerminalMouse struct {
	Kind      TerminalMouseKind
	Button    MouseButton // valid only when Kind == TerminalMousePress
	At        Vec2[uint16]
	Modifiers Modifiers
}

// TerminalEventKind tags which variant of TerminalEvent a value holds.
type TerminalEventKind uint8

const (
	TerminalEventKey TerminalEventKind = iota
	TerminalEventMouse
	TerminalEventResize
)

// TerminalEvent is a raw event as reported by a Backend: a key press, a
// mouse event, or a resize to a new size.
type TerminalEvent struct {
	Kind   TerminalEventKind
	Key    KeyPress
	Mouse  TerminalMouse
	Resize Vec2[uint16]
}

// Backend produces a Bound terminal connection. Concrete backends
// (escape-sequence emitters, raw-mode toggling, byte-stream key/mouse
// decoding) are out of scope for this module; only the capability surface
// they must satisfy is specified here (spec §6).
type Backend[B Bound] interface {
	// Bind attaches the backend to a Tty, returning the bound connection.
	Bind(tty *Tty) (B, error)
	// IsDummy reports whether the backend needs no real TTY access.
	IsDummy() bool
}

// Bound is a backend bound to a terminal. Writes should be buffered;
// Flush drains them.
type Bound interface {
	// Size returns the current terminal size.
	Size() (Vec2[uint16], error)
	// SetTitle sets the terminal's title.
	SetTitle(title string) error

	HideCursor() error
	ShowCursor() error
	SetCursorShape(shape CursorShape) error
	SetCursorBlinking(blinking bool) error
	SetCursorPos(pos Vec2[uint16]) error

	SetForeground(c Color) error
	SetBackground(c Color) error
	SetIntensity(i Intensity) error
	SetItalic(on bool) error
	SetUnderlined(on bool) error
	SetBlinking(on bool) error
	SetCrossedOut(on bool) error

	// Write writes visible text only; the differ guarantees no control
	// characters and that a write never crosses a line end.
	Write(text string) error
	// Flush drains buffered writes to the tty.
	Flush() error
	// Reset restores the terminal to its pre-bind state, handing back the
	// Tty.
	Reset() (*Tty, error)

	// ReadEvent reads the next terminal event. It must be cancellable:
	// ctx's cancellation must stop the read cleanly with no event
	// delivered, the idiomatic Go substitute for a droppable async future
	// (spec §5's "cancellable awaitables").
	ReadEvent(ctx context.Context) (TerminalEvent, error)
}
