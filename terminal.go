package weft

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"

	"weft/internal/wlog"
)

// terminalExists is the process-wide "a real Terminal is live" flag (spec
// §5, §9). Constructing a second non-dummy Terminal while it's set is a
// programmer error and panics, mirroring the original source's
// AtomicBool-guarded TERMINAL_EXISTS.
var terminalExists atomic.Bool

// Terminal owns the process-wide terminal singleton, the old/new buffer
// pair, the held style/cursor state, the captured-stdio pipe, synthetic
// mouse state, and the title cache. It runs the draw -> flush -> read-event
// loop described in spec §4.5. Grounded end to end on
// original_source/src/terminal.rs's Terminal<B>.
type Terminal[B Bound] struct {
	bound     B
	config    Config
	profile   *Profile
	title     string
	buffers   *bufferPair
	held      heldState
	captured  *capturedStdio
	heldMouse *MouseButton
	isDummy   bool
	singleton bool
}

// New binds backend to a Tty and initializes the controller: backend
// style/cursor state to known defaults, buffers sized to the backend's
// reported size. Every backend, dummy or not, is bound to a DummyTty that
// performs no I/O; for a non-dummy backend New also starts stdio capture.
func New[B Bound](backend Backend[B], cfg Config) (*Terminal[B], error) {
	if cfg.WidthOracle != nil {
		widthFunc = cfg.WidthOracle
	} else {
		widthFunc = defaultWidthOracle
	}

	isDummy := backend.IsDummy()
	if !isDummy {
		if !terminalExists.CompareAndSwap(false, true) {
			panic("weft: a Terminal is already live for this process")
		}
	}

	var captured *capturedStdio
	var tty *Tty
	if isDummy {
		tty = DummyTty()
	} else {
		c, err := startCapture()
		if err != nil {
			terminalExists.Store(false)
			return nil, err
		}
		captured = c
		tty = DummyTty()
	}

	bound, err := backend.Bind(tty)
	if err != nil {
		if !isDummy {
			terminalExists.Store(false)
		}
		return nil, &BackendError{Err: err}
	}

	size, err := bound.Size()
	if err != nil {
		return nil, &BackendError{Err: err}
	}

	t := &Terminal[B]{
		bound:     bound,
		config:    cfg,
		profile:   NewProfile(cfg.ColorProfileOverride),
		buffers:   newBufferPair(size),
		captured:  captured,
		isDummy:   isDummy,
		singleton: !isDummy,
	}

	for _, err := range []error{
		bound.SetForeground(DefaultColor()),
		bound.SetBackground(DefaultColor()),
		bound.SetIntensity(IntensityNormal),
		bound.SetItalic(false),
		bound.SetUnderlined(false),
		bound.SetBlinking(false),
		bound.SetCrossedOut(false),
		bound.SetCursorShape(cfg.DefaultCursorShape),
		bound.HideCursor(),
	} {
		if err != nil {
			return nil, &BackendError{Err: err}
		}
	}

	return t, nil
}

// Size returns the terminal's current size.
func (t *Terminal[B]) Size() Vec2[uint16] { return t.buffers.old.Size() }

// TakeCaptured hands ownership of the captured stdio reader to the caller;
// cleanup will no longer drain it automatically. Supplemented feature per
// SPEC_FULL.md, grounded on original_source's take_captured/Captured.
func (t *Terminal[B]) TakeCaptured() (io.Reader, bool) {
	if t.captured == nil {
		return nil, false
	}
	return t.captured.takeReader()
}

// Cleanup resets the backend to its pre-bind state and drains captured
// stdio to the real stdout, swallowing errors the way Drop does (spec §7);
// callers who want cleanup errors call CleanupErr instead.
func (t *Terminal[B]) Cleanup() {
	if err := t.cleanupInner(); err != nil {
		wlog.Debugf("cleanup: swallowed error: %v", err)
	}
}

// CleanupErr is like Cleanup but surfaces the first error encountered,
// for callers that want to observe teardown failures instead of having
// them swallowed.
func (t *Terminal[B]) CleanupErr() error {
	return t.cleanupInner()
}

func (t *Terminal[B]) cleanupInner() error {
	defer func() {
		if t.singleton {
			terminalExists.Store(false)
			t.singleton = false
		}
	}()
	t.buffers.Stop()
	if _, err := t.bound.Reset(); err != nil {
		return &BackendError{Err: err}
	}
	if t.captured != nil {
		if err := t.captured.cleanup(); err != nil {
			return err
		}
	}
	return nil
}

// Draw runs one frame of the draw/event loop for element, returning the
// events it emits in response to a single input. It's a package-level
// generic function rather than a method because Go forbids a method from
// introducing type parameters beyond its receiver's.
func Draw[B Bound, Event any](ctx context.Context, t *Terminal[B], element Element[Event]) ([]Event, error) {
	if err := reconcileTitle(t, element); err != nil {
		return nil, err
	}

	for {
		oldBuf, newBuf := t.buffers.old, t.buffers.next
		newBuf.Reset()
		element.Draw(WithProfile(NewGridOutput(newBuf), t.profile))

		ops := DiffBuffers(oldBuf, newBuf, &t.held)
		if err := t.applyOps(ops); err != nil {
			return nil, err
		}
		if err := t.bound.Flush(); err != nil {
			return nil, &BackendError{Err: err}
		}

		t.buffers.Swap()

		events, redraw, err := runEventLoop(ctx, t, element)
		if err != nil {
			return nil, err
		}
		if redraw {
			continue
		}
		return events, nil
	}
}

func reconcileTitle[B Bound, Event any](t *Terminal[B], element Element[Event]) error {
	var buf bytes.Buffer
	_ = element.Title(&buf)
	title := buf.String()
	if title == "" {
		title = t.config.TitleFallback
	}
	if title == t.title {
		return nil
	}
	if err := t.bound.SetTitle(title); err != nil {
		return &BackendError{Err: err}
	}
	t.title = title
	return nil
}

func (t *Terminal[B]) applyOps(ops []Operation) error {
	for _, op := range ops {
		if err := t.applyOp(op); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal[B]) applyOp(op Operation) error {
	var err error
	switch op.Kind {
	case OpSetForeground:
		err = t.bound.SetForeground(op.Color)
	case OpSetBackground:
		err = t.bound.SetBackground(op.Color)
	case OpSetIntensity:
		err = t.bound.SetIntensity(op.Intensity)
	case OpSetItalic:
		err = t.bound.SetItalic(op.Bool)
	case OpSetUnderlined:
		err = t.bound.SetUnderlined(op.Bool)
	case OpSetBlinking:
		err = t.bound.SetBlinking(op.Bool)
	case OpSetCrossedOut:
		err = t.bound.SetCrossedOut(op.Bool)
	case OpSetCursorPos:
		err = t.bound.SetCursorPos(op.Pos)
	case OpWrite:
		err = t.bound.Write(op.Text)
	case OpShowCursor:
		err = t.bound.ShowCursor()
	case OpHideCursor:
		err = t.bound.HideCursor()
	case OpSetCursorShape:
		err = t.bound.SetCursorShape(op.Shape)
	case OpSetCursorBlinking:
		err = t.bound.SetCursorBlinking(op.Bool)
	}
	if err != nil {
		return &BackendError{Err: err}
	}
	return nil
}

// runEventLoop awaits backend events, synthesizes the enriched mouse state
// machine, handles resize, and dispatches to element.Handle, per spec
// §4.5 step 2d-2e. It returns redraw=true when a Resize event requires
// breaking back to the draw step.
func runEventLoop[B Bound, Event any](ctx context.Context, t *Terminal[B], element Element[Event]) ([]Event, bool, error) {
	for {
		ev, err := t.bound.ReadEvent(ctx)
		if err != nil {
			return nil, false, &BackendError{Err: err}
		}

		var input Input
		switch ev.Kind {
		case TerminalEventKey:
			input = KeyInput(ev.Key)

		case TerminalEventMouse:
			mouseInput := t.synthesizeMouse(ev.Mouse)
			if mouseInput.Mouse.Kind == mouseReleaseNoHold {
				// Stray release with no matching press: drop and keep
				// awaiting (spec §4.5).
				continue
			}
			input = mouseInput

		case TerminalEventResize:
			size := t.buffers.old.Size()
			if ev.Resize == size {
				continue
			}
			anchor := t.held.cursorPos.Y
			t.buffers.old.Grid.ResizeWidth(ev.Resize.X)
			t.buffers.next.Grid.ResizeWidth(ev.Resize.X)
			t.buffers.old.Grid.ResizeHeightWithAnchor(ev.Resize.Y, anchor)
			t.buffers.next.Grid.ResizeHeightWithAnchor(ev.Resize.Y, anchor)
			t.clampCursor()
			return nil, true, nil
		}

		sink := &Collector[Event]{}
		element.Handle(input, sink)
		if len(sink.Events) > 0 {
			return sink.Events, false, nil
		}
	}
}

// synthesizeMouse derives the enriched, outward-facing Mouse event from a
// backend's raw TerminalMouse plus the remembered held button, per spec
// §4.5's mouse state machine. A Release with nothing held is returned with
// Kind set to the mouseReleaseNoHold sentinel, which runEventLoop drops
// before continuing its await.
func (t *Terminal[B]) synthesizeMouse(raw TerminalMouse) Input {
	size := t.buffers.old.Size()
	base := Mouse{At: raw.At, Size: size, Modifiers: raw.Modifiers}

	switch raw.Kind {
	case TerminalMousePress:
		b := raw.Button
		t.heldMouse = &b
		base.Kind = MousePress
		base.Button = b
	case TerminalMouseMove:
		if t.heldMouse != nil {
			base.Kind = MouseDrag
			base.Button = *t.heldMouse
		} else {
			base.Kind = MouseMove
		}
	case TerminalMouseScrollUp:
		base.Kind = MouseScrollUp
	case TerminalMouseScrollDown:
		base.Kind = MouseScrollDown
	case TerminalMouseRelease:
		if t.heldMouse == nil {
			// Stray release; mark with a sentinel Kind the caller
			// recognizes and drops. Button stays at its zero value.
			base.Kind = mouseReleaseNoHold
			return MouseInput(base)
		}
		base.Kind = MouseRelease
		base.Button = *t.heldMouse
		t.heldMouse = nil
	}
	return MouseInput(base)
}

// mouseReleaseNoHold marks a Release event with nothing held, which
// runEventLoop drops (spec §4.5: "drop the event and continue awaiting").
const mouseReleaseNoHold MouseKind = 255

// clampCursor clamps the controller's held cursor position into the
// current buffer bounds after a resize, matching terminal.rs's
// unconditional post-resize cursor_pos clamp.
func (t *Terminal[B]) clampCursor() {
	size := t.buffers.old.Size()
	t.held.cursorPos = t.held.cursorPos.Min(Vec2[uint16]{X: subSat(size.X, 1), Y: subSat(size.Y, 1)})
}
