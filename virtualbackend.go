package weft

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/muesli/cancelreader"
)

// VirtualBackend is a Backend/Bound pair that performs no real terminal
// I/O, recording every style, cursor and write call as an Operation
// instead; SetTitle stores the title (see Title), and Flush and Reset are
// not recorded. Grounded on original_source/src/terminal.rs's use of
// backend::Dummy in test_diff_grid; the Dummy type itself isn't in the
// retrieval pack, so its shape here is inferred from that call site: a
// dummy that records an Operation log. It always starts with an empty log
// and has no way to be seeded from existing buffer contents.
type VirtualBackend struct {
	mu         sync.Mutex
	size       Vec2[uint16]
	ops        []Operation
	title      string
	cursorVis  bool
	events     chan TerminalEvent
	feedReader cancelreader.CancelReader
	feedDone   chan struct{}
}

// NewVirtualBackend builds a virtual backend of the given size.
func NewVirtualBackend(size Vec2[uint16]) *VirtualBackend {
	return &VirtualBackend{size: size, events: make(chan TerminalEvent, 16)}
}

// Bind satisfies Backend[*VirtualBackend]; the virtual backend needs no
// real Tty, so it ignores the one it's given.
func (v *VirtualBackend) Bind(tty *Tty) (*VirtualBackend, error) { return v, nil }

// IsDummy reports true: the virtual backend never touches a real terminal.
func (v *VirtualBackend) IsDummy() bool { return true }

// Operations returns a copy of the recorded operation log.
func (v *VirtualBackend) Operations() []Operation {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Operation, len(v.ops))
	copy(out, v.ops)
	return out
}

// ResetOperations clears the recorded log without touching any other
// state.
func (v *VirtualBackend) ResetOperations() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ops = nil
}

// PushEvent queues a TerminalEvent for a future ReadEvent call to return,
// simulating a real backend's input stream for controller tests.
func (v *VirtualBackend) PushEvent(e TerminalEvent) {
	v.events <- e
}

func (v *VirtualBackend) record(op Operation) {
	v.mu.Lock()
	v.ops = append(v.ops, op)
	v.mu.Unlock()
}

func (v *VirtualBackend) Size() (Vec2[uint16], error) { return v.size, nil }

func (v *VirtualBackend) SetTitle(title string) error {
	v.mu.Lock()
	v.title = title
	v.mu.Unlock()
	return nil
}

// Title returns the last title set, for assertions in tests.
func (v *VirtualBackend) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}

func (v *VirtualBackend) HideCursor() error {
	v.record(Operation{Kind: OpHideCursor})
	return nil
}

func (v *VirtualBackend) ShowCursor() error {
	v.record(Operation{Kind: OpShowCursor})
	return nil
}

func (v *VirtualBackend) SetCursorShape(shape CursorShape) error {
	v.record(Operation{Kind: OpSetCursorShape, Shape: shape})
	return nil
}

func (v *VirtualBackend) SetCursorBlinking(blinking bool) error {
	v.record(Operation{Kind: OpSetCursorBlinking, Bool: blinking})
	return nil
}

func (v *VirtualBackend) SetCursorPos(pos Vec2[uint16]) error {
	v.record(Operation{Kind: OpSetCursorPos, Pos: pos})
	return nil
}

func (v *VirtualBackend) SetForeground(c Color) error {
	v.record(Operation{Kind: OpSetForeground, Color: c})
	return nil
}

func (v *VirtualBackend) SetBackground(c Color) error {
	v.record(Operation{Kind: OpSetBackground, Color: c})
	return nil
}

func (v *VirtualBackend) SetIntensity(i Intensity) error {
	v.record(Operation{Kind: OpSetIntensity, Intensity: i})
	return nil
}

func (v *VirtualBackend) SetItalic(on bool) error {
	v.record(Operation{Kind: OpSetItalic, Bool: on})
	return nil
}

func (v *VirtualBackend) SetUnderlined(on bool) error {
	v.record(Operation{Kind: OpSetUnderlined, Bool: on})
	return nil
}

func (v *VirtualBackend) SetBlinking(on bool) error {
	v.record(Operation{Kind: OpSetBlinking, Bool: on})
	return nil
}

func (v *VirtualBackend) SetCrossedOut(on bool) error {
	v.record(Operation{Kind: OpSetCrossedOut, Bool: on})
	return nil
}

func (v *VirtualBackend) Write(text string) error {
	v.record(Operation{Kind: OpWrite, Text: text})
	return nil
}

func (v *VirtualBackend) Flush() error { return nil }

func (v *VirtualBackend) Reset() (*Tty, error) { return DummyTty(), nil }

// ReadEvent blocks until an event is pushed via PushEvent or ctx is
// canceled. Cancellation is implemented by racing ctx.Done against the
// event channel, the same contract a real cancelreader-backed backend
// would provide.
func (v *VirtualBackend) ReadEvent(ctx context.Context) (TerminalEvent, error) {
	select {
	case e := <-v.events:
		return e, nil
	case <-ctx.Done():
		return TerminalEvent{}, ctx.Err()
	}
}

// errClosedFeed names the closed state of an attached input feed. Nothing
// in this package returns it: AttachByteFeed's read goroutine simply exits
// on any read error, including cancellation.
var errClosedFeed = errors.New("weft: virtual backend input feed closed")

// AttachByteFeed wires r (e.g. a pipe a test writes raw keepalive bytes
// into) through a cancelreader.CancelReader so that canceling the returned
// stop function halts the background read goroutine the same way a real
// backend's cancellable read must (spec §5). Each byte read simply wakes
// the feed; decoding bytes into key/mouse events is a concrete backend's
// job and stays out of scope here (spec §2), so this exists purely to
// exercise the cancellation contract in tests.
func (v *VirtualBackend) AttachByteFeed(r io.Reader) (stop func(), err error) {
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, err
	}
	v.feedReader = cr
	v.feedDone = make(chan struct{})
	go func() {
		defer close(v.feedDone)
		buf := make([]byte, 256)
		for {
			_, err := cr.Read(buf)
			if err != nil {
				return
			}
		}
	}()
	return func() {
		cr.Cancel()
		<-v.feedDone
	}, nil
}
