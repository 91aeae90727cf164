package weft

import (
	"context"
	"testing"
	"time"
)

type clickEvent struct{ label string }

func newTestTerminal(t *testing.T, size Vec2[uint16]) (*Terminal[*VirtualBackend], *VirtualBackend) {
	t.Helper()
	vb := NewVirtualBackend(size)
	term, err := New[*VirtualBackend](vb, DefaultConfig())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(term.Cleanup)
	return term, vb
}

func TestDrawEmitsEventOnMatchedKey(t *testing.T) {
	term, vb := newTestTerminal(t, Vec2[uint16]{X: 10, Y: 3})

	element := Wrap[clickEvent](NewSpan[clickEvent]("hi")).
		On(Key('q'), func(Input) clickEvent { return clickEvent{label: "quit"} })

	vb.PushEvent(TerminalEvent{Kind: TerminalEventKey, Key: KeyPress{Code: KeyChar, Char: 'q'}})

	events, err := Draw[*VirtualBackend, clickEvent](context.Background(), term, element.Element)
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if len(events) != 1 || events[0].label != "quit" {
		t.Fatalf("events = %+v, want one clickEvent{quit}", events)
	}
}

func TestDrawHandlesResizeThenEvent(t *testing.T) {
	term, vb := newTestTerminal(t, Vec2[uint16]{X: 10, Y: 3})

	element := Wrap[clickEvent](NewSpan[clickEvent]("hi")).
		On(Key('q'), func(Input) clickEvent { return clickEvent{label: "quit"} })

	vb.PushEvent(TerminalEvent{Kind: TerminalEventResize, Resize: Vec2[uint16]{X: 20, Y: 6}})
	vb.PushEvent(TerminalEvent{Kind: TerminalEventKey, Key: KeyPress{Code: KeyChar, Char: 'q'}})

	events, err := Draw[*VirtualBackend, clickEvent](context.Background(), term, element.Element)
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %+v, want one event", events)
	}
	if got := term.Size(); got != (Vec2[uint16]{X: 20, Y: 6}) {
		t.Errorf("Size() after resize = %+v, want {20 6}", got)
	}
}

func TestDrawContextCancelPropagatesAsBackendError(t *testing.T) {
	term, _ := newTestTerminal(t, Vec2[uint16]{X: 10, Y: 3})
	element := Wrap[clickEvent](NewSpan[clickEvent]("hi"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Draw[*VirtualBackend, clickEvent](ctx, term, element.Element)
	if err == nil {
		t.Fatal("expected an error from a canceled context")
	}
	if _, ok := err.(*BackendError); !ok {
		t.Errorf("error = %T, want *BackendError", err)
	}
}

func TestSynthesizeMouseStateMachine(t *testing.T) {
	term, _ := newTestTerminal(t, Vec2[uint16]{X: 10, Y: 10})

	press := term.synthesizeMouse(TerminalMouse{Kind: TerminalMousePress, Button: MouseLeft, At: Vec2[uint16]{X: 1, Y: 1}})
	if press.Mouse.Kind != MousePress || press.Mouse.Button != MouseLeft {
		t.Fatalf("press = %+v", press.Mouse)
	}

	move := term.synthesizeMouse(TerminalMouse{Kind: TerminalMouseMove, At: Vec2[uint16]{X: 2, Y: 1}})
	if move.Mouse.Kind != MouseDrag || move.Mouse.Button != MouseLeft {
		t.Fatalf("expected a drag while a button is held, got %+v", move.Mouse)
	}

	release := term.synthesizeMouse(TerminalMouse{Kind: TerminalMouseRelease, At: Vec2[uint16]{X: 2, Y: 1}})
	if release.Mouse.Kind != MouseRelease || release.Mouse.Button != MouseLeft {
		t.Fatalf("expected a release of the held button, got %+v", release.Mouse)
	}

	moveAfterRelease := term.synthesizeMouse(TerminalMouse{Kind: TerminalMouseMove, At: Vec2[uint16]{X: 3, Y: 1}})
	if moveAfterRelease.Mouse.Kind != MouseMove {
		t.Fatalf("expected a plain move with nothing held, got %+v", moveAfterRelease.Mouse)
	}

	strayRelease := term.synthesizeMouse(TerminalMouse{Kind: TerminalMouseRelease, At: Vec2[uint16]{X: 3, Y: 1}})
	if strayRelease.Mouse.Kind != mouseReleaseNoHold {
		t.Fatalf("expected the stray-release sentinel, got %+v", strayRelease.Mouse)
	}
}

// notDummyBackend wraps a VirtualBackend but reports itself as a real
// backend, so New() exercises the singleton guard.
type notDummyBackend struct {
	*VirtualBackend
}

func (n *notDummyBackend) IsDummy() bool { return false }

func (n *notDummyBackend) Bind(tty *Tty) (*notDummyBackend, error) { return n, nil }

func TestDuplicateRealTerminalPanics(t *testing.T) {
	first, err := New[*notDummyBackend](&notDummyBackend{NewVirtualBackend(Vec2[uint16]{X: 10, Y: 5})}, DefaultConfig())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer first.Cleanup()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic constructing a second non-dummy Terminal")
		}
	}()
	_, _ = New[*notDummyBackend](&notDummyBackend{NewVirtualBackend(Vec2[uint16]{X: 10, Y: 5})}, DefaultConfig())
}

func TestVirtualBackendReadEventCancellation(t *testing.T) {
	vb := NewVirtualBackend(Vec2[uint16]{X: 1, Y: 1})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := vb.ReadEvent(ctx)
	if err == nil {
		t.Fatal("expected a timeout error from ReadEvent")
	}
}
