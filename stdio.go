package weft

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Tty is the I/O handle a Backend binds to: either a dummy (no real TTY
// access, for tests) or a real terminal file. Grounded on
// original_source/src/backend/mod.rs's Tty/TtyInner.
type Tty struct {
	file  *os.File
	dummy bool
}

// DummyTty builds a Tty that performs no real I/O.
func DummyTty() *Tty { return &Tty{dummy: true} }

// RealTty wraps an already-open terminal file (e.g. /dev/tty or stdout).
func RealTty(f *os.File) *Tty { return &Tty{file: f} }

func (t *Tty) Write(p []byte) (int, error) {
	if t.dummy {
		return len(p), nil
	}
	return t.file.Write(p)
}

// capturedStdio redirects stdout/stderr to a pipe for the Terminal's
// lifetime, so application log output doesn't corrupt the drawn frame.
// Grounded on original_source's TtyInner (os_pipe + stdio_override),
// reimplemented with os.Pipe since no packaged stdio-redirection library
// appears anywhere in the retrieval pack; gated by go-isatty so capture is
// skipped when stdout isn't a real terminal (e.g. under `go test`).
type capturedStdio struct {
	origStdout *os.File
	origStderr *os.File
	readEnd    *os.File
	writeEnd   *os.File
	active     bool
}

// startCapture installs the redirect if stdout looks like a real
// terminal; otherwise it's a no-op and ok() reports false.
func startCapture() (*capturedStdio, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return &capturedStdio{}, nil
	}
	r, w, err := os.Pipe()
	if err != nil {
		return nil, &StdioError{Err: err}
	}
	c := &capturedStdio{
		origStdout: os.Stdout,
		origStderr: os.Stderr,
		readEnd:    r,
		writeEnd:   w,
		active:     true,
	}
	os.Stdout = w
	os.Stderr = w
	return c, nil
}

// ok reports whether capture is actually active.
func (c *capturedStdio) ok() bool { return c != nil && c.active }

// takeReader hands ownership of the captured pipe's read end to the
// caller, who becomes responsible for draining it. After this call cleanup
// no longer drains automatically.
func (c *capturedStdio) takeReader() (io.Reader, bool) {
	if !c.ok() {
		return nil, false
	}
	c.active = false
	os.Stdout = c.origStdout
	os.Stderr = c.origStderr
	c.writeEnd.Close()
	return c.readEnd, true
}

// cleanup restores the original stdout/stderr and drains whatever was
// captured to the real stdout, unless the reader was already taken.
func (c *capturedStdio) cleanup() error {
	if !c.ok() {
		return nil
	}
	c.active = false
	os.Stdout = c.origStdout
	os.Stderr = c.origStderr
	c.writeEnd.Close()
	_, err := io.Copy(c.origStdout, c.readEnd)
	c.readEnd.Close()
	if err != nil {
		return &StdioError{Err: err}
	}
	return nil
}
