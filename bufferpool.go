package weft

import "sync"

// bufferPair holds the controller's old and new buffers and reuses their
// backing storage across frames the way the teacher's BufferPool reuses
// its double-buffered Buffer pair. Grounded on
// _examples/kungfusheep-glyph/bufferpool.go's Swap: a retired buffer is
// marked dirty and cleared before it is ever handed back out, so the
// caller never draws into (or resizes) a buffer a clear is still touching.
type bufferPair struct {
	mu      sync.Mutex
	old     *Buffer
	next    *Buffer
	dirty   bool
	stopped bool
}

func newBufferPair(size Vec2[uint16]) *bufferPair {
	return &bufferPair{
		old:  NewBuffer(size),
		next: NewBuffer(size),
	}
}

// Swap exchanges old and next, synchronously clearing the buffer that was
// just retired (the new "next") before returning, the same guarantee the
// teacher's Swap makes via its dirty-flag check.
func (p *bufferPair) Swap() (newOld, newNext *Buffer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.old, p.next = p.next, p.old
	if p.dirty {
		p.next.Reset()
	}
	p.dirty = true
	return p.old, p.next
}

// Resize reallocates both buffers to the new size, discarding contents.
func (p *bufferPair) Resize(size Vec2[uint16]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.old = NewBuffer(size)
	p.next = NewBuffer(size)
	p.dirty = false
}

// Stop is a no-op kept so callers don't need to change; there is no
// background goroutine to shut down now that clearing happens inline.
func (p *bufferPair) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
}
