package gpu

// bufferObj is the storage backing a live buffer handle: an owned,
// contiguous, uninterpreted byte region.
type bufferObj struct {
	data []byte
}

// CreateBuffer allocates a buffer of the given size in bytes and
// returns its handle, or EmptyID if the buffer table has no room left;
// callers must check the result before using it.
func (g *GPU) CreateBuffer(size uint64) ID {
	return g.buffers.create(bufferObj{data: make([]byte, size)})
}

// DeleteBuffer releases the buffer named by h. It is a no-op if h is
// not a live buffer handle.
func (g *GPU) DeleteBuffer(h ID) { g.buffers.delete(h) }

// IsBuffer reports whether h names a live buffer.
func (g *GPU) IsBuffer(h ID) bool { return g.buffers.is(h) }

// SetBufferData copies size bytes from src into the buffer named by
// h, starting at offset. It is a no-op if h is not live. The caller
// must ensure offset+size does not exceed the buffer's capacity and
// that len(src) >= size; out-of-range access is undefined behavior,
// not a reported error.
func (g *GPU) SetBufferData(h ID, offset, size uint64, src []byte) {
	b, ok := g.buffers.get(h)
	if !ok {
		return
	}
	copy(b.data[offset:offset+size], src[:size])
}

// GetBufferData copies size bytes from the buffer named by h,
// starting at offset, into dst. It is a no-op if h is not live.
func (g *GPU) GetBufferData(h ID, offset, size uint64, dst []byte) {
	b, ok := g.buffers.get(h)
	if !ok {
		return
	}
	copy(dst[:size], b.data[offset:offset+size])
}
