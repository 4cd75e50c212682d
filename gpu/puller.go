package gpu

// head is one of a vertex puller's parallel attribute-fetch slots. A
// disabled or AttrEmpty-typed head contributes no attribute to the
// vertex processor.
type head struct {
	enabled bool
	typ     AttributeType
	stride  uint64
	offset  uint64
	buffer  ID
}

// indexing describes the optional index stream of a vertex puller.
type indexing struct {
	enabled bool
	typ     IndexType
	buffer  ID
}

// pullerObj is the storage backing a live vertex-puller handle.
type pullerObj struct {
	heads    [MaxAttributes]head
	indexing indexing
}

// CreateVertexPuller allocates a vertex puller with every head
// disabled and indexing disabled, and returns its handle, or EmptyID
// if the puller table has no room left.
func (g *GPU) CreateVertexPuller() ID {
	return g.pullers.create(pullerObj{})
}

// DeleteVertexPuller releases the vertex puller named by h. It is a
// no-op if h is not live. If h is the active puller, the active
// binding is cleared.
func (g *GPU) DeleteVertexPuller(h ID) {
	g.pullers.delete(h)
	if g.activePuller == h {
		g.activePuller = EmptyID
	}
}

// IsVertexPuller reports whether h names a live vertex puller.
func (g *GPU) IsVertexPuller(h ID) bool { return g.pullers.is(h) }

// SetVertexPullerHead sets head k's fetch description on puller v.
// It does not enable the head. A no-op if v is not live or k is out
// of range.
func (g *GPU) SetVertexPullerHead(v ID, k uint32, typ AttributeType, stride, offset uint64, buffer ID) {
	p, ok := g.pullers.get(v)
	if !ok || int(k) >= len(p.heads) {
		return
	}
	p.heads[k].typ = typ
	p.heads[k].stride = stride
	p.heads[k].offset = offset
	p.heads[k].buffer = buffer
}

// SetVertexPullerIndexing enables and populates puller v's index
// stream. A no-op if v is not live.
func (g *GPU) SetVertexPullerIndexing(v ID, typ IndexType, buffer ID) {
	p, ok := g.pullers.get(v)
	if !ok {
		return
	}
	p.indexing = indexing{enabled: true, typ: typ, buffer: buffer}
}

// EnableVertexPullerHead enables head k of puller v. A no-op if v is
// not live or k is out of range.
func (g *GPU) EnableVertexPullerHead(v ID, k uint32) {
	p, ok := g.pullers.get(v)
	if !ok || int(k) >= len(p.heads) {
		return
	}
	p.heads[k].enabled = true
}

// DisableVertexPullerHead disables head k of puller v. A no-op if v
// is not live or k is out of range.
func (g *GPU) DisableVertexPullerHead(v ID, k uint32) {
	p, ok := g.pullers.get(v)
	if !ok || int(k) >= len(p.heads) {
		return
	}
	p.heads[k].enabled = false
}

// BindVertexPuller sets the active vertex puller. Binding an unknown
// handle leaves the current selection unchanged.
func (g *GPU) BindVertexPuller(v ID) {
	if !g.pullers.is(v) {
		return
	}
	g.activePuller = v
}

// UnbindVertexPuller clears the active vertex puller.
func (g *GPU) UnbindVertexPuller() { g.activePuller = EmptyID }
