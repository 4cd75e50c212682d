package gpu

import (
	"encoding/binary"
	"math"
)

// fetchIndex reads vertex slot i's index (component F, step 1): the
// raw vertex number if indexing is disabled, or the width-`idx.typ`
// value stored at byte position i*width in the index buffer.
func (g *GPU) fetchIndex(p *pullerObj, i uint32) uint32 {
	if !p.indexing.enabled {
		return i
	}
	buf, ok := g.buffers.get(p.indexing.buffer)
	if !ok {
		return i
	}
	width := p.indexing.typ.size()
	off := uint64(i) * uint64(width)
	switch p.indexing.typ {
	case IndexUint8:
		return uint32(buf.data[off])
	case IndexUint16:
		return uint32(binary.LittleEndian.Uint16(buf.data[off : off+2]))
	case IndexUint32:
		return binary.LittleEndian.Uint32(buf.data[off : off+4])
	default:
		return i
	}
}

// fetchAttribute reads one value of h.typ from h's buffer at byte
// position h.offset+h.stride*index into a (component F, step 2). A
// disabled head, or an enabled head whose buffer is dead, leaves a
// untouched (AttrEmpty, the zero Attribute).
func (g *GPU) fetchAttribute(h *head, index uint32, a *Attribute) AttributeType {
	if !h.enabled || h.typ == AttrEmpty {
		return AttrEmpty
	}
	buf, ok := g.buffers.get(h.buffer)
	if !ok {
		return AttrEmpty
	}
	off := h.offset + h.stride*uint64(index)
	n := h.typ.components()
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint32(buf.data[off+uint64(i)*4 : off+uint64(i)*4+4])
		a[i] = math.Float32frombits(bits)
	}
	return h.typ
}

// processVertices runs the vertex processor over the first
// nofVertices slots of the bound puller, invoking prg.vs once per
// slot.
func (g *GPU) processVertices(p *pullerObj, prg *programObj, nofVertices uint32) []outAbstractVertex {
	out := make([]outAbstractVertex, nofVertices)
	for i := uint32(0); i < nofVertices; i++ {
		index := g.fetchIndex(p, i)

		var in InVertex
		in.VertexID = index
		for k := range p.heads {
			g.fetchAttribute(&p.heads[k], index, &in.Attributes[k])
		}

		ov := &out[i]
		if prg.vs != nil {
			prg.vs(&ov.OutVertex, &in, &prg.uniforms)
		}
		ov.varyingType = prg.varyingType
	}
	return out
}
