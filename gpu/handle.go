package gpu

import "github.com/virtgpu/virtgpu/internal/bitm"

// indexBits is the width of the slot index packed into an ID; the
// remaining high bits carry the slot's generation. This lets handles
// be reused after deletion without risking a stale ID aliasing a new
// resource.
const indexBits = 32

const indexMask = 1<<indexBits - 1

// slot is one entry of a slotTable.
type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// maxSlots is the number of slots a slotTable can ever hand out
// (indices 0 to maxSlots-1): an ID packs index+1 into the low
// indexBits bits, so an index at or beyond this point cannot be
// encoded.
const maxSlots = 1<<indexBits - 1

// slotTable is a dense, generation-tagged table mapping IDs to
// values of type T, giving O(1) create/delete/validate in place of a
// pointer-search linked list.
type slotTable[T any] struct {
	slots []slot[T]
	free  bitm.Bitm[uint32]

	// capacity caps the number of slots ever allocated (live or
	// tombstoned). Zero means maxSlots; tests shrink it to force the
	// allocation-failure path without allocating maxSlots entries.
	capacity int
}

func (t *slotTable[T]) cap() int {
	if t.capacity == 0 {
		return maxSlots
	}
	return t.capacity
}

// create allocates a new live slot holding value and returns its ID,
// or EmptyID if the table has already allocated cap() slots and none
// are free for reuse.
func (t *slotTable[T]) create(value T) ID {
	idx, ok := t.free.Search()
	if !ok || idx >= len(t.slots) {
		// No deleted slot to reuse: a new slot is needed.
		if len(t.slots) >= t.cap() {
			return EmptyID
		}
		if !ok {
			idx = t.free.Grow(1)
		}
	}
	if idx >= len(t.slots) {
		grown := make([]slot[T], idx+1)
		copy(grown, t.slots)
		t.slots = grown
	}
	t.free.Set(idx)
	s := &t.slots[idx]
	s.value = value
	s.live = true
	return packID(uint32(idx), s.gen)
}

// delete releases the slot named by h, if any. It is a no-op for an
// unknown or already-dead handle.
func (t *slotTable[T]) delete(h ID) {
	idx, gen, ok := unpackID(h)
	if !ok || idx >= len(t.slots) {
		return
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return
	}
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	t.free.Unset(idx)
}

// get returns a pointer to the value named by h, and whether h names
// a live slot. The pointer is valid until the next create/delete call
// that reallocates the backing slice.
func (t *slotTable[T]) get(h ID) (*T, bool) {
	idx, gen, ok := unpackID(h)
	if !ok || idx >= len(t.slots) {
		return nil, false
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return nil, false
	}
	return &s.value, true
}

// is reports whether h names a live slot.
func (t *slotTable[T]) is(h ID) bool {
	_, ok := t.get(h)
	return ok
}

// packID combines a slot index and generation into an ID. The index
// is stored as index+1, so slot 0 never encodes to a zero index field
// and EmptyID (all bits zero) never names a slot.
func packID(index, gen uint32) ID {
	return ID(uint64(gen)<<indexBits | uint64(index+1))
}

// unpackID reverses packID. ok is false for EmptyID or any ID whose
// low indexBits bits are zero.
func unpackID(h ID) (index int, gen uint32, ok bool) {
	if h == EmptyID {
		return 0, 0, false
	}
	raw := uint64(h) & indexMask
	if raw == 0 {
		return 0, 0, false
	}
	index = int(raw - 1)
	gen = uint32(uint64(h) >> indexBits)
	ok = true
	return
}
