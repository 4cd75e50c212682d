// Package gpu implements a CPU-resident virtual GPU: a small,
// strictly single-threaded rendering pipeline that accepts geometry
// in opaque buffers, runs caller-supplied vertex and fragment
// callbacks, and rasterizes triangles into an off-screen framebuffer.
//
// The pipeline is the software analogue of a fixed-function-plus-
// programmable-shader GPU. It owns every resource it creates
// (buffers, vertex pullers, programs, the framebuffer); callers hold
// only opaque IDs and, for the framebuffer planes, slices that are
// invalidated by the next resize or by GC once the GPU is dropped.
package gpu

import "github.com/virtgpu/virtgpu/linear"

// ID is an opaque handle to a live buffer, vertex puller or program.
// The zero value, EmptyID, never names a live resource.
type ID uint64

// EmptyID is the sentinel value meaning "no resource".
const EmptyID ID = 0

// Pipeline-wide limits. These are compile-time configuration, fixed
// for the lifetime of the process.
const (
	// MaxAttributes is the number of vertex-puller heads, the number
	// of varyings a program may declare, and the number of per-vertex
	// attribute slots in InVertex/OutVertex.
	MaxAttributes = 4

	// MaxUniforms is the number of uniform slots per program.
	MaxUniforms = 16
)

// AttributeType discriminates the value stored in an Attribute (a
// vertex-puller input) or interpreted from a varying (a program
// output). It is the parallel type tag carried alongside Attribute,
// since Attribute itself is an untagged union of up to 4 float32
// components.
type AttributeType uint8

const (
	// AttrEmpty means the slot carries no value; it must not be
	// read or interpolated.
	AttrEmpty AttributeType = iota
	AttrFloat
	AttrVec2
	AttrVec3
	AttrVec4
)

// components returns how many float32 lanes t occupies.
func (t AttributeType) components() int {
	switch t {
	case AttrFloat:
		return 1
	case AttrVec2:
		return 2
	case AttrVec3:
		return 3
	case AttrVec4:
		return 4
	default:
		return 0
	}
}

// IndexType discriminates the width of entries in an index buffer.
type IndexType uint8

const (
	IndexNone IndexType = iota
	IndexUint8
	IndexUint16
	IndexUint32
)

// size returns the byte width of t (0 for IndexNone).
func (t IndexType) size() int {
	switch t {
	case IndexUint8:
		return 1
	case IndexUint16:
		return 2
	case IndexUint32:
		return 4
	default:
		return 0
	}
}

// Attribute is the untagged storage for one vertex-puller input or
// one shaded-vertex varying: up to 4 float32 lanes, interpreted
// according to a parallel AttributeType. Only the first
// AttributeType.components() lanes are meaningful.
type Attribute [4]float32

// Float returns a[0].
func (a *Attribute) Float() float32 { return a[0] }

// Vec2 returns a as a linear.V2.
func (a *Attribute) Vec2() linear.V2 { return linear.V2{a[0], a[1]} }

// Vec3 returns a as a linear.V3.
func (a *Attribute) Vec3() linear.V3 { return linear.V3{a[0], a[1], a[2]} }

// Vec4 returns a as a linear.V4.
func (a *Attribute) Vec4() linear.V4 { return linear.V4{a[0], a[1], a[2], a[3]} }

// SetFloat stores f in a.
func (a *Attribute) SetFloat(f float32) { a[0] = f }

// SetVec2 stores v in a.
func (a *Attribute) SetVec2(v linear.V2) { a[0], a[1] = v[0], v[1] }

// SetVec3 stores v in a.
func (a *Attribute) SetVec3(v linear.V3) { a[0], a[1], a[2] = v[0], v[1], v[2] }

// SetVec4 stores v in a.
func (a *Attribute) SetVec4(v linear.V4) { *a = Attribute(v) }

// UniformType discriminates the value held by a UniformValue.
type UniformType uint8

const (
	UniformEmpty UniformType = iota
	UniformFloat
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat4
)

// UniformValue is a tagged uniform-slot cell: a float, a 2/3/4-vector
// or a 4x4 matrix.
type UniformValue struct {
	typ UniformType
	f   float32
	v2  linear.V2
	v3  linear.V3
	v4  linear.V4
	m4  linear.M4
}

// Type returns the value's tag.
func (u *UniformValue) Type() UniformType { return u.typ }

// Float returns the stored float (zero value if Type() != UniformFloat).
func (u *UniformValue) Float() float32 { return u.f }

// Vec2 returns the stored vector (zero value if Type() != UniformVec2).
func (u *UniformValue) Vec2() linear.V2 { return u.v2 }

// Vec3 returns the stored vector (zero value if Type() != UniformVec3).
func (u *UniformValue) Vec3() linear.V3 { return u.v3 }

// Vec4 returns the stored vector (zero value if Type() != UniformVec4).
func (u *UniformValue) Vec4() linear.V4 { return u.v4 }

// Mat4 returns the stored matrix (zero value if Type() != UniformMat4).
func (u *UniformValue) Mat4() linear.M4 { return u.m4 }
