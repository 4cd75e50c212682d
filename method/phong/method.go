package phong

import (
	"encoding/binary"
	"math"

	"github.com/virtgpu/virtgpu/gpu"
	"github.com/virtgpu/virtgpu/linear"
)

// vertexStride is the byte size of one interleaved position+normal
// vertex: 3 position floats followed by 3 normal floats.
const vertexStride = 6 * 4

// Method owns the GPU resources backing one Phong-shaded mesh: a
// vertex buffer, an index buffer, a vertex puller and a program.
type Method struct {
	g *gpu.GPU

	vertexBuffer gpu.ID
	indexBuffer  gpu.ID
	puller       gpu.ID
	program      gpu.ID
	nofIndices   uint32
}

// New uploads vertices (interleaved position+normal float32 triples,
// stride vertexStride) and indices (uint32) to g and wires a vertex
// puller and program to read them with the Phong shaders.
func New(g *gpu.GPU, vertices []float32, indices []uint32) *Method {
	m := &Method{g: g, nofIndices: uint32(len(indices))}

	vdata := encodeFloats(vertices)
	m.vertexBuffer = g.CreateBuffer(uint64(len(vdata)))
	g.SetBufferData(m.vertexBuffer, 0, uint64(len(vdata)), vdata)

	idata := encodeUint32s(indices)
	m.indexBuffer = g.CreateBuffer(uint64(len(idata)))
	g.SetBufferData(m.indexBuffer, 0, uint64(len(idata)), idata)

	m.puller = g.CreateVertexPuller()
	g.SetVertexPullerHead(m.puller, 0, gpu.AttrVec3, vertexStride, 0, m.vertexBuffer)
	g.SetVertexPullerHead(m.puller, 1, gpu.AttrVec3, vertexStride, 3*4, m.vertexBuffer)
	g.SetVertexPullerIndexing(m.puller, gpu.IndexUint32, m.indexBuffer)
	g.EnableVertexPullerHead(m.puller, 0)
	g.EnableVertexPullerHead(m.puller, 1)

	m.program = g.CreateProgram()
	g.AttachShaders(m.program, vertexShader, fragmentShader)
	g.SetVS2FSType(m.program, 0, gpu.AttrVec3)
	g.SetVS2FSType(m.program, 1, gpu.AttrVec3)

	return m
}

// Draw binds this method's puller and program, loads the given
// transforms and light/camera positions into the uniform block, and
// issues the draw call.
func (m *Method) Draw(proj, view linear.M4, light, camera linear.V3) error {
	m.g.BindVertexPuller(m.puller)
	m.g.UseProgram(m.program)
	m.g.ProgramUniformMatrix4f(m.program, uniformView, view)
	m.g.ProgramUniformMatrix4f(m.program, uniformProjection, proj)
	m.g.ProgramUniform3f(m.program, uniformLightPos, light)
	m.g.ProgramUniform3f(m.program, uniformCameraPos, camera)
	err := m.g.DrawTriangles(m.nofIndices)
	m.g.UnbindVertexPuller()
	return err
}

// Close releases every GPU resource this method owns. The Method
// must not be used afterward.
func (m *Method) Close() {
	m.g.DeleteBuffer(m.vertexBuffer)
	m.g.DeleteBuffer(m.indexBuffer)
	m.g.DeleteVertexPuller(m.puller)
	m.g.DeleteProgram(m.program)
}

func encodeFloats(vs []float32) []byte {
	out := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func encodeUint32s(vs []uint32) []byte {
	out := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}
