package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/virtgpu/virtgpu/linear"
)

// packF32 appends the little-endian bytes of each value in vs to buf.
func packF32(buf []byte, vs ...float32) []byte {
	for _, v := range vs {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		buf = append(buf, b[:]...)
	}
	return buf
}

func passthroughVS(out *OutVertex, in *InVertex, u *Uniforms) {
	p := in.Attributes[0].Vec3()
	out.Position = linear.V4{p[0], p[1], p[2], 1}
}

func whiteFS(out *OutFragment, in *InFragment, u *Uniforms) {
	out.Color = linear.V4{1, 1, 1, 1}
}

// setupTriangleGPU wires a puller carrying a single vec3 position
// attribute to a program using passthroughVS/whiteFS.
func setupTriangleGPU(t *testing.T, w, h uint32) (*GPU, ID /* buffer */) {
	t.Helper()
	g := New()
	g.CreateFramebuffer(w, h)
	g.Clear(0, 0, 0, 0)

	buf := g.CreateBuffer(1024)
	vp := g.CreateVertexPuller()
	g.SetVertexPullerHead(vp, 0, AttrVec3, 12, 0, buf)
	g.EnableVertexPullerHead(vp, 0)
	g.BindVertexPuller(vp)

	prg := g.CreateProgram()
	g.AttachShaders(prg, passthroughVS, whiteFS)
	g.UseProgram(prg)

	return g, buf
}

func TestDrawSingleTriangleNoTransform(t *testing.T) {
	g, buf := setupTriangleGPU(t, 8, 8)

	var data []byte
	data = packF32(data, -1, -1, 0)
	data = packF32(data, 1, -1, 0)
	data = packF32(data, -1, 1, 0)
	g.SetBufferData(buf, 0, uint64(len(data)), data)

	if err := g.DrawTriangles(3); err != nil {
		t.Fatalf("DrawTriangles: %v", err)
	}

	// The bottom-left quadrant of the viewport should be white; the
	// opposite corner should remain the cleared transparent black.
	color := g.FramebufferColor()
	bottomLeft := 0
	topRight := (7*8 + 7) * 4
	if color[bottomLeft] != 255 || color[bottomLeft+3] != 255 {
		t.Fatalf("bottom-left pixel not shaded white: %v", color[bottomLeft:bottomLeft+4])
	}
	if color[topRight] != 0 {
		t.Fatalf("top-right pixel should remain cleared: %v", color[topRight:topRight+4])
	}
}

func TestDrawIndexedTwoTriangles(t *testing.T) {
	g, buf := setupTriangleGPU(t, 8, 8)

	var data []byte
	data = packF32(data, -1, -1, 0) // 0
	data = packF32(data, 1, -1, 0)  // 1
	data = packF32(data, 1, 1, 0)   // 2
	data = packF32(data, -1, 1, 0)  // 3
	g.SetBufferData(buf, 0, uint64(len(data)), data)

	idxBuf := g.CreateBuffer(16)
	idx := []byte{0, 1, 2, 0, 2, 3}
	g.SetBufferData(idxBuf, 0, uint64(len(idx)), idx)

	g.SetVertexPullerIndexing(g.activePuller, IndexUint8, idxBuf)

	if err := g.DrawTriangles(6); err != nil {
		t.Fatalf("DrawTriangles: %v", err)
	}

	color := g.FramebufferColor()
	for i := 0; i < len(color); i += 4 {
		if color[i+3] != 255 {
			t.Fatalf("pixel %d not covered by the quad: %v", i/4, color[i:i+4])
		}
	}
}

func TestDrawClipsNearPlaneVertex(t *testing.T) {
	g, buf := setupTriangleGPU(t, 8, 8)

	var data []byte
	data = packF32(data, -1, -1, -5) // behind near plane: z+w = -5+1 = -4
	data = packF32(data, 1, -1, 0)
	data = packF32(data, -1, 1, 0)
	g.SetBufferData(buf, 0, uint64(len(data)), data)

	if err := g.DrawTriangles(3); err != nil {
		t.Fatalf("DrawTriangles: %v", err)
	}
	// Must not panic and must produce at least the unclipped corner.
	color := g.FramebufferColor()
	topLeftIdx := (7 * 8) * 4
	if color[topLeftIdx+3] != 255 {
		t.Fatalf("vertex on the near side of the plane should still be shaded")
	}
}

func TestDrawDepthTestKeepsCloserFragment(t *testing.T) {
	g, buf := setupTriangleGPU(t, 4, 4)

	var far []byte
	far = packF32(far, -1, -1, 0.9)
	far = packF32(far, 1, -1, 0.9)
	far = packF32(far, -1, 1, 0.9)
	g.SetBufferData(buf, 0, uint64(len(far)), far)
	if err := g.DrawTriangles(3); err != nil {
		t.Fatalf("first draw: %v", err)
	}
	depthAfterFirst := append([]float32(nil), g.FramebufferDepth()...)

	var near []byte
	near = packF32(near, -1, -1, -0.9)
	near = packF32(near, 1, -1, -0.9)
	near = packF32(near, -1, 1, -0.9)
	g.SetBufferData(buf, 0, uint64(len(near)), near)
	if err := g.DrawTriangles(3); err != nil {
		t.Fatalf("second draw: %v", err)
	}
	depthAfterSecond := g.FramebufferDepth()

	for i, d := range depthAfterFirst {
		if d == maxNDCDepth {
			continue
		}
		if depthAfterSecond[i] >= d {
			t.Fatalf("closer triangle failed to overwrite the depth at pixel %d: %v -> %v", i, d, depthAfterSecond[i])
		}
	}
}

func TestDrawTrianglesWithoutFramebufferIsNoop(t *testing.T) {
	g := New()
	vp := g.CreateVertexPuller()
	g.BindVertexPuller(vp)
	prg := g.CreateProgram()
	g.UseProgram(prg)

	if err := g.DrawTriangles(3); err != nil {
		t.Fatalf("DrawTriangles without a framebuffer: %v", err)
	}
}
