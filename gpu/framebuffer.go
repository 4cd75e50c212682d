package gpu

import "math"

// Framebuffer owns the color and depth planes written by draw calls.
// Pixel (0,0) is at the bottom-left, stored row-major with row 0 at
// the bottom — the layout guarantee made to external consumers of the
// raw planes.
type Framebuffer struct {
	width, height uint32
	color         []byte    // RGBA8, 4*width*height bytes.
	depth         []float32 // width*height values.
}

// maxNDCDepth is a value guaranteed to compare greater than any
// representable NDC depth, used to reset the depth plane on clear.
const maxNDCDepth = math.MaxFloat32

// CreateFramebuffer allocates a framebuffer of the given size.
// Contents are unspecified until Clear runs. Replaces any existing
// framebuffer.
func (g *GPU) CreateFramebuffer(w, h uint32) {
	g.fb = &Framebuffer{
		width:  w,
		height: h,
		color:  make([]byte, 4*uint64(w)*uint64(h)),
		depth:  make([]float32, uint64(w)*uint64(h)),
	}
}

// ResizeFramebuffer is equivalent to destroying and recreating the
// framebuffer at the new size; previous contents are lost. Any
// slices previously returned by FramebufferColor/FramebufferDepth
// are invalidated.
func (g *GPU) ResizeFramebuffer(w, h uint32) { g.CreateFramebuffer(w, h) }

// FramebufferColor returns the row-major RGBA8 color plane. The
// slice is invalidated by the next resize.
func (g *GPU) FramebufferColor() []byte {
	if g.fb == nil {
		return nil
	}
	return g.fb.color
}

// FramebufferDepth returns the row-major f32 depth plane. The slice
// is invalidated by the next resize.
func (g *GPU) FramebufferDepth() []float32 {
	if g.fb == nil {
		return nil
	}
	return g.fb.depth
}

// FramebufferWidth returns the framebuffer's width in pixels.
func (g *GPU) FramebufferWidth() uint32 {
	if g.fb == nil {
		return 0
	}
	return g.fb.width
}

// FramebufferHeight returns the framebuffer's height in pixels.
func (g *GPU) FramebufferHeight() uint32 {
	if g.fb == nil {
		return 0
	}
	return g.fb.height
}

// Clear fills every color pixel with (r,g,b,a), clamped to [0,1] and
// denormalized by multiplying by 255 (not 256) and truncating to u8,
// and resets every depth value so that it compares greater than any
// value DrawTriangles can produce. Scaling by 256 instead of 255 would
// let 1.0 truncate to 0 on overflow instead of saturating at 255, so
// 255 is used deliberately.
func (g *GPU) Clear(r, gr, b, a float32) {
	if g.fb == nil {
		return
	}
	rb, gb, bb, ab := denormColor(r), denormColor(gr), denormColor(b), denormColor(a)
	for i := 0; i < len(g.fb.color); i += 4 {
		g.fb.color[i+0] = rb
		g.fb.color[i+1] = gb
		g.fb.color[i+2] = bb
		g.fb.color[i+3] = ab
	}
	for i := range g.fb.depth {
		g.fb.depth[i] = maxNDCDepth
	}
}

// denormColor clamps c to [0,1], scales by 255 and truncates to u8.
func denormColor(c float32) byte {
	if c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}
	return byte(c * 255)
}
