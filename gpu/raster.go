package gpu

import "github.com/chewxy/math32"

// coverageEps is the barycentric coverage tolerance, a known-wide
// value chosen to absorb f32 error in the area summation; tightening
// it requires a more stable edge function, e.g. integer edge
// equations.
const coverageEps = 1.0 / 1024.0 // 2^-10

// fragmentSample is one covered pixel of a rasterized triangle,
// already perspective-correctly interpolated.
type fragmentSample struct {
	x, y       int
	depth      float32
	w          float32
	attributes [MaxAttributes]Attribute
}

// absArea returns the unsigned area of the triangle (x0,y0),
// (x1,y1), (x2,y2), via the shoelace formula.
func absArea(x0, y0, x1, y1, x2, y2 float32) float32 {
	a := x0*(y1-y2) + x1*(y2-y0) + x2*(y0-y1)
	if a < 0 {
		a = -a
	}
	return a / 2
}

// rasterize enumerates the covered pixels of t's screen-space
// triangle and returns one fragmentSample per covered pixel, in
// column-major order. A zero-area triangle, or one with a w=0 vertex,
// yields no fragments.
func rasterize(t *triangle, fbW, fbH uint32) []fragmentSample {
	A, B, C := &t.v[0], &t.v[1], &t.v[2]
	ax, ay := A.Position[0], A.Position[1]
	bx, by := B.Position[0], B.Position[1]
	cx, cy := C.Position[0], C.Position[1]

	area := absArea(ax, ay, bx, by, cx, cy)
	if area == 0 || A.Position[3] == 0 || B.Position[3] == 0 || C.Position[3] == 0 {
		return nil
	}

	xmin, xmax := bbox1D(min3(ax, bx, cx), max3(ax, bx, cx), fbW)
	ymin, ymax := bbox1D(min3(ay, by, cy), max3(ay, by, cy), fbH)

	var out []fragmentSample
	for x := xmin; x < xmax; x++ {
		px := float32(x) + 0.5
		insideRun := false
		for y := ymin; y < ymax; y++ {
			py := float32(y) + 0.5

			w0 := absArea(bx, by, cx, cy, px, py)
			w1 := absArea(cx, cy, ax, ay, px, py)
			w2 := absArea(ax, ay, bx, by, px, py)
			sum := w0 + w1 + w2

			lo, hi := area*(1-coverageEps), area*(1+coverageEps)
			if sum < lo || sum > hi {
				// Per-column early exit: once inside the triangle and
				// now outside, the rest of this column is outside too
				// (valid only because the triangle is convex and we
				// scan monotonically along a single column).
				if insideRun {
					break
				}
				continue
			}
			insideRun = true

			l0, l1, l2 := w0/area, w1/area, w2/area
			iw0, iw1, iw2 := 1/A.Position[3], 1/B.Position[3], 1/C.Position[3]
			denom := l0*iw0 + l1*iw1 + l2*iw2

			var attrs [MaxAttributes]Attribute
			for k := 0; k < MaxAttributes; k++ {
				typ := A.varyingType[k]
				n := typ.components()
				for c := 0; c < n; c++ {
					attrs[k][c] = (l0*A.Attributes[k][c]*iw0 +
						l1*B.Attributes[k][c]*iw1 +
						l2*C.Attributes[k][c]*iw2) / denom
				}
			}

			out = append(out, fragmentSample{
				x:          x,
				y:          y,
				depth:      (l0*A.Position[2]*iw0 + l1*B.Position[2]*iw1 + l2*C.Position[2]*iw2) / denom,
				w:          1 / denom,
				attributes: attrs,
			})
		}
	}
	return out
}

// bbox1D clamps [lo,hi] to [0,extent) in pixel-index space, rounding
// outward so every pixel whose center might lie in [lo,hi] is tried.
func bbox1D(lo, hi float32, extent uint32) (min, max int) {
	min = int(math32.Floor(lo))
	max = int(math32.Ceil(hi))
	if min < 0 {
		min = 0
	}
	if max > int(extent) {
		max = int(extent)
	}
	if min > max {
		min = max
	}
	return
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
