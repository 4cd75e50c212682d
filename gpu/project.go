package gpu

// projectAndViewport performs the perspective divide and viewport
// mapping on every vertex of t, in place. Vertices with w=0 pass
// through unchanged — a degenerate case later stages will
// coverage-reject rather than raise an error.
func (g *GPU) projectAndViewport(t *triangle) {
	w := float32(g.FramebufferWidth())
	h := float32(g.FramebufferHeight())
	for i := range t.v {
		p := &t.v[i].Position
		if p[3] != 0 {
			invW := 1 / p[3]
			p[0] *= invW
			p[1] *= invW
			p[2] *= invW
		}
		p[0] = (p[0] + 1) / 2 * w
		p[1] = (p[1] + 1) / 2 * h
	}
}
