package gpu

import "github.com/virtgpu/virtgpu/linear"

// shadeAndWrite invokes prg's fragment shader on fr and performs the
// depth test and color/depth write. There is no blending: a fragment
// that passes the depth test replaces the stored color outright.
func (g *GPU) shadeAndWrite(prg *programObj, fr fragmentSample) {
	in := InFragment{
		FragCoord:  linear.V4{float32(fr.x) + 0.5, float32(fr.y) + 0.5, fr.depth, fr.w},
		Attributes: fr.attributes,
	}
	var out OutFragment
	if prg.fs != nil {
		prg.fs(&out, &in, &prg.uniforms)
	}

	idx := fr.y*int(g.fb.width) + fr.x
	if fr.depth >= g.fb.depth[idx] {
		return
	}
	g.fb.depth[idx] = fr.depth
	c := idx * 4
	g.fb.color[c+0] = denormColor(out.Color[0])
	g.fb.color[c+1] = denormColor(out.Color[1])
	g.fb.color[c+2] = denormColor(out.Color[2])
	g.fb.color[c+3] = denormColor(out.Color[3])
}
