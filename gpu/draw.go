package gpu

// DrawTriangles runs the full pipeline over the first nofVertices
// slots of the bound vertex puller, using the bound program's
// shaders, and writes covered, depth-passing fragments into the
// framebuffer.
//
// It fails with a *ConfigError, leaving the framebuffer untouched,
// when: no vertex puller is bound (ErrNoPuller), no program is bound
// (ErrNoProgram), or nofVertices is less than 3 or not a multiple of
// 3 (ErrVertexCount). A rejected call is logged at debug level and
// otherwise has no effect.
func (g *GPU) DrawTriangles(nofVertices uint32) error {
	if g.activePuller == EmptyID {
		g.log.Debug().Msg("drawTriangles: no vertex puller bound")
		return ErrNoPuller
	}
	if g.activeProgram == EmptyID {
		g.log.Debug().Msg("drawTriangles: no program bound")
		return ErrNoProgram
	}
	if nofVertices < 3 || nofVertices%3 != 0 {
		g.log.Debug().Uint32("nofVertices", nofVertices).Msg("drawTriangles: bad vertex count")
		return ErrVertexCount
	}
	if g.fb == nil {
		return nil
	}

	p, _ := g.pullers.get(g.activePuller)
	prg, _ := g.programs.get(g.activeProgram)

	shaded := g.processVertices(p, prg, nofVertices)
	triangles := assembleAndClip(shaded)

	for i := range triangles {
		t := &triangles[i]
		g.projectAndViewport(t)
		for _, fr := range rasterize(t, g.fb.width, g.fb.height) {
			g.shadeAndWrite(prg, fr)
		}
	}
	return nil
}
