package gpu

import "github.com/virtgpu/virtgpu/linear"

// programObj is the storage backing a live program handle: a pair of
// shader callbacks, their uniform block, and the per-varying
// interpolation-type declarations.
type programObj struct {
	vs          VertexShader
	fs          FragmentShader
	uniforms    Uniforms
	varyingType [MaxAttributes]AttributeType
}

// CreateProgram allocates a program with no shaders attached, all
// uniforms empty and all varying types AttrEmpty, and returns its
// handle, or EmptyID if the program table has no room left.
func (g *GPU) CreateProgram() ID {
	return g.programs.create(programObj{})
}

// DeleteProgram releases the program named by h. A no-op if h is not
// live. If h is the active program, the active binding is cleared.
func (g *GPU) DeleteProgram(h ID) {
	g.programs.delete(h)
	if g.activeProgram == h {
		g.activeProgram = EmptyID
	}
}

// IsProgram reports whether h names a live program.
func (g *GPU) IsProgram(h ID) bool { return g.programs.is(h) }

// AttachShaders installs the vertex and fragment callbacks on
// program p. A no-op if p is not live.
func (g *GPU) AttachShaders(p ID, vs VertexShader, fs FragmentShader) {
	prg, ok := g.programs.get(p)
	if !ok {
		return
	}
	prg.vs = vs
	prg.fs = fs
}

// SetVS2FSType declares how varying i should be interpolated: the
// signal that drives perspective-correct interpolation in the
// rasterizer. A no-op if p is not live or i is out of range.
func (g *GPU) SetVS2FSType(p ID, i uint32, typ AttributeType) {
	prg, ok := g.programs.get(p)
	if !ok || int(i) >= len(prg.varyingType) {
		return
	}
	prg.varyingType[i] = typ
}

// UseProgram selects the active program.
func (g *GPU) UseProgram(p ID) {
	if !g.programs.is(p) {
		return
	}
	g.activeProgram = p
}

// ProgramUniform1f writes a float into uniform slot id of program p.
func (g *GPU) ProgramUniform1f(p ID, id uint32, v float32) {
	if u := g.uniformSlot(p, id); u != nil {
		*u = UniformValue{typ: UniformFloat, f: v}
	}
}

// ProgramUniform2f writes a vec2 into uniform slot id of program p.
func (g *GPU) ProgramUniform2f(p ID, id uint32, v linear.V2) {
	if u := g.uniformSlot(p, id); u != nil {
		*u = UniformValue{typ: UniformVec2, v2: v}
	}
}

// ProgramUniform3f writes a vec3 into uniform slot id of program p.
func (g *GPU) ProgramUniform3f(p ID, id uint32, v linear.V3) {
	if u := g.uniformSlot(p, id); u != nil {
		*u = UniformValue{typ: UniformVec3, v3: v}
	}
}

// ProgramUniform4f writes a vec4 into uniform slot id of program p.
func (g *GPU) ProgramUniform4f(p ID, id uint32, v linear.V4) {
	if u := g.uniformSlot(p, id); u != nil {
		*u = UniformValue{typ: UniformVec4, v4: v}
	}
}

// ProgramUniformMatrix4f writes a mat4 into uniform slot id of
// program p.
func (g *GPU) ProgramUniformMatrix4f(p ID, id uint32, v linear.M4) {
	if u := g.uniformSlot(p, id); u != nil {
		*u = UniformValue{typ: UniformMat4, m4: v}
	}
}

// uniformSlot returns a pointer to uniform slot id of program p, or
// nil if p is not live. id is asserted in range rather than silently
// corrupting memory on overflow, since id is always a compile-time
// constant chosen by trusted shader-wiring code, never untrusted
// input.
func (g *GPU) uniformSlot(p ID, id uint32) *UniformValue {
	prg, ok := g.programs.get(p)
	if !ok {
		return nil
	}
	if int(id) >= len(prg.uniforms) {
		panic("gpu: uniform id out of range")
	}
	return &prg.uniforms[id]
}
