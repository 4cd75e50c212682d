package gpu

import "github.com/virtgpu/virtgpu/linear"

// Uniforms is a program's uniform block, indexed by the same integer
// ids passed to ProgramUniform*.
type Uniforms [MaxUniforms]UniformValue

// InVertex is the vertex-shader input: the index used to fetch it,
// plus whatever attributes the bound vertex puller gathered for it.
type InVertex struct {
	VertexID   uint32
	Attributes [MaxAttributes]Attribute
}

// OutVertex is the vertex-shader output: a clip-space position plus
// whatever varyings the shader chooses to write. Attributes not
// declared via SetVS2FSType are not interpolated and the fragment
// shader sees an unspecified value.
type OutVertex struct {
	Position   linear.V4
	Attributes [MaxAttributes]Attribute
}

// VertexShader transforms one InVertex into one OutVertex using the
// program's uniforms. It must set out.Position and any varyings it
// declared via SetVS2FSType.
type VertexShader func(out *OutVertex, in *InVertex, u *Uniforms)

// InFragment is the fragment-shader input: the fragment's screen
// position (x, y in pixels; z the interpolated NDC depth; w the
// interpolated clip-space w) plus perspective-correctly interpolated
// varyings.
type InFragment struct {
	FragCoord  linear.V4
	Attributes [MaxAttributes]Attribute
}

// OutFragment is the fragment-shader output: an RGBA color in [0,1].
type OutFragment struct {
	Color linear.V4
}

// FragmentShader computes one OutFragment from one InFragment using
// the program's uniforms. It must set out.Color.
type FragmentShader func(out *OutFragment, in *InFragment, u *Uniforms)

// outAbstractVertex pairs a shaded vertex with the varying-type tags
// needed to clip and interpolate it without the shader at hand:
// storage is untagged, so the type must travel alongside the data.
type outAbstractVertex struct {
	OutVertex
	varyingType [MaxAttributes]AttributeType
}
