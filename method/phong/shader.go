// Package phong implements a vertex/fragment shader pair computing
// Phong lighting with Phong shading over a procedural green/yellow
// stripe texture, and the glue that wires a mesh to a *gpu.GPU.
package phong

import (
	"github.com/chewxy/math32"

	"github.com/virtgpu/virtgpu/gpu"
	"github.com/virtgpu/virtgpu/linear"
)

// shininess is the fixed specular exponent of the Phong model.
const shininess = 40

// stripeCount is the number of alternating green/yellow bands the
// planar texture repeats over one unit of the xy plane.
const stripeCount = 10

// stripeAmplitude is the sine-wave displacement applied to each
// stripe boundary, in texture-space units.
const stripeAmplitude = 0.1

// Uniform slot assignment, matching the convention every demo wired
// to this shader pair follows: 0 = view, 1 = projection, 2 = light
// position, 3 = camera position.
const (
	uniformView = iota
	uniformProjection
	uniformLightPos
	uniformCameraPos
)

// vertexShader passes world-space position and normal through as
// varyings and transforms the position into clip space.
func vertexShader(out *gpu.OutVertex, in *gpu.InVertex, u *gpu.Uniforms) {
	pos := in.Attributes[0].Vec3()
	normal := in.Attributes[1].Vec3()
	out.Attributes[0].SetVec3(pos)
	out.Attributes[1].SetVec3(normal)

	view := u[uniformView].Mat4()
	proj := u[uniformProjection].Mat4()
	var vp linear.M4
	vp.Mul(&proj, &view)

	p4 := linear.V4{pos[0], pos[1], pos[2], 1}
	var clip linear.V4
	clip.Mul(&vp, &p4)
	out.Position = clip
}

// fragmentShader computes the procedural stripe/snow-cap diffuse
// color and combines it with a Phong diffuse+specular lighting term.
func fragmentShader(out *gpu.OutFragment, in *gpu.InFragment, u *gpu.Uniforms) {
	worldPos := in.Attributes[0].Vec3()
	normal := in.Attributes[1].Vec3()

	color := stripeTexture(worldPos[0], worldPos[1])
	color = snowCap(color, normal)

	lightPos := u[uniformLightPos].Vec3()
	cameraPos := u[uniformCameraPos].Vec3()

	var toLight, toCamera, n linear.V3
	toLight.Sub(&lightPos, &worldPos)
	toLight.Norm(&toLight)
	toCamera.Sub(&cameraPos, &worldPos)
	toCamera.Norm(&toCamera)
	n.Norm(&normal)

	diffuse := clamp01(n.Dot(&toLight))
	color.Scale(diffuse, &color)

	if diffuse != 0 {
		var reflect linear.V3
		reflect.Scale(2*diffuse, &n)
		reflect.Sub(&reflect, &toLight)
		reflect.Norm(&reflect)
		if spec := n.Dot(&toCamera); spec != 0 {
			s := math32.Pow(clamp01(toCamera.Dot(&reflect)), shininess)
			color[0] += s
			color[1] += s
			color[2] += s
		}
	}

	out.Color = linear.V4{clamp01(color[0]), clamp01(color[1]), clamp01(color[2]), 1}
}

// stripeTexture samples the planar green/yellow sine-stripe texture
// at (x, y). Each band is 1/stripeCount of a unit wide, so one
// green+yellow pair repeats every 2/stripeCount, and the pattern
// wraps for negative coordinates.
func stripeTexture(x, y float32) linear.V3 {
	green := linear.V3{0, 0.5, 0}
	yellow := linear.V3{1, 1, 0}

	wave := (x + math32.Sin(y*stripeCount)*stripeAmplitude) * (stripeCount / 2)
	frac := wave - math32.Trunc(wave)
	if frac > 0.5 || (frac < 0 && frac > -0.5) {
		return yellow
	}
	return green
}

// snowCap blends color toward white as the surface normal points
// more directly upward, reproducing the original's t = y*y cap.
func snowCap(color, normal linear.V3) linear.V3 {
	if normal[1] <= 0 {
		return color
	}
	var n linear.V3
	n.Norm(&normal)
	t := n[1] * n[1]

	var white, diff linear.V3
	white = linear.V3{1, 1, 1}
	diff.Sub(&white, &color)
	diff.Scale(t, &diff)
	color.Add(&color, &diff)
	return color
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
