package gpu

// triangle is an assembled, clipped primitive: three shaded vertices
// in their original winding order.
type triangle struct {
	v [3]outAbstractVertex
}

// assembleAndClip groups vs into consecutive triples and clips each
// triangle against the near plane z+w=0, the only clip plane this
// pipeline implements. It assumes len(vs) is a positive multiple of
// 3; the caller validates that precondition as a configuration error
// before calling this.
func assembleAndClip(vs []outAbstractVertex) []triangle {
	out := make([]triangle, 0, len(vs)/3)
	for i := 0; i+3 <= len(vs); i += 3 {
		out = clipTriangle(out, &vs[i], &vs[i+1], &vs[i+2])
	}
	return out
}

// isOut reports whether v is behind the near plane: -w > z,
// equivalently z+w < 0.
func isOut(v *outAbstractVertex) bool {
	return v.Position[2]+v.Position[3] < 0
}

// clipTriangle clips one triangle against the near plane and appends
// 0, 1 or 2 resulting triangles to out, preserving winding.
func clipTriangle(out []triangle, a, b, c *outAbstractVertex) []triangle {
	outA, outB, outC := isOut(a), isOut(b), isOut(c)
	switch {
	case !outA && !outB && !outC:
		return append(out, triangle{[3]outAbstractVertex{*a, *b, *c}})
	case outA && outB && outC:
		return out
	case outA && !outB && !outC:
		nab := intersectNear(a, b)
		nca := intersectNear(c, a)
		return append(out,
			triangle{[3]outAbstractVertex{*b, *c, nab}},
			triangle{[3]outAbstractVertex{*c, nca, nab}},
		)
	case outB && !outC && !outA:
		nbc := intersectNear(b, c)
		nab := intersectNear(a, b)
		return append(out,
			triangle{[3]outAbstractVertex{*c, *a, nbc}},
			triangle{[3]outAbstractVertex{*a, nab, nbc}},
		)
	case outC && !outA && !outB:
		nca := intersectNear(c, a)
		nbc := intersectNear(b, c)
		return append(out,
			triangle{[3]outAbstractVertex{*a, *b, nca}},
			triangle{[3]outAbstractVertex{*b, nbc, nca}},
		)
	case outA && outB && !outC:
		nca := intersectNear(c, a)
		ncb := intersectNear(c, b)
		return append(out, triangle{[3]outAbstractVertex{nca, ncb, *c}})
	case outB && outC && !outA:
		nab := intersectNear(a, b)
		nca := intersectNear(c, a)
		return append(out, triangle{[3]outAbstractVertex{nab, nca, *a}})
	case outC && outA && !outB:
		nbc := intersectNear(b, c)
		nab := intersectNear(a, b)
		return append(out, triangle{[3]outAbstractVertex{nbc, nab, *b}})
	default:
		return out
	}
}

// intersectNear computes N(p, q): the intersection of segment pq
// with the near plane z+w=0, interpolating the clip-space position
// and every declared varying at parameter t.
func intersectNear(p, q *outAbstractVertex) outAbstractVertex {
	denom := (q.Position[3] - p.Position[3]) + (q.Position[2] - p.Position[2])
	t := (-p.Position[3] - p.Position[2]) / denom

	var n outAbstractVertex
	n.varyingType = p.varyingType
	n.Position = lerpV4(p.Position, q.Position, t)
	for i := range n.Attributes {
		n.Attributes[i] = lerpAttribute(p.varyingType[i], p.Attributes[i], q.Attributes[i], t)
	}
	return n
}

func lerpV4(a, b [4]float32, t float32) (r [4]float32) {
	for i := range r {
		r[i] = a[i] + t*(b[i]-a[i])
	}
	return
}

// lerpAttribute interpolates exactly the components declared by typ
// and leaves the rest zero.
func lerpAttribute(typ AttributeType, a, b Attribute, t float32) Attribute {
	var r Attribute
	for i := 0; i < typ.components(); i++ {
		r[i] = a[i] + t*(b[i]-a[i])
	}
	return r
}
