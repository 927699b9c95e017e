package eureca_building

import "math"

// Auxiliary 3D polygon routines used by Surface: coplanarity check, area and
// outward normal via the Newell method.

// Vertex is a point in 3D space, m.
type Vertex [3]float64

// Tolerance for the coplanarity check. The scalar-triple-product residual of
// each vertex against the plane of the first three is compared to this value.
const coplanarity_tolerance = 1e-5

func sub(a, b Vertex) Vertex {
	return Vertex{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b Vertex) Vertex {
	return Vertex{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b Vertex) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func norm(a Vertex) float64 {
	return math.Sqrt(dot(a, a))
}

/*
check_coplanarity reports whether all vertices lie on one plane.

The plane is defined by the first three non-collinear vertices; every further
vertex must satisfy the plane equation within coplanarity_tolerance (scaled by
the polygon size so large polygons are not penalized).
*/
func check_coplanarity(vertices []Vertex) bool {
	if len(vertices) <= 3 {
		return true
	}
	a := vertices[0]
	n := cross(sub(vertices[1], a), sub(vertices[2], a))
	scale := norm(n)
	if scale == 0 {
		// Degenerate triangle: fall back to the Newell normal.
		n = newell_normal(vertices)
		scale = norm(n)
		if scale == 0 {
			return true
		}
	}
	for _, v := range vertices[3:] {
		if math.Abs(dot(n, sub(v, a)))/scale > coplanarity_tolerance {
			return false
		}
	}
	return true
}

// newell_normal accumulates the Newell vector of the polygon; its magnitude
// is twice the polygon area and its direction the outward normal for
// counter-clockwise vertex ordering.
func newell_normal(vertices []Vertex) Vertex {
	var n Vertex
	for i, v := range vertices {
		w := vertices[(i+1)%len(vertices)]
		n[0] += (v[1] - w[1]) * (v[2] + w[2])
		n[1] += (v[2] - w[2]) * (v[0] + w[0])
		n[2] += (v[0] - w[0]) * (v[1] + w[1])
	}
	return n
}

// polygon_area returns the area of a planar 3D polygon, m2.
func polygon_area(vertices []Vertex) float64 {
	return norm(newell_normal(vertices)) / 2.0
}

/*
normal_versor returns the unit outward normal of the polygon.

Using all vertices (instead of the first three) keeps the orientation correct
when the first corner is non-convex. A degenerate polygon yields the zero
vector.
*/
func normal_versor(vertices []Vertex) Vertex {
	n := newell_normal(vertices)
	length := norm(n)
	if length == 0 {
		return Vertex{}
	}
	return Vertex{n[0] / length, n[1] / length, n[2] / length}
}
