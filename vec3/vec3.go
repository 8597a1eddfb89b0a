package vec3

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vec3 is a 3-element float32 vector. It is the x/image f32 layout, not a
// wrapper, so a *Vec3 converts freely to *[3]float32.
type Vec3 = f32.Vec3

// Cross writes into n the unit normal of the triangle (p0, p1, p2):
//
//	n = (p1-p0) × (p2-p0) / |(p1-p0) × (p2-p0)|
//
// The winding is counter-clockwise: for p0..p2 = x, y axes around the origin
// the normal points along +z. The result is NaN when the points are collinear.
// n may alias any of the inputs; the edges are read before n is written.
func Cross(n, p0, p1, p2 *Vec3) {
	a := Vec3{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
	b := Vec3{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}

	n[0] = a[1]*b[2] - a[2]*b[1]
	n[1] = a[2]*b[0] - a[0]*b[2]
	n[2] = a[0]*b[1] - a[1]*b[0]

	rn := 1 / Length(n)
	n[0] *= rn
	n[1] *= rn
	n[2] *= rn
}

// Normalize scales p to unit length in place. A zero vector yields NaN.
func Normalize(p *Vec3) {
	dist := Length(p)
	p[0] /= dist
	p[1] /= dist
	p[2] /= dist
}

// Dot returns a·b.
func Dot(a, b *Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Length returns the Euclidean norm of v.
func Length(v *Vec3) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}
