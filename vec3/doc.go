// Package vec3 provides the Vector3 helpers of glmath: triangle normals,
// in-place normalization, dot product and length.
//
// A Vec3 is three contiguous float32 values ([3]float32). Functions take
// pointers to caller-owned storage and never allocate or keep references.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/glmath/vec3"
//
//	p0 := vec3.Vec3{0, 0, 0}
//	p1 := vec3.Vec3{1, 0, 0}
//	p2 := vec3.Vec3{0, 1, 0}
//
//	var n vec3.Vec3
//	vec3.Cross(&n, &p0, &p1, &p2) // n == {0, 0, 1}
//
// Degenerate input is not detected: collinear points passed to Cross and a
// zero vector passed to Normalize produce NaN components.
package vec3
