// SPDX-License-Identifier: MIT

package mat4

import "math"

// Translate left-multiplies m by a translation: m = T(x, y, z)·m.
//
// T is the identity with (x, y, z) in elements 12..14. m is copied before
// the product so the call is safe in place.
func Translate(m *Mat4, x, y, z float32) {
	var t Mat4
	Identity(&t)
	t[idxTx] = x
	t[idxTy] = y
	t[idxTz] = z

	o := *m
	MultMatrix(m, &t, &o)
}

// Rotate left-multiplies m by a counter-clockwise rotation of angle degrees
// about the axis (x, y, z): m = R·m.
//
// R is the Rodrigues rotation matrix
//
//	R = c·I + (1-c)·(a⊗a) + s·[a]×
//
// stored so that a row vector v' = v·R turns counter-clockwise, with
// c = cos(angle) and s = sin(angle). The axis must already be unit length; it
// is not normalized here and a non-unit axis also scales/shears.
func Rotate(m *Mat4, angle, x, y, z float32) {
	r := degToRad(angle)
	c := float32(math.Cos(r))
	s := float32(math.Sin(r))
	k := 1 - c

	t := Mat4{
		x*x*k + c, y*x*k + z*s, x*z*k - y*s, 0,
		x*y*k - z*s, y*y*k + c, y*z*k + x*s, 0,
		x*z*k + y*s, y*z*k - x*s, z*z*k + c, 0,
		0, 0, 0, 1,
	}

	o := *m
	MultMatrix(m, &t, &o)
}
