// SPDX-License-Identifier: MIT

package mat4

import "math"

// Perspective overwrites m with a right-handed OpenGL-style projection.
//
//	t     = 1 / tan(fovy/2)
//	m[0]  = t / aspect
//	m[5]  = t
//	m[10] = (zfar+znear) / (znear-zfar)
//	m[11] = -1
//	m[14] = 2·zfar·znear / (znear-zfar)
//
// Every other element is zero. fovy is the vertical field of view in
// degrees. aspect is width/height. znear == zfar or aspect == 0 yields Inf.
func Perspective(m *Mat4, fovy, aspect, znear, zfar float32) {
	t := float32(1 / math.Tan(degToRad(fovy)*0.5))
	nf := znear - zfar

	*m = Mat4{}
	m[0] = t / aspect
	m[5] = t
	m[10] = (zfar + znear) / nf
	m[idxPerspectiveW] = -1
	m[14] = (2 * zfar * znear) / nf
}

// Ortho overwrites m with an orthographic projection that maps the
// rectangle [left, right]x[bottom, top] to [-1, 1]x[-1, 1] and flips z.
//
// The argument order is (left, top, right, bottom), which reads naturally
// for a window with the origin in the top-left corner:
//
//	mat4.Ortho(&m, 0, 0, width, height) // y grows downward
//
// Depth is not ranged; m[10] is fixed at -1.
func Ortho(m *Mat4, left, top, right, bottom float32) {
	Identity(m)
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -1
	m[idxTx] = -(right + left) / (right - left)
	m[idxTy] = -(top + bottom) / (top - bottom)
}
