// SPDX-License-Identifier: MIT

package mat4

import "github.com/katalvlaran/glmath"

// Adjugate writes the adjugate (transposed cofactor matrix) of m into d, so
// that d·m = m·d = det(m)·I. d must not alias m.
//
// Each element is a signed 3x3 minor expanded along the rows of m:
// d[0] is the cofactor of m[0], d[1] the cofactor of m[4], and so on.
func Adjugate(d, m *Mat4) {
	d[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] -
		m[9]*m[6]*m[15] + m[9]*m[7]*m[14] +
		m[13]*m[6]*m[11] - m[13]*m[7]*m[10]

	d[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] +
		m[9]*m[2]*m[15] - m[9]*m[3]*m[14] -
		m[13]*m[2]*m[11] + m[13]*m[3]*m[10]

	d[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] -
		m[5]*m[2]*m[15] + m[5]*m[3]*m[14] +
		m[13]*m[2]*m[7] - m[13]*m[3]*m[6]

	d[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] +
		m[5]*m[2]*m[11] - m[5]*m[3]*m[10] -
		m[9]*m[2]*m[7] + m[9]*m[3]*m[6]

	d[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] +
		m[8]*m[6]*m[15] - m[8]*m[7]*m[14] -
		m[12]*m[6]*m[11] + m[12]*m[7]*m[10]

	d[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] -
		m[8]*m[2]*m[15] + m[8]*m[3]*m[14] +
		m[12]*m[2]*m[11] - m[12]*m[3]*m[10]

	d[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] +
		m[4]*m[2]*m[15] - m[4]*m[3]*m[14] -
		m[12]*m[2]*m[7] + m[12]*m[3]*m[6]

	d[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] -
		m[4]*m[2]*m[11] + m[4]*m[3]*m[10] +
		m[8]*m[2]*m[7] - m[8]*m[3]*m[6]

	d[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] -
		m[8]*m[5]*m[15] + m[8]*m[7]*m[13] +
		m[12]*m[5]*m[11] - m[12]*m[7]*m[9]

	d[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] +
		m[8]*m[1]*m[15] - m[8]*m[3]*m[13] -
		m[12]*m[1]*m[11] + m[12]*m[3]*m[9]

	d[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] -
		m[4]*m[1]*m[15] + m[4]*m[3]*m[13] +
		m[12]*m[1]*m[7] - m[12]*m[3]*m[5]

	d[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] +
		m[4]*m[1]*m[11] - m[4]*m[3]*m[9] -
		m[8]*m[1]*m[7] + m[8]*m[3]*m[5]

	d[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] +
		m[8]*m[5]*m[14] - m[8]*m[6]*m[13] -
		m[12]*m[5]*m[10] + m[12]*m[6]*m[9]

	d[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] -
		m[8]*m[1]*m[14] + m[8]*m[2]*m[13] +
		m[12]*m[1]*m[10] - m[12]*m[2]*m[9]

	d[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] +
		m[4]*m[1]*m[14] - m[4]*m[2]*m[13] -
		m[12]*m[1]*m[6] + m[12]*m[2]*m[5]

	d[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] -
		m[4]*m[1]*m[10] + m[4]*m[2]*m[9] +
		m[8]*m[1]*m[6] - m[8]*m[2]*m[5]
}

// cofactorDet expands det(m) along the first row using an adjugate already
// computed for m.
func cofactorDet(m, adj *Mat4) float32 {
	return m[0]*adj[0] + m[1]*adj[4] + m[2]*adj[8] + m[3]*adj[12]
}

// Determinant returns det(m).
func Determinant(m *Mat4) float32 {
	var adj Mat4
	Adjugate(&adj, m)

	return cofactorDet(m, &adj)
}

// InverseMatrix writes m⁻¹ into d as adj(m)/det(m). d must not alias m.
//
// Singular input is not an error: when det(m) is exactly zero the scale step
// is skipped and d is left holding adj(m). A Debug record is sent to
// glmath.Logger() in that case. Nearly singular matrices are inverted as
// usual and may contain very large values.
func InverseMatrix(d, m *Mat4) {
	Adjugate(d, m)

	det := cofactorDet(m, d)
	if det == 0 {
		glmath.Logger().Debug("mat4: singular matrix, inverse left as unscaled adjugate")
		return
	}

	inv := 1 / det
	for i := range d {
		d[i] *= inv
	}
}
