// SPDX-License-Identifier: MIT

package mat4

// Identity overwrites m with the 4x4 identity.
func Identity(m *Mat4) {
	*m = Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MultMatrix computes the row-major product d = a·b.
//
//	d[i][j] = Σₖ a[i][k]·b[k][j]
//
// d is written element by element while a and b are still being read, so d
// must not point at a or b. Use a temporary when composing in place, or call
// Translate/Rotate which already do that.
//
// Complexity: 64 multiplies, no allocations.
func MultMatrix(d, a, b *Mat4) {
	for i := 0; i < 4; i++ {
		r := i * 4
		for j := 0; j < 4; j++ {
			d[r+j] = a[r+0]*b[0*4+j] +
				a[r+1]*b[1*4+j] +
				a[r+2]*b[2*4+j] +
				a[r+3]*b[3*4+j]
		}
	}
}

// Transpose swaps the off-diagonal pairs of m in place.
func Transpose(m *Mat4) {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
}
