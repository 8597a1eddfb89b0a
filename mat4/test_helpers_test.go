// SPDX-License-Identifier: MIT
// Package mat4_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic matrices with known determinants.
//   • Keep all data finite and well conditioned so AllClose defaults apply.

package mat4_test

import (
	"testing"

	"github.com/katalvlaran/glmath/mat4"
)

// identity returns a fresh identity matrix.
func identity() mat4.Mat4 {
	var m mat4.Mat4
	mat4.Identity(&m)

	return m
}

// garbage returns a matrix with every element set to v, used to prove that
// a constructor writes all sixteen elements.
func garbage(v float32) mat4.Mat4 {
	var m mat4.Mat4
	for i := range m {
		m[i] = v
	}

	return m
}

// scaleDiag returns diag(x, y, z, 1).
func scaleDiag(x, y, z float32) mat4.Mat4 {
	return mat4.Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// det9 embeds a 3x3 integer block with determinant 9.
var det9 = mat4.Mat4{
	4, 7, 2, 0,
	3, 6, 1, 0,
	2, 5, 3, 0,
	0, 0, 0, 1,
}

// denseNeg27 has no zero structure and determinant -27.
var denseNeg27 = mat4.Mat4{
	2, 0, 1, 3,
	1, 1, 0, 2,
	0, 3, 1, 1,
	4, 1, 2, 1,
}

// singularRank3 repeats its first row; rank 3, determinant exactly 0.
var singularRank3 = mat4.Mat4{
	1, 2, 3, 4,
	1, 2, 3, 4,
	5, 6, 7, 8,
	9, 10, 11, 13,
}

// transformRow multiplies the row vector v by m: out[j] = Σₖ v[k]·m[4k+j].
func transformRow(v [4]float32, m *mat4.Mat4) [4]float32 {
	var out [4]float32
	for j := 0; j < 4; j++ {
		for k := 0; k < 4; k++ {
			out[j] += v[k] * m[4*k+j]
		}
	}

	return out
}

// assertClose fails the test when got and want differ beyond the AllClose
// tolerances, printing both matrices row by row.
func assertClose(t *testing.T, want, got mat4.Mat4, opts ...mat4.Option) {
	t.Helper()
	if !mat4.AllClose(&got, &want, opts...) {
		t.Errorf("matrices differ\nwant: %v\n      %v\n      %v\n      %v\ngot:  %v\n      %v\n      %v\n      %v",
			want[0:4], want[4:8], want[8:12], want[12:16],
			got[0:4], got[4:8], got[8:12], got[12:16])
	}
}
