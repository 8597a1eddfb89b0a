// SPDX-License-Identifier: MIT

// Package mat4 provides the Matrix4 helpers of glmath.
//
// The package provides:
//
//   - Construction: Identity, Translate, Rotate, Perspective, Ortho, Transpose.
//   - Algebra: MultMatrix, Adjugate, Determinant, InverseMatrix.
//   - Comparison: AllClose with functional tolerance options.
//
// A Mat4 is sixteen contiguous float32 values in row-major order
// (m[4*r+c]). Translation lives in elements 12..14 and the projective
// divide of Perspective in element 11, so a Mat4 built here can be uploaded
// unchanged to an OpenGL mat4 uniform (transpose=false).
//
// Translate and Rotate left-multiply: m = T·m and m = R·m. Seen from the
// uploaded uniform this is glTranslatef/glRotatef behavior: the call made
// last is applied to vertices first, so Translate followed by Rotate spins
// an object in place and then moves it.
//
// Numeric policy:
//
//   - No errors are returned. Degenerate input produces NaN/Inf or, for
//     InverseMatrix with an exact-zero determinant, the unscaled adjugate.
//   - InverseMatrix reports a singular input through a Debug record on
//     glmath.Logger(); the default logger is silent.
//   - Output pointers must not alias inputs for MultMatrix, Adjugate and
//     InverseMatrix. Translate and Rotate copy their operand first and are
//     safe to call in place.
package mat4
