// Package glmath is a tiny set of 3D vector and 4x4 matrix helpers for
// demo and example graphics code.
//
// 🚀 What is glmath?
//
//	A handful of closed-form routines over raw float32 arrays:
//		• Vectors: triangle normal (Cross), in-place Normalize, Dot, Length
//		• Matrices: Identity, Translate, Rotate, Perspective, Ortho, Transpose
//		• Algebra: MultMatrix, Adjugate, Determinant, InverseMatrix
//
// ✨ Why glmath?
//
//   - No wrapper types: vec3.Vec3 is [3]float32 and mat4.Mat4 is [16]float32
//     (the golang.org/x/image/math/f32 layouts), so data goes straight into a
//     uniform upload.
//   - No allocations: every routine writes into caller-owned storage.
//   - Pure and reentrant: safe from any goroutine as long as two goroutines do
//     not write the same output.
//
// Everything is organized under two subpackages:
//
//	vec3/ — Vector3 operations
//	mat4/ — Matrix4 construction, algebra and tolerance comparison
//
// Matrices are row-major (m[4*r+c]) with the translation in elements 12..14,
// which is the layout OpenGL expects for a column-vector shader uniform.
//
// The library is silent by default. Call SetLogger to receive Debug records
// for degenerate numeric cases such as a singular InverseMatrix.
//
//	go get github.com/katalvlaran/glmath
package glmath
