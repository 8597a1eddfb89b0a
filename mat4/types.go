// SPDX-License-Identifier: MIT

package mat4

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Mat4 is a 4x4 float32 matrix in row-major order, m[4*r+c]. It is the
// x/image f32 layout, not a wrapper.
type Mat4 = f32.Mat4

// Element indices used by more than one constructor.
const (
	idxTx = 12 // translation x
	idxTy = 13 // translation y
	idxTz = 14 // translation z

	idxPerspectiveW = 11 // -1 in Perspective, copies -z into w
)

// degToRad converts degrees to radians in float64 so the trig calls keep
// full precision before narrowing.
func degToRad(deg float32) float64 {
	return 2 * math.Pi * float64(deg) / 360
}
