// SPDX-License-Identifier: MIT

package mat4

import "math"

// AllClose reports whether every element satisfies
//
//	|a[i] - b[i]| <= absTol + relTol*|b[i]|
//
// with tolerances from opts (DefaultAbsTol, DefaultRelTol when omitted). The
// check is asymmetric: b is the reference. NaN never matches; +Inf matches
// +Inf and -Inf matches -Inf.
//
// AllClose is the intended way to assert identities such as
// InverseMatrix(M)·M ≈ I, which never hold bit-for-bit in float32.
func AllClose(a, b *Mat4, opts ...Option) bool {
	o := gatherOptions(opts...)

	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		if av == bv {
			continue // also covers matching infinities
		}
		if isNonFinite(av) || isNonFinite(bv) {
			return false
		}
		if math.Abs(av-bv) > o.absTol+o.relTol*math.Abs(bv) {
			return false
		}
	}

	return true
}
