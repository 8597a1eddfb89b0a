// SPDX-License-Identifier: MIT

// Functional configuration for tolerance-based comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).

package mat4

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAbsTol is the absolute tolerance used by AllClose. It sits a
	// couple of orders above float32 epsilon so chains of a few products
	// still compare equal.
	DefaultAbsTol = 1e-5

	// DefaultRelTol is the relative tolerance used by AllClose, applied to
	// the magnitude of the reference element.
	DefaultRelTol = 1e-5
)

// Panic messages for programmer errors in option construction.
const (
	panicAbsTolInvalid = "mat4: WithAbsTol requires a finite value >= 0"
	panicRelTolInvalid = "mat4: WithRelTol requires a finite value >= 0"
)

// Option mutates Options. Public entry points accept ...Option.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	absTol float64 // >= 0; DefaultAbsTol
	relTol float64 // >= 0; DefaultRelTol
}

// WithAbsTol sets the absolute tolerance.
// Panics if tol is NaN, ±Inf or negative.
func WithAbsTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// WithRelTol sets the relative tolerance.
// Panics if tol is NaN, ±Inf or negative.
func WithRelTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

// WithExact is shorthand for WithAbsTol(0) and WithRelTol(0): AllClose then
// behaves like == on every element except that NaN never matches.
func WithExact() Option {
	return func(o *Options) {
		o.absTol = 0
		o.relTol = 0
	}
}

func defaultOptions() Options {
	return Options{
		absTol: DefaultAbsTol,
		relTol: DefaultRelTol,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
