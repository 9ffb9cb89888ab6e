// Package core weight arithmetic: the numeric capability bound for
// shortest-path cost domains.
package core

import "cmp"

// Weight is the numeric capability an engine needs from a cost domain:
// an additive identity, an addition operator, and an order.
//
// The order may be partial: Compare reports ok=false when a and b are
// incomparable (e.g. a floating-point NaN). Engines treat an
// incomparable pair as "no improvement" and skip the relaxation — a
// liveness concern for the caller, never an error.
//
// Implementations must be stateless value types; engines copy them
// freely and call them from a single goroutine.
type Weight[W any] interface {
	// Zero returns the additive identity of the domain.
	// Seeds the source distance before iteration starts.
	Zero() W

	// Add combines two weights. Relaxation computes
	// Add(distance-so-far, edge-weight).
	Add(a, b W) W

	// Compare orders two weights:
	//   cmp < 0 — a is strictly smaller than b
	//   cmp == 0 — equal
	//   cmp > 0 — a is strictly larger than b
	// ok=false means a and b are incomparable; cmp is meaningless.
	Compare(a, b W) (c int, ok bool)
}

// Ordered is the Weight implementation for every built-in ordered
// domain (integers, floats, strings). The zero value is ready to use:
//
//	var w core.Ordered[int64]
//
// Zero is the type's zero value, Add is "+", Compare follows cmp.Compare
// with one refinement: a NaN on either side is reported incomparable
// rather than smallest, preserving partial-order semantics for floats.
type Ordered[W cmp.Ordered] struct{}

// Zero returns the zero value of W.
func (Ordered[W]) Zero() W {
	var zero W

	return zero
}

// Add returns a + b.
func (Ordered[W]) Add(a, b W) W {
	return a + b
}

// Compare orders a and b per cmp.Compare. NaN operands (x != x holds
// only for floating-point NaN) make the pair incomparable.
func (Ordered[W]) Compare(a, b W) (int, bool) {
	if a != a || b != b {
		return 0, false
	}

	return cmp.Compare(a, b), true
}
