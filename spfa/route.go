// Package spfa route and path value types: the read-only results the
// iterator yields.
package spfa

// Path is the node sequence of a discovered route.
//
// Intermediates holds the nodes strictly between Source and Target in
// source-to-target order. It is empty when reconstruction is disabled
// (Discard), when Target is the Source, or when Target is a direct
// neighbor of the Source.
type Path[K comparable] struct {
	// Source is the node the computation started from.
	Source K

	// Target is the node this path leads to.
	Target K

	// Intermediates are the nodes between Source and Target, in order.
	Intermediates []K
}

// Nodes returns the full node sequence Source, Intermediates..., Target.
// A trivial path (Target == Source with no intermediates) yields the
// single-element sequence [Source].
func (p Path[K]) Nodes() []K {
	if p.Target == p.Source && len(p.Intermediates) == 0 {
		return []K{p.Source}
	}

	out := make([]K, 0, len(p.Intermediates)+2)
	out = append(out, p.Source)
	out = append(out, p.Intermediates...)
	out = append(out, p.Target)

	return out
}

// Route pairs a Path with its cost: one shortest-path result, valid at
// the moment of yield. Routes are plain value data; the engine never
// retains or mutates a yielded Route.
type Route[K comparable, W any] struct {
	// Path is the node sequence from source to target.
	Path Path[K]

	// Cost is the distance-table entry of the target at yield time.
	Cost W
}
