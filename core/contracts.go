// Package core capability contracts: the narrow storage surface a
// shortest-path engine needs from an arbitrary graph backend.
package core

// Graph is the minimal handle onto a graph storage backend.
//
// K is the node identifier type: an opaque, comparable value chosen by
// the backend (string IDs, integer indexes, coordinate structs, ...).
//
// Implementations must be safe for concurrent readers; an engine only
// ever reads through this handle.
type Graph[K comparable] interface {
	// NodeCount reports the total number of nodes currently stored.
	// Used by engines to declare size bounds on their output.
	NodeCount() int

	// HasNode reports whether id resolves to a node in the backend.
	HasNode(id K) bool
}

// Connections enumerates the incident edges of a node, as seen from
// that node. E is the backend's edge reference type.
//
// Directedness is the provider's responsibility: for a directed backend
// ConnectionsOf returns outgoing edges only; for an undirected backend
// it returns all incident edges (symmetric storage naturally yields
// both directions). A directed backend wanting all-neighbor semantics
// must fold both directions itself.
type Connections[K comparable, E any] interface {
	// ConnectionsOf returns the edges incident to id. The returned
	// slice is borrowed for immediate iteration; callers must not
	// retain or mutate it. An unknown id yields an empty slice.
	ConnectionsOf(id K) []E

	// Endpoints reports both endpoint identifiers of an edge
	// reference. For ConnectionsOf(id) results, one endpoint is
	// always id; the other is the neighbor.
	Endpoints(e E) (from, to K)
}

// WeightFunc extracts the weight of an edge reference.
//
// It must be pure and side-effect free: the same edge reference always
// yields the same weight for the duration of a computation. The value
// may be precomputed (stored on the edge) or derived on the fly.
type WeightFunc[E any, W any] func(e E) W
