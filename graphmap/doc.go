// Package graphmap provides a generic adjacency-map graph backend
// keyed directly by caller-supplied node identifiers.
//
// Overview:
//
//   - GraphMap[K, W] stores a node set, per-node neighbor lists, and an
//     edge-weight map keyed by endpoint pair. K is any comparable node
//     identifier; W is any weight type.
//   - Directed or undirected per graph (WithDirected). An undirected
//     edge is stored under both orientations, so enumeration from
//     either endpoint finds it; it still counts as one edge.
//   - At most one edge per endpoint pair: adding an existing edge
//     replaces its weight and reports the previous value. Self-loops
//     are allowed.
//   - Enumeration order is deterministic: Nodes and Neighbors follow
//     insertion order, never map iteration order.
//
// Key features:
//
//   - Implements the core capability contracts (core.Graph and
//     core.Connections), so any lazypath engine runs over it directly;
//     the package-level Weight function is a ready-made cost extractor.
//   - Query methods follow the map idiom: presence booleans instead of
//     errors (HasNode, HasEdge, EdgeWeight). Mutations never fail —
//     AddEdge inserts missing endpoints on the fly.
//
// Complexity:
//
//   - AddNode, HasNode, HasEdge, EdgeWeight: O(1) expected.
//   - AddEdge: O(1) expected (amortized append).
//   - RemoveEdge: O(deg) to unlink neighbor lists.
//   - RemoveNode: O(V + E) worst case (must unlink incoming edges).
//   - Nodes, Neighbors, ConnectionsOf: O(n) in the size of the result.
//
// GraphMap is not synchronized; guard it externally if you mutate it
// from multiple goroutines. Engines only read, so any number of
// concurrent computations over an unchanging GraphMap are safe.
package graphmap
