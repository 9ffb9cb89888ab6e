// Package core defines the capability contracts every lazypath engine
// borrows from its caller: a graph handle, a connections provider, a
// cost extractor, and a weight arithmetic.
//
// Overview:
//
//   - The engine never owns or interprets graph storage. It resolves a
//     source node, counts nodes, enumerates the connections of a node,
//     and reads edge weights — nothing else. Those four concerns are
//     expressed here as small generic interfaces and function types so
//     the same engine runs over adjacency-list, adjacency-matrix, or
//     sparse-map backends without modification.
//   - Node identifiers are opaque: any comparable Go value supplied by
//     the backend. The contracts never inspect their structure.
//   - Weights are equally opaque: any domain with an additive identity,
//     an addition operator, and a (possibly partial) order. Ordered
//     covers the built-in numeric and string domains; custom domains
//     implement Weight directly.
//
// Contracts:
//
//   - Graph[K]        – NodeCount, HasNode: the storage handle.
//   - Connections[K,E] – ConnectionsOf, Endpoints: edge enumeration.
//   - WeightFunc[E,W] – edge reference → weight value.
//   - Weight[W]       – Zero, Add, Compare: the numeric capability.
//
// All contracts are read-only from the engine's perspective: a borrowed
// backend is never mutated during a computation.
package core
