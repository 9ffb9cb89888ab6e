// Package lazypath is a lazy, storage-agnostic shortest-path engine —
// single-source routes discovered one at a time, over any graph backend
// you can describe with three small capabilities.
//
// 🚀 What is lazypath?
//
//	A modern, zero-dependency library built around one idea: shortest
//	paths as a pull-based sequence, not a batch result.
//		• core/     — the capability contracts: graph handle, connections
//		              provider, cost extractor, weight arithmetic
//		• graphmap/ — a generic adjacency-map backend (directed or
//		              undirected) implementing those contracts
//		• spfa/     — the Shortest Path Faster Algorithm as an
//		              incremental iterator: one route per advance
//
// ✨ Why choose lazypath?
//
//   - Lazy by construction – stop after the route you wanted; nothing
//     else is computed
//   - Backend-agnostic – adjacency list, matrix, or sparse map: the
//     engine only borrows three narrow interfaces
//   - Weight-agnostic – int, float, or your own cost domain (tropical
//     semirings welcome) via a small arithmetic capability
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     1
//	    │     │
//	    C──1──D
//
//	from A, routes surface in relaxation order: A(0), B(1), D(2), C(3).
//
// Dive into README.md and the package docs of spfa/ for full examples,
// candidate-ordering policies, and the negative-cycle guard.
//
//	go get github.com/katalvlaran/lazypath
package lazypath
