// Package graphmap implements the adjacency-map storage backend.
//
// Layout: a node index (id → insertion position) paired with an
// insertion-ordered node list, per-node neighbor lists, and a weight
// map keyed by endpoint pair. Undirected graphs store each edge under
// both orientations so lookups and enumeration are O(1) from either
// endpoint.
package graphmap

import "github.com/katalvlaran/lazypath/core"

// Compile-time capability checks: a GraphMap is both the storage handle
// and the connections provider an engine borrows.
var (
	_ core.Graph[string]                            = (*GraphMap[string, int64])(nil)
	_ core.Connections[string, Edge[string, int64]] = (*GraphMap[string, int64])(nil)
	_ core.WeightFunc[Edge[string, int64], int64]   = Weight[string, int64]
)

// pair is the weight-map key: an oriented endpoint pair.
// Arrays of comparable elements are themselves comparable, which keeps
// the key free of any ordering requirement on K.
type pair[K comparable] [2]K

// GraphMap is a generic adjacency-map graph.
//
// K is the node identifier type (comparable); W is the edge weight
// type. The zero value is not usable; construct with New.
type GraphMap[K comparable, W any] struct {
	directed bool

	// index maps each node to its position in order.
	index map[K]int

	// order preserves node insertion order for deterministic Nodes().
	order []K

	// adjacency holds per-node neighbor lists in insertion order.
	// Directed graphs record out-neighbors only.
	adjacency map[K][]K

	// weights maps an oriented endpoint pair to its weight.
	// Undirected edges appear under both orientations.
	weights map[pair[K]]W

	// edgeCount counts distinct edges (an undirected edge counts once).
	edgeCount int
}

// New creates an empty GraphMap with the given options.
// By default the graph is undirected.
// Complexity: O(1)
func New[K comparable, W any](opts ...Option) *GraphMap[K, W] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &GraphMap[K, W]{
		directed:  cfg.directed,
		index:     make(map[K]int),
		adjacency: make(map[K][]K),
		weights:   make(map[pair[K]]W),
	}
}

// Directed reports whether edges are one-way.
func (g *GraphMap[K, W]) Directed() bool { return g.directed }

// NodeCount returns the number of nodes. Part of core.Graph.
func (g *GraphMap[K, W]) NodeCount() int { return len(g.index) }

// EdgeCount returns the number of distinct edges.
func (g *GraphMap[K, W]) EdgeCount() int { return g.edgeCount }

// HasNode reports whether id is present. Part of core.Graph.
func (g *GraphMap[K, W]) HasNode(id K) bool {
	_, ok := g.index[id]

	return ok
}

// AddNode inserts id if absent. Idempotent.
// Complexity: O(1) expected.
func (g *GraphMap[K, W]) AddNode(id K) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
}

// AddEdge inserts or updates the edge a→b (a—b when undirected) with
// weight w, inserting missing endpoints on the fly. If the edge already
// existed, only its weight changes; the previous weight and true are
// returned.
// Complexity: O(1) expected.
func (g *GraphMap[K, W]) AddEdge(a, b K, w W) (prev W, existed bool) {
	g.AddNode(a)
	g.AddNode(b)

	prev, existed = g.weights[pair[K]{a, b}]
	g.weights[pair[K]{a, b}] = w
	if !g.directed {
		g.weights[pair[K]{b, a}] = w
	}
	if existed {
		return prev, true
	}

	g.edgeCount++
	g.adjacency[a] = append(g.adjacency[a], b)
	if !g.directed && a != b {
		g.adjacency[b] = append(g.adjacency[b], a)
	}

	return prev, false
}

// RemoveEdge deletes the edge a→b (a—b when undirected) and returns its
// weight. Endpoints stay in the graph.
// Complexity: O(deg) to unlink neighbor lists.
func (g *GraphMap[K, W]) RemoveEdge(a, b K) (W, bool) {
	w, ok := g.weights[pair[K]{a, b}]
	if !ok {
		return w, false
	}

	delete(g.weights, pair[K]{a, b})
	g.adjacency[a] = unlink(g.adjacency[a], b)
	if !g.directed {
		delete(g.weights, pair[K]{b, a})
		if a != b {
			g.adjacency[b] = unlink(g.adjacency[b], a)
		}
	}
	g.edgeCount--

	return w, true
}

// RemoveNode deletes id and every edge incident to it, reporting
// whether id was present.
// Complexity: O(V + E) worst case — incoming directed edges live in
// other nodes' neighbor lists and must be unlinked.
func (g *GraphMap[K, W]) RemoveNode(id K) bool {
	pos, ok := g.index[id]
	if !ok {
		return false
	}

	// Outgoing (and, undirected, all incident) edges.
	for _, nbr := range g.adjacency[id] {
		if _, present := g.weights[pair[K]{id, nbr}]; present {
			delete(g.weights, pair[K]{id, nbr})
			g.edgeCount--
		}
		if !g.directed && nbr != id {
			delete(g.weights, pair[K]{nbr, id})
			g.adjacency[nbr] = unlink(g.adjacency[nbr], id)
		}
	}
	delete(g.adjacency, id)

	// Incoming directed edges require a full sweep.
	if g.directed {
		for from := range g.adjacency {
			if _, present := g.weights[pair[K]{from, id}]; present {
				delete(g.weights, pair[K]{from, id})
				g.adjacency[from] = unlink(g.adjacency[from], id)
				g.edgeCount--
			}
		}
	}

	delete(g.index, id)
	g.order = append(g.order[:pos], g.order[pos+1:]...)
	for i := pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}

	return true
}

// HasEdge reports whether the edge a→b (a—b when undirected) exists.
func (g *GraphMap[K, W]) HasEdge(a, b K) bool {
	_, ok := g.weights[pair[K]{a, b}]

	return ok
}

// EdgeWeight returns the weight of the edge a→b and whether it exists.
func (g *GraphMap[K, W]) EdgeWeight(a, b K) (W, bool) {
	w, ok := g.weights[pair[K]{a, b}]

	return w, ok
}

// Nodes returns all node identifiers in insertion order.
// The slice is a copy; mutate freely.
func (g *GraphMap[K, W]) Nodes() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the neighbor identifiers of id in insertion order
// (out-neighbors for directed graphs). Unknown ids yield nil.
func (g *GraphMap[K, W]) Neighbors(id K) []K {
	adj := g.adjacency[id]
	if len(adj) == 0 {
		return nil
	}
	out := make([]K, len(adj))
	copy(out, adj)

	return out
}

// ConnectionsOf returns the incident edges of id as seen from id, in
// neighbor insertion order. Part of core.Connections.
func (g *GraphMap[K, W]) ConnectionsOf(id K) []Edge[K, W] {
	adj := g.adjacency[id]
	if len(adj) == 0 {
		return nil
	}

	out := make([]Edge[K, W], 0, len(adj))
	for _, nbr := range adj {
		out = append(out, Edge[K, W]{From: id, To: nbr, Weight: g.weights[pair[K]{id, nbr}]})
	}

	return out
}

// Endpoints reports both endpoints of e. Part of core.Connections.
func (g *GraphMap[K, W]) Endpoints(e Edge[K, W]) (from, to K) {
	return e.From, e.To
}

// Clear removes all nodes and edges, keeping the configuration.
func (g *GraphMap[K, W]) Clear() {
	g.index = make(map[K]int)
	g.order = nil
	g.adjacency = make(map[K][]K)
	g.weights = make(map[pair[K]]W)
	g.edgeCount = 0
}

// unlink removes the first occurrence of v from list, preserving order.
func unlink[K comparable](list []K, v K) []K {
	for i, x := range list {
		if x == v {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
