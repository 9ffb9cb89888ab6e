// Package spfa engine implementation: the pull-based iterator state
// machine driving relaxation, scheduling, and route emission.
package spfa

import (
	"cmp"

	"github.com/katalvlaran/lazypath/core"
)

// Iterator is the SPFA engine: a pull-based state machine producing
// one shortest-path Route per Next call.
//
// An Iterator is single-pass and forward-only; restarting requires
// constructing a new one. It borrows the graph, cost extractor, and
// connections provider read-only for its lifetime and exclusively owns
// its distance table, predecessor ledger, and work queue. Abandoning
// an Iterator at any point is safe — no external resource is held.
type Iterator[K comparable, E any, W any] struct {
	graph core.Graph[K]
	cost  core.WeightFunc[E, W]
	conns core.Connections[K, E]
	arith core.Weight[W]

	source   K
	numNodes int

	init bool // trivial source route not yet yielded
	cur  K    // most recently yielded target
	live bool // the sequence may continue

	order  CandidateOrder
	record bool

	queue deque[K]
	dist  map[K]W

	// yielded maps each yielded node to its distance at yield time.
	// A popped entry whose distance has not improved since that yield
	// is stale and silently dropped, keeping the route sequence within
	// one finalized route per node.
	yielded map[K]W

	led *ledger[K]

	// relaxations counts per-node distance improvements when the
	// negative-cycle check is enabled; nil otherwise.
	relaxations map[K]int

	err error
}

// New constructs an SPFA iterator over g from source.
//
// cost extracts edge weights, conns enumerates connections, and arith
// supplies the weight arithmetic (use NewOrdered for built-in numeric
// domains). Fails with ErrNodeNotFound when source does not resolve in
// g; nil capabilities fail with the matching sentinel. On failure no
// iterator is created.
//
// Complexity per Next call: O(deg(current)) relaxations plus O(1)
// amortized queue work; O(len(path)) extra when recording
// intermediates.
func New[K comparable, E any, W any](
	g core.Graph[K],
	cost core.WeightFunc[E, W],
	conns core.Connections[K, E],
	arith core.Weight[W],
	source K,
	opts ...Option,
) (*Iterator[K, E, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cost == nil {
		return nil, ErrNilCost
	}
	if conns == nil {
		return nil, ErrNilConnections
	}
	if arith == nil {
		return nil, ErrNilWeight
	}
	if !g.HasNode(source) {
		return nil, ErrNodeNotFound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	it := &Iterator[K, E, W]{
		graph:    g,
		cost:     cost,
		conns:    conns,
		arith:    arith,
		source:   source,
		numNodes: g.NodeCount(),
		init:     true,
		order:    o.CandidateOrder,
		record:   o.Intermediates == Record,
		dist:     make(map[K]W),
		yielded:  make(map[K]W),
	}

	// Seed: the source sits in the distance table at the additive zero
	// and in the work queue before the first advance.
	it.dist[source] = arith.Zero()
	it.queue.pushBack(source)

	if it.record {
		it.led = newLedger[K](source)
	}
	if o.DetectNegative {
		it.relaxations = make(map[K]int)
	}

	return it, nil
}

// NewOrdered is New for any built-in ordered weight domain (integers,
// floats), wiring core.Ordered as the arithmetic.
func NewOrdered[K comparable, E any, W cmp.Ordered](
	g core.Graph[K],
	cost core.WeightFunc[E, W],
	conns core.Connections[K, E],
	source K,
	opts ...Option,
) (*Iterator[K, E, W], error) {
	return New(g, cost, conns, core.Ordered[W]{}, source, opts...)
}

// SizeHint bounds the number of routes the sequence can still yield:
// at least zero, at most one finalized route per graph node.
func (it *Iterator[K, E, W]) SizeHint() (lower, upper int) {
	return 0, it.numNodes
}

// Err reports why the sequence ended early, if it did. It is nil for
// ordinary exhaustion and ErrNegativeCycle when the relaxation bound
// tripped. Inspect it after Next returns false.
func (it *Iterator[K, E, W]) Err() error {
	return it.err
}

// Next advances the sequence by one route.
//
// The first call yields the trivial source→source route before any
// relaxation. Every further call relaxes all connections of the most
// recently yielded target, pops the next fresh node off the work
// queue, and yields the route to it. ok is false once the queue is
// exhausted (or the negative-cycle bound tripped — see Err);
// afterwards Next keeps returning a zero Route and false.
func (it *Iterator[K, E, W]) Next() (route Route[K, W], ok bool) {
	if it.err != nil {
		return route, false
	}

	// The first advance is special: the source is yielded immediately
	// and relaxation starts on the following call. The seeded queue
	// entry for the source is dropped later as stale.
	if it.init {
		it.init = false
		it.cur, it.live = it.source, true
		it.yielded[it.source] = it.arith.Zero()

		return Route[K, W]{
			Path: Path[K]{Source: it.source, Target: it.source},
			Cost: it.arith.Zero(),
		}, true
	}

	if !it.live {
		return route, false
	}

	if !it.relaxConnections(it.cur) {
		return route, false
	}

	for {
		node, popped := it.queue.popFront()
		if !popped {
			// Queue exhausted: the sequence is complete.
			it.live = false

			return route, false
		}

		distance := it.dist[node]
		if prev, seen := it.yielded[node]; seen {
			// Stale entry unless the distance genuinely improved
			// since this node was last yielded.
			c, comparable := it.arith.Compare(distance, prev)
			if !comparable || c >= 0 {
				continue
			}
		}

		it.yielded[node] = distance
		it.cur = node

		var intermediates []K
		if it.record {
			var lerr error
			intermediates, lerr = it.led.intermediates(node)
			if lerr != nil {
				// Only possible if the borrowed backend mutated
				// mid-iteration.
				it.err = lerr
				it.live = false

				return route, false
			}
		}

		return Route[K, W]{
			Path: Path[K]{Source: it.source, Target: node, Intermediates: intermediates},
			Cost: distance,
		}, true
	}
}

// relaxConnections relaxes every connection of node, updating the
// distance table, the ledger, and the work queue. Reports false when
// the negative-cycle bound tripped and the sequence must end.
func (it *Iterator[K, E, W]) relaxConnections(node K) bool {
	base := it.dist[node]

	for _, edge := range it.conns.ConnectionsOf(node) {
		u, v := it.conns.Endpoints(edge)
		// The neighbor is whichever endpoint is not the current node;
		// symmetric backends may orient the edge either way.
		target := v
		if v == node {
			target = u
		}

		candidate := it.arith.Add(base, it.cost(edge))

		// Unset entries are conceptually infinite: any ordered
		// candidate wins. An incomparable pair (partial order) is
		// "no improvement".
		if known, seen := it.dist[target]; seen {
			c, comparable := it.arith.Compare(candidate, known)
			if !comparable || c >= 0 {
				continue
			}
		} else if _, comparable := it.arith.Compare(candidate, candidate); !comparable {
			// An unordered candidate (e.g. NaN) never beats infinity.
			continue
		}

		// Distance and predecessor move together so reconstruction
		// stays consistent with the recorded distance.
		it.dist[target] = candidate
		if it.record {
			it.led.record(target, node)
		}

		if it.relaxations != nil {
			it.relaxations[target]++
			if it.relaxations[target] > it.numNodes {
				it.err = ErrNegativeCycle
				it.live = false

				return false
			}
		}

		it.enqueue(target, candidate)
	}

	return true
}

// enqueue inserts an improved node per the candidate-ordering policy,
// comparing its fresh distance against the recorded distance of the
// current queue front. An empty queue (or an incomparable pair) falls
// back to the policy's neutral end: back for SmallFirst, front for
// LargeLast.
func (it *Iterator[K, E, W]) enqueue(node K, distance W) {
	front, ok := it.queue.front()
	if !ok {
		it.queue.pushBack(node)

		return
	}

	c, comparable := it.arith.Compare(distance, it.dist[front])
	switch it.order {
	case SmallFirst:
		if comparable && c < 0 {
			it.queue.pushFront(node)
		} else {
			it.queue.pushBack(node)
		}
	case LargeLast:
		if comparable && c > 0 {
			it.queue.pushBack(node)
		} else {
			it.queue.pushFront(node)
		}
	}
}
