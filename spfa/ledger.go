// Package spfa predecessor ledger: the bookkeeping that turns a
// distance table into reconstructible paths.
package spfa

// parent is one ledger entry: the immediate predecessor of a node, or
// "source, no predecessor" when has is false.
type parent[K comparable] struct {
	node K
	has  bool
}

// ledger maps each reached node to its immediate predecessor on the
// currently best-known path. Entries are written atomically with the
// matching distance-table improvement, so a reconstruction is always
// consistent with the recorded distance.
type ledger[K comparable] struct {
	parents map[K]parent[K]
}

// newLedger seeds the ledger with the source entry (no predecessor).
func newLedger[K comparable](source K) *ledger[K] {
	l := &ledger[K]{parents: make(map[K]parent[K])}
	l.parents[source] = parent[K]{}

	return l
}

// record sets pred as the immediate predecessor of node.
func (l *ledger[K]) record(node, pred K) {
	l.parents[node] = parent[K]{node: pred, has: true}
}

// intermediates walks predecessor links backward from target until the
// entry with no predecessor (the source), returning the nodes strictly
// between source and target in source-to-target order.
//
// Every node popped from the work queue has a ledger entry, so a
// missing entry means the target was never reached: a logic error,
// reported as ErrUnreachedNode.
func (l *ledger[K]) intermediates(target K) ([]K, error) {
	entry, ok := l.parents[target]
	if !ok {
		return nil, ErrUnreachedNode
	}

	// Collect predecessors target-first; the final element is the source.
	var chain []K
	for entry.has {
		chain = append(chain, entry.node)
		entry, ok = l.parents[entry.node]
		if !ok {
			return nil, ErrUnreachedNode
		}
	}
	if len(chain) == 0 {
		// target is the source itself
		return nil, nil
	}

	// Drop the trailing source and reverse into path order.
	chain = chain[:len(chain)-1]
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}
