// Package spfa implements the Shortest Path Faster Algorithm — a
// queue-driven Bellman-Ford variant — as a lazy, single-pass iterator
// over single-source shortest-path routes.
//
// Overview:
//
//   - Where Dijkstra finalizes vertices through a priority queue, SPFA
//     keeps a plain double-ended work queue of nodes whose distance
//     recently improved, re-relaxing them until no improvement remains.
//     On graphs with skewed weight distributions the average relaxation
//     count is far below the Bellman-Ford worst case.
//   - The engine does not compute a batch result. Construct an Iterator
//     and pull one Route per Next call; stop whenever you have the
//     route you wanted and the remaining work is simply never done.
//   - Storage is borrowed, never owned: the engine sees a graph only
//     through the core capability contracts (core.Graph,
//     core.Connections, core.WeightFunc, core.Weight), so any backend
//     satisfying them will do — graphmap.GraphMap works out of the box.
//
// Sequencing semantics:
//
//   - The first route is always source→source with zero cost, yielded
//     before any relaxation.
//   - Each further advance relaxes every connection of the most
//     recently yielded target, enqueues improved neighbors per the
//     candidate-ordering policy, pops the queue front, and yields the
//     route to it. An empty queue ends the sequence.
//   - A node may sit in the queue more than once; stale entries are
//     harmless because relaxation is gated on strict distance
//     improvement, not on queue membership.
//
// Key features:
//
//   - WithIntermediates(Record): per-route path reconstruction through
//     a predecessor ledger, updated atomically with each distance
//     improvement.
//   - WithCandidateOrder(SmallFirst | LargeLast): queue insertion
//     policy, trading front/back placement against the current queue
//     front to reduce relaxation churn. Both policies yield the same
//     final distances; only discovery order differs.
//   - WithNegativeCycleCheck(): optional per-node relaxation bound.
//     A node improved more than NodeCount times proves a reachable
//     negative cycle; the sequence ends and Err reports
//     ErrNegativeCycle. Without the check, such a graph never
//     terminates — bound it externally if the risk exists.
//
// Performance and complexity:
//
//   - Time: O(V·E) worst case (Bellman-Ford bound); empirically close
//     to O(E) on random sparse graphs.
//   - Space: O(V) for the distance table, the ledger (when recording),
//     and the work queue.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph / ErrNilCost / ErrNilConnections:
//     a required capability was nil at construction.
//   - ErrNodeNotFound:
//     the source identifier does not resolve in the graph; no iterator
//     is created.
//   - ErrNegativeCycle:
//     reported by Err after the sequence ends, only when
//     WithNegativeCycleCheck is enabled and tripped.
//
// Concurrency: an Iterator is single-goroutine, non-reentrant state.
// Distinct iterators over the same unchanged backend are independent.
//
// References:
//
//   - https://en.wikipedia.org/wiki/Shortest_path_faster_algorithm
//   - https://konaeakira.github.io/posts/using-the-shortest-path-faster-algorithm-to-find-negative-cycles.html
package spfa
