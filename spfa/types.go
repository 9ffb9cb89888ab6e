// Package spfa configuration options and error definitions for the
// lazy SPFA iterator.
package spfa

import "errors"

// Sentinel errors returned by the SPFA engine.
var (
	// ErrNilGraph indicates a nil graph handle was passed to New.
	ErrNilGraph = errors.New("spfa: graph is nil")

	// ErrNilCost indicates a nil cost extractor was passed to New.
	ErrNilCost = errors.New("spfa: cost extractor is nil")

	// ErrNilConnections indicates a nil connections provider was passed to New.
	ErrNilConnections = errors.New("spfa: connections provider is nil")

	// ErrNilWeight indicates a nil weight arithmetic was passed to New.
	ErrNilWeight = errors.New("spfa: weight arithmetic is nil")

	// ErrNodeNotFound indicates the source identifier does not resolve
	// in the supplied graph. No iterator is created.
	ErrNodeNotFound = errors.New("spfa: source node not found in graph")

	// ErrNegativeCycle indicates the per-node relaxation bound was
	// exceeded, proving a negative-weight cycle reachable from the
	// source. Reported by Err only when WithNegativeCycleCheck is on.
	ErrNegativeCycle = errors.New("spfa: negative-weight cycle reachable from source")

	// ErrUnreachedNode indicates a predecessor-ledger lookup on a node
	// the ledger never recorded. This cannot happen for any node the
	// engine actually popped; seeing it means the borrowed backend
	// mutated mid-iteration.
	ErrUnreachedNode = errors.New("spfa: node was never reached")
)

// CandidateOrder selects the work-queue insertion policy for a node
// whose distance just improved.
//
// Decision rule (both policies compare the node's new distance against
// the recorded distance of the current queue front; an empty queue
// always appends):
//
//	SmallFirst – strictly smaller than the front → push front,
//	             otherwise push back. Short paths surface sooner.
//	LargeLast  – strictly larger than the front → push back,
//	             otherwise push front. Large distances sink.
//
// Both policies preserve final distances; they only reorder discovery.
type CandidateOrder int

const (
	// SmallFirst processes freshly improved short-distance nodes ahead
	// of the queue. Default.
	SmallFirst CandidateOrder = iota

	// LargeLast defers freshly improved large-distance nodes to the
	// back of the queue.
	LargeLast
)

// Intermediates toggles predecessor recording for path reconstruction.
type Intermediates int

const (
	// Discard skips predecessor bookkeeping; every yielded route has
	// empty intermediates. Default.
	Discard Intermediates = iota

	// Record tracks each node's predecessor so yielded routes carry
	// the full intermediate node sequence.
	Record
)

// Options configures a single SPFA iteration.
//
// Intermediates  – Record to reconstruct paths, Discard to skip (default Discard).
// CandidateOrder – queue insertion policy (default SmallFirst).
// DetectNegative – bound per-node relaxations by the node count and
// fail fast on a reachable negative cycle (default off, matching plain SPFA).
type Options struct {
	Intermediates  Intermediates
	CandidateOrder CandidateOrder
	DetectNegative bool
}

// Option represents a functional option for configuring the iterator.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: intermediates
// discarded, SmallFirst candidate order, no negative-cycle check.
func DefaultOptions() Options {
	return Options{
		Intermediates:  Discard,
		CandidateOrder: SmallFirst,
		DetectNegative: false,
	}
}

// WithIntermediates sets the path-reconstruction mode.
func WithIntermediates(mode Intermediates) Option {
	return func(o *Options) { o.Intermediates = mode }
}

// WithCandidateOrder sets the work-queue insertion policy.
func WithCandidateOrder(order CandidateOrder) Option {
	return func(o *Options) { o.CandidateOrder = order }
}

// WithNegativeCycleCheck enables the per-node relaxation bound.
// When any node's distance improves more than NodeCount times, the
// sequence terminates and Err reports ErrNegativeCycle.
func WithNegativeCycleCheck() Option {
	return func(o *Options) { o.DetectNegative = true }
}
