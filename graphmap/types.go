// Package graphmap core types and configuration options for the
// adjacency-map backend.
package graphmap

// Edge is the edge reference handed out by ConnectionsOf.
//
// From is always the node the enumeration was asked about; To is the
// neighbor (equal to From for a self-loop). Weight is a copy of the
// stored weight at enumeration time.
type Edge[K comparable, W any] struct {
	// From is the endpoint the edge was enumerated from.
	From K

	// To is the opposite endpoint.
	To K

	// Weight is the stored edge weight.
	Weight W
}

// Option configures a GraphMap before first use.
type Option func(*config)

// config collects construction-time settings.
type config struct {
	directed bool
}

// WithDirected sets edge directedness for the whole graph
// (true = one-way edges, false = symmetric edges; default false).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// Weight extracts the stored weight from an Edge.
// It satisfies core.WeightFunc for GraphMap edges.
func Weight[K comparable, W any](e Edge[K, W]) W {
	return e.Weight
}
