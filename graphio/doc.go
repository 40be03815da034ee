// Package graphio reads and writes labeled graphs.
//
// Text format (one graph per stream; blank lines and '#' comments ignored):
//
//	Graph(name, hasInverseAdjacency, vertexCount
//	id, label, child, child, ...      one line per vertex, ids 0..vertexCount-1
//	(u, v) -> label                   optional edge labels
//	)
//
// Fields are comma-separated, so label tokens may not contain commas. The name
// may be empty; an empty label must be written as "" (Write does this). Edges
// without a label line get the zero label, or the one passed with
// labeled.WithDefaultEdgeLabel. Loaded graphs are checked with ValidateEdges
// and ValidateEdgeLabels.
//
// The YAML format (ReadYAML/WriteYAML) carries the same data and is meant for
// hand-written query graphs.
//
// Errors:
//
//   - ErrMalformed   input does not follow the format (line number in the message)
//   - ErrInvalid     well-formed input describing an invalid graph
package graphio
