// SPDX-License-Identifier: MIT

// Package graphio reads and writes graph and query documents in YAML or JSON.
//
// A graph document lists its nodes and weighted edges:
//
//	directed: true
//	nodes: [A, B, C, D]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: D, weight: 1}
//	  - {from: A, to: C, weight: 4}
//	  - {from: C, to: D, weight: 1}
//
// directed defaults to true. With implicit_nodes: true, edge endpoints absent
// from nodes are registered on first use; otherwise they are rejected.
//
// Decoding validates the whole document before building anything and reports
// every problem at once as a *multierror.Error. Each entry matches
// core.ErrMalformedGraph (empty, duplicate or unknown ids, missing weights)
// or core.ErrInvalidWeight (negative or NaN weights) under errors.Is.
//
// YAML accepts .inf for impassable edges; JSON has no way to spell it.
//
// A query document is a list of (from, to) pairs for batch routing:
//
//	queries:
//	  - {from: A, to: D}
//	  - {from: A, to: E}
package graphio
