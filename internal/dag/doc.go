// Package dag is a small directed graph keyed by string IDs, used to check
// scene dependency relations before any rebuild pass runs.
//
// An edge from A to B means B depends on A. The graph rejects self-edges and
// reports cycles with the full path, and can produce a deterministic
// dependency-first ordering of its nodes.
package dag
