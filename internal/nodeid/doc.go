/*
Package nodeid provides a structured, type-safe representation for scene node
paths.

A path is a dot-separated sequence of segments, each a node name with an
optional instance index, e.g. `storey.walls[2].outline`. Indices come from the
`count` meta-argument in scene files.

The package centralizes formatting and parsing so that scene files, reports,
and parameter overrides agree on one canonical form.
*/
package nodeid
