// Package scene defines the editable scene tree: Nodes, the Builder contract
// a Node delegates content regeneration to, and the identity builder used for
// Nodes without one.
//
// # Ownership
//
// A Node exclusively owns its Builder. Builders never hold a back-pointer to
// the Node they are attached to; every Builder method receives the Node as an
// argument instead. Cloning a Node duplicates its Builder.
//
// # Invalidation
//
// The only dirty state a Node carries between rebuild passes is the caller's
// request that it be regenerated (Invalidate). Everything a pass needs while
// it runs is kept by the engine in its own per-pass table, so Nodes stay free
// of traversal bookkeeping.
//
// # Thread-Safety
//
// Nodes are not safe for concurrent use. A scene tree is owned by one
// goroutine, which performs edits and rebuild passes in sequence.
package scene
