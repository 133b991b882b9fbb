/*
Package engine decides which scene nodes must be regenerated after an edit,
regenerates them in dependency order, and reports which ones actually
changed.

A rebuild pass runs in two traversals over the dependency relation that each
node's builder defines (by default: its children):

 1. Mark: a depth-first post-order walk that computes, for every reachable
    node, whether it or anything it transitively depends on was invalidated.
    The walk tracks nodes as unvisited, in progress, or done, so a node
    reached through several paths (a diamond) is visited once and a node
    reached again while still in progress (a cycle) aborts the pass with a
    *ContractViolation before any builder runs.

 2. Build: a second depth-first post-order walk that skips clean nodes,
    rebuilds dependencies before dependents, invokes each dirty node's
    builder at most once, and records the nodes whose builder reported an
    observable change.

A builder failure is local: the node is recorded in Result.Errors and kept
out of Result.Built, and the pass continues. Nodes that depend on it are
still rebuilt, against its previous content, and are listed in Result.Stale;
a dependent that cannot work without the failed content fails on its own.

All per-pass state lives in a table owned by the Pass, keyed by node, so
passes never leave traces on the tree except for clearing the invalidation
request of nodes whose builder ran successfully.

Passes are synchronous and must not run concurrently with each other or with
edits to the same tree. The context carries the logger; passes are not
cancellable.
*/
package engine
