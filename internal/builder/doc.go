/*
Package builder holds the shared machinery behind concrete scene.Builder
variants.

It provides:

  - BuildError, the failure type a Rebuild reports for a single node.
  - Base, an embeddable set of defaults for the capability methods.
  - Duplicate, a generic deep copy for builders whose state is their
    exported parameter fields.
  - Parameter reflection over `param:"name"` struct tags, used by the scene
    loader and by parameter overrides to assign cty values to builders.

Concrete variants live under modules/ and register themselves with the
registry package.
*/
package builder
