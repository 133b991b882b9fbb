// Package registry maps builder kinds to constructors.
//
// Scene files name a builder by kind (e.g. "rectangle"); the loader asks the
// registry for a fresh instance of that kind and decodes the file's
// arguments into it. Each modules/* package registers its variants through
// the Module interface at startup.
//
// The registry is passed explicitly to whoever deserializes scenes. The
// rebuild engine never consults it: it only calls through the scene.Builder
// attached to each node.
package registry
