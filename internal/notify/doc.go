// Package notify tells collaborators which scene nodes a rebuild pass
// regenerated, so renderers and selection overlays refresh exactly those.
//
// A Report is built from an engine.Result and handed to a Publisher:
// LogPublisher writes it to the structured log, Hub pushes it to browser
// clients over WebSockets, and SocketIO emits it to an editor backend.
// Multi fans one report out to several publishers.
package notify
