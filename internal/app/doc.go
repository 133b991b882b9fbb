// Package app contains the core application logic. It owns the live scene
// tree and drives it through rebuild passes: the initial load, parameter
// overrides and, in watch mode, every edit of the scene files. Results are
// printed and handed to the configured publishers.
package app
