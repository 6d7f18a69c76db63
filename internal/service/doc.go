// Package service implements the application services that sit between
// the HTTP handlers and the core packages: creating shapes through the
// factory, persisting them in the gallery store, and rendering the
// canvas.
package service
