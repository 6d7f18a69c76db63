// Package store defines the persistence interfaces and errors for the
// shape gallery, along with the SQLite implementation. Handlers and
// services depend on the ShapeStore interface; the SQLite type is an
// implementation detail chosen so the playground runs with zero
// external services.
package store
