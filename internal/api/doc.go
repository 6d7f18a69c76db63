// Package api provides the HTTP handlers for the pattern playground:
// the shape gallery, the rendered canvas, notifications, the pattern
// document catalog, and admin authentication.
package api
