// Package render draws shapes onto an SVG canvas. It is the
// server-side stand-in for a windowed drawing surface: shapes render
// themselves through the factory.Canvas interface and the result is an
// SVG document the browser displays.
package render
