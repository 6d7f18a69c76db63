package factory

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Shape size bounds. Circles get a radius in [MinRadius, MaxRadius];
// rectangles get a width and height in [MinSide, MaxSide].
const (
	MinRadius = 10
	MaxRadius = 50
	MinSide   = 20
	MaxSide   = 100
)

// Color is an RGB color with 8-bit channels.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Rand is the source of randomness used when constructing shapes.
// *rand.Rand from math/rand/v2 satisfies it; tests inject a seeded
// source for deterministic output.
type Rand interface {
	IntN(n int) int
}

// globalRand adapts the goroutine-safe top-level math/rand/v2
// functions to the Rand interface.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand returns the process-wide random source.
func DefaultRand() Rand { return globalRand{} }

// lockedRand serializes access to a source that is not goroutine-safe,
// such as a seeded *rand.Rand.
type lockedRand struct {
	mu  sync.Mutex
	src Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// randomColor picks a uniformly random RGB color.
func randomColor(rng Rand) Color {
	return Color{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
	}
}

// Canvas is the drawing surface shapes render themselves onto.
// The SVG renderer implements it; tests implement it with recorders.
type Canvas interface {
	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, radius int, color Color)

	// FillRect draws a filled axis-aligned rectangle with its top-left
	// corner at (x, y).
	FillRect(x, y, width, height int, color Color)
}

// Shape is the product type of the shape factory. Every shape knows
// its position, its area, and how to draw itself onto a canvas.
type Shape interface {
	// Kind returns the shape's registered kind name.
	Kind() string

	// Position returns the shape's anchor point.
	Position() (x, y int)

	// Area returns the shape's area in square pixels.
	Area() float64

	// Draw renders the shape onto the given canvas.
	Draw(c Canvas)
}

// Circle is a shape with a random radius and color anchored at its center.
type Circle struct {
	X      int   `json:"x"`
	Y      int   `json:"y"`
	Radius int   `json:"radius"`
	Color  Color `json:"color"`
}

// NewCircle creates a circle at (x, y) with a random radius and color.
func NewCircle(x, y int, rng Rand) *Circle {
	return &Circle{
		X:      x,
		Y:      y,
		Radius: MinRadius + rng.IntN(MaxRadius-MinRadius+1),
		Color:  randomColor(rng),
	}
}

// Kind implements Shape.
func (c *Circle) Kind() string { return KindCircle }

// Position implements Shape.
func (c *Circle) Position() (int, int) { return c.X, c.Y }

// Area implements Shape.
func (c *Circle) Area() float64 { return math.Pi * float64(c.Radius) * float64(c.Radius) }

// Draw implements Shape.
func (c *Circle) Draw(canvas Canvas) {
	canvas.FillCircle(c.X, c.Y, c.Radius, c.Color)
}

// Rectangle is a shape with random dimensions and color anchored at
// its top-left corner.
type Rectangle struct {
	X      int   `json:"x"`
	Y      int   `json:"y"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Color  Color `json:"color"`
}

// NewRectangle creates a rectangle at (x, y) with random dimensions
// and color.
func NewRectangle(x, y int, rng Rand) *Rectangle {
	return &Rectangle{
		X:      x,
		Y:      y,
		Width:  MinSide + rng.IntN(MaxSide-MinSide+1),
		Height: MinSide + rng.IntN(MaxSide-MinSide+1),
		Color:  randomColor(rng),
	}
}

// Kind implements Shape.
func (r *Rectangle) Kind() string { return KindRectangle }

// Position implements Shape.
func (r *Rectangle) Position() (int, int) { return r.X, r.Y }

// Area implements Shape.
func (r *Rectangle) Area() float64 { return float64(r.Width) * float64(r.Height) }

// Draw implements Shape.
func (r *Rectangle) Draw(canvas Canvas) {
	canvas.FillRect(r.X, r.Y, r.Width, r.Height, r.Color)
}
