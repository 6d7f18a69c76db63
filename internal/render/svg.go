package render

import (
	"fmt"
	"strings"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/patterns/factory"
)

// Default canvas dimensions, matching the classic 800x600 drawing
// surface the shape demo uses.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// SVGCanvas accumulates drawing operations and serializes them as an
// SVG document with a white background.
type SVGCanvas struct {
	width    int
	height   int
	elements []string
}

// Compile-time check that the canvas satisfies the drawing surface
// contract shapes render onto.
var _ factory.Canvas = (*SVGCanvas)(nil)

// NewSVGCanvas creates a canvas with the given dimensions.
// Non-positive dimensions fall back to the defaults.
func NewSVGCanvas(width, height int) *SVGCanvas {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &SVGCanvas{width: width, height: height}
}

// FillCircle implements factory.Canvas.
func (c *SVGCanvas) FillCircle(x, y, radius int, color factory.Color) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<circle cx="%d" cy="%d" r="%d" fill="rgb(%d,%d,%d)"/>`,
		x, y, radius, color.R, color.G, color.B))
}

// FillRect implements factory.Canvas.
func (c *SVGCanvas) FillRect(x, y, width, height int, color factory.Color) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<rect x="%d" y="%d" width="%d" height="%d" fill="rgb(%d,%d,%d)"/>`,
		x, y, width, height, color.R, color.G, color.B))
}

// Len returns the number of drawn elements.
func (c *SVGCanvas) Len() int { return len(c.elements) }

// Bytes serializes the canvas as a complete SVG document. A canvas
// with no elements is still a valid document: a blank white surface.
func (c *SVGCanvas) Bytes() []byte {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		c.width, c.height, c.width, c.height)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="rgb(255,255,255)"/>`, c.width, c.height)
	b.WriteString("\n")
	for _, element := range c.elements {
		b.WriteString(element)
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")
	return []byte(b.String())
}

// Shapes renders every shape onto a fresh default-sized canvas and
// returns the SVG document. Shapes draw in order, so later shapes
// paint over earlier ones just like a frame buffer.
func Shapes(shapes []factory.Shape) []byte {
	canvas := NewSVGCanvas(DefaultWidth, DefaultHeight)
	for _, shape := range shapes {
		shape.Draw(canvas)
	}
	return canvas.Bytes()
}
