package ocp

import "math"

// Shape is anything with a measurable area. The calculator depends on
// this abstraction only, which is what keeps it closed to modification.
type Shape interface {
	Area() float64
}

// Circle has an area of pi*r^2.
type Circle struct {
	Radius float64
}

// Area implements Shape.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Rectangle has an area of width*height.
type Rectangle struct {
	Width  float64
	Height float64
}

// Area implements Shape.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// AreaCalculator sums areas over any mix of shapes. Adding a shape
// kind extends the system without editing this type.
type AreaCalculator struct{}

// TotalArea returns the sum of the areas of the given shapes.
func (AreaCalculator) TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, shape := range shapes {
		total += shape.Area()
	}
	return total
}
