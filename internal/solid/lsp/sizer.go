package lsp

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when a dimension is zero or negative.
var ErrInvalidDimension = errors.New("dimension must be positive")

// Sizer is the substitution contract: anything that reports an area.
// Callers written against Sizer behave identically for rectangles and
// squares because neither type can silently change the other's
// dimensions.
type Sizer interface {
	Area() float64
}

// Rectangle has independently settable width and height.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle creates a rectangle, rejecting non-positive dimensions.
func NewRectangle(width, height float64) (*Rectangle, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidDimension, width, height)
	}
	return &Rectangle{width: width, height: height}, nil
}

// SetWidth changes only the width.
func (r *Rectangle) SetWidth(width float64) error {
	if width <= 0 {
		return fmt.Errorf("%w: width %g", ErrInvalidDimension, width)
	}
	r.width = width
	return nil
}

// SetHeight changes only the height.
func (r *Rectangle) SetHeight(height float64) error {
	if height <= 0 {
		return fmt.Errorf("%w: height %g", ErrInvalidDimension, height)
	}
	r.height = height
	return nil
}

// Width returns the rectangle's width.
func (r *Rectangle) Width() float64 { return r.width }

// Height returns the rectangle's height.
func (r *Rectangle) Height() float64 { return r.height }

// Area implements Sizer.
func (r *Rectangle) Area() float64 { return r.width * r.height }

// Square has a single side length. It is deliberately not a Rectangle:
// giving it SetWidth/SetHeight is exactly the substitution violation
// this package exists to avoid.
type Square struct {
	side float64
}

// NewSquare creates a square, rejecting a non-positive side.
func NewSquare(side float64) (*Square, error) {
	if side <= 0 {
		return nil, fmt.Errorf("%w: side %g", ErrInvalidDimension, side)
	}
	return &Square{side: side}, nil
}

// SetSide changes the side length. A square stays a square.
func (s *Square) SetSide(side float64) error {
	if side <= 0 {
		return fmt.Errorf("%w: side %g", ErrInvalidDimension, side)
	}
	s.side = side
	return nil
}

// Side returns the square's side length.
func (s *Square) Side() float64 { return s.side }

// Area implements Sizer.
func (s *Square) Area() float64 { return s.side * s.side }
