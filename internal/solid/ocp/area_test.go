package ocp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTotalArea verifies the sum over a mix of built-in shapes.
func TestTotalArea(t *testing.T) {
	calc := AreaCalculator{}

	testCases := []struct {
		name     string
		shapes   []Shape
		expected float64
	}{
		{
			name:     "no shapes",
			shapes:   nil,
			expected: 0,
		},
		{
			name:     "single rectangle",
			shapes:   []Shape{Rectangle{Width: 3, Height: 4}},
			expected: 12,
		},
		{
			name:     "mixed shapes",
			shapes:   []Shape{Circle{Radius: 2}, Rectangle{Width: 5, Height: 6}},
			expected: math.Pi*4 + 30,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, calc.TotalArea(tc.shapes...), 1e-9,
				"TotalArea should sum the areas of all shapes")
		})
	}
}

// triangle is a shape kind the calculator has never heard of. Summing
// it without touching AreaCalculator is the open/closed property.
type triangle struct {
	base, height float64
}

func (t triangle) Area() float64 { return t.base * t.height / 2 }

// TestTotalAreaIsOpenForExtension verifies that a brand-new shape kind
// participates in the sum with no calculator changes.
func TestTotalAreaIsOpenForExtension(t *testing.T) {
	calc := AreaCalculator{}

	total := calc.TotalArea(
		Rectangle{Width: 2, Height: 2},
		triangle{base: 6, height: 4},
	)

	assert.InDelta(t, 16.0, total, 1e-9,
		"A new shape kind should be summed without modifying the calculator")
}
