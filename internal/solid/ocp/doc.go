// Package ocp implements the Open/Closed Principle example: an
// AreaCalculator that sums areas over a Shape interface. New shape
// kinds satisfy the interface; the calculator never changes.
package ocp
