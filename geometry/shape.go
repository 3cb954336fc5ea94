// Package geometry provides simple plane shapes and their measurements.
package geometry

// Shape is a plane figure with an area and a boundary length.
type Shape interface {
	Area() float64
	Perimeter() float64
}
