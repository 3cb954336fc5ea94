package geometry

import (
	"fmt"
	"math"
)

// Circle is a circle of a fixed radius. The radius is not validated.
type Circle struct {
	radius float64
}

func NewCircle(radius float64) Circle {
	return Circle{radius: radius}
}

func (c Circle) Radius() float64 {
	return c.radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// Perimeter is the same as Circumference.
func (c Circle) Perimeter() float64 {
	return c.Circumference()
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(radius=%v)", c.radius)
}
