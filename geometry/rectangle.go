package geometry

import "fmt"

// Rectangle is an axis-free rectangle described only by its sides.
// Neither side is validated.
type Rectangle struct {
	width, height float64
}

func NewRectangle(width, height float64) Rectangle {
	return Rectangle{width: width, height: height}
}

func (r Rectangle) Width() float64 {
	return r.width
}

func (r Rectangle) Height() float64 {
	return r.height
}

func (r Rectangle) Area() float64 {
	return r.width * r.height
}

func (r Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(width=%v, height=%v)", r.width, r.height)
}
