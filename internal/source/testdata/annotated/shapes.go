package annotated

// Shape is a geometric figure.
// @alias(Figure)
type Shape interface {
	Area() float64
}

// Unit is the side of the unit square.
// @alias(deprecated(One, since = "0.2.0"))
const Unit = 1.0
