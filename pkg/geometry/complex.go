package geometry

// Complex is a point in the complex plane.
//
// Complex is a plain value type so the escape-time loop can work on it without
// allocating.
type Complex struct {
	Re float64
	Im float64
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

// Square returns c*c.
func (c Complex) Square() Complex {
	return Complex{
		Re: c.Re*c.Re - c.Im*c.Im,
		Im: 2 * c.Re * c.Im,
	}
}

// NormSqr is |c|², which avoids the square root needed for |c|.
func (c Complex) NormSqr() float64 {
	return c.Re*c.Re + c.Im*c.Im
}
