package numbers

import "math"

func (r Real) Add(b Real) Real {
	return WithError(
		r.magnitude+b.magnitude,
		math.Hypot(r.uncertainty, b.uncertainty),
	)
}

func (r Real) Sub(b Real) Real {
	return WithError(
		r.magnitude-b.magnitude,
		math.Hypot(r.uncertainty, b.uncertainty),
	)
}

func (r Real) Mul(b Real) Real {
	value := r.magnitude * b.magnitude
	switch {
	case r.magnitude == 0 && b.magnitude == 0:
		return New(value)
	case r.magnitude == 0:
		return WithError(value, r.uncertainty*math.Abs(b.magnitude))
	case b.magnitude == 0:
		return WithError(value, b.uncertainty*math.Abs(r.magnitude))
	}
	relative := math.Hypot(
		r.uncertainty/math.Abs(r.magnitude),
		b.uncertainty/math.Abs(b.magnitude),
	)
	return WithError(value, math.Abs(value)*relative)
}

// Div with a zero-magnitude divisor yields the IEEE quotient and infinite uncertainty.
func (r Real) Div(b Real) Real {
	value := r.magnitude / b.magnitude
	if b.magnitude == 0 {
		return WithError(value, math.Inf(1))
	}
	var dividendRelative float64
	if r.magnitude != 0 {
		dividendRelative = r.uncertainty / math.Abs(r.magnitude)
	}
	relative := math.Hypot(
		dividendRelative,
		b.uncertainty/math.Abs(b.magnitude),
	)
	return WithError(value, math.Abs(value)*relative)
}

// Mod is the truncated remainder. An uncertain divisor yields the larger of the two uncertainties.
func (r Real) Mod(b Real) Real {
	value := math.Mod(r.magnitude, b.magnitude)
	if b.uncertainty == 0 {
		return WithError(value, r.uncertainty)
	}
	return WithError(value, max(r.uncertainty, b.uncertainty))
}

func (r Real) Power(b Real) Real {
	value := math.Pow(r.magnitude, b.magnitude)
	if b.uncertainty == 0 {
		return WithError(
			value,
			math.Abs(b.magnitude)*math.Pow(r.magnitude, b.magnitude-1)*r.uncertainty,
		)
	}
	relative := math.Hypot(
		b.magnitude*r.uncertainty/r.magnitude,
		math.Log(r.magnitude)*b.uncertainty,
	)
	return WithError(value, math.Abs(value)*relative)
}

// Root takes the b-th root, treating the reciprocal exponent as exact.
func (r Real) Root(b Real) Real {
	return r.Power(New(1 / b.magnitude))
}

func (r Real) Neg() Real {
	return Real{
		magnitude:   -r.magnitude,
		uncertainty: r.uncertainty,
	}
}

func (r Real) Pos() Real {
	return r
}

func (r Real) Sin() Real {
	return WithError(
		math.Sin(r.magnitude),
		math.Abs(math.Cos(r.magnitude))*r.uncertainty,
	)
}

func (r Real) Cos() Real {
	return WithError(
		math.Cos(r.magnitude),
		math.Abs(math.Sin(r.magnitude))*r.uncertainty,
	)
}

func (r Real) Sqrt() Real {
	return r.Root(New(2))
}
