package numbers

import (
	"math"
	"strconv"
)

// Real is a measured quantity: a magnitude with a non-negative uncertainty.
type Real struct {
	magnitude   float64
	uncertainty float64
}

func New(v float64) Real {
	return Real{
		magnitude: v,
	}
}

func WithError(v float64, e float64) Real {
	return Real{
		magnitude:   v,
		uncertainty: math.Abs(e),
	}
}

func (r Real) Magnitude() float64 {
	return r.magnitude
}

func (r Real) Uncertainty() float64 {
	return r.uncertainty
}

// IsZero compares the magnitude only.
func (r Real) IsZero() bool {
	return r.magnitude == 0
}

func (r Real) IsExact() bool {
	return r.uncertainty == 0
}

func (r Real) String() string {
	if r.uncertainty == 0 {
		return formatFloat(r.magnitude)
	}
	return formatFloat(r.magnitude) + " +/- " + formatFloat(r.uncertainty)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
