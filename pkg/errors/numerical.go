package errors

import (
	"math"
	"math/cmplx"
)

// CheckFinite checks if values contain NaN or Inf
// and returns an error if a non-finite value is detected.
func CheckFinite(operation string, values []float64, position int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, position)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for NaN or Inf.
func CheckScalar(operation string, value float64, position int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, position)
	}
	return nil
}

// CheckComplex checks both parts of a complex value.
func CheckComplex(operation string, value complex128, position int) error {
	if cmplx.IsNaN(value) || cmplx.IsInf(value) {
		return NewNumericalInstabilityError(operation, []float64{real(value), imag(value)}, position)
	}
	return nil
}
