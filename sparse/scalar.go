package sparse

import "fmt"

// Integer is the set of integer element types.
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

// Float is the set of real floating-point element types.
type Float interface {
	float32 | float64
}

// Real is the set of real element types.
type Real interface {
	Integer | Float
}

// Complex is the set of complex element types.
type Complex interface {
	complex64 | complex128
}

// Scalar is the set of element types a Vector or Matrix can hold.
// Approximate (~) types are deliberately excluded so that promotion can be
// resolved with a type switch.
type Scalar interface {
	Real | Complex
}

// IsZero reports whether v is the additive identity of T.
// Negative zero is a zero; NaN is not.
func IsZero[T Scalar](v T) bool {
	var zero T
	return v == zero
}

// ToFloat64 converts a real value to float64.
func ToFloat64[T Real](v T) float64 {
	return float64(v)
}

// ToComplex128 converts any element value to complex128. Real values get a
// zero imaginary part.
func ToComplex128[T Scalar](v T) complex128 {
	switch x := any(v).(type) {
	case complex128:
		return x
	case complex64:
		return complex128(x)
	case float64:
		return complex(x, 0)
	case float32:
		return complex(float64(x), 0)
	case int:
		return complex(float64(x), 0)
	case int8:
		return complex(float64(x), 0)
	case int16:
		return complex(float64(x), 0)
	case int32:
		return complex(float64(x), 0)
	case int64:
		return complex(float64(x), 0)
	case uint:
		return complex(float64(x), 0)
	case uint8:
		return complex(float64(x), 0)
	case uint16:
		return complex(float64(x), 0)
	case uint32:
		return complex(float64(x), 0)
	case uint64:
		return complex(float64(x), 0)
	}
	panic(fmt.Sprintf("sparse: unsupported element type %T", v))
}

// TypeName returns the Go name of T, e.g. "float64".
func TypeName[T Scalar]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
