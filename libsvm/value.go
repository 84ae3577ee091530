package libsvm

import (
	"math"
	"strconv"

	"github.com/YuminosukeSato/sparsego/pkg/errors"
	"github.com/YuminosukeSato/sparsego/sparse"
)

// parseValue parses a field into T. For integer types a floating-point
// literal with an integral value is accepted and reported through converted.
func parseValue[T sparse.Scalar](s string) (v T, converted bool, err error) {
	switch any(v).(type) {
	case float64:
		f, err := strconv.ParseFloat(s, 64)
		return any(f).(T), false, err
	case float32:
		f, err := strconv.ParseFloat(s, 32)
		return any(float32(f)).(T), false, err
	case complex128:
		c, err := strconv.ParseComplex(s, 128)
		return any(c).(T), false, err
	case complex64:
		c, err := strconv.ParseComplex(s, 64)
		return any(complex64(c)).(T), false, err
	case int:
		return parseSigned[T](s, strconv.IntSize, func(i int64) T { return any(int(i)).(T) })
	case int8:
		return parseSigned[T](s, 8, func(i int64) T { return any(int8(i)).(T) })
	case int16:
		return parseSigned[T](s, 16, func(i int64) T { return any(int16(i)).(T) })
	case int32:
		return parseSigned[T](s, 32, func(i int64) T { return any(int32(i)).(T) })
	case int64:
		return parseSigned[T](s, 64, func(i int64) T { return any(i).(T) })
	case uint:
		return parseUnsigned[T](s, strconv.IntSize, func(u uint64) T { return any(uint(u)).(T) })
	case uint8:
		return parseUnsigned[T](s, 8, func(u uint64) T { return any(uint8(u)).(T) })
	case uint16:
		return parseUnsigned[T](s, 16, func(u uint64) T { return any(uint16(u)).(T) })
	case uint32:
		return parseUnsigned[T](s, 32, func(u uint64) T { return any(uint32(u)).(T) })
	case uint64:
		return parseUnsigned[T](s, 64, func(u uint64) T { return any(u).(T) })
	}
	return v, false, errors.Wrapf(errors.ErrUnsupportedType, "parse %T", v)
}

func parseSigned[T sparse.Scalar](s string, bits int, cast func(int64) T) (T, bool, error) {
	i, err := strconv.ParseInt(s, 10, bits)
	if err == nil {
		return cast(i), false, nil
	}
	integral, ok := integralLiteral(s)
	if !ok {
		var zero T
		return zero, false, err
	}
	i, err = strconv.ParseInt(integral, 10, bits)
	return cast(i), err == nil, err
}

func parseUnsigned[T sparse.Scalar](s string, bits int, cast func(uint64) T) (T, bool, error) {
	u, err := strconv.ParseUint(s, 10, bits)
	if err == nil {
		return cast(u), false, nil
	}
	integral, ok := integralLiteral(s)
	if !ok {
		var zero T
		return zero, false, err
	}
	u, err = strconv.ParseUint(integral, 10, bits)
	return cast(u), err == nil, err
}

// integralLiteral rewrites a floating-point literal such as "3.0" or "1e2"
// as a plain integer when its value is integral.
func integralLiteral(s string) (string, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', 0, 64), true
}

// appendValue appends the text form of v to buf.
func appendValue[T sparse.Scalar](buf []byte, v T, precision int) []byte {
	switch x := any(v).(type) {
	case float64:
		return strconv.AppendFloat(buf, x, 'g', precision, 64)
	case float32:
		return strconv.AppendFloat(buf, float64(x), 'g', precision, 32)
	case complex128:
		return append(buf, strconv.FormatComplex(x, 'g', precision, 128)...)
	case complex64:
		return append(buf, strconv.FormatComplex(complex128(x), 'g', precision, 64)...)
	case int:
		return strconv.AppendInt(buf, int64(x), 10)
	case int8:
		return strconv.AppendInt(buf, int64(x), 10)
	case int16:
		return strconv.AppendInt(buf, int64(x), 10)
	case int32:
		return strconv.AppendInt(buf, int64(x), 10)
	case int64:
		return strconv.AppendInt(buf, x, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(x), 10)
	case uint8:
		return strconv.AppendUint(buf, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(buf, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(buf, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(buf, x, 10)
	}
	panic(errors.Wrapf(errors.ErrUnsupportedType, "format %T", v))
}

// checkFinite reports NaN or infinite values.
func checkFinite[T sparse.Scalar](op string, v T, line int) error {
	switch x := any(v).(type) {
	case float64:
		return errors.CheckScalar(op, x, line)
	case float32:
		return errors.CheckScalar(op, float64(x), line)
	case complex128:
		return errors.CheckComplex(op, x, line)
	case complex64:
		return errors.CheckComplex(op, complex128(x), line)
	}
	return nil
}
