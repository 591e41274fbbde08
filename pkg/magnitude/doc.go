// Package magnitude implements exact scaling factors as products of prime
// and constant powers with rational exponents.
//
// A magnitude such as 5/18 is stored as 2^-1 * 3^-2 * 5, and pi/180 as
// 2^-2 * 3^-2 * 5^-1 * pi. Products, quotients and rational powers stay
// exact, and equal values have a single representation.
//
// Example usage:
//
//	pi := magnitude.MustConstant("π", "3.14159265358979323846264338327950288")
//	deg := pi.Div(magnitude.Of(180))
//
//	d, err := magnitude.Decompose(deg)
//	if err != nil {
//	    return err
//	}
//	// d.Exp10 == -1, d.Numerator == 1, d.Denominator == 18, d.Irrational == pi
//
//	v, err := magnitude.Value[float64](deg)
//
// Evaluation:
//
// Value converts a magnitude to a Go number. It fails with
// ErrNotRepresentable when the value overflows the target type, or when an
// integer type is asked for a value that is not integral.
package magnitude
