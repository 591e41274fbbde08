package magnitude

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// ErrNotRepresentable is wrapped by every evaluation failure.
var ErrNotRepresentable = errors.New("magnitude not representable")

// EvaluationError reports a magnitude that does not fit the requested type.
type EvaluationError struct {
	Magnitude Magnitude
	Target    string
	Reason    string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate magnitude %s as %s: %s", e.Magnitude, e.Target, e.Reason)
}

func (e *EvaluationError) Unwrap() error { return ErrNotRepresentable }

// Integer and Float are the numeric targets of Value.
type (
	Integer interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
			~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}
	Float interface {
		~float32 | ~float64
	}
	Number interface {
		Integer | Float
	}
)

// Value evaluates m as T. Integral targets require an integral magnitude that
// fits T. Floating targets fail only when the result is not finite.
func Value[T Number](m Magnitude) (T, error) {
	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := floatValue(m, typ)
		return T(f), err
	default:
		return integerValue[T](m, typ)
	}
}

// MustValue is Value that panics on error.
func MustValue[T Number](m Magnitude) T {
	v, err := Value[T](m)
	if err != nil {
		panic(err)
	}
	return v
}

func integerValue[T Number](m Magnitude, typ reflect.Type) (T, error) {
	fail := func(reason string) (T, error) {
		return 0, &EvaluationError{Magnitude: m, Target: typ.String(), Reason: reason}
	}
	acc := big.NewInt(1)
	for _, t := range m.terms {
		switch {
		case !t.Base.IsPrime():
			return fail("irrational base " + t.Base.symbol)
		case !t.Exp.IsInteger():
			return fail("fractional exponent " + t.Exp.String())
		case t.Exp.IsNegative():
			return fail("negative exponent " + t.Exp.String())
		}
		p := new(big.Int).SetUint64(t.Base.prime)
		acc.Mul(acc, p.Exp(p, big.NewInt(t.Exp.Num), nil))
	}

	bits := uint(typ.Bits())
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		maxVal := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits-1), big.NewInt(1))
		if acc.Cmp(maxVal) > 0 {
			return fail("overflow")
		}
		return T(acc.Int64()), nil
	default:
		maxVal := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
		if acc.Cmp(maxVal) > 0 {
			return fail("overflow")
		}
		return T(acc.Uint64()), nil
	}
}

func floatValue(m Magnitude, typ reflect.Type) (float64, error) {
	acc := new(big.Float).SetPrec(floatPrec).SetInt64(1)
	for _, t := range m.terms {
		base := t.Base.Float()
		if t.Exp.IsInteger() {
			acc.Mul(acc, intPow(base, t.Exp.Num))
			continue
		}
		b, _ := base.Float64()
		acc.Mul(acc, new(big.Float).SetPrec(floatPrec).SetFloat64(
			math.Pow(b, float64(t.Exp.Num)/float64(t.Exp.Den))))
	}

	var f float64
	if typ.Kind() == reflect.Float32 {
		f32, _ := acc.Float32()
		f = float64(f32)
	} else {
		f, _ = acc.Float64()
	}
	if math.IsInf(f, 0) {
		return 0, &EvaluationError{Magnitude: m, Target: typ.String(), Reason: "overflow"}
	}
	return f, nil
}

// intPow raises x to an integer power by repeated squaring.
func intPow(x *big.Float, n int64) *big.Float {
	neg := n < 0
	if neg {
		n = -n
	}
	result := new(big.Float).SetPrec(floatPrec).SetInt64(1)
	sq := new(big.Float).SetPrec(floatPrec).Set(x)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, sq)
		}
		sq.Mul(sq, sq)
		n >>= 1
	}
	if neg {
		result.Quo(new(big.Float).SetPrec(floatPrec).SetInt64(1), result)
	}
	return result
}
