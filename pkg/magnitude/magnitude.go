/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package magnitude

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/llm-d/llm-d-quantity-canon/internal/prime"
	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

// floatPrec is the mantissa precision used for constants and evaluation.
const floatPrec = 256

var (
	errNonPositive     = errors.New("magnitude must be positive")
	errInvalidConstant = errors.New("invalid constant")
)

// Base is a basis vector of a magnitude: a prime or a named irrational constant.
// Named constants compare by symbol only.
type Base struct {
	prime  uint64
	symbol string
	value  *big.Float
}

// PrimeBase returns the base for prime p. It panics when p is not prime.
func PrimeBase(p uint64) Base {
	if !prime.IsPrime(p) {
		panic(fmt.Sprintf("magnitude: %d is not prime", p))
	}
	return Base{prime: p}
}

// IsPrime reports whether b is an integer base.
func (b Base) IsPrime() bool { return b.symbol == "" }

// Prime returns the prime of an integer base and 0 for a constant.
func (b Base) Prime() uint64 { return b.prime }

// Symbol returns the symbol of a constant base and "" for a prime.
func (b Base) Symbol() string { return b.symbol }

// Float returns the value of the base at evaluation precision.
func (b Base) Float() *big.Float {
	if b.IsPrime() {
		return new(big.Float).SetPrec(floatPrec).SetUint64(b.prime)
	}
	return new(big.Float).SetPrec(floatPrec).Set(b.value)
}

func (b Base) String() string {
	if b.IsPrime() {
		return fmt.Sprintf("%d", b.prime)
	}
	return b.symbol
}

// Equal compares bases by prime value or constant symbol.
func (b Base) Equal(o Base) bool {
	return b.prime == o.prime && b.symbol == o.symbol
}

// less orders primes ascending, then constants by symbol, primes first.
func (b Base) less(o Base) bool {
	switch {
	case b.IsPrime() && o.IsPrime():
		return b.prime < o.prime
	case b.IsPrime() != o.IsPrime():
		return b.IsPrime()
	default:
		return b.symbol < o.symbol
	}
}

// Term is one base raised to a non-zero rational exponent.
type Term struct {
	Base Base
	Exp  ratio.Ratio
}

// Magnitude is a positive real number in canonical form: a list of terms
// sorted by base with no duplicate base and no zero exponent. The zero value
// is the magnitude 1. Values are never mutated after construction.
type Magnitude struct {
	terms []Term
}

// One returns the multiplicative identity.
func One() Magnitude { return Magnitude{} }

// Of returns the magnitude of a positive integer. It panics on n <= 0.
func Of(n int64) Magnitude {
	return OfRatio(n, 1)
}

// OfRatio returns num/den. It panics unless both are positive.
func OfRatio(num, den int64) Magnitude {
	m, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return m
}

// New returns num/den factored with the default factorizer.
func New(num, den int64) (Magnitude, error) {
	return NewWith(prime.Default(), num, den)
}

// NewWith returns num/den factored with f.
func NewWith(f prime.Factorizer, num, den int64) (Magnitude, error) {
	if num <= 0 || den <= 0 {
		return Magnitude{}, fmt.Errorf("%w: %d/%d", errNonPositive, num, den)
	}
	return fromUint(f, uint64(num)).Div(fromUint(f, uint64(den))), nil
}

func fromUint(f prime.Factorizer, n uint64) Magnitude {
	factors := f.Factorize(n)
	terms := make([]Term, 0, len(factors))
	for _, pf := range factors {
		terms = append(terms, Term{Base: Base{prime: pf.Prime}, Exp: ratio.Int(pf.Multiplicity)})
	}
	return Magnitude{terms: terms}
}

// Constant returns a magnitude made of a single irrational base. value is a
// decimal literal and must be positive. The caller is responsible for picking
// constants that are independent of each other and of the primes.
func Constant(symbol, value string) (Magnitude, error) {
	if symbol == "" {
		return Magnitude{}, fmt.Errorf("%w: empty symbol", errInvalidConstant)
	}
	v, _, err := big.ParseFloat(value, 10, floatPrec, big.ToNearestEven)
	if err != nil {
		return Magnitude{}, fmt.Errorf("%w %q: %w", errInvalidConstant, symbol, err)
	}
	if v.Sign() <= 0 {
		return Magnitude{}, fmt.Errorf("%w %q: %w", errInvalidConstant, symbol, errNonPositive)
	}
	return Power(Base{symbol: symbol, value: v}, ratio.One), nil
}

// MustConstant is Constant that panics on error.
func MustConstant(symbol, value string) Magnitude {
	m, err := Constant(symbol, value)
	if err != nil {
		panic(err)
	}
	return m
}

// Pi is the magnitude π.
var Pi = MustConstant("π", "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899")

// Power returns b^exp.
func Power(b Base, exp ratio.Ratio) Magnitude {
	if exp.IsZero() {
		return One()
	}
	return Magnitude{terms: []Term{{Base: b, Exp: exp}}}
}

// Terms returns a copy of the canonical term list.
func (m Magnitude) Terms() []Term {
	return append([]Term(nil), m.terms...)
}

// Mul merges the sorted term lists, summing the exponents of equal bases.
func (m Magnitude) Mul(o Magnitude) Magnitude {
	out := make([]Term, 0, len(m.terms)+len(o.terms))
	i, j := 0, 0
	for i < len(m.terms) && j < len(o.terms) {
		a, b := m.terms[i], o.terms[j]
		switch {
		case a.Base.less(b.Base):
			out = append(out, a)
			i++
		case b.Base.less(a.Base):
			out = append(out, b)
			j++
		default:
			if e := a.Exp.Add(b.Exp); !e.IsZero() {
				out = append(out, Term{Base: a.Base, Exp: e})
			}
			i++
			j++
		}
	}
	out = append(out, m.terms[i:]...)
	out = append(out, o.terms[j:]...)
	return Magnitude{terms: out}
}

func (m Magnitude) Inverse() Magnitude {
	return m.Pow(ratio.Int(-1))
}

func (m Magnitude) Div(o Magnitude) Magnitude {
	return m.Mul(o.Inverse())
}

// Pow multiplies every exponent by p.
func (m Magnitude) Pow(p ratio.Ratio) Magnitude {
	if p.IsZero() {
		return One()
	}
	out := make([]Term, len(m.terms))
	for i, t := range m.terms {
		out[i] = Term{Base: t.Base, Exp: t.Exp.Mul(p)}
	}
	return Magnitude{terms: out}
}

func (m Magnitude) Sqrt() Magnitude { return m.Pow(ratio.New(1, 2)) }
func (m Magnitude) Cbrt() Magnitude { return m.Pow(ratio.New(1, 3)) }

// Equal compares term lists; canonical form makes this value equality.
func (m Magnitude) Equal(o Magnitude) bool {
	if len(m.terms) != len(o.terms) {
		return false
	}
	for i := range m.terms {
		if !m.terms[i].Base.Equal(o.terms[i].Base) || m.terms[i].Exp != o.terms[i].Exp {
			return false
		}
	}
	return true
}

func (m Magnitude) IsOne() bool { return len(m.terms) == 0 }

// IsRational reports whether every base is a prime with an integer exponent.
func (m Magnitude) IsRational() bool {
	for _, t := range m.terms {
		if !t.Base.IsPrime() || !t.Exp.IsInteger() {
			return false
		}
	}
	return true
}

// IsIntegral reports whether m is a positive integer.
func (m Magnitude) IsIntegral() bool {
	if !m.IsRational() {
		return false
	}
	for _, t := range m.terms {
		if t.Exp.IsNegative() {
			return false
		}
	}
	return true
}

// PowerOf returns the exponent of prime p in m.
func (m Magnitude) PowerOf(p uint64) ratio.Ratio {
	for _, t := range m.terms {
		if t.Base.IsPrime() && t.Base.prime == p {
			return t.Exp
		}
	}
	return ratio.Zero
}

// Numerator keeps, for every prime base, the largest integer power that
// divides m.
func (m Magnitude) Numerator() Magnitude {
	out := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		if !t.Base.IsPrime() || !t.Exp.IsPositive() {
			continue
		}
		if n := t.Exp.IntegerPart(); n > 0 {
			out = append(out, Term{Base: t.Base, Exp: ratio.Int(n)})
		}
	}
	return Magnitude{terms: out}
}

func (m Magnitude) Denominator() Magnitude {
	return m.Inverse().Numerator()
}

// AsRatio returns num/den for a rational magnitude.
func (m Magnitude) AsRatio() (num, den uint64, err error) {
	if !m.IsRational() {
		return 0, 0, &EvaluationError{Magnitude: m, Target: "ratio", Reason: "magnitude is irrational"}
	}
	if num, err = Value[uint64](m.Numerator()); err != nil {
		return 0, 0, err
	}
	if den, err = Value[uint64](m.Denominator()); err != nil {
		return 0, 0, err
	}
	return num, den, nil
}

// Common returns the largest magnitude c such that a/c and b/c have no
// negative exponent. For integers it is the greatest common divisor.
func Common(a, b Magnitude) Magnitude {
	out := make([]Term, 0, len(a.terms)+len(b.terms))
	keepNegative := func(t Term) {
		if t.Exp.IsNegative() {
			out = append(out, t)
		}
	}
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		x, y := a.terms[i], b.terms[j]
		switch {
		case x.Base.less(y.Base):
			keepNegative(x)
			i++
		case y.Base.less(x.Base):
			keepNegative(y)
			j++
		default:
			e := x.Exp
			if y.Exp.Less(e) {
				e = y.Exp
			}
			out = append(out, Term{Base: x.Base, Exp: e})
			i++
			j++
		}
	}
	for ; i < len(a.terms); i++ {
		keepNegative(a.terms[i])
	}
	for ; j < len(b.terms); j++ {
		keepNegative(b.terms[j])
	}
	return Magnitude{terms: out}
}

// ExtractPowerOf10 returns the largest integer power of ten that can be
// factored out of m without flipping the sign of the exponent of 2 or 5.
func (m Magnitude) ExtractPowerOf10() int64 {
	p2, p5 := m.PowerOf(2), m.PowerOf(5)
	if p2.Mul(p5).Num <= 0 {
		return 0
	}
	if p2.Abs().Less(p5.Abs()) {
		return p2.IntegerPart()
	}
	return p5.IntegerPart()
}

// String renders the terms as "2^3*5*π^(1/2)".
func (m Magnitude) String() string {
	if m.IsOne() {
		return "1"
	}
	parts := make([]string, len(m.terms))
	for i, t := range m.terms {
		switch {
		case t.Exp == ratio.One:
			parts[i] = t.Base.String()
		case t.Exp.IsInteger():
			parts[i] = fmt.Sprintf("%s^%s", t.Base, t.Exp)
		default:
			parts[i] = fmt.Sprintf("%s^(%s)", t.Base, t.Exp)
		}
	}
	return strings.Join(parts, "*")
}
