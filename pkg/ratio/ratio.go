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

// Package ratio provides the reduced rational numbers used as exponents by
// magnitudes, units and quantity specifications.
package ratio

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

var errInvalidRatio = errors.New("invalid ratio")

// Ratio is a reduced fraction with a positive denominator.
// The zero value is 0/1 after normalization; use New or Int to build one.
type Ratio struct {
	Num int64
	Den int64
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Ratio{Num: 0, Den: 1}
	One  = Ratio{Num: 1, Den: 1}
)

// New returns num/den in lowest terms. A zero denominator panics.
func New(num, den int64) Ratio {
	if den == 0 {
		panic("ratio: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g == 0 {
		return Zero
	}
	return Ratio{Num: num / g, Den: den / g}
}

// Int returns n/1.
func Int(n int64) Ratio {
	return Ratio{Num: n, Den: 1}
}

// Parse reads "n", "-n" or "n/d".
func Parse(s string) (Ratio, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, hasDen := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w %q: %w", errInvalidRatio, s, err)
	}
	den := int64(1)
	if hasDen {
		den, err = strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("%w %q: %w", errInvalidRatio, s, err)
		}
		if den == 0 {
			return Zero, fmt.Errorf("%w %q: zero denominator", errInvalidRatio, s)
		}
	}
	return New(num, den), nil
}

func (r Ratio) norm() Ratio {
	if r.Den == 0 {
		return Zero
	}
	return r
}

func (r Ratio) Add(o Ratio) Ratio {
	r, o = r.norm(), o.norm()
	return New(add(mul(r.Num, o.Den), mul(o.Num, r.Den)), mul(r.Den, o.Den))
}

func (r Ratio) Sub(o Ratio) Ratio {
	return r.Add(o.Neg())
}

func (r Ratio) Mul(o Ratio) Ratio {
	r, o = r.norm(), o.norm()
	// Cross-reduce before multiplying.
	g1, g2 := gcd(abs(r.Num), o.Den), gcd(abs(o.Num), r.Den)
	if g1 == 0 || g2 == 0 {
		return Zero
	}
	return New(mul(r.Num/g1, o.Num/g2), mul(r.Den/g2, o.Den/g1))
}

// Div panics when o is zero.
func (r Ratio) Div(o Ratio) Ratio {
	r, o = r.norm(), o.norm()
	if o.Num == 0 {
		panic("ratio: division by zero")
	}
	return r.Mul(Ratio{Num: o.Den, Den: o.Num}.sign())
}

func (r Ratio) Neg() Ratio {
	r = r.norm()
	return Ratio{Num: -r.Num, Den: r.Den}
}

func (r Ratio) Abs() Ratio {
	r = r.norm()
	if r.Num < 0 {
		return r.Neg()
	}
	return r
}

func (r Ratio) IsZero() bool { return r.Num == 0 }
func (r Ratio) IsInteger() bool { return r.norm().Den == 1 }
func (r Ratio) IsPositive() bool { return r.Num > 0 }
func (r Ratio) IsNegative() bool { return r.Num < 0 }

// Cmp returns -1, 0 or +1.
func (r Ratio) Cmp(o Ratio) int {
	r, o = r.norm(), o.norm()
	lhs, rhs := mul(r.Num, o.Den), mul(o.Num, r.Den)
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func (r Ratio) Less(o Ratio) bool { return r.Cmp(o) < 0 }

// IntegerPart truncates toward zero.
func (r Ratio) IntegerPart() int64 {
	r = r.norm()
	return r.Num / r.Den
}

func (r Ratio) String() string {
	r = r.norm()
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

// Common returns the largest rational g such that a/g and b/g are both integers.
func Common(a, b Ratio) Ratio {
	a, b = a.norm().Abs(), b.norm().Abs()
	if a == b {
		return a
	}
	// gcd(a/b, c/d) = gcd(a*d, c*b) / (b*d)
	return New(gcd(mul(a.Num, b.Den), mul(b.Num, a.Den)), mul(a.Den, b.Den))
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// sign moves a negative denominator to the numerator.
func (r Ratio) sign() Ratio {
	if r.Den < 0 {
		return Ratio{Num: -r.Num, Den: -r.Den}
	}
	return r
}

// mul returns a*b and panics when the product does not fit an int64.
func mul(a, b int64) int64 {
	hi, lo := bits.Mul64(uabs(a), uabs(b))
	neg := (a < 0) != (b < 0)
	switch {
	case hi != 0, lo > math.MaxInt64+1, lo == math.MaxInt64+1 && !neg:
		panic(fmt.Sprintf("ratio: %d * %d overflows int64", a, b))
	case neg:
		return -int64(lo - 1) - 1
	default:
		return int64(lo)
	}
}

// add returns a+b and panics when the sum does not fit an int64.
func add(a, b int64) int64 {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		panic(fmt.Sprintf("ratio: %d + %d overflows int64", a, b))
	}
	return sum
}

func uabs(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
