package magnitude

import (
	"fmt"
	"math/big"

	"github.com/llm-d/llm-d-quantity-canon/internal/prime"
	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

// Decomposition splits a magnitude for display:
// 10^Exp10 * Numerator/Denominator * Irrational.
type Decomposition struct {
	Exp10       int64
	Numerator   uint64
	Denominator uint64
	// Irrational holds the constant bases and fractional prime powers.
	Irrational Magnitude
}

var ten = Of(10)

// Decompose factors out the power of ten and the rational part of m.
func Decompose(m Magnitude) (Decomposition, error) {
	exp10 := m.ExtractPowerOf10()
	rest := m.Div(ten.Pow(ratio.Int(exp10)))

	var rational, irrational []Term
	for _, t := range rest.terms {
		if t.Base.IsPrime() && t.Exp.IsInteger() {
			rational = append(rational, t)
		} else {
			irrational = append(irrational, t)
		}
	}
	num, den, err := Magnitude{terms: rational}.AsRatio()
	if err != nil {
		return Decomposition{}, fmt.Errorf("decomposing %s: %w", m, err)
	}
	return Decomposition{
		Exp10:       exp10,
		Numerator:   num,
		Denominator: den,
		Irrational:  Magnitude{terms: irrational},
	}, nil
}

// Magnitude rebuilds the decomposed value.
func (d Decomposition) Magnitude() Magnitude {
	f := prime.Default()
	return ten.Pow(ratio.Int(d.Exp10)).
		Mul(fromUint(f, d.Numerator)).
		Div(fromUint(f, d.Denominator)).
		Mul(d.Irrational)
}

// Float returns the decomposed value as a big.Float, for display layers that
// need more than float64.
func (d Decomposition) Float() (*big.Float, error) {
	irr, err := Value[float64](d.Irrational)
	if err != nil {
		return nil, err
	}
	v := new(big.Float).SetPrec(floatPrec).SetUint64(d.Numerator)
	v.Quo(v, new(big.Float).SetPrec(floatPrec).SetUint64(d.Denominator))
	v.Mul(v, intPow(new(big.Float).SetPrec(floatPrec).SetInt64(10), d.Exp10))
	return v.Mul(v, new(big.Float).SetPrec(floatPrec).SetFloat64(irr)), nil
}
