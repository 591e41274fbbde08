package quantityspec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

// DimensionTerm is one base dimension raised to a rational power.
type DimensionTerm struct {
	Symbol string
	Exp    ratio.Ratio
}

// Dimension is a product of base-dimension powers sorted by symbol.
// The zero value is dimension one.
type Dimension struct {
	terms []DimensionTerm
}

// DimensionOne is the dimension of dimensionless quantities.
var DimensionOne = Dimension{}

// BaseDimension returns the dimension of a base quantity.
func BaseDimension(symbol string) Dimension {
	return Dimension{terms: []DimensionTerm{{Symbol: symbol, Exp: ratio.One}}}
}

func (d Dimension) Terms() []DimensionTerm {
	return append([]DimensionTerm(nil), d.terms...)
}

func (d Dimension) Mul(o Dimension) Dimension {
	exps := make(map[string]ratio.Ratio, len(d.terms)+len(o.terms))
	for _, t := range d.terms {
		exps[t.Symbol] = t.Exp
	}
	for _, t := range o.terms {
		exps[t.Symbol] = exps[t.Symbol].Add(t.Exp)
	}
	out := make([]DimensionTerm, 0, len(exps))
	for sym, e := range exps {
		if !e.IsZero() {
			out = append(out, DimensionTerm{Symbol: sym, Exp: e})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return Dimension{terms: out}
}

func (d Dimension) Pow(r ratio.Ratio) Dimension {
	if r.IsZero() {
		return DimensionOne
	}
	out := make([]DimensionTerm, len(d.terms))
	for i, t := range d.terms {
		out[i] = DimensionTerm{Symbol: t.Symbol, Exp: t.Exp.Mul(r)}
	}
	return Dimension{terms: out}
}

func (d Dimension) Inverse() Dimension { return d.Pow(ratio.Int(-1)) }
func (d Dimension) Div(o Dimension) Dimension { return d.Mul(o.Inverse()) }
func (d Dimension) IsOne() bool { return len(d.terms) == 0 }

func (d Dimension) Equal(o Dimension) bool {
	if len(d.terms) != len(o.terms) {
		return false
	}
	for i := range d.terms {
		if d.terms[i] != o.terms[i] {
			return false
		}
	}
	return true
}

// String renders "L^2*M*T^-2", or "1" for dimension one.
func (d Dimension) String() string {
	if d.IsOne() {
		return "1"
	}
	parts := make([]string, len(d.terms))
	for i, t := range d.terms {
		parts[i] = powerString(t.Symbol, t.Exp)
	}
	return strings.Join(parts, "*")
}

// less orders dimensions for ingredient sorting; dimension one sorts last.
func (d Dimension) less(o Dimension) bool {
	switch {
	case d.Equal(o), d.IsOne():
		return false
	case o.IsOne():
		return true
	default:
		return d.String() < o.String()
	}
}

func powerString(name string, exp ratio.Ratio) string {
	switch {
	case exp == ratio.One:
		return name
	case exp.IsInteger():
		return fmt.Sprintf("%s^%s", name, exp)
	default:
		return fmt.Sprintf("%s^(%s)", name, exp)
	}
}
