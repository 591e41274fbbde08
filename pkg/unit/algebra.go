package unit

import (
	"sort"

	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

// Term is a named unit raised to a non-zero rational power.
type Term struct {
	Unit *Named
	Exp  ratio.Ratio
}

func (t Term) string(negate bool) string {
	e := t.Exp
	if negate {
		e = e.Neg()
	}
	switch {
	case e == ratio.One:
		return t.Unit.symbol
	case e.IsInteger():
		return t.Unit.symbol + "^" + e.String()
	default:
		return t.Unit.symbol + "^(" + e.String() + ")"
	}
}

func termLess(a, b Term) bool {
	if a.Unit.constant != b.Unit.constant {
		return a.Unit.constant
	}
	return a.Unit.symbol < b.Unit.symbol
}

// lift splits u into the magnitude pulled out of any Scaled wrapper and the
// unscaled remainder.
func lift(u Unit) (magnitude.Magnitude, Unit) {
	switch t := u.(type) {
	case Scaled:
		return t.mag, t.ref
	case Unresolved:
		return t.Magnitude, t.Reference
	}
	return magnitude.One(), u
}

func termsOf(u Unit) []Term {
	switch t := u.(type) {
	case *Named:
		return []Term{{Unit: t, Exp: ratio.One}}
	case Derived:
		return t.terms
	}
	return nil
}

func scaleTerms(ts []Term, r ratio.Ratio) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = Term{Unit: t.Unit, Exp: t.Exp.Mul(r)}
	}
	return out
}

// product normalizes a term list: equal units merge, zero powers vanish and
// the rest sort constants first, then by symbol. An empty product is One and
// a lone first power is the named unit itself.
func product(ts []Term) Unit {
	bySymbol := make(map[string]Term, len(ts))
	for _, t := range ts {
		if prev, ok := bySymbol[t.Unit.symbol]; ok {
			t.Exp = prev.Exp.Add(t.Exp)
		}
		bySymbol[t.Unit.symbol] = t
	}
	out := make([]Term, 0, len(bySymbol))
	for _, t := range bySymbol {
		if !t.Exp.IsZero() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return termLess(out[i], out[j]) })

	switch {
	case len(out) == 0:
		return One
	case len(out) == 1 && out[0].Exp == ratio.One:
		return out[0].Unit
	}
	return Derived{terms: out}
}

// Scale multiplies u by m. Scaling by one returns u unchanged and nested
// scales fold into a single Scaled unit.
func Scale(m magnitude.Magnitude, u Unit) Unit {
	inner, ref := lift(u)
	m = m.Mul(inner)
	if m.IsOne() {
		return ref
	}
	return Scaled{mag: m, ref: ref}
}

// Mul multiplies two units. Magnitudes of scaled operands are pulled out of
// the product.
func Mul(a, b Unit) Unit {
	ma, ra := lift(a)
	mb, rb := lift(b)
	ts := append(append([]Term(nil), termsOf(ra)...), termsOf(rb)...)
	return Scale(ma.Mul(mb), product(ts))
}

// Div divides two units.
func Div(a, b Unit) Unit {
	return Mul(a, Inverse(b))
}

// Pow raises u to a rational power.
func Pow(u Unit, r ratio.Ratio) Unit {
	switch {
	case r.IsZero() || Same(u, One):
		return One
	case r == ratio.One:
		return u
	}
	m, ref := lift(u)
	return Scale(m.Pow(r), product(scaleTerms(termsOf(ref), r)))
}

func Inverse(u Unit) Unit { return Pow(u, ratio.Int(-1)) }
func Square(u Unit) Unit { return Pow(u, ratio.Int(2)) }
func Cubic(u Unit) Unit { return Pow(u, ratio.Int(3)) }
func Sqrt(u Unit) Unit { return Pow(u, ratio.New(1, 2)) }
func Cbrt(u Unit) Unit { return Pow(u, ratio.New(1, 3)) }

// Product multiplies any number of units; it returns One for none.
func Product(us ...Unit) Unit {
	var acc Unit = One
	for _, u := range us {
		acc = Mul(acc, u)
	}
	return acc
}

// Same reports structural identity of two unit expressions, without
// canonicalizing them. Use Equal to compare values.
func Same(a, b Unit) bool {
	switch x := a.(type) {
	case *Named:
		y, ok := b.(*Named)
		return ok && x.symbol == y.symbol
	case Scaled:
		y, ok := b.(Scaled)
		return ok && x.mag.Equal(y.mag) && Same(x.ref, y.ref)
	case Derived:
		y, ok := b.(Derived)
		if !ok || len(x.terms) != len(y.terms) {
			return false
		}
		for i := range x.terms {
			if x.terms[i].Unit.symbol != y.terms[i].Unit.symbol || x.terms[i].Exp != y.terms[i].Exp {
				return false
			}
		}
		return true
	case Unresolved:
		y, ok := b.(Unresolved)
		return ok && x.Magnitude.Equal(y.Magnitude) && Same(x.Reference, y.Reference)
	}
	return false
}

// AssociatedSpec returns the quantity spec measured by u, built from the
// specs of its components. It reports false when any component has none.
func AssociatedSpec(u Unit) (quantityspec.Spec, bool) {
	switch t := u.(type) {
	case *Named:
		if t.spec != nil {
			return t.spec, true
		}
		if t.alias != nil {
			return AssociatedSpec(t.alias)
		}
		return nil, false
	case Scaled:
		return AssociatedSpec(t.ref)
	case Unresolved:
		if len(t.Operands) == 0 {
			return AssociatedSpec(t.Reference)
		}
		return AssociatedSpec(t.Operands[0])
	case Derived:
		var acc quantityspec.Spec = quantityspec.Dimensionless
		for i, term := range t.terms {
			q, ok := AssociatedSpec(term.Unit)
			if !ok {
				return nil, false
			}
			// Starting from the first power keeps kinds intact.
			if q = quantityspec.Pow(q, term.Exp); i == 0 {
				acc = q
			} else {
				acc = quantityspec.Mul(acc, q)
			}
		}
		return acc, true
	}
	return nil, false
}
