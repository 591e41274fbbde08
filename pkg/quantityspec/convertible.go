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

package quantityspec

import (
	"sort"

	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

// Convertible classifies the conversion of a quantity of spec from to spec to.
func Convertible(from, to Spec) Convertibility {
	switch {
	case !from.Dimension().Equal(to.Dimension()):
		return No
	case Equal(from, to):
		return Yes
	case isKindSpec(from) || isKindSpec(to):
		return kindConvertible(from, to)
	case Equal(KindTreeRoot(to), to) && nestedKind(to, from):
		return Yes
	}

	fromNamed, fromIsNamed := from.(*Named)
	toNamed, toIsNamed := to.(*Named)
	fromDerived, fromIsDerived := from.(Derived)
	toDerived, toIsDerived := to.(Derived)

	switch {
	case fromIsNamed && toIsNamed:
		return namedConvertible(fromNamed, toNamed)

	case fromIsDerived && toIsDerived:
		nf, df := fromDerived.ingredients()
		nt, dt := toDerived.ingredients()
		return ingredientsConvertible(nf, df, nt, dt)

	case fromIsDerived && toIsNamed:
		res := explode(from, toNamed.complexity)
		if _, ok := res.spec.(*Named); ok {
			return Convertible(res.spec, to)
		}
		if eq, r, ok := explodeToEquation(Factor{Spec: toNamed, Exp: ratio.One}); ok {
			return min(r, Convertible(res.spec, eq))
		}
		nf, df := fromDerived.ingredients()
		return ingredientsConvertible(nf, df, factorsOf(toNamed), nil)

	case fromIsNamed && toIsDerived:
		res := explode(to, fromNamed.complexity)
		if _, ok := res.spec.(*Named); ok {
			return min(res.result, Convertible(from, res.spec))
		}
		if fromNamed.equation != nil {
			return min(res.result, Convertible(fromNamed.equation, res.spec))
		}
		nt, dt := toDerived.ingredients()
		return min(res.result, ingredientsConvertible(factorsOf(fromNamed), nil, nt, dt))
	}
	return No
}

// ImplicitlyConvertible reports whether from converts to to without a cast.
func ImplicitlyConvertible(from, to Spec) bool { return Convertible(from, to) == Yes }

// ExplicitlyConvertible reports whether from converts to to with an explicit conversion.
func ExplicitlyConvertible(from, to Spec) bool { return Convertible(from, to) >= Explicit }

// Castable reports whether from converts to to with at least a cast.
func Castable(from, to Spec) bool { return Convertible(from, to) >= Cast }

// Interconvertible reports whether a and b convert implicitly both ways.
func Interconvertible(a, b Spec) bool {
	return ImplicitlyConvertible(a, b) && ImplicitlyConvertible(b, a)
}

// kindConvertible compares the kind roots of from and to. Across kinds the
// answer is only Yes or No.
func kindConvertible(from, to Spec) Convertibility {
	fromRoot, toRoot := KindTreeRoot(from), KindTreeRoot(to)
	_, fromIsNamed := fromRoot.(*Named)
	_, toIsNamed := toRoot.(*Named)
	fc, tc := fromRoot.Complexity(), toRoot.Complexity()

	collapse := func(r Convertibility) Convertibility {
		if r == No {
			return No
		}
		return Yes
	}
	switch {
	case (fromIsNamed && toIsNamed) || fc == tc:
		return Convertible(fromRoot, toRoot)
	case fc > tc:
		return collapse(Convertible(KindTreeRoot(explode(fromRoot, tc).spec), toRoot))
	default:
		return collapse(Convertible(fromRoot, KindTreeRoot(explode(toRoot, fc).spec)))
	}
}

func namedConvertible(from, to *Named) Convertibility {
	if HaveCommonBase(from, to) {
		switch {
		case IsChildOf(from, to):
			return Yes
		case IsChildOf(to, from):
			return Explicit
		case Equal(GetKind(from), GetKind(to)):
			return Cast
		default:
			return No
		}
	}
	switch {
	case !Equal(GetKind(from), GetKind(to)):
		return No
	case from.complexity > to.complexity:
		return Convertible(explode(from, to.complexity).spec, to)
	case from.complexity < to.complexity:
		res := explode(to, from.complexity)
		return min(res.result, Convertible(from, res.spec))
	}
	return No
}

type explodeResult struct {
	spec   Spec
	result Convertibility
}

// explode replaces named ingredients by their equations, most complex first,
// until the spec is no more complex than c or nothing is left to replace.
func explode(q Spec, c int) explodeResult {
	switch t := q.(type) {
	case Derived:
		if t.complexity > c {
			num, den := t.ingredients()
			return explodeIngredients(num, den, c)
		}
	case *Named:
		if t.complexity > c && t.equation != nil {
			eq, r, _ := explodeToEquation(Factor{Spec: t, Exp: ratio.One})
			res := explode(eq, c)
			return explodeResult{spec: res.spec, result: min(res.result, r)}
		}
	}
	return explodeResult{spec: q, result: Yes}
}

func explodeIngredients(num, den []Factor, c int) explodeResult {
	var fromNum bool
	switch {
	case len(num) > 0 && len(den) > 0:
		n, d := num[0].Spec.complexity, den[0].Spec.complexity
		if max(n, d) == c {
			return explodeResult{spec: rebuild(num, den), result: Yes}
		}
		fromNum = n >= d
	case len(num) > 0:
		if num[0].Spec.complexity == c {
			return explodeResult{spec: rebuild(num, den), result: Yes}
		}
		fromNum = true
	case len(den) > 0:
		if den[0].Spec.complexity == c {
			return explodeResult{spec: rebuild(num, den), result: Yes}
		}
	default:
		return explodeResult{spec: Dimensionless, result: Yes}
	}

	var next Spec
	if fromNum {
		eq, r, ok := explodeToEquation(num[0])
		if !ok {
			return explodeResult{spec: rebuild(num, den), result: Yes}
		}
		next = Div(Mul(eq, rebuild(num[1:], nil)), rebuild(den, nil))
		res := explode(next, c)
		return explodeResult{spec: res.spec, result: min(res.result, r)}
	}
	eq, r, ok := explodeToEquation(den[0])
	if !ok {
		return explodeResult{spec: rebuild(num, den), result: Yes}
	}
	next = Div(rebuild(num, nil), Mul(eq, rebuild(den[1:], nil)))
	res := explode(next, c)
	return explodeResult{spec: res.spec, result: min(res.result, r)}
}

// explodeToEquation returns the equation of f raised to f's power, and Yes if
// the named spec introduces that equation itself or Explicit if inherited.
func explodeToEquation(f Factor) (Spec, Convertibility, bool) {
	if f.Spec.equation == nil {
		return nil, No, false
	}
	r := Explicit
	if DefinesEquation(f.Spec) {
		r = Yes
	}
	return Pow(f.Spec.equation, f.Exp), r, true
}

// ingredients splits d into numerator and denominator factors with positive
// exponents, each ordered by decreasing complexity, then dimension, then name.
func (d Derived) ingredients() (num, den []Factor) {
	for _, f := range d.factors {
		if f.Exp.IsNegative() {
			den = append(den, Factor{Spec: f.Spec, Exp: f.Exp.Neg()})
		} else {
			num = append(num, f)
		}
	}
	sortIngredients(num)
	sortIngredients(den)
	return num, den
}

func sortIngredients(fs []Factor) {
	sort.SliceStable(fs, func(i, j int) bool {
		a, b := fs[i].Spec, fs[j].Spec
		switch {
		case a.complexity != b.complexity:
			return a.complexity > b.complexity
		case !a.dimension.Equal(b.dimension):
			return a.dimension.less(b.dimension)
		default:
			return a.name < b.name
		}
	})
}

func mapPower(f Factor) Spec {
	return Pow(f.Spec, f.Exp)
}

// rebuild multiplies num and divides by den.
func rebuild(num, den []Factor) Spec {
	fs := make([]Factor, 0, len(num)+len(den))
	fs = append(fs, num...)
	for _, f := range den {
		fs = append(fs, Factor{Spec: f.Spec, Exp: f.Exp.Neg()})
	}
	return product(fs)
}

func listDimension(num, den []Factor) Dimension {
	return rebuild(num, den).Dimension()
}

type prependRest int

const (
	prependNone prependRest = iota
	// prependFirst returns the unmatched power to the first list of the pair.
	prependFirst
	// prependSecond returns it to the second list.
	prependSecond
)

type extraction struct {
	from, to Spec
	prepend  prependRest
	rest     Factor
}

// extract matches two ingredients. Equal dimensions compare directly;
// powers of the same dimension compare on their shared exponent and return
// the leftover power for further matching.
func extract(from, to Factor) (extraction, bool) {
	qfrom, qto := mapPower(from), mapPower(to)
	if qfrom.Dimension().Equal(qto.Dimension()) {
		if from.Exp != ratio.One && to.Exp != ratio.One {
			cr := ratio.Common(from.Exp, to.Exp)
			return extraction{from: Pow(from.Spec, from.Exp.Div(cr)), to: Pow(to.Spec, to.Exp.Div(cr))}, true
		}
		return extraction{from: qfrom, to: qto}, true
	}
	if !from.Spec.dimension.Equal(to.Spec.dimension) {
		return extraction{}, false
	}
	if to.Exp.Less(from.Exp) {
		return extraction{
			from:    Pow(from.Spec, to.Exp),
			to:      Pow(to.Spec, to.Exp),
			prepend: prependFirst,
			rest:    Factor{Spec: from.Spec, Exp: from.Exp.Sub(to.Exp)},
		}, true
	}
	return extraction{
		from:    Pow(from.Spec, from.Exp),
		to:      Pow(to.Spec, from.Exp),
		prepend: prependSecond,
		rest:    Factor{Spec: to.Spec, Exp: to.Exp.Sub(from.Exp)},
	}, true
}

func pushFront(f Factor, fs []Factor) []Factor {
	return append([]Factor{f}, fs...)
}

// withRest puts the leftover power of ext back in front of first or second.
func (ext extraction) withRest(first, second []Factor) ([]Factor, []Factor) {
	switch ext.prepend {
	case prependFirst:
		return pushFront(ext.rest, first), second
	case prependSecond:
		return first, pushFront(ext.rest, second)
	default:
		return first, second
	}
}

// ingredientsConvertible matches the sorted ingredient lists of two specs.
// Heads are paired numerator to numerator, denominator to denominator, and
// cancelled within one side; when nothing pairs up the most complex head is
// replaced by its equation and the whole comparison starts over.
func ingredientsConvertible(nf, df, nt, dt []Factor) Convertibility {
	switch {
	case len(nt) == 0 && len(dt) == 0:
		if listDimension(nf, df).IsOne() {
			return Yes
		}
		return No
	case len(nf) == 0 && len(df) == 0:
		if listDimension(nt, dt).IsOne() {
			return Explicit
		}
		return No
	}

	if len(nf) > 0 && len(nt) > 0 {
		if ext, ok := extract(nf[0], nt[0]); ok {
			nf, nt := ext.withRest(nf[1:], nt[1:])
			return min(Convertible(ext.from, ext.to), ingredientsConvertible(nf, df, nt, dt))
		}
	}
	if len(df) > 0 && len(dt) > 0 {
		if ext, ok := extract(df[0], dt[0]); ok {
			df, dt := ext.withRest(df[1:], dt[1:])
			return min(Convertible(ext.from, ext.to), ingredientsConvertible(nf, df, nt, dt))
		}
	}
	if len(nf) > 0 && len(df) > 0 {
		if ext, ok := extract(nf[0], df[0]); ok {
			nf, df := ext.withRest(nf[1:], df[1:])
			return ingredientsConvertible(nf, df, nt, dt)
		}
	}
	if len(nt) > 0 && len(dt) > 0 {
		if ext, ok := extract(nt[0], dt[0]); ok {
			nt, dt := ext.withRest(nt[1:], dt[1:])
			return ingredientsConvertible(nf, df, nt, dt)
		}
	}
	return explodeMostComplexHead(nf, df, nt, dt)
}

func headComplexity(fs []Factor) int {
	if len(fs) == 0 {
		return 0
	}
	return fs[0].Spec.complexity
}

func explodeMostComplexHead(nf, df, nt, dt []Factor) Convertibility {
	maxC := max(headComplexity(nf), headComplexity(df), headComplexity(nt), headComplexity(dt))
	if maxC <= 1 {
		return No
	}
	switch maxC {
	case headComplexity(nf):
		eq, _, _ := explodeToEquation(nf[0])
		return Convertible(Div(Mul(eq, rebuild(nf[1:], nil)), rebuild(df, nil)), rebuild(nt, dt))
	case headComplexity(df):
		eq, _, _ := explodeToEquation(df[0])
		return Convertible(Div(rebuild(nf, nil), Mul(eq, rebuild(df[1:], nil))), rebuild(nt, dt))
	case headComplexity(nt):
		eq, r, _ := explodeToEquation(nt[0])
		return min(r, Convertible(rebuild(nf, df), Div(Mul(eq, rebuild(nt[1:], nil)), rebuild(dt, nil))))
	default:
		eq, r, _ := explodeToEquation(dt[0])
		return min(r, Convertible(rebuild(nf, df), Div(rebuild(nt, nil), Mul(eq, rebuild(dt[1:], nil)))))
	}
}
