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
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

var (
	errEmptyName              = errors.New("quantity spec name is empty")
	errNilParent              = errors.New("parent quantity spec is nil")
	errNilEquation            = errors.New("equation is nil")
	errDimensionMismatch      = errors.New("equation dimension does not match parent")
	errEquationNotConvertible = errors.New("equation is not explicitly convertible to parent")
	errUnexpectedEquation     = errors.New("base quantities cannot declare an equation")
	errNamedEquation          = errors.New("equation of a root quantity must be derived")
)

// Spec is a quantity specification: a *Named, a Derived product or a Kind.
type Spec interface {
	Dimension() Dimension
	Character() Character
	// Complexity orders the explode search; it strictly decreases when a
	// named spec is replaced by its equation.
	Complexity() int
	String() string

	isSpec()
}

// Named is a declared quantity: a base quantity, a root defined by an
// equation, or a child of another named quantity. Names identify specs, so
// two Named values with the same name are the same quantity.
type Named struct {
	name      string
	parent    *Named
	equation  Spec
	dimension Dimension
	character Character
	kind      bool

	complexity int
}

// Dimensionless is the identity of spec multiplication.
var Dimensionless = &Named{name: "dimensionless", dimension: DimensionOne, character: Scalar, complexity: 1}

type options struct {
	equation  Spec
	character *Character
	kind      bool
}

// Option customizes a named quantity declaration.
type Option func(*options)

// WithEquation refines a child with its own defining equation.
func WithEquation(eq Spec) Option {
	return func(o *options) { o.equation = eq }
}

// WithCharacter overrides the character otherwise inherited or derived.
func WithCharacter(c Character) Option {
	return func(o *options) { o.character = &c }
}

// AsKind marks the quantity as the root of its own kind.
func AsKind() Option {
	return func(o *options) { o.kind = true }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewBase declares a base quantity of the given dimension.
func NewBase(name string, dim Dimension, opts ...Option) (*Named, error) {
	if name == "" {
		return nil, errEmptyName
	}
	o := applyOptions(opts)
	if o.equation != nil {
		return nil, fmt.Errorf("%s: %w", name, errUnexpectedEquation)
	}
	q := &Named{name: name, dimension: dim, character: Scalar, kind: o.kind, complexity: 1}
	if o.character != nil {
		q.character = *o.character
	}
	return q, nil
}

// NewDerived declares a root quantity defined only by its equation, such as
// area = length^2.
func NewDerived(name string, eq Spec, opts ...Option) (*Named, error) {
	if name == "" {
		return nil, errEmptyName
	}
	if eq == nil {
		return nil, fmt.Errorf("%s: %w", name, errNilEquation)
	}
	eq = removeKind(eq)
	if _, ok := eq.(Derived); !ok {
		return nil, fmt.Errorf("%s = %s: %w", name, eq, errNamedEquation)
	}
	o := applyOptions(opts)
	q := &Named{
		name:       name,
		equation:   eq,
		dimension:  eq.Dimension(),
		character:  eq.Character(),
		kind:       o.kind,
		complexity: 1 + eq.Complexity(),
	}
	if o.character != nil {
		q.character = *o.character
	}
	return q, nil
}

// NewChild declares a quantity more specific than parent. Without
// WithEquation the child inherits the parent's equation. A child equation
// must share the parent's dimension and be explicitly convertible to it.
func NewChild(name string, parent *Named, opts ...Option) (*Named, error) {
	if name == "" {
		return nil, errEmptyName
	}
	if parent == nil {
		return nil, fmt.Errorf("%s: %w", name, errNilParent)
	}
	o := applyOptions(opts)
	q := &Named{
		name:      name,
		parent:    parent,
		equation:  parent.equation,
		dimension: parent.dimension,
		character: parent.character,
		kind:      o.kind,
	}
	if o.equation != nil {
		eq := removeKind(o.equation)
		if !eq.Dimension().Equal(parent.dimension) {
			return nil, fmt.Errorf("%s = %s [%s], parent %s [%s]: %w",
				name, eq, eq.Dimension(), parent.name, parent.dimension, errDimensionMismatch)
		}
		if !ExplicitlyConvertible(eq, parent) {
			return nil, fmt.Errorf("%s = %s, parent %s: %w", name, eq, parent.name, errEquationNotConvertible)
		}
		q.equation = eq
		q.character = eq.Character()
	}
	if o.character != nil {
		q.character = *o.character
	}
	q.complexity = 1
	if q.equation != nil {
		q.complexity += q.equation.Complexity()
	}
	return q, nil
}

// Must panics if err is not nil. It is meant for package-level declarations.
func Must(q *Named, err error) *Named {
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Named) Name() string { return q.name }
func (q *Named) Parent() *Named { return q.parent }
func (q *Named) Dimension() Dimension { return q.dimension }
func (q *Named) Character() Character { return q.character }
func (q *Named) Complexity() int { return q.complexity }
func (q *Named) IsKind() bool { return q.kind }
func (q *Named) String() string { return q.name }
func (q *Named) isSpec() {}

// Equation returns the defining equation, own or inherited, or nil.
func (q *Named) Equation() Spec { return q.equation }

// DefinesEquation reports whether q introduces an equation its parent does
// not already carry.
func DefinesEquation(q *Named) bool {
	if q.equation == nil {
		return false
	}
	if q.parent == nil || q.parent.equation == nil {
		return true
	}
	return !Equal(q.parent.equation, q.equation)
}

// Factor is a named spec raised to a non-zero rational power.
type Factor struct {
	Spec *Named
	Exp  ratio.Ratio
}

// Derived is a product of powers of named specs, sorted by name.
// Build it with Mul, Div, Pow and friends; never by hand.
type Derived struct {
	factors    []Factor
	dimension  Dimension
	character  Character
	complexity int
}

func (d Derived) Factors() []Factor { return append([]Factor(nil), d.factors...) }
func (d Derived) Dimension() Dimension { return d.dimension }
func (d Derived) Character() Character { return d.character }
func (d Derived) Complexity() int { return d.complexity }
func (d Derived) isSpec() {}

func (d Derived) String() string {
	var num, den []string
	for _, f := range d.factors {
		if f.Exp.IsNegative() {
			den = append(den, powerString(f.Spec.name, f.Exp.Neg()))
		} else {
			num = append(num, powerString(f.Spec.name, f.Exp))
		}
	}
	s := strings.Join(num, "*")
	if s == "" {
		s = "1"
	}
	switch len(den) {
	case 0:
		return s
	case 1:
		return s + "/" + den[0]
	default:
		return s + "/(" + strings.Join(den, "*") + ")"
	}
}

// Kind wraps a kind-tree root. A Kind converts to every quantity of its tree.
type Kind struct {
	spec Spec
}

func (k Kind) Spec() Spec { return k.spec }
func (k Kind) Dimension() Dimension { return k.spec.Dimension() }
func (k Kind) Character() Character { return k.spec.Character() }
func (k Kind) Complexity() int { return k.spec.Complexity() }
func (k Kind) String() string { return "kind_of<" + k.spec.String() + ">" }
func (k Kind) isSpec() {}

// KindOf wraps q as a kind. q must be its own kind-tree root.
func KindOf(q Spec) Kind {
	if k, ok := q.(Kind); ok {
		return k
	}
	if !Equal(KindTreeRoot(q), q) {
		panic(fmt.Sprintf("quantityspec: %s is not a kind-tree root", q))
	}
	return Kind{spec: q}
}

// Equal reports structural equality.
func Equal(a, b Spec) bool {
	switch x := a.(type) {
	case *Named:
		y, ok := b.(*Named)
		return ok && x.name == y.name
	case Derived:
		y, ok := b.(Derived)
		if !ok || len(x.factors) != len(y.factors) {
			return false
		}
		for i := range x.factors {
			if x.factors[i].Spec.name != y.factors[i].Spec.name || x.factors[i].Exp != y.factors[i].Exp {
				return false
			}
		}
		return true
	case Kind:
		y, ok := b.(Kind)
		return ok && Equal(x.spec, y.spec)
	default:
		return false
	}
}

func isKindSpec(q Spec) bool {
	_, ok := q.(Kind)
	return ok
}

func removeKind(q Spec) Spec {
	if k, ok := q.(Kind); ok {
		return k.spec
	}
	return q
}

// cloneKind wraps q in a Kind when every operand was a Kind.
func cloneKind(q Spec, operands ...Spec) Spec {
	for _, op := range operands {
		if !isKindSpec(op) {
			return q
		}
	}
	return KindOf(q)
}

func factorsOf(q Spec) []Factor {
	switch t := removeKind(q).(type) {
	case *Named:
		if t.name == Dimensionless.name {
			return nil
		}
		return []Factor{{Spec: t, Exp: ratio.One}}
	case Derived:
		return t.factors
	default:
		return nil
	}
}

func scaleFactors(fs []Factor, r ratio.Ratio) []Factor {
	out := make([]Factor, len(fs))
	for i, f := range fs {
		out[i] = Factor{Spec: f.Spec, Exp: f.Exp.Mul(r)}
	}
	return out
}

// product normalizes a factor list: equal specs merge, zero powers vanish,
// the rest sort by name. An empty product is Dimensionless and a lone first
// power is the named spec itself.
func product(fs []Factor) Spec {
	byName := make(map[string]Factor, len(fs))
	for _, f := range fs {
		if prev, ok := byName[f.Spec.name]; ok {
			f.Exp = prev.Exp.Add(f.Exp)
		}
		byName[f.Spec.name] = f
	}
	out := make([]Factor, 0, len(byName))
	for _, f := range byName {
		if !f.Exp.IsZero() {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Spec.name < out[j].Spec.name })

	switch {
	case len(out) == 0:
		return Dimensionless
	case len(out) == 1 && out[0].Exp == ratio.One:
		return out[0].Spec
	}

	d := Derived{factors: out, dimension: DimensionOne}
	num, den := Scalar, Scalar
	for _, f := range out {
		d.dimension = d.dimension.Mul(f.Spec.dimension.Pow(f.Exp))
		d.complexity += f.Spec.complexity
		if f.Exp.IsNegative() {
			den = max(den, f.Spec.character)
		} else {
			num = max(num, f.Spec.character)
		}
	}
	if num != den {
		d.character = max(num, den)
	}
	return d
}

// Mul multiplies two specs. The result is a Kind only when both are.
func Mul(a, b Spec) Spec {
	fs := append(append([]Factor(nil), factorsOf(a)...), factorsOf(b)...)
	return cloneKind(product(fs), a, b)
}

// Div divides two specs. The result is a Kind only when both are.
func Div(a, b Spec) Spec {
	fs := append(append([]Factor(nil), factorsOf(a)...), scaleFactors(factorsOf(b), ratio.Int(-1))...)
	return cloneKind(product(fs), a, b)
}

// Pow raises q to a rational power.
func Pow(q Spec, r ratio.Ratio) Spec {
	switch {
	case r.IsZero() || Equal(q, Dimensionless):
		return Dimensionless
	case r == ratio.One:
		return q
	}
	return cloneKind(product(scaleFactors(factorsOf(q), r)), q)
}

func Inverse(q Spec) Spec { return Div(Dimensionless, q) }
func Sqrt(q Spec) Spec { return Pow(q, ratio.New(1, 2)) }
func Cbrt(q Spec) Spec { return Pow(q, ratio.New(1, 3)) }

// Product multiplies any number of specs; it returns Dimensionless for none.
func Product(qs ...Spec) Spec {
	var acc Spec = Dimensionless
	for i, q := range qs {
		if i == 0 {
			acc = q
			continue
		}
		acc = Mul(acc, q)
	}
	return acc
}
