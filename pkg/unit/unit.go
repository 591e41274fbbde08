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

package unit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
)

var (
	errEmptySymbol   = errors.New("unit symbol is empty")
	errSpecDimension = errors.New("quantity spec dimension does not match the aliased unit")
)

// Unit is a measurement unit expression: a *Named unit, a Scaled unit, a
// Derived product or an Unresolved common unit.
type Unit interface {
	String() string

	isUnit()
}

// Named is a declared unit. It is either a reference unit, which canonicalizes
// to itself, or an alias of another unit expression such as hour = 3600*s.
// Symbols identify units, so two Named values with the same symbol are the
// same unit.
type Named struct {
	symbol   string
	spec     quantityspec.Spec
	alias    Unit
	constant bool
}

type options struct {
	spec     quantityspec.Spec
	alias    Unit
	constant bool
}

// Option customizes a named unit declaration.
type Option func(*options)

// WithSpec binds the unit to the quantity spec it measures, usually a kind.
func WithSpec(q quantityspec.Spec) Option {
	return func(o *options) { o.spec = q }
}

// WithAlias makes the unit a special name for another unit expression.
func WithAlias(u Unit) Option {
	return func(o *options) { o.alias = u }
}

// AsConstant marks a unit standing for a physical constant, such as [g].
// Constant units sort ahead of other units in derived expressions.
func AsConstant() Option {
	return func(o *options) { o.constant = true }
}

// NewNamed declares a unit. When both a spec and an alias with a known spec
// are given their dimensions must agree.
func NewNamed(symbol string, opts ...Option) (*Named, error) {
	if symbol == "" {
		return nil, errEmptySymbol
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.spec != nil && o.alias != nil {
		if q, ok := AssociatedSpec(o.alias); ok && !q.Dimension().Equal(o.spec.Dimension()) {
			return nil, fmt.Errorf("%s = %s: %s [%s] vs %s [%s]: %w",
				symbol, o.alias, o.spec, o.spec.Dimension(), q, q.Dimension(), errSpecDimension)
		}
	}
	return &Named{symbol: symbol, spec: o.spec, alias: o.alias, constant: o.constant}, nil
}

// Must panics if err is not nil.
func Must(u *Named, err error) *Named {
	if err != nil {
		panic(err)
	}
	return u
}

func (u *Named) Symbol() string { return u.symbol }
func (u *Named) IsConstant() bool { return u.constant }
func (u *Named) String() string { return u.symbol }
func (u *Named) isUnit() {}

// Spec returns the quantity spec the unit was declared for, or nil.
func (u *Named) Spec() quantityspec.Spec { return u.spec }

// Alias returns the aliased expression, or nil for a reference unit.
func (u *Named) Alias() Unit { return u.alias }

// Scaled is a unit multiplied by a magnitude other than one. Its reference
// is never itself Scaled.
type Scaled struct {
	mag magnitude.Magnitude
	ref Unit
}

func (s Scaled) Magnitude() magnitude.Magnitude { return s.mag }
func (s Scaled) Reference() Unit { return s.ref }
func (s Scaled) String() string { return "[" + s.mag.String() + "] " + s.ref.String() }
func (s Scaled) isUnit() {}

// Derived is a product of powers of named units. The zero value is One.
type Derived struct {
	terms []Term
}

// One is the unit of dimensionless quantities.
var One = Derived{}

func (d Derived) Terms() []Term { return append([]Term(nil), d.terms...) }
func (d Derived) IsOne() bool { return len(d.terms) == 0 }
func (d Derived) isUnit() {}

// String renders "m/s^2", "kg*m^2/s^2" or "1/s"; One renders as "one".
func (d Derived) String() string {
	if d.IsOne() {
		return "one"
	}
	var num, den []string
	for _, t := range d.terms {
		if t.Exp.IsNegative() {
			den = append(den, t.string(true))
		} else {
			num = append(num, t.string(false))
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

// Predefined dimensionless units.
var (
	Percent         = Must(NewNamed("%", WithAlias(Scale(magnitude.OfRatio(1, 100), One))))
	PerMille        = Must(NewNamed("‰", WithAlias(Scale(magnitude.OfRatio(1, 1000), One))))
	PartsPerMillion = Must(NewNamed("ppm", WithAlias(Scale(magnitude.OfRatio(1, 1_000_000), One))))
)
