package core

import (
	"fmt"
	"strings"

	"github.com/llm-d/llm-d-quantity-canon/api/v1alpha1"
	"github.com/llm-d/llm-d-quantity-canon/internal/cache"
	"github.com/llm-d/llm-d-quantity-canon/internal/collector"
	"github.com/llm-d/llm-d-quantity-canon/internal/expr"
	"github.com/llm-d/llm-d-quantity-canon/internal/prime"
	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
	"github.com/llm-d/llm-d-quantity-canon/pkg/unit"
)

// SpecID is the stable handle of a named quantity spec in a Table.
type SpecID int

// UnitID is the stable handle of a named unit in a Table. Prefixed units
// get their own handles.
type UnitID int

type specPair struct {
	from, to string
}

// Table is the immutable result of a build. Handles follow build order, so
// a declaration always has a larger handle than its dependencies.
type Table struct {
	dimensions map[string]quantityspec.Dimension
	constants  map[string]magnitude.Magnitude
	prefixes   map[string]unit.Prefix

	specs   []*quantityspec.Named
	specIDs map[string]SpecID

	units   []*unit.Named
	unitIDs map[string]UnitID

	counts     v1alpha1.DeclarationCounts
	factorizer prime.Factorizer
	memo       cache.ReadWriter[specPair, quantityspec.Convertibility]
	recorder   collector.Recorder
}

func newTable(f prime.Factorizer, memo cache.ReadWriter[specPair, quantityspec.Convertibility], r collector.Recorder) *Table {
	return &Table{
		dimensions: make(map[string]quantityspec.Dimension),
		constants:  make(map[string]magnitude.Magnitude),
		prefixes:   make(map[string]unit.Prefix),
		specIDs:    make(map[string]SpecID),
		unitIDs:    make(map[string]UnitID),
		factorizer: f,
		memo:       memo,
		recorder:   r,
	}
}

func (t *Table) addSpec(q *quantityspec.Named) {
	t.specIDs[q.Name()] = SpecID(len(t.specs))
	t.specs = append(t.specs, q)
}

func (t *Table) addUnit(u *unit.Named) {
	t.unitIDs[u.Symbol()] = UnitID(len(t.units))
	t.units = append(t.units, u)
}

// Counts returns the number of built declarations per kind.
func (t *Table) Counts() v1alpha1.DeclarationCounts { return t.counts }

// Dimension returns the base dimension with the given symbol.
func (t *Table) Dimension(symbol string) (quantityspec.Dimension, bool) {
	d, ok := t.dimensions[symbol]
	return d, ok
}

// Constant returns the magnitude of the named constant.
func (t *Table) Constant(name string) (magnitude.Magnitude, bool) {
	m, ok := t.constants[name]
	return m, ok
}

// Prefix returns the prefix with the given symbol.
func (t *Table) Prefix(symbol string) (unit.Prefix, bool) {
	p, ok := t.prefixes[symbol]
	return p, ok
}

// LookupSpec returns the handle of the named quantity spec.
func (t *Table) LookupSpec(name string) (SpecID, bool) {
	id, ok := t.specIDs[name]
	return id, ok
}

// Spec returns the quantity spec of id. It panics on a handle from another
// table.
func (t *Table) Spec(id SpecID) *quantityspec.Named { return t.specs[id] }

// Specs returns every named quantity spec in build order.
func (t *Table) Specs() []*quantityspec.Named {
	return append([]*quantityspec.Named(nil), t.specs...)
}

// LookupUnit returns the handle of the unit with the given symbol.
func (t *Table) LookupUnit(symbol string) (UnitID, bool) {
	id, ok := t.unitIDs[symbol]
	return id, ok
}

// Unit returns the unit of id. It panics on a handle from another table.
func (t *Table) Unit(id UnitID) *unit.Named { return t.units[id] }

// Units returns every named unit in build order.
func (t *Table) Units() []*unit.Named {
	return append([]*unit.Named(nil), t.units...)
}

func (t *Table) lookupSpec(name string) (quantityspec.Spec, error) {
	if name == quantityspec.Dimensionless.Name() {
		return quantityspec.Dimensionless, nil
	}
	id, ok := t.specIDs[name]
	if !ok {
		return nil, fmt.Errorf("quantity %q %w", name, errUnknown)
	}
	return t.specs[id], nil
}

func (t *Table) lookupUnit(symbol string) (unit.Unit, error) {
	id, ok := t.unitIDs[symbol]
	if !ok {
		return nil, fmt.Errorf("unit %q %w", symbol, errUnknown)
	}
	return t.units[id], nil
}

// ParseSpec resolves a quantity expression such as "length^2/time" against
// the table. "kind_of<q>" wraps a kind-tree root as its kind.
func (t *Table) ParseSpec(s string) (quantityspec.Spec, error) {
	s = strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(s, "kind_of<"); ok && strings.HasSuffix(inner, ">") {
		q, err := resolveSpec(strings.TrimSuffix(inner, ">"), t.lookupSpec)
		if err != nil {
			return nil, err
		}
		if !quantityspec.Equal(quantityspec.KindTreeRoot(q), q) {
			return nil, fmt.Errorf("%s: %w", q, errNotAKindRoot)
		}
		return quantityspec.KindOf(q), nil
	}
	return resolveSpec(s, t.lookupSpec)
}

// ParseUnit resolves a unit expression such as "km/h" or "pi/180*rad".
func (t *Table) ParseUnit(s string) (unit.Unit, error) {
	return t.resolveUnit(s, t.lookupUnit)
}

// ParseMagnitude resolves a product of powers of integers and constants,
// such as "10^-3" or "pi/180".
func (t *Table) ParseMagnitude(s string) (magnitude.Magnitude, error) {
	factors, err := expr.Parse(s)
	if err != nil {
		return magnitude.Magnitude{}, err
	}
	m := magnitude.One()
	for _, f := range factors {
		fm, ok, err := t.magnitudeAtom(f)
		if err != nil {
			return magnitude.Magnitude{}, err
		}
		if !ok {
			return magnitude.Magnitude{}, fmt.Errorf("constant %q %w", f.Atom, errUnknown)
		}
		m = m.Mul(fm.Pow(f.Exp))
	}
	return m, nil
}

func (t *Table) magnitudeAtom(f expr.Factor) (magnitude.Magnitude, bool, error) {
	if f.Number {
		v, err := f.Value()
		if err != nil {
			return magnitude.Magnitude{}, false, err
		}
		m, err := magnitude.NewWith(t.factorizer, v, 1)
		return m, err == nil, err
	}
	m, ok := t.constants[f.Atom]
	return m, ok, nil
}

func (t *Table) resolveUnit(s string, lookup func(string) (unit.Unit, error)) (unit.Unit, error) {
	factors, err := expr.Parse(s)
	if err != nil {
		return nil, err
	}
	mag := magnitude.One()
	us := make([]unit.Unit, 0, len(factors))
	for _, f := range factors {
		m, ok, err := t.magnitudeAtom(f)
		if err != nil {
			return nil, err
		}
		if ok {
			mag = mag.Mul(m.Pow(f.Exp))
			continue
		}
		u, err := lookup(f.Atom)
		if err != nil {
			return nil, err
		}
		us = append(us, unit.Pow(u, f.Exp))
	}
	return unit.Scale(mag, unit.Product(us...)), nil
}

func resolveSpec(s string, lookup func(string) (quantityspec.Spec, error)) (quantityspec.Spec, error) {
	factors, err := expr.Parse(s)
	if err != nil {
		return nil, err
	}
	qs := make([]quantityspec.Spec, 0, len(factors))
	for _, f := range factors {
		if f.Number {
			if f.Atom != "1" {
				return nil, fmt.Errorf("%q: %w", f.Atom, errNumberInSpec)
			}
			continue
		}
		q, err := lookup(f.Atom)
		if err != nil {
			return nil, err
		}
		qs = append(qs, quantityspec.Pow(q, f.Exp))
	}
	return quantityspec.Product(qs...), nil
}
