package unit

import (
	"errors"
	"fmt"

	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
)

// ErrNotConvertible is wrapped by every ConversionError.
var ErrNotConvertible = errors.New("units not convertible")

// CanonicalUnit is the equality key of a unit: a product of reference units
// and the magnitude that scales it.
type CanonicalUnit struct {
	Reference Unit
	Magnitude magnitude.Magnitude
}

// Canonical unfolds scales and aliases of u down to reference units.
// Canonicalizing a canonical reference unit returns it unchanged.
func Canonical(u Unit) CanonicalUnit {
	switch t := u.(type) {
	case *Named:
		if t.alias == nil {
			return CanonicalUnit{Reference: t, Magnitude: magnitude.One()}
		}
		return Canonical(t.alias)
	case Scaled:
		c := Canonical(t.ref)
		return CanonicalUnit{Reference: c.Reference, Magnitude: t.mag.Mul(c.Magnitude)}
	case Unresolved:
		c := Canonical(t.Reference)
		return CanonicalUnit{Reference: c.Reference, Magnitude: t.Magnitude.Mul(c.Magnitude)}
	case Derived:
		mag := magnitude.One()
		var ts []Term
		for _, term := range t.terms {
			c := Canonical(term.Unit)
			mag = mag.Mul(c.Magnitude.Pow(term.Exp))
			ts = append(ts, scaleTerms(termsOf(c.Reference), term.Exp)...)
		}
		return CanonicalUnit{Reference: product(ts), Magnitude: mag}
	}
	return CanonicalUnit{Reference: u, Magnitude: magnitude.One()}
}

// Equal reports whether a and b denote the same unit: identical reference
// units and equal magnitudes. Hz and 1/s are equal.
func Equal(a, b Unit) bool {
	if Same(a, b) {
		return true
	}
	ca, cb := Canonical(a), Canonical(b)
	return Same(ca.Reference, cb.Reference) && ca.Magnitude.Equal(cb.Magnitude)
}

// Convertible reports whether a value in from can be expressed in to. The
// reference units must match and, when both units measure a known quantity
// spec, from's spec must convert implicitly to to's.
func Convertible(from, to Unit) bool {
	return checkConvertible(from, to) == nil
}

func checkConvertible(from, to Unit) error {
	if Same(from, to) {
		return nil
	}
	cf, ct := Canonical(from), Canonical(to)
	if !Same(cf.Reference, ct.Reference) {
		return &ConversionError{From: from, To: to, FromReference: cf.Reference, ToReference: ct.Reference}
	}
	qf, okf := AssociatedSpec(from)
	qt, okt := AssociatedSpec(to)
	if okf && okt {
		if err := quantityspec.Check(qf, qt, quantityspec.Yes); err != nil {
			return &ConversionError{From: from, To: to, FromReference: cf.Reference, ToReference: ct.Reference, Cause: err}
		}
	}
	return nil
}

// ConversionFactor returns the magnitude a value in from is multiplied by to
// express it in to.
func ConversionFactor(from, to Unit) (magnitude.Magnitude, error) {
	if err := checkConvertible(from, to); err != nil {
		return magnitude.Magnitude{}, err
	}
	return Canonical(from).Magnitude.Div(Canonical(to).Magnitude), nil
}

// Decomposition splits the canonical magnitude of a unit for display.
type Decomposition struct {
	Reference Unit
	magnitude.Decomposition
}

// Decompose returns the reference unit of u with its magnitude split into a
// power of ten, a ratio and an irrational remainder.
func Decompose(u Unit) (Decomposition, error) {
	c := Canonical(u)
	d, err := magnitude.Decompose(c.Magnitude)
	if err != nil {
		return Decomposition{}, fmt.Errorf("decomposing unit %s: %w", u, err)
	}
	return Decomposition{Reference: c.Reference, Decomposition: d}, nil
}

// ConversionError reports units that do not convert. It names both units
// and their reference units, plus the quantity-spec mismatch if any.
type ConversionError struct {
	From, To                   Unit
	FromReference, ToReference Unit
	Cause                      error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot convert %s to %s: %v", e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("cannot convert %s to %s: reference units %s and %s differ",
		e.From, e.To, e.FromReference, e.ToReference)
}

func (e *ConversionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrNotConvertible, e.Cause}
	}
	return []error{ErrNotConvertible}
}
