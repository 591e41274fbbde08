package quantityspec

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCommonQuantitySpec is returned when no kind root of the operands
	// converts implicitly to the other.
	ErrNoCommonQuantitySpec = errors.New("no common quantity spec")
	// ErrNotConvertible is wrapped by every ConversionError.
	ErrNotConvertible = errors.New("quantity specs not convertible")

	errNoSpecs = errors.New("at least one quantity spec is required")
)

// CommonQuantitySpec returns the spec both operands can be represented as,
// folding pairwise from the left.
func CommonQuantitySpec(qs ...Spec) (Spec, error) {
	if len(qs) == 0 {
		return nil, errNoSpecs
	}
	acc := qs[0]
	for _, q := range qs[1:] {
		var err error
		if acc, err = commonQuantitySpec(acc, q); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func commonQuantitySpec(q1, q2 Spec) (Spec, error) {
	r1, r2 := KindTreeRoot(q1), KindTreeRoot(q2)
	if !ImplicitlyConvertible(r1, r2) && !ImplicitlyConvertible(r2, r1) {
		return nil, fmt.Errorf("%w: %s and %s", ErrNoCommonQuantitySpec, q1, q2)
	}

	_, derived1 := removeKind(q1).(Derived)
	_, derived2 := removeKind(q2).(Derived)
	_, named1 := removeKind(q1).(*Named)
	_, named2 := removeKind(q2).(*Named)

	switch {
	case Equal(q1, q2):
		return q1, nil
	case nestedKind(q1, q2):
		return removeKind(q1), nil
	case nestedKind(q2, q1):
		return removeKind(q2), nil
	case (isKindSpec(q1) && !isKindSpec(q2)) || (derived1 && named2 && ImplicitlyConvertible(q1, q2)):
		return q2, nil
	case (!isKindSpec(q1) && isKindSpec(q2)) || (named1 && derived2 && ImplicitlyConvertible(q2, q1)):
		return q1, nil
	}
	if base := CommonBase(q1, q2); base != nil {
		return base, nil
	}
	switch {
	case ImplicitlyConvertible(q1, q2):
		return q2, nil
	case ImplicitlyConvertible(q2, q1):
		return q1, nil
	case ImplicitlyConvertible(r1, r2):
		return r2, nil
	default:
		return r1, nil
	}
}

// ConversionError reports a conversion weaker than required. It names both
// specs and their dimensions so a missing kind or equation can be found.
type ConversionError struct {
	From, To Spec
	Got      Convertibility
	Want     Convertibility
}

func (e *ConversionError) Error() string {
	if !e.From.Dimension().Equal(e.To.Dimension()) {
		return fmt.Sprintf("%s [%s] cannot convert to %s [%s]: dimensions differ",
			e.From, e.From.Dimension(), e.To, e.To.Dimension())
	}
	return fmt.Sprintf("%s converts to %s as %q, %q required (dimension %s, kinds %s and %s)",
		e.From, e.To, e.Got, e.Want, e.From.Dimension(), GetKind(e.From), GetKind(e.To))
}

func (e *ConversionError) Unwrap() error { return ErrNotConvertible }

// Check returns a *ConversionError unless from converts to to at least as
// well as want.
func Check(from, to Spec, want Convertibility) error {
	if got := Convertible(from, to); got < want {
		return &ConversionError{From: from, To: to, Got: got, Want: want}
	}
	return nil
}
