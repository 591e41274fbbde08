package unit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
)

var errNoUnits = errors.New("at least one unit is required")

// Unresolved stands for the common unit of convertible operands when no
// finer unit expresses both of them exactly. Magnitude is the common
// magnitude of the operands over Reference.
type Unresolved struct {
	Operands  []Unit
	Reference Unit
	Magnitude magnitude.Magnitude
}

func (u Unresolved) isUnit() {}

func (u Unresolved) String() string {
	parts := make([]string, len(u.Operands))
	for i, op := range u.Operands {
		parts[i] = op.String()
	}
	return "common(" + strings.Join(parts, ", ") + ")"
}

// CommonUnit returns the unit values in every operand can be converted to
// without loss, folding pairwise from the left.
func CommonUnit(us ...Unit) (Unit, error) {
	if len(us) == 0 {
		return nil, errNoUnits
	}
	acc := us[0]
	for _, u := range us[1:] {
		var err error
		if acc, err = commonUnit(acc, u); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func commonUnit(u1, u2 Unit) (Unit, error) {
	if err := checkConvertible(u1, u2); err != nil {
		if err2 := checkConvertible(u2, u1); err2 != nil {
			return nil, fmt.Errorf("no common unit: %w", err)
		}
	}
	if Equal(u1, u2) {
		return u1, nil
	}
	c1, c2 := Canonical(u1), Canonical(u2)
	switch {
	case c1.Magnitude.Div(c2.Magnitude).IsIntegral():
		return u2, nil
	case c2.Magnitude.Div(c1.Magnitude).IsIntegral():
		return u1, nil
	}
	common := magnitude.Common(c1.Magnitude, c2.Magnitude)
	if c1.Magnitude.Div(common).IsIntegral() && c2.Magnitude.Div(common).IsIntegral() {
		return Scale(common, c1.Reference), nil
	}
	return Unresolved{
		Operands:  append(operands(u1), operands(u2)...),
		Reference: c1.Reference,
		Magnitude: common,
	}, nil
}

func operands(u Unit) []Unit {
	if t, ok := u.(Unresolved); ok {
		return t.Operands
	}
	return []Unit{u}
}
