package unit

import (
	"errors"
	"fmt"

	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
)

var errNilUnit = errors.New("unit is nil")

// Prefix scales a named unit and prepends its symbol, as k in km.
type Prefix struct {
	Symbol    string
	Magnitude magnitude.Magnitude
}

// Apply returns the prefixed unit, an alias of Magnitude*u that measures the
// same quantity spec as u.
func (p Prefix) Apply(u *Named) (*Named, error) {
	if u == nil {
		return nil, fmt.Errorf("prefix %s: %w", p.Symbol, errNilUnit)
	}
	opts := []Option{WithAlias(Scale(p.Magnitude, u))}
	if u.spec != nil {
		opts = append(opts, WithSpec(u.spec))
	}
	return NewNamed(p.Symbol+u.symbol, opts...)
}
