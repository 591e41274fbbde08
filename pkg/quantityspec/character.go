package quantityspec

import "fmt"

// Character is the tensor order of a quantity.
type Character int

const (
	Scalar Character = iota
	Vector
	Tensor
)

func (c Character) String() string {
	switch c {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	case Tensor:
		return "tensor"
	default:
		return fmt.Sprintf("Character(%d)", int(c))
	}
}

// ParseCharacter is the inverse of Character.String.
func ParseCharacter(s string) (Character, error) {
	for _, c := range []Character{Scalar, Vector, Tensor} {
		if c.String() == s {
			return c, nil
		}
	}
	return Scalar, fmt.Errorf("unsupported quantity character: %q", s)
}

// Convertibility classifies how one quantity spec converts to another.
// Values are ordered: No < Cast < Explicit < Yes.
type Convertibility int

const (
	No Convertibility = iota
	Cast
	Explicit
	Yes
)

func (c Convertibility) String() string {
	switch c {
	case No:
		return "no"
	case Cast:
		return "cast"
	case Explicit:
		return "explicit"
	case Yes:
		return "yes"
	default:
		return fmt.Sprintf("Convertibility(%d)", int(c))
	}
}

// ParseConvertibility is the inverse of Convertibility.String.
func ParseConvertibility(s string) (Convertibility, error) {
	for _, c := range []Convertibility{No, Cast, Explicit, Yes} {
		if c.String() == s {
			return c, nil
		}
	}
	return No, fmt.Errorf("unsupported convertibility: %q", s)
}
