// Package unit implements the unit algebra: named units, prefixes, scaled
// and derived units, and the canonical form they all reduce to.
//
// Every unit canonicalizes to a reference unit scaled by a magnitude. Two
// units are Equal when both match, and Convertible when their reference
// units match and their quantity specs convert implicitly:
//
//	m := unit.Must(unit.NewNamed("m", unit.WithSpec(quantityspec.KindOf(length))))
//	s := unit.Must(unit.NewNamed("s", unit.WithSpec(quantityspec.KindOf(time))))
//	km := unit.Must(unit.Prefix{Symbol: "k", Magnitude: magnitude.Of(1000)}.Apply(m))
//	h := unit.Must(unit.NewNamed("h", unit.WithAlias(unit.Scale(magnitude.Of(3600), s))))
//
//	f, err := unit.ConversionFactor(unit.Div(km, h), unit.Div(m, s))
//	if err != nil {
//	    return err
//	}
//	// f is 5/18
//
// Hz and Bq are Equal, both being 1/s, but not Convertible: they measure
// frequency and activity.
//
// Common Units:
//
// CommonUnit returns the largest unit every operand converts to by a whole
// factor. Operands that differ by an irrational factor, such as deg and rad,
// have no such unit; the result is then Unresolved and lists the operands.
package unit
