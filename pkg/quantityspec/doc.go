// Package quantityspec implements quantity specifications and the engine that
// decides how one converts to another.
//
// A quantity spec is a named base quantity (length, time), a named derived
// quantity defined by an equation (speed = length/time), a child of a named
// quantity in a hierarchy (width is a length), a product of powers of those,
// or the kind of a hierarchy root (kind_of<length>).
//
// Convertibility:
//
// Convertible grades a conversion from one spec to another:
//
//	No        different dimensions, or different kinds with no equation linking them
//	Cast      a conversion across siblings of one hierarchy
//	Explicit  a narrowing conversion, from a parent to its child
//	Yes       an implicit conversion, from a child to its parent or between
//	          an equation and the quantity it defines
//
// The grades are ordered, so Convertible(a, b) >= Explicit reads as "a
// converts to b at least explicitly".
//
// Example usage:
//
//	length := quantityspec.Must(quantityspec.NewBase("length", quantityspec.BaseDimension("L")))
//	width := quantityspec.Must(quantityspec.NewChild("width", length))
//	height := quantityspec.Must(quantityspec.NewChild("height", length))
//
//	quantityspec.Convertible(width, length) // Yes
//	quantityspec.Convertible(length, width) // Explicit
//	quantityspec.Convertible(width, height) // Cast
//
//	area := quantityspec.Must(quantityspec.NewDerived("area", quantityspec.Pow(length, ratio.Int(2))))
//	quantityspec.Convertible(quantityspec.Mul(width, height), area) // Yes
//
// Characters:
//
// Every spec is a scalar, vector or tensor. A child inherits the character
// of its parent and a derived quantity the character of its equation, unless
// WithCharacter overrides it.
//
// The engine is pure: every function depends only on its arguments, so the
// results may be memoised by the caller keyed on the spec strings.
package quantityspec
