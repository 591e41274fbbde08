package quantityspec

// Declaration errors, exposed to the external test package.
var (
	ErrEmptyName              = errEmptyName
	ErrNilParent              = errNilParent
	ErrNilEquation            = errNilEquation
	ErrDimensionMismatch      = errDimensionMismatch
	ErrEquationNotConvertible = errEquationNotConvertible
	ErrUnexpectedEquation     = errUnexpectedEquation
	ErrNamedEquation          = errNamedEquation
)
