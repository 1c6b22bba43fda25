package lcg

import "github.com/joomcode/errorx"

var (
	// Errors - errorx namespace of this package.
	Errors = errorx.NewNamespace("lcg")
	// ErrParams - generator parameters are not usable.
	ErrParams = Errors.NewType("params")
	// ErrModulus - modulus is too small.
	ErrModulus = ErrParams.NewSubtype("modulus")
	// ErrMultiplier - multiplier degenerates recurrence.
	ErrMultiplier = ErrParams.NewSubtype("multiplier")
)

var (
	// EKMultiplier - multiplier of rejected parameters.
	EKMultiplier = errorx.RegisterPrintableProperty("multiplier")
	// EKIncrement - increment of rejected parameters.
	EKIncrement = errorx.RegisterPrintableProperty("increment")
	// EKModulus - modulus of rejected parameters.
	EKModulus = errorx.RegisterPrintableProperty("modulus")
)
