package cli

import "github.com/joomcode/errorx"

var (
	// Errors - errorx namespace of command line tool.
	Errors = errorx.NewNamespace("cli")
	// ErrConfig - flags, environment or config file have wrong value.
	ErrConfig = Errors.NewType("config")
	// ErrMismatch - generator diverged from reference engine.
	ErrMismatch = Errors.NewType("mismatch")
)

var (
	// EKKey - configuration key with wrong value.
	EKKey = errorx.RegisterPrintableProperty("key")
	// EKOffset - offset where generator diverged.
	EKOffset = errorx.RegisterPrintableProperty("offset")
	// EKExpected - value of reference engine.
	EKExpected = errorx.RegisterPrintableProperty("expected")
	// EKActual - value of generator.
	EKActual = errorx.RegisterPrintableProperty("actual")
)
