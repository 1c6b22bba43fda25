package lcg

import "github.com/joomcode/errorx"

// Params are constants of recurrence `x' = (x*A + C) mod M`.
//
// Implementation should be comparable, should return same values every call, and
// should pass Check: generator divides by Modulus(), so zero modulus panics.
// Predefined parameters are zero-sized types, so generator carries only its state.
type Params interface {
	Multiplier() uint64
	Increment() uint64
	Modulus() uint64
}

const (
	// MinStdMultiplier - multiplier of minstd_rand.
	MinStdMultiplier = 48271
	// MinStd0Multiplier - multiplier of minstd_rand0 (original Park-Miller generator).
	MinStd0Multiplier = 16807
	// MinStdModulus - Mersenne prime 2^31-1 used by both minstd generators.
	MinStdModulus = 1<<31 - 1
)

// MinStd is the "minimal standard" parameterization: A = 48271, C = 0, M = 2^31-1.
type MinStd struct{}

func (MinStd) Multiplier() uint64 { return MinStdMultiplier }
func (MinStd) Increment() uint64  { return 0 }
func (MinStd) Modulus() uint64    { return MinStdModulus }

// MinStd0 is the older "minimal standard" parameterization: A = 16807, C = 0, M = 2^31-1.
type MinStd0 struct{}

func (MinStd0) Multiplier() uint64 { return MinStd0Multiplier }
func (MinStd0) Increment() uint64  { return 0 }
func (MinStd0) Modulus() uint64    { return MinStdModulus }

// Custom holds parameters chosen at runtime.
// Zero value is equal to MinStd.
type Custom struct {
	a, c, m uint64
}

// NewCustom checks parameters and returns Custom.
// Increment is reduced by modulus.
func NewCustom(a, c, m uint64) (Custom, error) {
	// checked on raw values: zero Custom falls back to MinStd modulus
	if err := check(a, c, m); err != nil {
		return Custom{}, err
	}
	return Custom{a: a, c: c % m, m: m}, nil
}

func (p Custom) Multiplier() uint64 {
	if p.m == 0 {
		return MinStdMultiplier
	}
	return p.a
}

func (p Custom) Increment() uint64 {
	return p.c
}

func (p Custom) Modulus() uint64 {
	if p.m == 0 {
		return MinStdModulus
	}
	return p.m
}

// Check validates parameters.
// Modulus should be at least 2, and multiplier should not be multiple of modulus
// (otherwise every output is the same).
//
// Note: Min() == 1 is guaranteed only when increment is zero and multiplier is coprime
// with modulus (it is so for prime modulus).
func Check(p Params) error {
	return check(p.Multiplier(), p.Increment(), p.Modulus())
}

func check(a, c, m uint64) error {
	var err *errorx.Error
	switch {
	case m < 2:
		err = ErrModulus.New("modulus should be at least 2")
	case a%m == 0:
		err = ErrMultiplier.New("multiplier is multiple of modulus")
	default:
		return nil
	}
	return err.
		WithProperty(EKMultiplier, a).
		WithProperty(EKIncrement, c).
		WithProperty(EKModulus, m)
}
