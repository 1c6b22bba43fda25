/*
Package lcgdumb implements plain mutable linear congruential engine.

It follows std::linear_congruential_engine: seed is taken modulo M (zero seed turns into 1
when increment is zero), and every call to Next advances engine and returns new state.

Engine computes with math/big, so it doesn't share arithmetic with package lcg.
It is used as reference in tests and in command line tool. It is not safe for concurrent use.
*/
package lcgdumb

import "math/big"

const (
	minStdModulus = 1<<31 - 1
)

type Engine struct {
	a, c, m *big.Int
	x       *big.Int
	tmp     big.Int
}

// New returns engine with recurrence `x' = (x*a + c) mod m`.
// m should not be zero.
func New(a, c, m, seed uint64) *Engine {
	e := &Engine{
		a: new(big.Int).SetUint64(a),
		c: new(big.Int).SetUint64(c),
		m: new(big.Int).SetUint64(m),
		x: new(big.Int),
	}
	e.Seed(seed)
	return e
}

// NewMinStd returns engine with minstd_rand parameters.
func NewMinStd(seed uint64) *Engine {
	return New(48271, 0, minStdModulus, seed)
}

// NewMinStd0 returns engine with minstd_rand0 parameters.
func NewMinStd0(seed uint64) *Engine {
	return New(16807, 0, minStdModulus, seed)
}

// Seed resets engine state.
func (e *Engine) Seed(seed uint64) {
	e.x.SetUint64(seed)
	e.x.Mod(e.x, e.m)
	if e.x.Sign() == 0 && e.incrementIsZero() {
		e.x.SetInt64(1)
	}
}

func (e *Engine) incrementIsZero() bool {
	return e.tmp.Mod(e.c, e.m).Sign() == 0
}

// Next advances engine and returns new state.
func (e *Engine) Next() uint64 {
	e.x.Mul(e.x, e.a)
	e.x.Add(e.x, e.c)
	e.x.Mod(e.x, e.m)
	return e.x.Uint64()
}

// Discard advances engine n times.
func (e *Engine) Discard(n uint64) {
	for ; n > 0; n-- {
		e.Next()
	}
}

// State returns current state without advancing.
func (e *Engine) State() uint64 {
	return e.x.Uint64()
}

func (e *Engine) Min() uint64 {
	if e.incrementIsZero() {
		return 1
	}
	return 0
}

func (e *Engine) Max() uint64 {
	return e.m.Uint64() - 1
}
