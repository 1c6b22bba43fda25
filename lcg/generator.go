package lcg

import "strconv"

// DefaultSeed is used by Default.
const DefaultSeed = 1

// Generator is an immutable linear congruential generator.
//
// Generator value is "current output". Next and Discard return new Generator,
// receiver is never changed. Two generators are equal (==) if they have same
// state and same parameters.
type Generator[P Params] struct {
	state  uint64
	params P
}

// MinStdRand is generator compatible with minstd_rand.
type MinStdRand = Generator[MinStd]

// MinStdRand0 is generator compatible with minstd_rand0.
type MinStdRand0 = Generator[MinStd0]

// Seed returns generator with parameters P seeded with seed.
// It is the same as SeedWith(P{}, seed, skipFirst), so it is meant for zero-sized parameters
// types like MinStd.
func Seed[P Params](seed uint64, skipFirst bool) Generator[P] {
	var p P
	return SeedWith(p, seed, skipFirst)
}

// SeedWith returns generator with parameters p seeded with seed.
//
// Seed is clamped into [1, M-1] first. If skipFirst is true, generator is advanced once,
// so seed itself is never returned as value (it matches minstd_rand).
// If skipFirst is false, value of generator is clamped seed. It is used to continue sequence
// from value observed elsewhere: SeedWith(p, v, false).Next() is the value after v.
//
// p should pass Check. Parameters with zero modulus make SeedWith, Next and Discard panic.
func SeedWith[P Params](p P, seed uint64, skipFirst bool) Generator[P] {
	g := Generator[P]{state: clamp(seed, p.Modulus()), params: p}
	if skipFirst {
		g = g.Next()
	}
	return g
}

// Default returns generator seeded with DefaultSeed.
func Default[P Params]() Generator[P] {
	return Seed[P](DefaultSeed, true)
}

func clamp(seed, m uint64) uint64 {
	switch {
	case seed < 1:
		return 1
	case seed > m-1:
		return m - 1
	}
	return seed
}

func (g Generator[P]) step() affine {
	m := g.params.Modulus()
	return affine{
		mul: g.params.Multiplier() % m,
		add: g.params.Increment() % m,
	}
}

// Next returns generator advanced by one step.
func (g Generator[P]) Next() Generator[P] {
	g.state = g.step().apply(g.state, g.params.Modulus())
	return g
}

// Discard returns generator advanced by n steps.
// Result is the same as calling Next n times, but it takes O(log n) time.
// Discard(0) returns copy of g.
func (g Generator[P]) Discard(n uint64) Generator[P] {
	if n == 0 {
		return g
	}
	m := g.params.Modulus()
	g.state = g.step().pow(n, m).apply(g.state, m)
	return g
}

// Value returns current value.
func (g Generator[P]) Value() uint64 {
	return g.state
}

// Uint64 is the same as Value.
func (g Generator[P]) Uint64() uint64 {
	return g.state
}

func (g Generator[P]) String() string {
	return strconv.FormatUint(g.state, 10)
}

// Min returns smallest value generator could produce. It is always 1.
func (g Generator[P]) Min() uint64 {
	return 1
}

// Max returns largest value generator could produce: modulus - 1.
func (g Generator[P]) Max() uint64 {
	return g.params.Modulus() - 1
}

func (g Generator[P]) Params() P          { return g.params }
func (g Generator[P]) Multiplier() uint64 { return g.params.Multiplier() }
func (g Generator[P]) Increment() uint64  { return g.params.Increment() }
func (g Generator[P]) Modulus() uint64    { return g.params.Modulus() }
