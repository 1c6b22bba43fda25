/*
Package statelessrnd - stateless linear congruential pseudo-random number generator.

Usual generators keep hidden state and change it on every call. Generator from this module
is a plain immutable value: "next" number is a new generator, old one is left untouched.
It makes generator trivially copyable, forkable into independent streams, and usable from
many goroutines without any locking.

Default parameterization gives exactly the same numbers as minstd_rand
(A = 48271, C = 0, M = 2^31-1).

Capabilities

- value semantic: Next and Discard return new generator,

- Discard(n) in O(log n) steps,

- seeding from any uint64: seed is clamped into [Min(), Max()],

- reseeding from value observed in other generator (skipFirst = false),

- custom parameters with moduli up to 2^64-1, products are computed in 128 bits,

- FillParallel for filling large buffers on several cores.

Limitations

- generator is NOT cryptographically secure,

- moduli larger than 64 bits are not supported.

Structure

- root package is empty

- generator is in lcg subpackage

- plain mutable reference engine is in lcgdumb subpackage

- command line tool is in bin/statelessrnd

Usage

	g := lcg.Seed[lcg.MinStd](42, true)
	fmt.Println(g.Value())          // 2027382
	fmt.Println(g.Next().Value())   // 1226992407
	fmt.Println(g.Discard(100))     // 544861123

	// continue sequence from value observed elsewhere
	h := lcg.Seed[lcg.MinStd](observed, false)
	fmt.Println(h.Next())

Parameters chosen at runtime are passed with lcg.NewCustom and lcg.SeedWith:

	p, err := lcg.NewCustom(1103515245, 12345, 1<<32)
	if err != nil {
		return err
	}
	g := lcg.SeedWith(p, 17, false)

Errors

Only parameter validation returns errors. They are *errorx.Error of type lcg.ErrParams
(or its subtypes), with properties lcg.EKMultiplier, lcg.EKIncrement and lcg.EKModulus.
*/
package statelessrnd
