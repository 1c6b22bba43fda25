/*
Package lcg implements stateless linear congruential generator.

Generator is an immutable value: Next and Discard return new generator instead of changing
receiver. Therefore generator could be copied, stored in package level variable, passed to
many goroutines, and used without any synchronization.

For default parameters (MinStd) sequence is bit-exact equal to minstd_rand:

	g := lcg.Seed[lcg.MinStd](42, true)
	first := g.Value()          // same as first output of minstd_rand seeded with 42
	later := g.Discard(100)     // 101st output, g is unchanged

Seed is clamped into [Min(), Max()] before use, so every uint64 is a valid seed.

Generator is not cryptographically secure.
*/
package lcg
