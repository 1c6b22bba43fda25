package lcg

import "math/bits"

// All arguments are expected to be already reduced by m.

// mulmod returns a*b mod m. Product is kept in 128 bits.
func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// addmod returns a+b mod m.
func addmod(a, b, m uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= m {
		s -= m
	}
	return s
}

// affine is the map x -> mul*x + add (mod m).
type affine struct {
	mul, add uint64
}

func (f affine) apply(x, m uint64) uint64 {
	return addmod(mulmod(x, f.mul, m), f.add, m)
}

// then returns map which applies f and then g.
func (f affine) then(g affine, m uint64) affine {
	return affine{
		mul: mulmod(f.mul, g.mul, m),
		add: g.apply(f.add, m),
	}
}

// pow returns f applied n times. It is done with squaring, so it takes O(log n) steps.
func (f affine) pow(n, m uint64) affine {
	acc := affine{mul: 1 % m, add: 0}
	for n != 0 {
		if n&1 != 0 {
			acc = acc.then(f, m)
		}
		f = f.then(f, m)
		n >>= 1
	}
	return acc
}
