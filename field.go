package secp256k1

import (
	"errors"
	"math/big"
)

// ErrNotInvertible is returned by fieldInvert when the input is zero or
// shares a factor with the modulus. It is the only error condition in this
// package; it indicates a precondition violation by the caller and is never
// retried.
var ErrNotInvertible = errors.New("non-invertible input")

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigEight = big.NewInt(8)
)

// fieldReduce returns a mod m normalized into [0, m). big.Int.Mod is
// Euclidean for positive moduli, so negative intermediates need no explicit
// correction step.
func fieldReduce(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// extendedGCD computes the greatest common divisor of a and b along with
// Bézout coefficients x and y satisfying a*x + b*y = gcd. Pure iterative
// form; a and b are not modified.
func extendedGCD(a, b *big.Int) (gcd, x, y *big.Int) {
	r0 := new(big.Int).Set(a)
	r1 := new(big.Int).Set(b)
	x0, x1 := big.NewInt(1), new(big.Int)
	y0, y1 := new(big.Int), big.NewInt(1)

	for r1.Sign() != 0 {
		q, r := new(big.Int).QuoRem(r0, r1, new(big.Int))
		r0, r1 = r1, r
		x0, x1 = x1, new(big.Int).Sub(x0, new(big.Int).Mul(q, x1))
		y0, y1 = y1, new(big.Int).Sub(y0, new(big.Int).Mul(q, y1))
	}
	return r0, x0, y0
}

// fieldInvert computes the modular multiplicative inverse of value mod m via
// the extended Euclidean algorithm. It fails with ErrNotInvertible when the
// reduced value is zero or when gcd(value, m) != 1; the latter cannot occur
// against this curve's prime field but is checked regardless.
func fieldInvert(value, m *big.Int) (*big.Int, error) {
	v := fieldReduce(value, m)
	if v.Sign() == 0 {
		return nil, ErrNotInvertible
	}
	gcd, x, _ := extendedGCD(v, m)
	if gcd.Cmp(bigOne) != 0 {
		return nil, ErrNotInvertible
	}
	return fieldReduce(x, m), nil
}
