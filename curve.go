// Package secp256k1 implements scalar multiplication over the secp256k1
// elliptic curve using arbitrary-precision field arithmetic.
//
// The package provides two point representations (affine and Jacobian), the
// group law for each, and three scalar-multiplication strategies: a
// variable-time double-and-add baseline, a constant-time path over affine
// points, and a constant-time path over Jacobian points that defers the
// field inversion to a single conversion at the end. The only externally
// consumed operation is ComputePublicKey.
package secp256k1

import "math/big"

// CurveParams holds the secp256k1 domain parameters. The curve is
// y² = x³ + ax + b over the prime field of P, with generator (Gx, Gy) of
// prime order N and cofactor H. A is zero; the fast doubling and addition
// formulas in this package assume it and are invalid for any other
// coefficient.
type CurveParams struct {
	P  *big.Int // field prime, 2^256 - 2^32 - 977
	N  *big.Int // order of the subgroup generated by (Gx, Gy)
	A  *big.Int // curve coefficient a = 0
	B  *big.Int // curve coefficient b = 7
	Gx *big.Int // generator x coordinate
	Gy *big.Int // generator y coordinate
	H  *big.Int // cofactor, 1 for this curve

	// Beta is the cube root of unity used by the GLV endomorphism. No
	// multiplication path in this package consumes it; it is carried as
	// curve metadata only.
	Beta *big.Int
}

var theCurve = &CurveParams{
	P:    hexInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
	N:    hexInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
	A:    new(big.Int),
	B:    big.NewInt(7),
	Gx:   hexInt("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
	Gy:   hexInt("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
	H:    big.NewInt(1),
	Beta: hexInt("7AE96A2B657C07106E64479EAC3434E99CF0497512F58995C1396C28719501EE"),
}

// Params returns the secp256k1 domain parameters. The returned struct is
// shared; callers must not modify it.
func Params() *CurveParams {
	return theCurve
}

// Generator returns the canonical base point (Gx, Gy) in affine form.
func Generator() *AffinePoint {
	return &AffinePoint{
		X: new(big.Int).Set(theCurve.Gx),
		Y: new(big.Int).Set(theCurve.Gy),
	}
}

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid curve constant " + s)
	}
	return v
}
