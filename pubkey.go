package secp256k1

import "math/big"

// ComputePublicKey returns privateScalar times the generator in affine
// coordinates, using the Jacobian constant-time path over the shared
// generator table. The scalar is conventionally expected to lie in
// [1, N-1]; range validation is the caller's responsibility and is not
// performed here. A scalar of zero or a multiple of N yields the identity
// sentinel (0, 0).
func ComputePublicKey(privateScalar *big.Int) (*AffinePoint, error) {
	return FromAffine(Generator()).MulPrecomputedConstantTime(privateScalar)
}
