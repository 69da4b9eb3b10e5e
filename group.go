package secp256k1

import "math/big"

// AffinePoint is a point on the curve in affine coordinates (x, y). The
// sentinel (0, 0) represents the point at infinity (the group identity).
// Since the identity test is literally "x = 0 or y = 0", callers must never
// construct a non-identity point with a zero coordinate; such a point would
// be misidentified as infinity. No point with x = 0 or y = 0 exists on
// secp256k1, so the hazard is representational only.
//
// Points are immutable once constructed; every operation returns a new
// instance.
type AffinePoint struct {
	X, Y *big.Int
}

// JacobianPoint is a point in Jacobian projective coordinates (x, y, z),
// corresponding to the affine point (x/z², y/z³) whenever z != 0. The
// sentinel (0, 1, 0) represents the point at infinity. Jacobian form avoids
// field inversions in the group law, which is why the performance-critical
// multiplication path accumulates in it.
type JacobianPoint struct {
	X, Y, Z *big.Int
}

// NewAffinePoint constructs an affine point from raw coordinates, reducing
// both modulo the field prime.
func NewAffinePoint(x, y *big.Int) *AffinePoint {
	return &AffinePoint{
		X: fieldReduce(x, theCurve.P),
		Y: fieldReduce(y, theCurve.P),
	}
}

// AffineInfinity returns the affine identity sentinel (0, 0).
func AffineInfinity() *AffinePoint {
	return &AffinePoint{X: new(big.Int), Y: new(big.Int)}
}

// JacobianInfinity returns the Jacobian identity sentinel (0, 1, 0).
func JacobianInfinity() *JacobianPoint {
	return &JacobianPoint{X: new(big.Int), Y: big.NewInt(1), Z: new(big.Int)}
}

// FromAffine lifts an affine point to Jacobian coordinates with z = 1. The
// affine identity lifts to the Jacobian identity sentinel.
func FromAffine(p *AffinePoint) *JacobianPoint {
	if p.IsInfinity() {
		return JacobianInfinity()
	}
	return &JacobianPoint{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
		Z: big.NewInt(1),
	}
}

func (p *AffinePoint) clone() *AffinePoint {
	return &AffinePoint{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
}

// IsInfinity reports whether p is the identity sentinel.
func (p *AffinePoint) IsInfinity() bool {
	return p.X.Sign() == 0 || p.Y.Sign() == 0
}

// Equal reports whether p and other are the same point.
func (p *AffinePoint) Equal(other *AffinePoint) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() && other.IsInfinity()
	}
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

// Negate returns (x, -y mod P), the additive inverse of p. The identity
// negates to itself.
func (p *AffinePoint) Negate() *AffinePoint {
	if p.IsInfinity() {
		return AffineInfinity()
	}
	return &AffinePoint{
		X: new(big.Int).Set(p.X),
		Y: fieldReduce(new(big.Int).Neg(p.Y), theCurve.P),
	}
}

// IsOnCurve reports whether p satisfies y² = x³ + 7 mod P. The identity
// sentinel is not on the curve.
func (p *AffinePoint) IsOnCurve() bool {
	if p.IsInfinity() {
		return false
	}
	y2 := fieldReduce(new(big.Int).Mul(p.Y, p.Y), theCurve.P)
	x3 := new(big.Int).Mul(p.X, p.X)
	x3.Mul(x3, p.X)
	x3.Add(x3, theCurve.B)
	return y2.Cmp(fieldReduce(x3, theCurve.P)) == 0
}

// Double returns 2p using the short-Weierstrass tangent formula with a = 0:
// λ = 3x²·(2y)⁻¹, x' = λ² - 2x, y' = λ(x - x') - y. Doubling a point with
// y = 0 has no tangent; the inversion fails with ErrNotInvertible, which
// cannot arise on this cofactor-1 curve for valid points.
func (p *AffinePoint) Double() (*AffinePoint, error) {
	P := theCurve.P
	twoYInv, err := fieldInvert(new(big.Int).Mul(bigTwo, p.Y), P)
	if err != nil {
		return nil, err
	}
	lam := new(big.Int).Mul(p.X, p.X)
	lam.Mul(lam, bigThree)
	lam.Mul(lam, twoYInv)
	lam = fieldReduce(lam, P)

	x3 := new(big.Int).Mul(lam, lam)
	x3.Sub(x3, new(big.Int).Mul(bigTwo, p.X))
	x3 = fieldReduce(x3, P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, lam)
	y3.Sub(y3, p.Y)
	return &AffinePoint{X: x3, Y: fieldReduce(y3, P)}, nil
}

// Add returns p + other under the group law. Degeneracies are handled in
// order: either operand being the identity, the operands being equal
// (delegates to Double), and the operands being inverses of one another
// (returns the identity).
func (p *AffinePoint) Add(other *AffinePoint) (*AffinePoint, error) {
	if p.IsInfinity() {
		return other.clone(), nil
	}
	if other.IsInfinity() {
		return p.clone(), nil
	}
	P := theCurve.P
	if p.X.Cmp(other.X) == 0 {
		if p.Y.Cmp(other.Y) == 0 {
			return p.Double()
		}
		// same x, opposite y
		return AffineInfinity(), nil
	}

	dxInv, err := fieldInvert(new(big.Int).Sub(other.X, p.X), P)
	if err != nil {
		return nil, err
	}
	lam := new(big.Int).Sub(other.Y, p.Y)
	lam.Mul(lam, dxInv)
	lam = fieldReduce(lam, P)

	x3 := new(big.Int).Mul(lam, lam)
	x3.Sub(x3, p.X)
	x3.Sub(x3, other.X)
	x3 = fieldReduce(x3, P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, lam)
	y3.Sub(y3, p.Y)
	return &AffinePoint{X: x3, Y: fieldReduce(y3, P)}, nil
}

func (p *JacobianPoint) clone() *JacobianPoint {
	return &JacobianPoint{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
		Z: new(big.Int).Set(p.Z),
	}
}

// IsInfinity reports whether p is the identity (z = 0).
func (p *JacobianPoint) IsInfinity() bool {
	return p.Z.Sign() == 0
}

// Equal reports whether p and other represent the same affine point,
// compared projectively (x1·z2² = x2·z1², y1·z2³ = y2·z1³) so that no
// inversion is needed.
func (p *JacobianPoint) Equal(other *JacobianPoint) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() && other.IsInfinity()
	}
	P := theCurve.P
	z1z1 := fieldReduce(new(big.Int).Mul(p.Z, p.Z), P)
	z2z2 := fieldReduce(new(big.Int).Mul(other.Z, other.Z), P)
	u1 := fieldReduce(new(big.Int).Mul(p.X, z2z2), P)
	u2 := fieldReduce(new(big.Int).Mul(other.X, z1z1), P)
	if u1.Cmp(u2) != 0 {
		return false
	}
	s1 := fieldReduce(new(big.Int).Mul(new(big.Int).Mul(p.Y, other.Z), z2z2), P)
	s2 := fieldReduce(new(big.Int).Mul(new(big.Int).Mul(other.Y, p.Z), z1z1), P)
	return s1.Cmp(s2) == 0
}

// Negate returns (x, -y mod P, z), the additive inverse of p.
func (p *JacobianPoint) Negate() *JacobianPoint {
	if p.IsInfinity() {
		return JacobianInfinity()
	}
	return &JacobianPoint{
		X: new(big.Int).Set(p.X),
		Y: fieldReduce(new(big.Int).Neg(p.Y), theCurve.P),
		Z: new(big.Int).Set(p.Z),
	}
}

// ToAffine converts p back to affine coordinates with a single field
// inversion of z. The identity converts to the affine identity sentinel
// without inverting.
func (p *JacobianPoint) ToAffine() (*AffinePoint, error) {
	if p.IsInfinity() {
		return AffineInfinity(), nil
	}
	zInv, err := fieldInvert(p.Z, theCurve.P)
	if err != nil {
		return nil, err
	}
	return p.ToAffineWithInv(zInv), nil
}

// ToAffineWithInv converts p to affine coordinates using a caller-supplied
// z⁻¹, letting callers batch the inversion cost: x = x·z⁻², y = y·z⁻³.
func (p *JacobianPoint) ToAffineWithInv(zInv *big.Int) *AffinePoint {
	P := theCurve.P
	zInv2 := fieldReduce(new(big.Int).Mul(zInv, zInv), P)
	x := fieldReduce(new(big.Int).Mul(p.X, zInv2), P)
	y := fieldReduce(new(big.Int).Mul(new(big.Int).Mul(p.Y, zInv2), zInv), P)
	return &AffinePoint{X: x, Y: y}
}

// Double returns 2p using the a = 0 fast doubling formula (dbl-2009-l,
// 2 multiplications + 5 squarings), with no field inversion:
//
//	A = x², B = y², C = B², D = 2((x+B)² - A - C), E = 3A, F = E²
//	x' = F - 2D, y' = E(D - x') - 8C, z' = 2yz
func (p *JacobianPoint) Double() *JacobianPoint {
	if p.IsInfinity() {
		return JacobianInfinity()
	}
	P := theCurve.P
	a := fieldReduce(new(big.Int).Mul(p.X, p.X), P)
	b := fieldReduce(new(big.Int).Mul(p.Y, p.Y), P)
	c := fieldReduce(new(big.Int).Mul(b, b), P)

	d := new(big.Int).Add(p.X, b)
	d.Mul(d, d)
	d.Sub(d, a)
	d.Sub(d, c)
	d.Mul(d, bigTwo)
	d = fieldReduce(d, P)

	e := fieldReduce(new(big.Int).Mul(bigThree, a), P)
	f := fieldReduce(new(big.Int).Mul(e, e), P)

	x3 := new(big.Int).Sub(f, new(big.Int).Mul(bigTwo, d))
	x3 = fieldReduce(x3, P)

	y3 := new(big.Int).Sub(d, x3)
	y3.Mul(y3, e)
	y3.Sub(y3, new(big.Int).Mul(bigEight, c))
	y3 = fieldReduce(y3, P)

	z3 := new(big.Int).Mul(p.Y, p.Z)
	z3.Mul(z3, bigTwo)
	z3 = fieldReduce(z3, P)
	if z3.Sign() == 0 {
		return JacobianInfinity()
	}
	return &JacobianPoint{X: x3, Y: y3, Z: z3}
}

// Add returns p + other using the add-1998-cmo-2 formula
// (12 multiplications + 4 squarings), avoiding inversions entirely.
// Degeneracies mirror the affine law: identity operands short-circuit,
// equal points delegate to Double, and inverse points (U1 = U2, S1 != S2)
// yield the identity.
func (p *JacobianPoint) Add(other *JacobianPoint) *JacobianPoint {
	if p.IsInfinity() {
		return other.clone()
	}
	if other.IsInfinity() {
		return p.clone()
	}
	P := theCurve.P
	z1z1 := fieldReduce(new(big.Int).Mul(p.Z, p.Z), P)
	z2z2 := fieldReduce(new(big.Int).Mul(other.Z, other.Z), P)
	u1 := fieldReduce(new(big.Int).Mul(p.X, z2z2), P)
	u2 := fieldReduce(new(big.Int).Mul(other.X, z1z1), P)
	s1 := fieldReduce(new(big.Int).Mul(new(big.Int).Mul(p.Y, other.Z), z2z2), P)
	s2 := fieldReduce(new(big.Int).Mul(new(big.Int).Mul(other.Y, p.Z), z1z1), P)

	h := fieldReduce(new(big.Int).Sub(u2, u1), P)
	r := fieldReduce(new(big.Int).Sub(s2, s1), P)
	if h.Sign() == 0 {
		if r.Sign() == 0 {
			return p.Double()
		}
		return JacobianInfinity()
	}

	hh := fieldReduce(new(big.Int).Mul(h, h), P)
	hhh := fieldReduce(new(big.Int).Mul(h, hh), P)
	v := fieldReduce(new(big.Int).Mul(u1, hh), P)

	x3 := new(big.Int).Mul(r, r)
	x3.Sub(x3, hhh)
	x3.Sub(x3, new(big.Int).Mul(bigTwo, v))
	x3 = fieldReduce(x3, P)

	y3 := new(big.Int).Sub(v, x3)
	y3.Mul(y3, r)
	y3.Sub(y3, new(big.Int).Mul(s1, hhh))
	y3 = fieldReduce(y3, P)

	z3 := new(big.Int).Mul(p.Z, other.Z)
	z3.Mul(z3, h)
	z3 = fieldReduce(z3, P)
	return &JacobianPoint{X: x3, Y: y3, Z: z3}
}
