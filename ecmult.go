package secp256k1

import (
	"math/big"
	"sync"
)

// scalarBits is the fixed scan width of the constant-time multiplication
// paths. Both always execute exactly this many additions, so the shape of
// the computation does not depend on the scalar.
const scalarBits = 256

// AffineTable holds the successive doublings of a base point in affine
// form: entry i is 2^i times the base. Built once per base point and
// immutable afterwards, so it is safe for unsynchronized concurrent reads.
type AffineTable struct {
	entries [scalarBits]*AffinePoint
}

// NewAffineTable builds the doubling table for base. The error path is only
// reachable for invalid points whose doubling has no tangent.
func NewAffineTable(base *AffinePoint) (*AffineTable, error) {
	t := &AffineTable{}
	cur := base.clone()
	for i := 0; i < scalarBits; i++ {
		t.entries[i] = cur
		next, err := cur.Double()
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return t, nil
}

// Entry returns 2^i times the table's base point.
func (t *AffineTable) Entry(i int) *AffinePoint {
	return t.entries[i]
}

// JacobianTable is the Jacobian counterpart of AffineTable: entry i is 2^i
// times the base point, kept in projective form so table construction and
// use involve no inversions.
type JacobianTable struct {
	entries [scalarBits]*JacobianPoint
}

// NewJacobianTable builds the doubling table for base.
func NewJacobianTable(base *JacobianPoint) *JacobianTable {
	t := &JacobianTable{}
	cur := base.clone()
	for i := 0; i < scalarBits; i++ {
		t.entries[i] = cur
		cur = cur.Double()
	}
	return t
}

// Entry returns 2^i times the table's base point.
func (t *JacobianTable) Entry(i int) *JacobianPoint {
	return t.entries[i]
}

// Process-wide tables for the generator, built once on first use. In
// practice the generator is the only base point multiplied repeatedly, so
// these amortize the 256 doublings across every subsequent call.
var (
	genAffineOnce    sync.Once
	genAffineTable   *AffineTable
	genJacobianOnce  sync.Once
	genJacobianTable *JacobianTable
)

func generatorAffineTable() *AffineTable {
	genAffineOnce.Do(func() {
		t, err := NewAffineTable(Generator())
		if err != nil {
			// The generator is a valid curve point; its doublings
			// cannot degenerate.
			panic("secp256k1: generator table: " + err.Error())
		}
		genAffineTable = t
	})
	return genAffineTable
}

func generatorJacobianTable() *JacobianTable {
	genJacobianOnce.Do(func() {
		genJacobianTable = NewJacobianTable(FromAffine(Generator()))
	})
	return genJacobianTable
}

func affineTableFor(p *AffinePoint) (*AffineTable, error) {
	if p.X.Cmp(theCurve.Gx) == 0 && p.Y.Cmp(theCurve.Gy) == 0 {
		return generatorAffineTable(), nil
	}
	return NewAffineTable(p)
}

func jacobianTableFor(p *JacobianPoint) *JacobianTable {
	if p.Z.Cmp(bigOne) == 0 && p.X.Cmp(theCurve.Gx) == 0 && p.Y.Cmp(theCurve.Gy) == 0 {
		return generatorJacobianTable()
	}
	return NewJacobianTable(p)
}

// MulDoubleAndAdd computes k·p by right-to-left binary double-and-add:
// scan the scalar's bits from least to most significant, accumulating the
// running doubled value on each set bit, and doubling it every iteration.
// The loop terminates when the remaining scalar reaches zero, so both the
// iteration count and the addition pattern leak the scalar's bit layout.
// Variable time; baseline path only, unsuitable for secret scalars.
func (p *AffinePoint) MulDoubleAndAdd(k *big.Int) (*AffinePoint, error) {
	result := AffineInfinity()
	addend := p.clone()
	for n := new(big.Int).Set(k); n.Sign() > 0; n.Rsh(n, 1) {
		if n.Bit(0) == 1 {
			r, err := result.Add(addend)
			if err != nil {
				return nil, err
			}
			result = r
		}
		next, err := addend.Double()
		if err != nil {
			return nil, err
		}
		addend = next
	}
	return result, nil
}

// scanConstantTime is the bit scan shared by both constant-time strategies,
// generic over the coordinate representation. Every one of the 256 bit
// positions performs exactly one addition: into the result accumulator when
// the bit is set, into a discarded accumulator otherwise, so the sequence of
// group operations does not depend on the scalar's value.
func scanConstantTime[E any](k *big.Int, identity func() E, entry func(int) E, add func(E, E) (E, error)) (E, error) {
	result := identity()
	discard := identity()
	for i := 0; i < scalarBits; i++ {
		var err error
		if k.Bit(i) == 1 {
			result, err = add(result, entry(i))
		} else {
			discard, err = add(discard, entry(i))
		}
		if err != nil {
			var zero E
			return zero, err
		}
	}
	return result, nil
}

// MulConstantTime computes k·p over the affine doubling table. Each
// addition still pays one field inversion; see MulPrecomputedConstantTime
// for the path that defers inversion to the end.
func (p *AffinePoint) MulConstantTime(k *big.Int) (*AffinePoint, error) {
	table, err := affineTableFor(p)
	if err != nil {
		return nil, err
	}
	return scanConstantTime(k, AffineInfinity, table.Entry, (*AffinePoint).Add)
}

// MulPrecomputedConstantTime computes k·p with the same bit-scanning shape
// as MulConstantTime, but accumulating in Jacobian coordinates over a
// Jacobian doubling table. The single field inversion happens in the final
// conversion to affine, making this the fastest of the three strategies.
func (p *JacobianPoint) MulPrecomputedConstantTime(k *big.Int) (*AffinePoint, error) {
	table := jacobianTableFor(p)
	acc, err := scanConstantTime(k, JacobianInfinity, table.Entry,
		func(a, b *JacobianPoint) (*JacobianPoint, error) { return a.Add(b), nil })
	if err != nil {
		return nil, err
	}
	return acc.ToAffine()
}
