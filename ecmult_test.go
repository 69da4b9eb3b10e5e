package secp256k1

import (
	"math/big"
	"sync"
	"testing"

	sha256simd "github.com/minio/sha256-simd"
)

// testScalar derives a reproducible pseudorandom scalar in [1, N-1] by
// hashing a domain tag and counter.
func testScalar(i byte) *big.Int {
	seed := sha256simd.Sum256([]byte{'e', 'c', 'm', 'u', 'l', 't', i})
	k := new(big.Int).SetBytes(seed[:])
	k.Mod(k, Params().N)
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	return k
}

func mustMulDoubleAndAdd(t *testing.T, p *AffinePoint, k *big.Int) *AffinePoint {
	t.Helper()
	r, err := p.MulDoubleAndAdd(k)
	if err != nil {
		t.Fatalf("MulDoubleAndAdd(%v) failed: %v", k, err)
	}
	return r
}

func mustMulConstantTime(t *testing.T, p *AffinePoint, k *big.Int) *AffinePoint {
	t.Helper()
	r, err := p.MulConstantTime(k)
	if err != nil {
		t.Fatalf("MulConstantTime(%v) failed: %v", k, err)
	}
	return r
}

func mustMulPrecomputed(t *testing.T, p *JacobianPoint, k *big.Int) *AffinePoint {
	t.Helper()
	r, err := p.MulPrecomputedConstantTime(k)
	if err != nil {
		t.Fatalf("MulPrecomputedConstantTime(%v) failed: %v", k, err)
	}
	return r
}

func TestStrategyConsistency(t *testing.T) {
	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(7),
		big.NewInt(0xFFFF),
		new(big.Int).Sub(Params().N, bigOne),
	}
	for i := byte(0); i < 8; i++ {
		scalars = append(scalars, testScalar(i))
	}

	g := Generator()
	gj := FromAffine(g)
	for _, k := range scalars {
		baseline := mustMulDoubleAndAdd(t, g, k)
		constTime := mustMulConstantTime(t, g, k)
		precomp := mustMulPrecomputed(t, gj, k)

		if !baseline.Equal(constTime) {
			t.Errorf("k=%v: constant-time affine disagrees with double-and-add", k)
		}
		if !baseline.Equal(precomp) {
			t.Errorf("k=%v: Jacobian precomputed disagrees with double-and-add", k)
		}
		if !baseline.IsOnCurve() {
			t.Errorf("k=%v: result is off the curve", k)
		}
	}
}

func TestMultiplyByOne(t *testing.T) {
	wantX, _ := new(big.Int).SetString("55066263022277343669578718895168534326250603453777594175500187360389116729240", 10)
	wantY, _ := new(big.Int).SetString("32670510020758816978083085130507043184471273380659243275938904335757337482424", 10)

	got, err := ComputePublicKey(big.NewInt(1))
	if err != nil {
		t.Fatalf("ComputePublicKey(1) failed: %v", err)
	}
	if got.X.Cmp(wantX) != 0 || got.Y.Cmp(wantY) != 0 {
		t.Errorf("1·G = (%v, %v), want the generator coordinates", got.X, got.Y)
	}
	if !got.Equal(Generator()) {
		t.Error("1·G should equal the generator")
	}
}

func TestMultiplyByOrder(t *testing.T) {
	n := Params().N
	g := Generator()

	if got := mustMulDoubleAndAdd(t, g, n); !got.IsInfinity() {
		t.Errorf("double-and-add: n·G = (%v, %v), want identity", got.X, got.Y)
	}
	if got := mustMulConstantTime(t, g, n); !got.IsInfinity() {
		t.Errorf("constant-time affine: n·G = (%v, %v), want identity", got.X, got.Y)
	}
	if got := mustMulPrecomputed(t, FromAffine(g), n); !got.IsInfinity() {
		t.Errorf("Jacobian precomputed: n·G = (%v, %v), want identity", got.X, got.Y)
	}

	got, err := ComputePublicKey(n)
	if err != nil {
		t.Fatalf("ComputePublicKey(n) failed: %v", err)
	}
	if !got.IsInfinity() {
		t.Error("ComputePublicKey(n) should return the identity point")
	}
}

func TestMultiplyByZero(t *testing.T) {
	g := Generator()
	zero := new(big.Int)

	if !mustMulDoubleAndAdd(t, g, zero).IsInfinity() {
		t.Error("0·G should be the identity")
	}
	if !mustMulConstantTime(t, g, zero).IsInfinity() {
		t.Error("0·G should be the identity (constant time)")
	}
	if !mustMulPrecomputed(t, FromAffine(g), zero).IsInfinity() {
		t.Error("0·G should be the identity (Jacobian)")
	}
}

func TestMultiplyOrderPlusOne(t *testing.T) {
	// (n+1)·G wraps around to G.
	k := new(big.Int).Add(Params().N, bigOne)
	if got := mustMulDoubleAndAdd(t, Generator(), k); !got.Equal(Generator()) {
		t.Error("(n+1)·G should equal G")
	}
}

func TestMultiplyNonGeneratorBase(t *testing.T) {
	// The strategies agree on arbitrary base points, not just G.
	base := twoG.clone()
	k := testScalar(42)

	baseline := mustMulDoubleAndAdd(t, base, k)
	constTime := mustMulConstantTime(t, base, k)
	precomp := mustMulPrecomputed(t, FromAffine(base), k)

	if !baseline.Equal(constTime) || !baseline.Equal(precomp) {
		t.Error("strategies disagree on a non-generator base point")
	}

	// k·(2G) = (2k mod n)·G.
	k2 := new(big.Int).Mul(k, bigTwo)
	k2.Mod(k2, Params().N)
	viaGen := mustMulDoubleAndAdd(t, Generator(), k2)
	if !baseline.Equal(viaGen) {
		t.Error("k·(2G) should equal (2k)·G")
	}
}

func TestAffineTableEntries(t *testing.T) {
	table, err := NewAffineTable(Generator())
	if err != nil {
		t.Fatalf("NewAffineTable failed: %v", err)
	}

	if !table.Entry(0).Equal(Generator()) {
		t.Error("entry 0 should be the base point")
	}
	if !table.Entry(1).Equal(twoG) {
		t.Error("entry 1 should be 2·base")
	}

	// Entry i is 2^i times the base.
	for _, i := range []int{5, 63, 255} {
		want := mustMulDoubleAndAdd(t, Generator(), new(big.Int).Lsh(bigOne, uint(i)))
		if !table.Entry(i).Equal(want) {
			t.Errorf("entry %d should be 2^%d·G", i, i)
		}
	}
}

func TestJacobianTableEntries(t *testing.T) {
	table := NewJacobianTable(FromAffine(Generator()))
	affTable, err := NewAffineTable(Generator())
	if err != nil {
		t.Fatalf("NewAffineTable failed: %v", err)
	}

	for _, i := range []int{0, 1, 17, 128, 255} {
		got, err := table.Entry(i).ToAffine()
		if err != nil {
			t.Fatalf("entry %d ToAffine failed: %v", i, err)
		}
		if !got.Equal(affTable.Entry(i)) {
			t.Errorf("Jacobian entry %d disagrees with affine table", i)
		}
	}
}

func TestGeneratorTablesSharedAcrossCalls(t *testing.T) {
	if generatorAffineTable() != generatorAffineTable() {
		t.Error("generator affine table should be built once and shared")
	}
	if generatorJacobianTable() != generatorJacobianTable() {
		t.Error("generator Jacobian table should be built once and shared")
	}
}

func TestConcurrentFirstUse(t *testing.T) {
	// Concurrent multiplications race the lazy table build; the sync.Once
	// guard must publish a single fully-built table to all of them.
	k := testScalar(9)
	want := mustMulDoubleAndAdd(t, Generator(), k)

	var wg sync.WaitGroup
	results := make([]*AffinePoint, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = ComputePublicKey(k)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: %v", i, errs[i])
		}
		if !r.Equal(want) {
			t.Errorf("goroutine %d produced a different point", i)
		}
	}
}

func TestMultiplicationDoesNotMutateInputs(t *testing.T) {
	g := Generator()
	k := testScalar(3)
	kCopy := new(big.Int).Set(k)

	mustMulDoubleAndAdd(t, g, k)
	mustMulConstantTime(t, g, k)
	mustMulPrecomputed(t, FromAffine(g), k)

	if k.Cmp(kCopy) != 0 {
		t.Error("scalar argument was mutated")
	}
	if !g.Equal(Generator()) {
		t.Error("receiver point was mutated")
	}
}
