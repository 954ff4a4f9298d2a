package price

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestConstantProductOut_MatchesReferenceFormula(t *testing.T) {
	t.Parallel()

	amountIn := uint256.NewInt(1_000)
	reserveIn := uint256.NewInt(1_000_000)
	reserveOut := uint256.NewInt(2_000_000)

	got := constantProductOut(amountIn, reserveIn, reserveOut)

	// amountInWithFee = 1000*997 = 997000
	// numerator = 997000*2000000 = 1994000000000
	// denominator = 1000000*1000 + 997000 = 1000997000
	// out = 1994000000000 / 1000997000 = 1992 (integer division)
	want := uint256.NewInt(1992)
	if got.Cmp(want) != 0 {
		t.Fatalf("constantProductOut = %s, want %s", got, want)
	}
}

func TestConstantProductOut_ZeroDenominatorReturnsZero(t *testing.T) {
	t.Parallel()

	got := constantProductOut(new(uint256.Int), new(uint256.Int), new(uint256.Int))
	if !got.IsZero() {
		t.Fatalf("expected zero output, got %s", got)
	}
}

func TestConstantProductOut_LargerReserveOutYieldsMoreOutput(t *testing.T) {
	t.Parallel()

	amountIn := uint256.NewInt(500)
	reserveIn := uint256.NewInt(10_000)

	small := constantProductOut(amountIn, reserveIn, uint256.NewInt(10_000))
	large := constantProductOut(amountIn, reserveIn, uint256.NewInt(20_000))

	if large.Cmp(small) <= 0 {
		t.Fatalf("expected larger reserveOut to yield more output: small=%s large=%s", small, large)
	}
}
