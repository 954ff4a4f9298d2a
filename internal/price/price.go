// Package price quotes a reward token's value in a canonical reference
// token (spec §4.7's "WETH") via an on-chain constant-product pool, the
// way the Relayer Loop decides whether a relay market's reward exceeds its
// estimated gas cost (spec §4.7 steps, original_source
// relayer/src/find_latest_valset.rs and test_runner/src/relay_market.rs for
// the decision shape). There is no direct teacher analogue — the teacher's
// oracle/provider package is an off-chain HTTP price-feed registry, not an
// on-chain DEX quote, so only its pluggable-interface shape is reused here.
package price

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/gravity-bridge/orchestrator/internal/orcerr"
)

// pairABI is the minimal Uniswap-V2-style pair interface a constant-product
// pool exposes: ordered reserves plus which token is token0, needed to
// orient amountIn/amountOut against the right side of the formula.
const pairABI = `[
	{"constant":true,"inputs":[],"name":"getReserves","outputs":[{"name":"reserve0","type":"uint112"},{"name":"reserve1","type":"uint112"},{"name":"blockTimestampLast","type":"uint32"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"token0","outputs":[{"name":"","type":"address"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"token1","outputs":[{"name":"","type":"address"}],"type":"function"}
]`

var parsedPairABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(pairABI))
	if err != nil {
		panic("price: malformed pair ABI: " + err.Error())
	}
	parsedPairABI = parsed
}

// Quoter converts an amount of one token into its constant-product-implied
// value in a reference token, reading live reserves from an on-chain pool.
type Quoter struct {
	caller bind.ContractCaller
}

// NewQuoter wraps a contract caller (the remote client's *ethclient.Client
// satisfies bind.ContractCaller directly, so the relayer passes it through
// without adapting anything).
func NewQuoter(caller bind.ContractCaller) *Quoter {
	return &Quoter{caller: caller}
}

// Quote returns how much of the reference token amountIn of tokenIn buys
// in pool, applying the standard 0.3% constant-product swap fee:
//
//	amountOut = amountIn*997*reserveOut / (reserveIn*1000 + amountIn*997)
//
// pool must be a two-sided pool where one side is tokenIn; which side is
// determined by reading token0/token1, since reserve ordering is otherwise
// ambiguous.
func (q *Quoter) Quote(ctx context.Context, pool, tokenIn common.Address, amountIn *uint256.Int) (*uint256.Int, error) {
	token0, err := q.callAddress(ctx, pool, "token0")
	if err != nil {
		return nil, err
	}

	reserve0, reserve1, err := q.callReserves(ctx, pool)
	if err != nil {
		return nil, err
	}

	reserveIn, reserveOut := reserve1, reserve0
	if token0 == tokenIn {
		reserveIn, reserveOut = reserve0, reserve1
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, orcerr.New(orcerr.KindTransient, "price pool has zero reserves")
	}

	return constantProductOut(amountIn, reserveIn, reserveOut), nil
}

// constantProductOut applies the Uniswap-V2 swap formula in uint256
// arithmetic, matching original_source test_runner/src/relay_market.rs's
// reference calculation.
func constantProductOut(amountIn, reserveIn, reserveOut *uint256.Int) *uint256.Int {
	amountInWithFee := new(uint256.Int).Mul(amountIn, uint256.NewInt(997))
	numerator := new(uint256.Int).Mul(amountInWithFee, reserveOut)
	denominator := new(uint256.Int).Add(new(uint256.Int).Mul(reserveIn, uint256.NewInt(1000)), amountInWithFee)
	if denominator.IsZero() {
		return new(uint256.Int)
	}
	return new(uint256.Int).Div(numerator, denominator)
}

func (q *Quoter) callAddress(ctx context.Context, pool common.Address, method string) (common.Address, error) {
	data, err := parsedPairABI.Pack(method)
	if err != nil {
		return common.Address{}, orcerr.Wrap(orcerr.KindDecoding, "pack "+method, err)
	}
	result, err := q.caller.CallContract(ctx, ethereum.CallMsg{To: &pool, Data: data}, nil)
	if err != nil {
		return common.Address{}, orcerr.Wrap(orcerr.KindTransient, "call "+method, err)
	}
	values, err := parsedPairABI.Unpack(method, result)
	if err != nil {
		return common.Address{}, orcerr.Wrap(orcerr.KindDecoding, "unpack "+method, err)
	}
	return values[0].(common.Address), nil
}

func (q *Quoter) callReserves(ctx context.Context, pool common.Address) (reserve0, reserve1 *uint256.Int, err error) {
	data, packErr := parsedPairABI.Pack("getReserves")
	if packErr != nil {
		return nil, nil, orcerr.Wrap(orcerr.KindDecoding, "pack getReserves", packErr)
	}
	result, callErr := q.caller.CallContract(ctx, ethereum.CallMsg{To: &pool, Data: data}, nil)
	if callErr != nil {
		return nil, nil, orcerr.Wrap(orcerr.KindTransient, "call getReserves", callErr)
	}
	values, unpackErr := parsedPairABI.Unpack("getReserves", result)
	if unpackErr != nil {
		return nil, nil, orcerr.Wrap(orcerr.KindDecoding, "unpack getReserves", unpackErr)
	}

	r0, ok0 := uint256.FromBig(values[0].(*big.Int))
	r1, ok1 := uint256.FromBig(values[1].(*big.Int))
	if ok0 || ok1 {
		return nil, nil, orcerr.New(orcerr.KindDecoding, "pool reserves overflow uint256")
	}
	return r0, r1, nil
}
