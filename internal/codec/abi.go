// Package codec produces the canonical byte strings the remote contract
// reconstructs and verifies for valset, batch, and logic-call confirmations
// (spec §4.2), and the Ethereum signed-message digest derived from them.
//
// The contract does not hash gravity_id and the method name as ABI
// `string` values (which would be encoded by reference, with their
// content appended after the static head); it hashes them in place as
// fixed bytes32 words, exactly as Solidity's `bytes32("checkpoint")`
// literal conversion does. Everything else — dynamic address[]/uint256[]
// arrays, a dynamic `bytes` payload, and the fixed-width scalars — follows
// standard Solidity ABI encoding, which is why this package builds its
// token lists with go-ethereum's accounts/abi package rather than hand
// packing words.
package codec

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	typeBytes32  abi.Type
	typeAddress  abi.Type
	typeUint256  abi.Type
	typeAddressS abi.Type // address[]
	typeUint256S abi.Type // uint256[]
	typeBytes    abi.Type // dynamic bytes
)

func init() {
	var err error
	if typeBytes32, err = abi.NewType("bytes32", "", nil); err != nil {
		panic(err)
	}
	if typeAddress, err = abi.NewType("address", "", nil); err != nil {
		panic(err)
	}
	if typeUint256, err = abi.NewType("uint256", "", nil); err != nil {
		panic(err)
	}
	if typeAddressS, err = abi.NewType("address[]", "", nil); err != nil {
		panic(err)
	}
	if typeUint256S, err = abi.NewType("uint256[]", "", nil); err != nil {
		panic(err)
	}
	if typeBytes, err = abi.NewType("bytes", "", nil); err != nil {
		panic(err)
	}
}

// fixedString right-pads s with zero bytes into a 32-byte word, matching
// Solidity's `bytes32("...")` literal conversion (content left-justified).
func fixedString(s string) ([32]byte, error) {
	var out [32]byte
	if len(s) > 32 {
		return out, fmt.Errorf("string %q exceeds 32 bytes", s)
	}
	copy(out[:], s)
	return out, nil
}

// pack ABI-encodes args positionally against the given types, in order.
func pack(types []abi.Type, names []string, args ...interface{}) ([]byte, error) {
	arguments := make(abi.Arguments, len(types))
	for i, t := range types {
		arguments[i] = abi.Argument{Name: names[i], Type: t}
	}
	return arguments.Pack(args...)
}

// ethSignedMessageDigest returns keccak256("\x19Ethereum Signed
// Message:\n32" || keccak256(canonical)), the digest that is actually
// signed (spec §4.2).
func ethSignedMessageDigest(canonical []byte) common.Hash {
	inner := crypto.Keccak256(canonical)
	prefixed := append([]byte("\x19Ethereum Signed Message:\n32"), inner...)
	return crypto.Keccak256Hash(prefixed)
}
