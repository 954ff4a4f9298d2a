package types

import "github.com/ethereum/go-ethereum/common"

// EthSignature is a (v, r, s) ECDSA signature produced over an Ethereum
// signed-message digest (see package codec).
type EthSignature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// Confirmation is the polymorphic interface shared by ValsetConfirmation,
// BatchConfirmation and LogicCallConfirmation. The signature engine is
// generic over this interface; it never needs to know which concrete kind
// of artifact is being signed.
type Confirmation interface {
	RemoteSignerAddress() common.Address
	Signature() EthSignature
}

// ValsetConfirmation is one signer's confirmation of a ValidatorSet's
// canonical hash.
type ValsetConfirmation struct {
	ValsetNonce uint64
	Signer      common.Address
	Sig         EthSignature
}

func (c ValsetConfirmation) RemoteSignerAddress() common.Address { return c.Signer }
func (c ValsetConfirmation) Signature() EthSignature              { return c.Sig }

// BatchConfirmation is one signer's confirmation of a TransactionBatch's
// canonical hash, scoped to a token contract.
type BatchConfirmation struct {
	BatchNonce    uint64
	TokenContract common.Address
	Signer        common.Address
	Sig           EthSignature
}

func (c BatchConfirmation) RemoteSignerAddress() common.Address { return c.Signer }
func (c BatchConfirmation) Signature() EthSignature              { return c.Sig }

// LogicCallConfirmation is one signer's confirmation of a LogicCall's
// canonical hash, scoped to an invalidation ID.
type LogicCallConfirmation struct {
	InvalidationID    [32]byte
	InvalidationNonce uint64
	Signer            common.Address
	Sig               EthSignature
}

func (c LogicCallConfirmation) RemoteSignerAddress() common.Address { return c.Signer }
func (c LogicCallConfirmation) Signature() EthSignature              { return c.Sig }
