// Package native is the typed wrapper over the native chain's gRPC surface
// (spec §2 "Native Client", §6.2): the bridge module's query service and
// the eleven message types the Oracle, Signer and Relayer Loops submit.
//
// The module's queries and messages are not code-generated here: this repo
// has no protoc toolchain available to it, and the bridge module's own
// .proto/.pb.go sources aren't part of the retrieved reference material
// (only the teacher's *_test.go-adjacent hand-written business logic for
// its own oracle module was, e.g. y/oracle/types/msgs.go). These types are
// hand-written in the same shape protoc would generate — trivial
// gogoproto.Message methods plus `protobuf:` struct tags so the SDK's
// reflection-based marshaler can encode them without a custom Marshal —
// and registered with gogoproto's global type registry the same way
// generated code does in its init(). See codec.go.
package native

import (
	fmt "fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgSetOrchestratorAddress registers the operator's chosen orchestrator
// key as the one authorized to submit claims/confirms on behalf of the
// validator address (spec §6.2), the one-time startup registration step.
type MsgSetOrchestratorAddress struct {
	Validator    string `protobuf:"bytes,1,opt,name=validator,proto3" json:"validator,omitempty"`
	Orchestrator string `protobuf:"bytes,2,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	EthAddress   string `protobuf:"bytes,3,opt,name=eth_address,json=ethAddress,proto3" json:"eth_address,omitempty"`
}

func (m *MsgSetOrchestratorAddress) Reset()         { *m = MsgSetOrchestratorAddress{} }
func (m *MsgSetOrchestratorAddress) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSetOrchestratorAddress) ProtoMessage()    {}

func (m *MsgSetOrchestratorAddress) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Validator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgSetOrchestratorAddress) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Validator); err != nil {
		return errorsmod.Wrapf(errortypes.ErrInvalidAddress, "validator: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Orchestrator); err != nil {
		return errorsmod.Wrapf(errortypes.ErrInvalidAddress, "orchestrator: %v", err)
	}
	if m.EthAddress == "" {
		return errorsmod.Wrap(errortypes.ErrInvalidRequest, "eth_address is required")
	}
	return nil
}

// MsgValsetConfirm carries one signer's confirmation of a ValidatorSet.
type MsgValsetConfirm struct {
	Nonce        uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Orchestrator string `protobuf:"bytes,2,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	EthAddress   string `protobuf:"bytes,3,opt,name=eth_address,json=ethAddress,proto3" json:"eth_address,omitempty"`
	Signature    string `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *MsgValsetConfirm) Reset()         { *m = MsgValsetConfirm{} }
func (m *MsgValsetConfirm) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgValsetConfirm) ProtoMessage()    {}

func (m *MsgValsetConfirm) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Orchestrator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgValsetConfirm) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Orchestrator); err != nil {
		return errorsmod.Wrapf(errortypes.ErrInvalidAddress, "orchestrator: %v", err)
	}
	if m.Signature == "" {
		return errorsmod.Wrap(errortypes.ErrInvalidRequest, "signature is required")
	}
	return nil
}

// MsgConfirmBatch carries one signer's confirmation of a TransactionBatch.
type MsgConfirmBatch struct {
	Nonce         uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	TokenContract string `protobuf:"bytes,2,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Orchestrator  string `protobuf:"bytes,3,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	EthSigner     string `protobuf:"bytes,4,opt,name=eth_signer,json=ethSigner,proto3" json:"eth_signer,omitempty"`
	Signature     string `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *MsgConfirmBatch) Reset()         { *m = MsgConfirmBatch{} }
func (m *MsgConfirmBatch) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgConfirmBatch) ProtoMessage()    {}

func (m *MsgConfirmBatch) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Orchestrator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgConfirmBatch) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Orchestrator); err != nil {
		return errorsmod.Wrapf(errortypes.ErrInvalidAddress, "orchestrator: %v", err)
	}
	if m.Signature == "" {
		return errorsmod.Wrap(errortypes.ErrInvalidRequest, "signature is required")
	}
	return nil
}

// MsgConfirmLogicCall carries one signer's confirmation of a LogicCall.
type MsgConfirmLogicCall struct {
	InvalidationId    string `protobuf:"bytes,1,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	Orchestrator      string `protobuf:"bytes,3,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	EthSigner         string `protobuf:"bytes,4,opt,name=eth_signer,json=ethSigner,proto3" json:"eth_signer,omitempty"`
	Signature         string `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *MsgConfirmLogicCall) Reset()         { *m = MsgConfirmLogicCall{} }
func (m *MsgConfirmLogicCall) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgConfirmLogicCall) ProtoMessage()    {}

func (m *MsgConfirmLogicCall) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Orchestrator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgConfirmLogicCall) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Orchestrator); err != nil {
		return errorsmod.Wrapf(errortypes.ErrInvalidAddress, "orchestrator: %v", err)
	}
	if m.Signature == "" {
		return errorsmod.Wrap(errortypes.ErrInvalidRequest, "signature is required")
	}
	return nil
}

// claim is the shared envelope every ethereum-event claim message embeds,
// spec §6.2: "{event_nonce, block_height, payload-specific fields,
// orchestrator_address}".
type claim struct {
	EventNonce   uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight  uint64 `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	Orchestrator string `protobuf:"bytes,3,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (c claim) validateBasic() error {
	if c.EventNonce == 0 {
		return errorsmod.Wrap(errortypes.ErrInvalidRequest, "event_nonce must be nonzero")
	}
	if _, err := sdk.AccAddressFromBech32(c.Orchestrator); err != nil {
		return errorsmod.Wrapf(errortypes.ErrInvalidAddress, "orchestrator: %v", err)
	}
	return nil
}

func (c claim) getSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(c.Orchestrator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

// MsgSendToCosmosClaim reports an observed SendToCosmosEvent.
type MsgSendToCosmosClaim struct {
	claim
	TokenContract string `protobuf:"bytes,4,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Amount        string `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount,omitempty"`
	EthSender     string `protobuf:"bytes,6,opt,name=eth_sender,json=ethSender,proto3" json:"eth_sender,omitempty"`
	CosmosReceiver string `protobuf:"bytes,7,opt,name=cosmos_receiver,json=cosmosReceiver,proto3" json:"cosmos_receiver,omitempty"`
}

func (m *MsgSendToCosmosClaim) Reset()             { *m = MsgSendToCosmosClaim{} }
func (m *MsgSendToCosmosClaim) String() string     { return fmt.Sprintf("%+v", *m) }
func (*MsgSendToCosmosClaim) ProtoMessage()         {}
func (m *MsgSendToCosmosClaim) GetSigners() []sdk.AccAddress { return m.claim.getSigners() }
func (m *MsgSendToCosmosClaim) ValidateBasic() error          { return m.claim.validateBasic() }

// MsgBatchSendToEthClaim reports an observed TransactionBatchExecutedEvent.
type MsgBatchSendToEthClaim struct {
	claim
	BatchNonce    uint64 `protobuf:"varint,4,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
	TokenContract string `protobuf:"bytes,5,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
}

func (m *MsgBatchSendToEthClaim) Reset()             { *m = MsgBatchSendToEthClaim{} }
func (m *MsgBatchSendToEthClaim) String() string     { return fmt.Sprintf("%+v", *m) }
func (*MsgBatchSendToEthClaim) ProtoMessage()         {}
func (m *MsgBatchSendToEthClaim) GetSigners() []sdk.AccAddress { return m.claim.getSigners() }
func (m *MsgBatchSendToEthClaim) ValidateBasic() error          { return m.claim.validateBasic() }

// MsgErc20DeployedClaim reports an observed ERC20DeployedEvent.
type MsgErc20DeployedClaim struct {
	claim
	CosmosDenom   string `protobuf:"bytes,4,opt,name=cosmos_denom,json=cosmosDenom,proto3" json:"cosmos_denom,omitempty"`
	TokenContract string `protobuf:"bytes,5,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Name          string `protobuf:"bytes,6,opt,name=name,proto3" json:"name,omitempty"`
	Symbol        string `protobuf:"bytes,7,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Decimals      uint64 `protobuf:"varint,8,opt,name=decimals,proto3" json:"decimals,omitempty"`
}

func (m *MsgErc20DeployedClaim) Reset()             { *m = MsgErc20DeployedClaim{} }
func (m *MsgErc20DeployedClaim) String() string     { return fmt.Sprintf("%+v", *m) }
func (*MsgErc20DeployedClaim) ProtoMessage()         {}
func (m *MsgErc20DeployedClaim) GetSigners() []sdk.AccAddress { return m.claim.getSigners() }
func (m *MsgErc20DeployedClaim) ValidateBasic() error          { return m.claim.validateBasic() }

// MsgLogicCallExecutedClaim reports an observed LogicCallEvent.
type MsgLogicCallExecutedClaim struct {
	claim
	InvalidationId    string `protobuf:"bytes,4,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,5,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
}

func (m *MsgLogicCallExecutedClaim) Reset()             { *m = MsgLogicCallExecutedClaim{} }
func (m *MsgLogicCallExecutedClaim) String() string     { return fmt.Sprintf("%+v", *m) }
func (*MsgLogicCallExecutedClaim) ProtoMessage()         {}
func (m *MsgLogicCallExecutedClaim) GetSigners() []sdk.AccAddress { return m.claim.getSigners() }
func (m *MsgLogicCallExecutedClaim) ValidateBasic() error          { return m.claim.validateBasic() }

// MsgValsetUpdatedClaim reports an observed ValsetUpdatedEvent.
type MsgValsetUpdatedClaim struct {
	claim
	ValsetNonce  uint64   `protobuf:"varint,4,opt,name=valset_nonce,json=valsetNonce,proto3" json:"valset_nonce,omitempty"`
	Members      []string `protobuf:"bytes,5,rep,name=members,proto3" json:"members,omitempty"`
	RewardAmount string   `protobuf:"bytes,6,opt,name=reward_amount,json=rewardAmount,proto3" json:"reward_amount,omitempty"`
	RewardToken  string   `protobuf:"bytes,7,opt,name=reward_token,json=rewardToken,proto3" json:"reward_token,omitempty"`
}

func (m *MsgValsetUpdatedClaim) Reset()             { *m = MsgValsetUpdatedClaim{} }
func (m *MsgValsetUpdatedClaim) String() string     { return fmt.Sprintf("%+v", *m) }
func (*MsgValsetUpdatedClaim) ProtoMessage()         {}
func (m *MsgValsetUpdatedClaim) GetSigners() []sdk.AccAddress { return m.claim.getSigners() }
func (m *MsgValsetUpdatedClaim) ValidateBasic() error          { return m.claim.validateBasic() }

// MsgSendToEth is a native-chain user's request to move erc20_amount to an
// address on the remote chain, queued into the next outgoing batch.
type MsgSendToEth struct {
	Sender    string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	EthDest   string `protobuf:"bytes,2,opt,name=eth_dest,json=ethDest,proto3" json:"eth_dest,omitempty"`
	Amount    string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	BridgeFee string `protobuf:"bytes,4,opt,name=bridge_fee,json=bridgeFee,proto3" json:"bridge_fee,omitempty"`
}

func (m *MsgSendToEth) Reset()         { *m = MsgSendToEth{} }
func (m *MsgSendToEth) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSendToEth) ProtoMessage()    {}

func (m *MsgSendToEth) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgSendToEth) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errorsmod.Wrapf(errortypes.ErrInvalidAddress, "sender: %v", err)
	}
	if m.Amount == "" {
		return errorsmod.Wrap(errortypes.ErrInvalidRequest, "amount is required")
	}
	return nil
}

// MsgRequestBatch asks the native module to cut a new TransactionBatch for
// denom, so the Relayer Loop has something to submit.
type MsgRequestBatch struct {
	Denom    string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Orchestrator string `protobuf:"bytes,2,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgRequestBatch) Reset()         { *m = MsgRequestBatch{} }
func (m *MsgRequestBatch) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRequestBatch) ProtoMessage()    {}

func (m *MsgRequestBatch) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Orchestrator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgRequestBatch) ValidateBasic() error {
	if m.Denom == "" {
		return errorsmod.Wrap(errortypes.ErrInvalidRequest, "denom is required")
	}
	if _, err := sdk.AccAddressFromBech32(m.Orchestrator); err != nil {
		return errorsmod.Wrapf(errortypes.ErrInvalidAddress, "orchestrator: %v", err)
	}
	return nil
}
