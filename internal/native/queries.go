package native

import "fmt"

// The query request/response pairs below cover the surface spec §6.2 lists:
// params, current valset, valset by nonce, last-5 valsets, pending-unsigned
// valsets/batches/logic-calls for an address, confirms, latest
// batches/logic calls, last event nonce, and delegate-key lookups.

type QueryParamsRequest struct{}
type QueryParamsResponse struct {
	GravityId      string `protobuf:"bytes,1,opt,name=gravity_id,json=gravityId,proto3"`
	ContractSource string `protobuf:"bytes,2,opt,name=contract_source_hash,json=contractSourceHash,proto3"`
}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return "QueryParamsRequest" }
func (*QueryParamsRequest) ProtoMessage()    {}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryParamsResponse) ProtoMessage()    {}

type QueryCurrentValsetRequest struct{}
type QueryValsetRequest struct {
	Nonce uint64 `protobuf:"varint,1,opt,name=nonce,proto3"`
}
type QueryLastValsetsRequest struct{}

// ValsetResponse is the wire shape of one ValidatorSet, decoded into
// package types' ValidatorSet by the caller.
type ValsetResponse struct {
	Nonce        uint64   `protobuf:"varint,1,opt,name=nonce,proto3"`
	Members      []string `protobuf:"bytes,2,rep,name=members,proto3"`       // "ethAddr:power" pairs
	RewardAmount string   `protobuf:"bytes,3,opt,name=reward_amount,json=rewardAmount,proto3"`
	RewardToken  string   `protobuf:"bytes,4,opt,name=reward_token,json=rewardToken,proto3"`
}

type QueryValsetResponse struct {
	Valset *ValsetResponse `protobuf:"bytes,1,opt,name=valset,proto3"`
}
type QueryLastValsetsResponse struct {
	Valsets []*ValsetResponse `protobuf:"bytes,1,rep,name=valsets,proto3"`
}

func (m *QueryCurrentValsetRequest) Reset()         { *m = QueryCurrentValsetRequest{} }
func (m *QueryCurrentValsetRequest) String() string { return "QueryCurrentValsetRequest" }
func (*QueryCurrentValsetRequest) ProtoMessage()    {}

func (m *QueryValsetRequest) Reset()         { *m = QueryValsetRequest{} }
func (m *QueryValsetRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryValsetRequest) ProtoMessage()    {}

func (m *QueryLastValsetsRequest) Reset()         { *m = QueryLastValsetsRequest{} }
func (m *QueryLastValsetsRequest) String() string { return "QueryLastValsetsRequest" }
func (*QueryLastValsetsRequest) ProtoMessage()    {}

func (m *QueryValsetResponse) Reset()         { *m = QueryValsetResponse{} }
func (m *QueryValsetResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryValsetResponse) ProtoMessage()    {}

func (m *QueryLastValsetsResponse) Reset()         { *m = QueryLastValsetsResponse{} }
func (m *QueryLastValsetsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryLastValsetsResponse) ProtoMessage()    {}

// QueryPendingValsetConfirmsRequest finds valsets still missing address's
// confirmation, the Signer Loop's "unsigned valsets" source (spec §4.6).
type QueryPendingValsetConfirmsRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3"`
}
type QueryPendingValsetConfirmsResponse struct {
	Valsets []*ValsetResponse `protobuf:"bytes,1,rep,name=valsets,proto3"`
}

func (m *QueryPendingValsetConfirmsRequest) Reset()         { *m = QueryPendingValsetConfirmsRequest{} }
func (m *QueryPendingValsetConfirmsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryPendingValsetConfirmsRequest) ProtoMessage()    {}

func (m *QueryPendingValsetConfirmsResponse) Reset()         { *m = QueryPendingValsetConfirmsResponse{} }
func (m *QueryPendingValsetConfirmsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryPendingValsetConfirmsResponse) ProtoMessage()    {}

// ValsetConfirmResponse/BatchConfirmResponse/LogicCallConfirmResponse are
// the wire shapes package sigs' Confirmation implementations are decoded
// from.
type ValsetConfirmResponse struct {
	Nonce     uint64 `protobuf:"varint,1,opt,name=nonce,proto3"`
	Validator string `protobuf:"bytes,2,opt,name=validator,proto3"`
	EthSigner string `protobuf:"bytes,3,opt,name=eth_signer,json=ethSigner,proto3"`
	Signature string `protobuf:"bytes,4,opt,name=signature,proto3"`
}

type QueryValsetConfirmsByNonceRequest struct {
	Nonce uint64 `protobuf:"varint,1,opt,name=nonce,proto3"`
}
type QueryValsetConfirmsByNonceResponse struct {
	Confirms []*ValsetConfirmResponse `protobuf:"bytes,1,rep,name=confirms,proto3"`
}

func (m *QueryValsetConfirmsByNonceRequest) Reset()         { *m = QueryValsetConfirmsByNonceRequest{} }
func (m *QueryValsetConfirmsByNonceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryValsetConfirmsByNonceRequest) ProtoMessage()    {}
func (m *QueryValsetConfirmsByNonceResponse) Reset()         { *m = QueryValsetConfirmsByNonceResponse{} }
func (m *QueryValsetConfirmsByNonceResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryValsetConfirmsByNonceResponse) ProtoMessage()    {}

// QueryPendingBatchesRequest finds the outgoing batches for the given
// token still missing address's confirmation.
type QueryPendingBatchesRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3"`
}
type BatchResponse struct {
	Nonce         uint64   `protobuf:"varint,1,opt,name=nonce,proto3"`
	TokenContract string   `protobuf:"bytes,2,opt,name=token_contract,json=tokenContract,proto3"`
	BatchTimeout  uint64   `protobuf:"varint,3,opt,name=batch_timeout,json=batchTimeout,proto3"`
	Transactions  []string `protobuf:"bytes,4,rep,name=transactions,proto3"` // opaque encoded leg, decoded by caller
	TotalFee      string   `protobuf:"bytes,5,opt,name=total_fee,json=totalFee,proto3"`
}
type QueryPendingBatchesResponse struct {
	Batches []*BatchResponse `protobuf:"bytes,1,rep,name=batches,proto3"`
}
type QueryLatestBatchesRequest struct{}
type QueryLatestBatchesResponse struct {
	Batches []*BatchResponse `protobuf:"bytes,1,rep,name=batches,proto3"`
}
type QueryBatchConfirmsRequest struct {
	Nonce         uint64 `protobuf:"varint,1,opt,name=nonce,proto3"`
	TokenContract string `protobuf:"bytes,2,opt,name=token_contract,json=tokenContract,proto3"`
}
type BatchConfirmResponse struct {
	Nonce         uint64 `protobuf:"varint,1,opt,name=nonce,proto3"`
	TokenContract string `protobuf:"bytes,2,opt,name=token_contract,json=tokenContract,proto3"`
	Validator     string `protobuf:"bytes,3,opt,name=validator,proto3"`
	EthSigner     string `protobuf:"bytes,4,opt,name=eth_signer,json=ethSigner,proto3"`
	Signature     string `protobuf:"bytes,5,opt,name=signature,proto3"`
}
type QueryBatchConfirmsResponse struct {
	Confirms []*BatchConfirmResponse `protobuf:"bytes,1,rep,name=confirms,proto3"`
}

func (m *QueryPendingBatchesRequest) Reset()         { *m = QueryPendingBatchesRequest{} }
func (m *QueryPendingBatchesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryPendingBatchesRequest) ProtoMessage()    {}
func (m *QueryPendingBatchesResponse) Reset()         { *m = QueryPendingBatchesResponse{} }
func (m *QueryPendingBatchesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryPendingBatchesResponse) ProtoMessage()    {}
func (m *QueryLatestBatchesRequest) Reset()         { *m = QueryLatestBatchesRequest{} }
func (m *QueryLatestBatchesRequest) String() string { return "QueryLatestBatchesRequest" }
func (*QueryLatestBatchesRequest) ProtoMessage()    {}
func (m *QueryLatestBatchesResponse) Reset()         { *m = QueryLatestBatchesResponse{} }
func (m *QueryLatestBatchesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryLatestBatchesResponse) ProtoMessage()    {}
func (m *QueryBatchConfirmsRequest) Reset()         { *m = QueryBatchConfirmsRequest{} }
func (m *QueryBatchConfirmsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryBatchConfirmsRequest) ProtoMessage()    {}
func (m *QueryBatchConfirmsResponse) Reset()         { *m = QueryBatchConfirmsResponse{} }
func (m *QueryBatchConfirmsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryBatchConfirmsResponse) ProtoMessage()    {}

// QueryPendingLogicCallsRequest / QueryLogicCallConfirmsRequest mirror the
// batch queries above, scoped by invalidation id instead of token contract.
type QueryPendingLogicCallsRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3"`
}
type LogicCallResponse struct {
	InvalidationId    string   `protobuf:"bytes,1,opt,name=invalidation_id,json=invalidationId,proto3"`
	InvalidationNonce uint64   `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3"`
	Timeout           uint64   `protobuf:"varint,3,opt,name=timeout,proto3"`
	Transfers         []string `protobuf:"bytes,4,rep,name=transfers,proto3"`
	Fees              []string `protobuf:"bytes,5,rep,name=fees,proto3"`
	LogicContract     string   `protobuf:"bytes,6,opt,name=logic_contract,json=logicContract,proto3"`
	Payload           []byte   `protobuf:"bytes,7,opt,name=payload,proto3"`
}
type QueryPendingLogicCallsResponse struct {
	Calls []*LogicCallResponse `protobuf:"bytes,1,rep,name=calls,proto3"`
}

// QueryLatestLogicCallsRequest is the relayer's general logic-call relay
// source (spec §6.2 "latest logic calls"), unscoped by address — unlike
// QueryPendingLogicCallsRequest, which only finds calls this orchestrator
// has not yet confirmed.
type QueryLatestLogicCallsRequest struct{}
type QueryLatestLogicCallsResponse struct {
	Calls []*LogicCallResponse `protobuf:"bytes,1,rep,name=calls,proto3"`
}

func (m *QueryLatestLogicCallsRequest) Reset()         { *m = QueryLatestLogicCallsRequest{} }
func (m *QueryLatestLogicCallsRequest) String() string { return "QueryLatestLogicCallsRequest" }
func (*QueryLatestLogicCallsRequest) ProtoMessage()    {}
func (m *QueryLatestLogicCallsResponse) Reset()         { *m = QueryLatestLogicCallsResponse{} }
func (m *QueryLatestLogicCallsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryLatestLogicCallsResponse) ProtoMessage()    {}

type QueryLogicCallConfirmsRequest struct {
	InvalidationId string `protobuf:"bytes,1,opt,name=invalidation_id,json=invalidationId,proto3"`
}
type LogicCallConfirmResponse struct {
	InvalidationId string `protobuf:"bytes,1,opt,name=invalidation_id,json=invalidationId,proto3"`
	Validator      string `protobuf:"bytes,2,opt,name=validator,proto3"`
	EthSigner      string `protobuf:"bytes,3,opt,name=eth_signer,json=ethSigner,proto3"`
	Signature      string `protobuf:"bytes,4,opt,name=signature,proto3"`
}
type QueryLogicCallConfirmsResponse struct {
	Confirms []*LogicCallConfirmResponse `protobuf:"bytes,1,rep,name=confirms,proto3"`
}

func (m *QueryPendingLogicCallsRequest) Reset()         { *m = QueryPendingLogicCallsRequest{} }
func (m *QueryPendingLogicCallsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryPendingLogicCallsRequest) ProtoMessage()    {}
func (m *QueryPendingLogicCallsResponse) Reset()         { *m = QueryPendingLogicCallsResponse{} }
func (m *QueryPendingLogicCallsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryPendingLogicCallsResponse) ProtoMessage()    {}
func (m *QueryLogicCallConfirmsRequest) Reset()         { *m = QueryLogicCallConfirmsRequest{} }
func (m *QueryLogicCallConfirmsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryLogicCallConfirmsRequest) ProtoMessage()    {}
func (m *QueryLogicCallConfirmsResponse) Reset()         { *m = QueryLogicCallConfirmsResponse{} }
func (m *QueryLogicCallConfirmsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryLogicCallConfirmsResponse) ProtoMessage()    {}

// QueryLastEventNonceByAddrRequest backs the Oracle Loop's and Oracle
// Resync's starting point (spec §4.4 step 1, §4.5 nonce filter).
type QueryLastEventNonceByAddrRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3"`
}
type QueryLastEventNonceByAddrResponse struct {
	EventNonce uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3"`
}

func (m *QueryLastEventNonceByAddrRequest) Reset()         { *m = QueryLastEventNonceByAddrRequest{} }
func (m *QueryLastEventNonceByAddrRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryLastEventNonceByAddrRequest) ProtoMessage()    {}
func (m *QueryLastEventNonceByAddrResponse) Reset()         { *m = QueryLastEventNonceByAddrResponse{} }
func (m *QueryLastEventNonceByAddrResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryLastEventNonceByAddrResponse) ProtoMessage()    {}

// QueryDelegateKeysByValidatorRequest / …ByOrchestrator / …ByEthRequest
// resolve between a validator's three identities (spec §6.2 "delegate-key
// lookups"): native validator address, orchestrator address, remote
// signing address.
type QueryDelegateKeysByValidatorRequest struct {
	ValidatorAddress string `protobuf:"bytes,1,opt,name=validator_address,json=validatorAddress,proto3"`
}
type QueryDelegateKeysByOrchestratorRequest struct {
	OrchestratorAddress string `protobuf:"bytes,1,opt,name=orchestrator_address,json=orchestratorAddress,proto3"`
}
type QueryDelegateKeysByEthRequest struct {
	EthAddress string `protobuf:"bytes,1,opt,name=eth_address,json=ethAddress,proto3"`
}
type QueryDelegateKeysResponse struct {
	ValidatorAddress    string `protobuf:"bytes,1,opt,name=validator_address,json=validatorAddress,proto3"`
	OrchestratorAddress string `protobuf:"bytes,2,opt,name=orchestrator_address,json=orchestratorAddress,proto3"`
	EthAddress          string `protobuf:"bytes,3,opt,name=eth_address,json=ethAddress,proto3"`
}

func (m *QueryDelegateKeysByValidatorRequest) Reset()         { *m = QueryDelegateKeysByValidatorRequest{} }
func (m *QueryDelegateKeysByValidatorRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDelegateKeysByValidatorRequest) ProtoMessage()    {}
func (m *QueryDelegateKeysByOrchestratorRequest) Reset() {
	*m = QueryDelegateKeysByOrchestratorRequest{}
}
func (m *QueryDelegateKeysByOrchestratorRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDelegateKeysByOrchestratorRequest) ProtoMessage()    {}
func (m *QueryDelegateKeysByEthRequest) Reset()         { *m = QueryDelegateKeysByEthRequest{} }
func (m *QueryDelegateKeysByEthRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDelegateKeysByEthRequest) ProtoMessage()    {}
func (m *QueryDelegateKeysResponse) Reset()         { *m = QueryDelegateKeysResponse{} }
func (m *QueryDelegateKeysResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDelegateKeysResponse) ProtoMessage()    {}
