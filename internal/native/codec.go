package native

import (
	gogoproto "github.com/cosmos/gogoproto/proto"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// moduleName is the bridge module's proto package, used both as the type
// URL prefix for sdk.Msg values packed into Any and as the gRPC query
// service's path prefix (see client.go).
const moduleName = "gravity.v1"

func init() {
	gogoproto.RegisterType(&MsgSetOrchestratorAddress{}, moduleName+".MsgSetOrchestratorAddress")
	gogoproto.RegisterType(&MsgValsetConfirm{}, moduleName+".MsgValsetConfirm")
	gogoproto.RegisterType(&MsgConfirmBatch{}, moduleName+".MsgConfirmBatch")
	gogoproto.RegisterType(&MsgConfirmLogicCall{}, moduleName+".MsgConfirmLogicCall")
	gogoproto.RegisterType(&MsgSendToCosmosClaim{}, moduleName+".MsgSendToCosmosClaim")
	gogoproto.RegisterType(&MsgBatchSendToEthClaim{}, moduleName+".MsgBatchSendToEthClaim")
	gogoproto.RegisterType(&MsgErc20DeployedClaim{}, moduleName+".MsgErc20DeployedClaim")
	gogoproto.RegisterType(&MsgLogicCallExecutedClaim{}, moduleName+".MsgLogicCallExecutedClaim")
	gogoproto.RegisterType(&MsgValsetUpdatedClaim{}, moduleName+".MsgValsetUpdatedClaim")
	gogoproto.RegisterType(&MsgSendToEth{}, moduleName+".MsgSendToEth")
	gogoproto.RegisterType(&MsgRequestBatch{}, moduleName+".MsgRequestBatch")
}

// RegisterInterfaces registers every message type this client submits as an
// implementation of sdk.Msg, the step tx.Factory.BuildUnsignedTx needs to
// pack one into an Any, mirroring y/oracle/types/codec.go's
// RegisterInterfaces (minus msgservice.RegisterMsgServiceDesc, which needs
// a generated grpc.ServiceDesc this module does not have).
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSetOrchestratorAddress{},
		&MsgValsetConfirm{},
		&MsgConfirmBatch{},
		&MsgConfirmLogicCall{},
		&MsgSendToCosmosClaim{},
		&MsgBatchSendToEthClaim{},
		&MsgErc20DeployedClaim{},
		&MsgLogicCallExecutedClaim{},
		&MsgValsetUpdatedClaim{},
		&MsgSendToEth{},
		&MsgRequestBatch{},
	)
}
