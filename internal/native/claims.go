package native

// The five claim message types embed an unexported `claim` envelope, so
// package oracleloop (which builds one claim per scanned remote event)
// needs constructors rather than struct literals to set it. Grouped here,
// next to the types they build, rather than in msgs.go.

func NewSendToCosmosClaim(eventNonce, blockHeight uint64, orchestrator, tokenContract, amount, ethSender, cosmosReceiver string) *MsgSendToCosmosClaim {
	return &MsgSendToCosmosClaim{
		claim:          claim{EventNonce: eventNonce, BlockHeight: blockHeight, Orchestrator: orchestrator},
		TokenContract:  tokenContract,
		Amount:         amount,
		EthSender:      ethSender,
		CosmosReceiver: cosmosReceiver,
	}
}

func NewBatchSendToEthClaim(eventNonce, blockHeight, batchNonce uint64, orchestrator, tokenContract string) *MsgBatchSendToEthClaim {
	return &MsgBatchSendToEthClaim{
		claim:         claim{EventNonce: eventNonce, BlockHeight: blockHeight, Orchestrator: orchestrator},
		BatchNonce:    batchNonce,
		TokenContract: tokenContract,
	}
}

func NewErc20DeployedClaim(eventNonce, blockHeight, decimals uint64, orchestrator, cosmosDenom, tokenContract, name, symbol string) *MsgErc20DeployedClaim {
	return &MsgErc20DeployedClaim{
		claim:         claim{EventNonce: eventNonce, BlockHeight: blockHeight, Orchestrator: orchestrator},
		CosmosDenom:   cosmosDenom,
		TokenContract: tokenContract,
		Name:          name,
		Symbol:        symbol,
		Decimals:      decimals,
	}
}

func NewLogicCallExecutedClaim(eventNonce, blockHeight, invalidationNonce uint64, orchestrator, invalidationID string) *MsgLogicCallExecutedClaim {
	return &MsgLogicCallExecutedClaim{
		claim:             claim{EventNonce: eventNonce, BlockHeight: blockHeight, Orchestrator: orchestrator},
		InvalidationId:    invalidationID,
		InvalidationNonce: invalidationNonce,
	}
}

func NewValsetUpdatedClaim(eventNonce, blockHeight, valsetNonce uint64, orchestrator string, members []string, rewardAmount, rewardToken string) *MsgValsetUpdatedClaim {
	return &MsgValsetUpdatedClaim{
		claim:        claim{EventNonce: eventNonce, BlockHeight: blockHeight, Orchestrator: orchestrator},
		ValsetNonce:  valsetNonce,
		Members:      members,
		RewardAmount: rewardAmount,
		RewardToken:  rewardToken,
	}
}
