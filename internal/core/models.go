package core

import (
	"orbital/internal/ledger"
)

type TransactionQuery struct {
	Type   ledger.TransactionType
	Status ledger.TransactionStatus
	Limit  int
}

type NetworkStatus struct {
	Network       string `json:"network"`
	LatestBlock   uint64 `json:"latestBlock"`
	NetworkStatus string `json:"networkStatus"`
}

type TransactionPage struct {
	Transactions []ledger.Transaction
	Total        int
	Network      NetworkStatus
}

// NewTransaction is the caller supplied part of a transaction.
type NewTransaction struct {
	Type ledger.TransactionType
	Data ledger.TransactionData
	From string
	To   string
}

type ChainInfo struct {
	LatestBlock     uint64 `json:"latestBlock"`
	TotalBlocks     int    `json:"totalBlocks"`
	AvgBlockTime    string `json:"avgBlockTime"`
	NetworkHashRate string `json:"networkHashRate"`
}

type BlockPage struct {
	Blocks    []ledger.Block
	Total     int
	ChainInfo ChainInfo
}

type ContractNetworkInfo struct {
	TotalContracts    int `json:"totalContracts"`
	ActiveContracts   int `json:"activeContracts"`
	TotalTransactions int `json:"totalTransactions"`
}

type ContractPage struct {
	Contracts   []ledger.SmartContract
	Total       int
	NetworkInfo ContractNetworkInfo
}

type Invocation struct {
	ContractAddress string
	FunctionName    string
	Parameters      []any
}

// ExecutionReceipt is returned for a contract invocation. BlockNumber stays
// nil since nothing is ever mined.
type ExecutionReceipt struct {
	TransactionHash string                   `json:"transactionHash"`
	ContractAddress string                   `json:"contractAddress"`
	FunctionName    string                   `json:"functionName"`
	Parameters      []any                    `json:"parameters"`
	GasUsed         int                      `json:"gasUsed"`
	Status          ledger.TransactionStatus `json:"status"`
	BlockNumber     *uint64                  `json:"blockNumber"`
}
