package handler

import (
	"context"
	"net/http"
	"orbital/internal/core"
	"orbital/internal/ledger"
	"orbital/internal/nasa"
	"orbital/internal/telemetry"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	ListTransactions(ctx context.Context, query core.TransactionQuery) (core.TransactionPage, error)
	GetTransaction(ctx context.Context, id string) (ledger.Transaction, error)
	CreateTransaction(ctx context.Context, newTx core.NewTransaction) (ledger.Transaction, error)
	ListBlocks(ctx context.Context, limit int) (core.BlockPage, error)
	GetBlock(ctx context.Context, height uint64) (ledger.Block, error)
	ListContracts(ctx context.Context, contractType ledger.ContractType) (core.ContractPage, error)
	GetContract(ctx context.Context, address string) (ledger.SmartContract, error)
	InvokeContract(ctx context.Context, inv core.Invocation) (core.ExecutionReceipt, error)
	Analytics(ctx context.Context, timeframe string) (core.Analytics, error)
}

//counterfeiter:generate -o fake -fake-name TelemetryService . TelemetryService
type TelemetryService interface {
	DebrisField(query telemetry.DebrisQuery) telemetry.DebrisField
	Statistics() telemetry.Statistics
}

//counterfeiter:generate -o fake -fake-name SpaceDataClient . SpaceDataClient
type SpaceDataClient interface {
	ISSPosition(ctx context.Context) (nasa.ISSPosition, error)
	TLE(ctx context.Context, satelliteIDs ...int) ([]nasa.TLE, error)
	EarthImagery(ctx context.Context, query nasa.ImageryQuery) ([]nasa.EarthImagery, error)
}
