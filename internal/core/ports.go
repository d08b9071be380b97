package core

import (
	"context"
	"orbital/internal/ledger"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type Store interface {
	Transactions(filter ledger.TransactionFilter) []ledger.Transaction
	Transaction(id string) (ledger.Transaction, error)
	AppendTransaction(tx ledger.Transaction) (ledger.Transaction, error)
	ConfirmTransaction(id string) bool
	Blocks() []ledger.Block
	Block(height uint64) (ledger.Block, error)
	LatestHeight() uint64
	Contracts(t ledger.ContractType) []ledger.SmartContract
	Contract(address string) (ledger.SmartContract, error)
	RecordInvocation(address string, at time.Time) (ledger.SmartContract, error)
}

//counterfeiter:generate -o fake -fake-name Scheduler . Scheduler
type Scheduler interface {
	Schedule(key string, action func())
}

//counterfeiter:generate -o fake -fake-name EventPublisher . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event ledger.Event) error
}

// RandomSource supplies the randomness used for ids, hashes and gas figures.
type RandomSource interface {
	IntN(n int) int
	Uint64() uint64
}
