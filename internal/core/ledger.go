package core

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"orbital/internal/ledger"
	"orbital/internal/metrics"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jellydator/validation"
	"go.uber.org/zap"
)

var ErrValidation error = errors.New("validation failed")
var ErrNotFound error = errors.New("not found")

var TimeNow = time.Now

const (
	DefaultLimit = 10

	minGas               = 21000
	transactionGasSpread = 50000
	invocationGasSpread  = 100000

	networkName    = "OrbitalChain"
	avgBlockTime   = "2.1s"
	networkHash    = "1.2 TH/s"
	publishTimeout = 5 * time.Second
	maxIDAttempts  = 3
)

// Ledger serves queries and mutations over the mock ledger store.
type Ledger struct {
	logs      *zap.SugaredLogger
	store     Store
	scheduler Scheduler
	publisher EventPublisher
	rnd       RandomSource

	inflight sync.WaitGroup
}

// NewLedger is a constructor function for the Ledger type.
func NewLedger(logger *zap.SugaredLogger, store Store, scheduler Scheduler, publisher EventPublisher, rnd RandomSource) *Ledger {
	return &Ledger{
		logs:      logger,
		store:     store,
		scheduler: scheduler,
		publisher: publisher,
		rnd:       rnd,
	}
}

// ListTransactions returns the transactions matching every supplied filter,
// truncated to the query limit. Total counts the filtered set before truncation.
func (l *Ledger) ListTransactions(ctx context.Context, query TransactionQuery) (TransactionPage, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	filtered := l.store.Transactions(ledger.TransactionFilter{
		Type:   query.Type,
		Status: query.Status,
	})

	return TransactionPage{
		Transactions: filtered[:min(limit, len(filtered))],
		Total:        len(filtered),
		Network: NetworkStatus{
			Network:       networkName,
			LatestBlock:   l.store.LatestHeight(),
			NetworkStatus: "healthy",
		},
	}, nil
}

func (l *Ledger) GetTransaction(ctx context.Context, id string) (ledger.Transaction, error) {
	tx, err := l.store.Transaction(id)
	if err != nil {
		return ledger.Transaction{}, translate(err)
	}
	return tx, nil
}

// CreateTransaction appends a pending transaction and arms its confirmation.
func (l *Ledger) CreateTransaction(ctx context.Context, newTx NewTransaction) (ledger.Transaction, error) {
	if err := validateNewTransaction(newTx); err != nil {
		return ledger.Transaction{}, err
	}

	var created ledger.Transaction
	var err error
	for range maxIDAttempts {
		created, err = l.store.AppendTransaction(ledger.Transaction{
			ID:        l.randomHex(8),
			Type:      newTx.Type,
			Timestamp: TimeNow().UTC(),
			Hash:      l.randomHash(),
			From:      newTx.From,
			To:        newTx.To,
			Data:      newTx.Data,
			Status:    ledger.StatusPending,
			GasUsed:   minGas + l.rnd.IntN(transactionGasSpread),
			Signature: fmt.Sprintf("0xsignature%s...", l.randomHex(4)[2:]),
		})
		if !errors.Is(err, ledger.ErrDuplicate) {
			break
		}
		l.logs.Warnw("transaction id collision, regenerating", "error", err)
	}
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("append transaction: %w", err)
	}

	id := created.ID
	l.scheduler.Schedule(id, func() {
		l.confirm(id)
	})

	l.logs.Infow("transaction submitted",
		"id", created.ID,
		"type", created.Type,
		"block_height", created.BlockHeight,
		"gas_used", created.GasUsed)
	metrics.ObserveLedgerEvent(string(ledger.EventTransactionCreated))

	l.publish(ledger.Event{
		Kind:        ledger.EventTransactionCreated,
		ID:          created.ID,
		Type:        created.Type,
		Status:      created.Status,
		BlockHeight: created.BlockHeight,
		GasUsed:     created.GasUsed,
		OccurredAt:  created.Timestamp,
	})

	return created, nil
}

// ListBlocks returns up to limit of the most recent blocks.
func (l *Ledger) ListBlocks(ctx context.Context, limit int) (BlockPage, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	blocks := l.store.Blocks()

	return BlockPage{
		Blocks: blocks[:min(limit, len(blocks))],
		Total:  len(blocks),
		ChainInfo: ChainInfo{
			LatestBlock:     l.store.LatestHeight(),
			TotalBlocks:     len(blocks),
			AvgBlockTime:    avgBlockTime,
			NetworkHashRate: networkHash,
		},
	}, nil
}

func (l *Ledger) GetBlock(ctx context.Context, height uint64) (ledger.Block, error) {
	block, err := l.store.Block(height)
	if err != nil {
		return ledger.Block{}, translate(err)
	}
	return block, nil
}

// ListContracts returns every contract, or only those of contractType when set,
// with network wide counters.
func (l *Ledger) ListContracts(ctx context.Context, contractType ledger.ContractType) (ContractPage, error) {
	all := l.store.Contracts("")

	info := ContractNetworkInfo{TotalContracts: len(all)}
	for _, c := range all {
		if c.Status == ledger.ContractActive {
			info.ActiveContracts++
		}
		info.TotalTransactions += c.TotalTransactions
	}

	contracts := all
	if contractType != "" {
		contracts = l.store.Contracts(contractType)
	}

	return ContractPage{
		Contracts:   contracts,
		Total:       len(contracts),
		NetworkInfo: info,
	}, nil
}

func (l *Ledger) GetContract(ctx context.Context, address string) (ledger.SmartContract, error) {
	contract, err := l.store.Contract(address)
	if err != nil {
		return ledger.SmartContract{}, translate(err)
	}
	return contract, nil
}

// InvokeContract simulates executing a contract function. The receipt stays
// pending with no block number. The only failure is an unknown address, an
// empty one included.
func (l *Ledger) InvokeContract(ctx context.Context, inv Invocation) (ExecutionReceipt, error) {
	contract, err := l.store.RecordInvocation(inv.ContractAddress, TimeNow().UTC())
	if err != nil {
		return ExecutionReceipt{}, translate(err)
	}

	if !contract.HasFunction(inv.FunctionName) {
		l.logs.Warnw("function not declared in contract abi",
			"contract", contract.Address,
			"function", inv.FunctionName)
	}

	params := inv.Parameters
	if params == nil {
		params = []any{}
	}

	receipt := ExecutionReceipt{
		TransactionHash: l.randomHash(),
		ContractAddress: contract.Address,
		FunctionName:    inv.FunctionName,
		Parameters:      params,
		GasUsed:         minGas + l.rnd.IntN(invocationGasSpread),
		Status:          ledger.StatusPending,
	}

	l.logs.Infow("contract function executed",
		"contract", contract.Address,
		"function", inv.FunctionName,
		"total_transactions", contract.TotalTransactions)
	metrics.ObserveLedgerEvent(string(ledger.EventContractInvoked))

	l.publish(ledger.Event{
		Kind:       ledger.EventContractInvoked,
		ID:         receipt.TransactionHash,
		Status:     receipt.Status,
		Contract:   contract.Address,
		Function:   inv.FunctionName,
		GasUsed:    receipt.GasUsed,
		OccurredAt: contract.LastActivity,
	})

	return receipt, nil
}

func (l *Ledger) confirm(id string) {
	if !l.store.ConfirmTransaction(id) {
		l.logs.Debugw("transaction no longer pending, confirmation skipped", "id", id)
		return
	}

	l.logs.Infow("transaction confirmed", "id", id)
	metrics.ObserveLedgerEvent(string(ledger.EventTransactionConfirmed))

	tx, err := l.store.Transaction(id)
	if err != nil {
		return
	}

	l.publish(ledger.Event{
		Kind:        ledger.EventTransactionConfirmed,
		ID:          tx.ID,
		Type:        tx.Type,
		Status:      tx.Status,
		BlockHeight: tx.BlockHeight,
		GasUsed:     tx.GasUsed,
		OccurredAt:  TimeNow().UTC(),
	})
}

// Wait blocks until every event publication started so far has finished.
func (l *Ledger) Wait() {
	l.inflight.Wait()
}

func (l *Ledger) publish(event ledger.Event) {
	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := l.publisher.Publish(ctx, event); err != nil {
			metrics.ObservePublishFailure()
			l.logs.Errorw("failed to publish ledger event",
				"error", err,
				"kind", event.Kind,
				"id", event.ID)
		}
	}()
}

func (l *Ledger) randomBytes(n int) []byte {
	buf := make([]byte, 0, n+8)
	for len(buf) < n {
		buf = binary.BigEndian.AppendUint64(buf, l.rnd.Uint64())
	}
	return buf[:n]
}

func (l *Ledger) randomHex(n int) string {
	return hexutil.Encode(l.randomBytes(n))
}

// randomHash returns a keccak digest of random bytes. It is not derived from
// any record content.
func (l *Ledger) randomHash() string {
	return crypto.Keccak256Hash(l.randomBytes(32)).Hex()
}

func validateNewTransaction(newTx NewTransaction) error {
	err := validation.ValidateStruct(&newTx,
		validation.Field(&newTx.Type, validation.Required),
		validation.Field(&newTx.Data, validation.NotNil),
		validation.Field(&newTx.From, validation.Required),
		validation.Field(&newTx.To, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: missing required fields: %w", ErrValidation, err)
	}

	if !newTx.Type.Known() {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ledger.ErrUnknownType, newTx.Type)
	}
	if newTx.Data.Kind() != newTx.Type {
		return fmt.Errorf("%w: data is %s, transaction is %s", ErrValidation, newTx.Data.Kind(), newTx.Type)
	}
	if err := newTx.Data.Validate(); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrValidation, ledger.ErrInvalidData, err)
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, ledger.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

// SystemRandom draws from the goroutine safe top level math/rand/v2 source.
type SystemRandom struct{}

func (SystemRandom) IntN(n int) int { return rand.IntN(n) }
func (SystemRandom) Uint64() uint64 { return rand.Uint64() }
