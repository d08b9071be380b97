package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("record already exists")

// Store is the in-memory mock ledger. It exclusively owns the transaction,
// block and contract collections and hands out copies only. A single mutex
// serialises every read and write, including the deferred confirmations.
type Store struct {
	mu           sync.RWMutex
	transactions []Transaction // newest first
	blocks       []Block       // newest first
	contracts    []SmartContract
}

// NewStore creates a store pre-populated with seed.
func NewStore(seed Seed) *Store {
	s := &Store{
		transactions: make([]Transaction, 0, len(seed.Transactions)),
		blocks:       make([]Block, 0, len(seed.Blocks)),
		contracts:    make([]SmartContract, 0, len(seed.Contracts)),
	}
	for _, tx := range seed.Transactions {
		s.transactions = append(s.transactions, tx.clone())
	}
	for _, b := range seed.Blocks {
		s.blocks = append(s.blocks, b.clone())
	}
	for _, c := range seed.Contracts {
		s.contracts = append(s.contracts, c.clone())
	}
	return s
}

// Transactions returns every transaction matching filter, newest first.
func (s *Store) Transactions(filter TransactionFilter) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if filter.matches(tx) {
			result = append(result, tx.clone())
		}
	}
	return result
}

func (s *Store) Transaction(id string) (Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.transactionIndex(id)
	if idx < 0 {
		return Transaction{}, fmt.Errorf("transaction %q: %w", id, ErrNotFound)
	}
	return s.transactions[idx].clone(), nil
}

// AppendTransaction assigns the next block height to tx and inserts it at the
// head of the list. The height is max(existing)+1, or GenesisHeight when the
// store holds no transactions.
func (s *Store) AppendTransaction(tx Transaction) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transactionIndex(tx.ID) >= 0 {
		return Transaction{}, fmt.Errorf("transaction %q: %w", tx.ID, ErrDuplicate)
	}

	tx.BlockHeight = s.nextHeight()
	tx = tx.clone()

	s.transactions = append(s.transactions, Transaction{})
	copy(s.transactions[1:], s.transactions)
	s.transactions[0] = tx

	return tx.clone(), nil
}

// ConfirmTransaction moves a pending transaction to confirmed. It reports
// false when the transaction is gone or was not pending.
func (s *Store) ConfirmTransaction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.transactionIndex(id)
	if idx < 0 || s.transactions[idx].Status != StatusPending {
		return false
	}
	s.transactions[idx].Status = StatusConfirmed
	return true
}

func (s *Store) Blocks() []Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Block, len(s.blocks))
	for i, b := range s.blocks {
		result[i] = b.clone()
	}
	return result
}

func (s *Store) Block(height uint64) (Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.blocks {
		if b.Height == height {
			return b.clone(), nil
		}
	}
	return Block{}, fmt.Errorf("block %d: %w", height, ErrNotFound)
}

// LatestHeight is the highest block height in the store, zero when empty.
func (s *Store) LatestHeight() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest uint64
	for _, b := range s.blocks {
		latest = max(latest, b.Height)
	}
	return latest
}

// Contracts returns the contracts of type t in seed order, or all of them
// when t is empty.
func (s *Store) Contracts(t ContractType) []SmartContract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]SmartContract, 0, len(s.contracts))
	for _, c := range s.contracts {
		if t == "" || c.Type == t {
			result = append(result, c.clone())
		}
	}
	return result
}

func (s *Store) Contract(address string) (SmartContract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.contractIndex(address)
	if idx < 0 {
		return SmartContract{}, fmt.Errorf("contract %q: %w", address, ErrNotFound)
	}
	return s.contracts[idx].clone(), nil
}

// RecordInvocation bumps the contract transaction counter by one and stamps
// its last activity.
func (s *Store) RecordInvocation(address string, at time.Time) (SmartContract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.contractIndex(address)
	if idx < 0 {
		return SmartContract{}, fmt.Errorf("contract %q: %w", address, ErrNotFound)
	}
	s.contracts[idx].TotalTransactions++
	s.contracts[idx].LastActivity = at
	return s.contracts[idx].clone(), nil
}

func (s *Store) nextHeight() uint64 {
	if len(s.transactions) == 0 {
		return GenesisHeight
	}
	var highest uint64
	for _, tx := range s.transactions {
		highest = max(highest, tx.BlockHeight)
	}
	return highest + 1
}

func (s *Store) transactionIndex(id string) int {
	for i, tx := range s.transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) contractIndex(address string) int {
	for i, c := range s.contracts {
		if c.Address == address {
			return i
		}
	}
	return -1
}
