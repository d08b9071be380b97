package ledger

import (
	"time"
)

type TransactionType string

const (
	DebrisCapture      TransactionType = "debris_capture"
	MaterialProcessing TransactionType = "material_processing"
	SatelliteServicing TransactionType = "satellite_servicing"
	PowerTransfer      TransactionType = "power_transfer"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
	// StatusFailed is declared for clients but no transition ever produces it.
	StatusFailed TransactionStatus = "failed"
)

type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Timestamp   time.Time         `json:"timestamp"`
	BlockHeight uint64            `json:"blockHeight"`
	Hash        string            `json:"hash"`
	From        string            `json:"from"`
	To          string            `json:"to"`
	Data        TransactionData   `json:"data"`
	Status      TransactionStatus `json:"status"`
	GasUsed     int               `json:"gasUsed"`
	Signature   string            `json:"signature"`
}

type Block struct {
	Height       uint64    `json:"height"`
	Hash         string    `json:"hash"`
	Timestamp    time.Time `json:"timestamp"`
	PreviousHash string    `json:"previousHash"` // not verified against the parent block
	MerkleRoot   string    `json:"merkleRoot"`   // not derived from Transactions
	Transactions []string  `json:"transactions"`
	Validator    string    `json:"validator"`
	GasUsed      int       `json:"gasUsed"`
	GasLimit     int       `json:"gasLimit"`
	Difficulty   int64     `json:"difficulty"`
	Nonce        int64     `json:"nonce"`
	Size         int       `json:"size"`
}

type ContractType string

const (
	DebrisRegistry   ContractType = "debris_registry"
	ManufacturingHub ContractType = "manufacturing_hub"
	SatelliteService ContractType = "satellite_service"
	PowerGrid        ContractType = "power_grid"
)

type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractPaused     ContractStatus = "paused"
	ContractDeprecated ContractStatus = "deprecated"
)

type ABIParam struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ABIFunction struct {
	Name    string     `json:"name"`
	Type    string     `json:"type"`
	Inputs  []ABIParam `json:"inputs"`
	Outputs []ABIParam `json:"outputs"`
}

type SmartContract struct {
	Address           string         `json:"address"`
	Name              string         `json:"name"`
	Type              ContractType   `json:"type"`
	DeployedAt        time.Time      `json:"deployedAt"`
	Version           string         `json:"version"`
	Status            ContractStatus `json:"status"`
	TotalTransactions int            `json:"totalTransactions"`
	LastActivity      time.Time      `json:"lastActivity"`
	ABI               []ABIFunction  `json:"abi"`
	Bytecode          string         `json:"bytecode"`
}

// HasFunction reports whether the contract ABI declares a function with that name.
func (c SmartContract) HasFunction(name string) bool {
	for _, fn := range c.ABI {
		if fn.Name == name {
			return true
		}
	}
	return false
}

type TransactionFilter struct {
	Type   TransactionType
	Status TransactionStatus
}

func (f TransactionFilter) matches(tx Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Status != "" && tx.Status != f.Status {
		return false
	}
	return true
}

func (tx Transaction) clone() Transaction {
	if tx.Data != nil {
		tx.Data = tx.Data.clone()
	}
	return tx
}

func (b Block) clone() Block {
	b.Transactions = append([]string(nil), b.Transactions...)
	return b
}

func (c SmartContract) clone() SmartContract {
	abi := make([]ABIFunction, len(c.ABI))
	for i, fn := range c.ABI {
		fn.Inputs = append([]ABIParam{}, fn.Inputs...)
		fn.Outputs = append([]ABIParam{}, fn.Outputs...)
		abi[i] = fn
	}
	c.ABI = abi
	return c
}
