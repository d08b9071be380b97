package payload

import (
	"encoding/json"
	"fmt"
	"net/url"
	"orbital/internal/core"
	"orbital/internal/ledger"
	"strconv"

	"github.com/jellydator/validation"
)

type CreateTransactionRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
	From string          `json:"from"`
	To   string          `json:"to"`
}

func (c CreateTransactionRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Type, validation.Required),
		validation.Field(&c.Data, validation.Required),
		validation.Field(&c.From, validation.Required),
		validation.Field(&c.To, validation.Required),
	)
}

// ToNewTransaction decodes Data into the variant selected by Type.
func (c CreateTransactionRequest) ToNewTransaction() (core.NewTransaction, error) {
	txType := ledger.TransactionType(c.Type)

	data, err := ledger.DecodeTransactionData(txType, c.Data)
	if err != nil {
		return core.NewTransaction{}, fmt.Errorf("transaction data: %w", err)
	}

	return core.NewTransaction{
		Type: txType,
		Data: data,
		From: c.From,
		To:   c.To,
	}, nil
}

// InvokeContractRequest is accepted as sent. A missing address resolves to no
// contract, a missing function only draws a warning.
type InvokeContractRequest struct {
	ContractAddress string `json:"contractAddress"`
	FunctionName    string `json:"functionName"`
	Parameters      []any  `json:"parameters"`
}

func (i InvokeContractRequest) ToInvocation() core.Invocation {
	return core.Invocation{
		ContractAddress: i.ContractAddress,
		FunctionName:    i.FunctionName,
		Parameters:      i.Parameters,
	}
}

// TransactionsQuery holds the raw query of a transaction listing. Unknown type
// and status values are accepted and simply match nothing.
type TransactionsQuery struct {
	Type   string
	Status string
	Limit  string
}

func NewTransactionsQuery(values url.Values) TransactionsQuery {
	return TransactionsQuery{
		Type:   values.Get("type"),
		Status: values.Get("status"),
		Limit:  values.Get("limit"),
	}
}

func (t TransactionsQuery) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Limit, validation.Match(positiveInt)),
	)
}

func (t TransactionsQuery) ToCore() core.TransactionQuery {
	return core.TransactionQuery{
		Type:   ledger.TransactionType(t.Type),
		Status: ledger.TransactionStatus(t.Status),
		Limit:  atoi(t.Limit),
	}
}

type BlocksQuery struct {
	Limit  string
	Height string
}

func NewBlocksQuery(values url.Values) BlocksQuery {
	return BlocksQuery{
		Limit:  values.Get("limit"),
		Height: values.Get("height"),
	}
}

func (b BlocksQuery) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Limit, validation.Match(positiveInt)),
		validation.Field(&b.Height, validation.Match(unsignedInt)),
	)
}

func (b BlocksQuery) LimitValue() int {
	return atoi(b.Limit)
}

// HeightValue returns the requested height and whether one was given.
func (b BlocksQuery) HeightValue() (uint64, bool) {
	if b.Height == "" {
		return 0, false
	}
	height, err := strconv.ParseUint(b.Height, 10, 64)
	if err != nil {
		return 0, false
	}
	return height, true
}

type ContractsQuery struct {
	Type    string
	Address string
}

func NewContractsQuery(values url.Values) ContractsQuery {
	return ContractsQuery{
		Type:    values.Get("type"),
		Address: values.Get("address"),
	}
}

func (c ContractsQuery) ContractType() ledger.ContractType {
	return ledger.ContractType(c.Type)
}

// AnalyticsTimeframe returns the requested timeframe, or the default window.
func AnalyticsTimeframe(values url.Values) string {
	if timeframe := values.Get("timeframe"); timeframe != "" {
		return timeframe
	}
	return core.DefaultTimeframe
}
