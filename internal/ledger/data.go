package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jellydator/validation"
)

var ErrInvalidData = errors.New("invalid transaction data")
var ErrUnknownType = errors.New("unknown transaction type")

// TransactionData is the type specific payload carried by a transaction.
// Each transaction type has exactly one variant.
type TransactionData interface {
	Kind() TransactionType
	Validate() error
	clone() TransactionData
}

type DebrisCaptureData struct {
	Satellite string `json:"satellite"`
	Debris    string `json:"debris"`
	Quantity  string `json:"quantity"`
}

func (d DebrisCaptureData) Kind() TransactionType { return DebrisCapture }

func (d DebrisCaptureData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Satellite, validation.Required),
		validation.Field(&d.Debris, validation.Required),
		validation.Field(&d.Quantity, validation.Required),
	)
}

func (d DebrisCaptureData) clone() TransactionData { return d }

type MaterialProcessingData struct {
	Satellite string `json:"satellite"`
	Material  string `json:"material"`
	Quantity  string `json:"quantity"`
}

func (d MaterialProcessingData) Kind() TransactionType { return MaterialProcessing }

func (d MaterialProcessingData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Satellite, validation.Required),
		validation.Field(&d.Material, validation.Required),
		validation.Field(&d.Quantity, validation.Required),
	)
}

func (d MaterialProcessingData) clone() TransactionData { return d }

type SatelliteServicingData struct {
	Satellite string `json:"satellite"`
	Target    string `json:"target"`
	Service   string `json:"service"`
}

func (d SatelliteServicingData) Kind() TransactionType { return SatelliteServicing }

func (d SatelliteServicingData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Satellite, validation.Required),
		validation.Field(&d.Target, validation.Required),
		validation.Field(&d.Service, validation.Required),
	)
}

func (d SatelliteServicingData) clone() TransactionData { return d }

type PowerTransferData struct {
	From        string `json:"from"`
	To          string `json:"to"`
	PowerAmount string `json:"powerAmount"`
}

func (d PowerTransferData) Kind() TransactionType { return PowerTransfer }

func (d PowerTransferData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.From, validation.Required),
		validation.Field(&d.To, validation.Required),
		validation.Field(&d.PowerAmount, validation.Required),
	)
}

func (d PowerTransferData) clone() TransactionData { return d }

// Known reports whether t is one of the supported transaction types.
func (t TransactionType) Known() bool {
	switch t {
	case DebrisCapture, MaterialProcessing, SatelliteServicing, PowerTransfer:
		return true
	}
	return false
}

// DecodeTransactionData decodes raw JSON into the variant selected by t and
// validates it.
func DecodeTransactionData(t TransactionType, raw json.RawMessage) (TransactionData, error) {
	var data TransactionData
	var err error

	switch t {
	case DebrisCapture:
		var v DebrisCaptureData
		err = decodeVariant(raw, &v)
		data = v
	case MaterialProcessing:
		var v MaterialProcessingData
		err = decodeVariant(raw, &v)
		data = v
	case SatelliteServicing:
		var v SatelliteServicingData
		err = decodeVariant(raw, &v)
		data = v
	case PowerTransfer:
		var v PowerTransferData
		err = decodeVariant(raw, &v)
		data = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidData, t, err)
	}

	return data, nil
}

func decodeVariant(raw json.RawMessage, v any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return errors.New("data is empty")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
