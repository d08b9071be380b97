package ledger

import "time"

type EventKind string

const (
	EventTransactionCreated   EventKind = "transaction.created"
	EventTransactionConfirmed EventKind = "transaction.confirmed"
	EventContractInvoked      EventKind = "contract.invoked"
)

// Event describes a mutation of the ledger for downstream consumers.
type Event struct {
	Kind        EventKind         `json:"kind"`
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type,omitempty"`
	Status      TransactionStatus `json:"status,omitempty"`
	BlockHeight uint64            `json:"blockHeight,omitempty"`
	Contract    string            `json:"contract,omitempty"`
	Function    string            `json:"function,omitempty"`
	GasUsed     int               `json:"gasUsed,omitempty"`
	OccurredAt  time.Time         `json:"occurredAt"`
}

// Key is the partitioning key used when the event is streamed.
func (e Event) Key() string {
	if e.Contract != "" && e.Kind == EventContractInvoked {
		return e.Contract
	}
	return e.ID
}
