package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published after a ledger mutation.
const (
	EventExpenseCreated = "expense.created"
	EventExpenseDeleted = "expense.deleted"
)

// LedgerEventMessage announces a change to the ledger. Consumers get the
// affected ids and the running total right after the change.
type LedgerEventMessage struct {
	MessageID string    `json:"message_id"`
	Type      string    `json:"type"`
	IDs       []int64   `json:"ids,omitempty"`
	Removed   int64     `json:"removed,omitempty"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLedgerEventMessage creates a message with a fresh id.
func NewLedgerEventMessage(eventType string, ids []int64, removed int64, total float64) *LedgerEventMessage {
	return &LedgerEventMessage{
		MessageID: uuid.NewString(),
		Type:      eventType,
		IDs:       ids,
		Removed:   removed,
		Total:     total,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
