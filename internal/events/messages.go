package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ImportCompletedMessage announces a finished import. Consumers load the
// batch from the database; the message only carries identifiers and counts.
type ImportCompletedMessage struct {
	BatchID       uuid.UUID `json:"batch_id"`
	UserID        uuid.UUID `json:"user_id"`
	Format        string    `json:"format"`
	ImportedCount int       `json:"imported_count"`
	ReviewCount   int       `json:"review_count"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewImportCompletedMessage(batchID, userID uuid.UUID, format string, imported, review int) *ImportCompletedMessage {
	return &ImportCompletedMessage{
		BatchID:       batchID,
		UserID:        userID,
		Format:        format,
		ImportedCount: imported,
		ReviewCount:   review,
		Timestamp:     time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ImportCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ImportCompletedMessageFromJSON decodes a message and rejects ones without a batch or user
func ImportCompletedMessageFromJSON(data []byte) (*ImportCompletedMessage, error) {
	var msg ImportCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.BatchID == uuid.Nil || msg.UserID == uuid.Nil {
		return nil, ErrInvalidMessage
	}
	return &msg, nil
}
