package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Subject is fixed for every outgoing mail of a batch.
const Subject = "Mensaje de Frailejon.Tech"

// Recipient is one validated row of an uploaded recipients file.
// Email syntax is deliberately not checked here: a malformed address must
// fail at the provider, not at ingestion.
type Recipient struct {
	Email   string
	Name    string
	Message string
}

// Body templates the per-recipient mail content with the fixed salutation
// and closing.
func (r Recipient) Body() string {
	return fmt.Sprintf("Hola %s,\n\n%s\n\nSaludos,\nFrailejon.Tech", r.Name, r.Message)
}

// Batch is the full set of recipients derived from one uploaded file,
// processed together by the dispatcher.
type Batch struct {
	ID         uuid.UUID
	Sender     string
	Recipients []Recipient
}

func NewBatch(sender string, recipients []Recipient) Batch {
	return Batch{ID: uuid.New(), Sender: sender, Recipients: recipients}
}

// DispatchOutcome is the result of exactly one send attempt.
// Err is nil when the provider accepted the mail.
type DispatchOutcome struct {
	Recipient Recipient
	Err       error
}

// BatchSummary aggregates a finished batch. It never depends on the
// completion order of individual workers.
type BatchSummary struct {
	BatchID   uuid.UUID
	Attempted int
	Sent      int
	Failed    int
}

// DeliveryRecord is the persisted audit form of one outcome.
type DeliveryRecord struct {
	ID      uuid.UUID `json:"id"`
	BatchID uuid.UUID `json:"batch_id"`
	Email   string    `json:"email"`
	OK      bool      `json:"ok"`
	Reason  string    `json:"reason,omitempty"`
	At      time.Time `json:"at"`
}

func NewDeliveryRecord(batchID uuid.UUID, outcome DispatchOutcome) DeliveryRecord {
	rec := DeliveryRecord{
		ID:      uuid.New(),
		BatchID: batchID,
		Email:   outcome.Recipient.Email,
		OK:      outcome.Err == nil,
		At:      time.Now().UTC(),
	}
	if outcome.Err != nil {
		rec.Reason = outcome.Err.Error()
	}
	return rec
}
