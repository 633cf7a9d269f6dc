//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"fraibot/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Generator produces assistant text for a fully composed prompt.
// Implementations wrap any backend failure in errors.ErrGeneration so the
// boundary can translate it into a user-facing apology.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EmailSender delivers exactly one message. A failure concerns that single
// recipient only; callers decide how to isolate it.
type EmailSender interface {
	Send(ctx context.Context, sender, recipient, subject, body string) error
}

// DeliveryRecorder keeps an audit trail of per-recipient outcomes.
type DeliveryRecorder interface {
	Record(record domain.DeliveryRecord) error
}

// Dispatcher fans a validated batch out to the email worker pool and blocks
// until every row got its single attempt.
type Dispatcher interface {
	SendAll(ctx context.Context, batch domain.Batch) domain.BatchSummary
}
