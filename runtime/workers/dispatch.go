package workers

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"fraibot/contract"
	"fraibot/domain"
)

// Ensure *DispatchWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*DispatchWorker)(nil)

// SendJob is one email send attempt flowing through the shared pool queue.
// Results is per batch: the dispatcher joins on it to know the batch finished.
type SendJob struct {
	Batch     uuid.UUID
	Sender    string
	Recipient domain.Recipient
	Results   chan<- domain.DispatchOutcome
}

// DispatchWorker is one slot of the email worker pool. It consumes jobs from
// the shared queue, attempts exactly one delivery per job, records the
// outcome, and keeps going after a failure: a rejected recipient must never
// stall the rest of a batch.
type DispatchWorker struct {
	sender   contract.EmailSender
	recorder contract.DeliveryRecorder
	jobs     <-chan SendJob
	log      *slog.Logger
}

func NewDispatchWorker(
	sender contract.EmailSender,
	recorder contract.DeliveryRecorder,
	jobs <-chan SendJob,
	log *slog.Logger,
) *DispatchWorker {
	return &DispatchWorker{
		sender:   sender,
		recorder: recorder,
		jobs:     jobs,
		log:      log,
	}
}

func (w *DispatchWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.handleJob(ctx, job)
		}
	}
}

func (w *DispatchWorker) handleJob(ctx context.Context, job SendJob) {
	recipient := job.Recipient
	err := w.sender.Send(ctx, job.Sender, recipient.Email, domain.Subject, recipient.Body())
	outcome := domain.DispatchOutcome{Recipient: recipient, Err: err}

	if err != nil {
		w.log.Error("Email delivery failed", "batch", job.Batch, "recipient", recipient.Email, "error", err)
	} else {
		w.log.Info("Email sent", "batch", job.Batch, "recipient", recipient.Email)
	}

	if recErr := w.recorder.Record(domain.NewDeliveryRecord(job.Batch, outcome)); recErr != nil {
		// The audit trail is best effort; the outcome still reaches the batch.
		w.log.Error("Failed to record delivery outcome", "batch", job.Batch, "error", recErr)
	}

	select {
	case <-ctx.Done():
	case job.Results <- outcome:
	}
}
