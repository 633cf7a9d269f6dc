// Package runtime wires the worker pool and supervision together.
// It orchestrates delivery without containing domain rules.
package runtime

import (
	"context"
	"log/slog"

	"fraibot/contract"
	"fraibot/domain"
	"fraibot/runtime/workers"
)

// Dispatcher owns the process-lifetime send queue. A single bounded pool
// serves every upload, so total concurrent outbound connections stay capped
// even when several batches arrive at once.
type Dispatcher struct {
	log      *slog.Logger
	poolSize int
	jobs     chan workers.SendJob
	sender   contract.EmailSender
	recorder contract.DeliveryRecorder
}

func NewDispatcher(
	log *slog.Logger,
	sender contract.EmailSender,
	recorder contract.DeliveryRecorder,
	poolSize, bufferSize int,
) *Dispatcher {
	return &Dispatcher{
		log:      log,
		poolSize: poolSize,
		jobs:     make(chan workers.SendJob, bufferSize),
		sender:   sender,
		recorder: recorder,
	}
}

// PoolWorkers builds one DispatchWorker per pool slot. The caller registers
// them with the supervisor once at startup.
func (d *Dispatcher) PoolWorkers() []contract.Worker {
	pool := make([]contract.Worker, 0, d.poolSize)
	for range d.poolSize {
		pool = append(pool, workers.NewDispatchWorker(d.sender, d.recorder, d.jobs, d.log))
	}
	return pool
}

// SendAll submits one job per recipient, in file row order, and blocks until
// every submitted job finished. Failures are already isolated per job, so
// the summary only tallies counts; it never depends on completion order.
//
// A batch runs to completion once started. Context cancellation matters only
// at process shutdown, where rows not yet submitted are abandoned.
func (d *Dispatcher) SendAll(ctx context.Context, batch domain.Batch) domain.BatchSummary {
	results := make(chan domain.DispatchOutcome, len(batch.Recipients))

	submitted := 0
	for _, recipient := range batch.Recipients {
		job := workers.SendJob{
			Batch:     batch.ID,
			Sender:    batch.Sender,
			Recipient: recipient,
			Results:   results,
		}
		select {
		case <-ctx.Done():
			d.log.Warn("Batch interrupted by shutdown", "batch", batch.ID, "submitted", submitted)
			return d.collect(ctx, batch, results, submitted)
		case d.jobs <- job:
			submitted++
		}
	}
	return d.collect(ctx, batch, results, submitted)
}

func (d *Dispatcher) collect(ctx context.Context, batch domain.Batch, results <-chan domain.DispatchOutcome, submitted int) domain.BatchSummary {
	summary := domain.BatchSummary{BatchID: batch.ID, Attempted: submitted}
	for range submitted {
		select {
		case <-ctx.Done():
			d.log.Warn("Batch join interrupted by shutdown", "batch", batch.ID)
			return summary
		case outcome := <-results:
			if outcome.Err != nil {
				summary.Failed++
			} else {
				summary.Sent++
			}
		}
	}
	d.log.Info("Batch dispatched",
		"batch", batch.ID,
		"attempted", summary.Attempted,
		"sent", summary.Sent,
		"failed", summary.Failed)
	return summary
}
