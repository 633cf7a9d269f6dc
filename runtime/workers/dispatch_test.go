package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fraibot/domain"
	"fraibot/errors"
	"fraibot/mocks"
)

func TestDispatchWorker_StopsOnClosedChannel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := make(chan SendJob)
	close(jobs)

	worker := NewDispatchWorker(mocks.NewMockEmailSender(ctrl), mocks.NewMockDeliveryRecorder(ctrl), jobs, slog.Default())

	req.NoError(worker.Run(context.Background()))
}

func TestDispatchWorker_StopsOnContextCancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := make(chan SendJob)
	worker := NewDispatchWorker(mocks.NewMockEmailSender(ctrl), mocks.NewMockDeliveryRecorder(ctrl), jobs, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(500 * time.Millisecond):
		req.Fail("worker should stop once the context is canceled")
	}
}

func TestDispatchWorker_RecordsFailedAttempt(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mocks.NewMockEmailSender(ctrl)
	recorder := mocks.NewMockDeliveryRecorder(ctrl)

	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), "rejected@frailejon.tech", gomock.Any(), gomock.Any()).
		Return(errors.ErrDelivery).
		Times(1)

	var recorded domain.DeliveryRecord
	recorder.EXPECT().
		Record(gomock.Any()).
		DoAndReturn(func(record domain.DeliveryRecord) error {
			recorded = record
			return nil
		}).
		Times(1)

	jobs := make(chan SendJob, 1)
	results := make(chan domain.DispatchOutcome, 1)
	batch := uuid.New()
	jobs <- SendJob{
		Batch:     batch,
		Sender:    "noreply@frailejon.tech",
		Recipient: domain.Recipient{Email: "rejected@frailejon.tech", Name: "R", Message: "hola"},
		Results:   results,
	}
	close(jobs)

	worker := NewDispatchWorker(sender, recorder, jobs, slog.Default())
	req.NoError(worker.Run(context.Background()))

	outcome := <-results
	req.ErrorIs(outcome.Err, errors.ErrDelivery)
	req.Equal(batch, recorded.BatchID)
	req.False(recorded.OK)
	req.Equal(errors.ErrDelivery.Error(), recorded.Reason)
}
