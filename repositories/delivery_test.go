package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fraibot/domain"
	apperrors "fraibot/errors"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDeliveryLog_RecordAndList(t *testing.T) {
	req := require.New(t)
	deliveries := NewDeliveryLog(openTestDB(t), slog.Default())

	batch := uuid.New()
	at := time.Now().UTC()
	records := []domain.DeliveryRecord{
		{ID: uuid.New(), BatchID: batch, Email: "alice@frailejon.tech", OK: true, At: at},
		{ID: uuid.New(), BatchID: batch, Email: "bob@frailejon.tech", OK: false, Reason: apperrors.ErrDelivery.Error(), At: at.Add(1 * time.Millisecond)},
		{ID: uuid.New(), BatchID: batch, Email: "clara@frailejon.tech", OK: true, At: at.Add(2 * time.Millisecond)},
	}
	for _, rec := range records {
		req.NoError(deliveries.Record(rec))
	}

	fetched, err := deliveries.List(batch, 0)
	req.NoError(err)
	req.Len(fetched, len(records))
	// The padded timestamp in the key keeps attempt order.
	req.Equal("alice@frailejon.tech", fetched[0].Email)
	req.Equal("bob@frailejon.tech", fetched[1].Email)
	req.False(fetched[1].OK)
	req.Equal("clara@frailejon.tech", fetched[2].Email)
}

func TestDeliveryLog_ListHonoursLimit(t *testing.T) {
	req := require.New(t)
	deliveries := NewDeliveryLog(openTestDB(t), slog.Default())

	batch := uuid.New()
	at := time.Now().UTC()
	for i := range 5 {
		err := deliveries.Record(domain.DeliveryRecord{
			ID:      uuid.New(),
			BatchID: batch,
			Email:   "user@frailejon.tech",
			OK:      true,
			At:      at.Add(time.Duration(i) * time.Millisecond),
		})
		req.NoError(err)
	}

	fetched, err := deliveries.List(batch, 2)
	req.NoError(err)
	req.Len(fetched, 2)
}

func TestDeliveryLog_ListScopedToBatch(t *testing.T) {
	req := require.New(t)
	deliveries := NewDeliveryLog(openTestDB(t), slog.Default())

	mine := uuid.New()
	other := uuid.New()
	req.NoError(deliveries.Record(domain.DeliveryRecord{ID: uuid.New(), BatchID: mine, Email: "a@frailejon.tech", OK: true, At: time.Now().UTC()}))
	req.NoError(deliveries.Record(domain.DeliveryRecord{ID: uuid.New(), BatchID: other, Email: "b@frailejon.tech", OK: true, At: time.Now().UTC()}))

	fetched, err := deliveries.List(mine, 0)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("a@frailejon.tech", fetched[0].Email)
}
