//go:generate go run go.uber.org/mock/mockgen -source=delivery.go -destination=../mocks/mock_delivery_log.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"fraibot/domain"
)

type IDeliveryLog interface {
	Record(record domain.DeliveryRecord) error
	List(batchID uuid.UUID, limit int) ([]domain.DeliveryRecord, error)
}

// DeliveryLog persists one record per send attempt in BadgerDB. It is an
// audit trail, not a retry queue: records are written once and never drive
// any re-send.
type DeliveryLog struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDeliveryLog(db *badger.DB, log *slog.Logger) DeliveryLog {
	return DeliveryLog{db: db, log: log}
}

// Record persists a delivery record.
// The key is formatted as "delivery:{batch_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two attempts
//     finish at the same nanosecond.
func (d DeliveryLog) Record(record domain.DeliveryRecord) error {
	key := fmt.Sprintf("delivery:%s:%019d:%s",
		record.BatchID,
		record.At.UnixNano(),
		record.ID,
	)
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// List retrieves the records of one batch using a prefix scan. Thanks to the
// padded timestamp in the key, records come back in attempt order. A limit
// of zero means no limit.
func (d DeliveryLog) List(batchID uuid.UUID, limit int) ([]domain.DeliveryRecord, error) {
	var records []domain.DeliveryRecord
	err := d.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("delivery:%s:", batchID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				d.log.Debug(fmt.Sprintf("Maximum of %d delivery records reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var rec domain.DeliveryRecord
				if err := json.Unmarshal(value, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
