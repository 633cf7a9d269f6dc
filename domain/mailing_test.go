package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("provider said no")

func TestRecipient_Body(t *testing.T) {
	req := require.New(t)
	recipient := Recipient{Email: "alice@frailejon.tech", Name: "Alice", Message: "Nos vemos el viernes."}

	req.Equal("Hola Alice,\n\nNos vemos el viernes.\n\nSaludos,\nFrailejon.Tech", recipient.Body())
}

func TestNewBatch(t *testing.T) {
	req := require.New(t)
	recipients := []Recipient{{Email: "a@frailejon.tech"}, {Email: "b@frailejon.tech"}}

	first := NewBatch("noreply@frailejon.tech", recipients)
	second := NewBatch("noreply@frailejon.tech", recipients)

	req.Equal("noreply@frailejon.tech", first.Sender)
	req.Len(first.Recipients, 2)
	req.NotEqual(first.ID, second.ID)
}

func TestNewDeliveryRecord(t *testing.T) {
	req := require.New(t)
	batch := NewBatch("noreply@frailejon.tech", nil)

	ok := NewDeliveryRecord(batch.ID, DispatchOutcome{Recipient: Recipient{Email: "a@frailejon.tech"}})
	req.True(ok.OK)
	req.Empty(ok.Reason)
	req.Equal("a@frailejon.tech", ok.Email)

	failed := NewDeliveryRecord(batch.ID, DispatchOutcome{
		Recipient: Recipient{Email: "b@frailejon.tech"},
		Err:       errTest,
	})
	req.False(failed.OK)
	req.Equal("provider said no", failed.Reason)
}
