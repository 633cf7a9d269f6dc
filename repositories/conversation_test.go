package repositories

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"fraibot/domain"
)

func TestConversationStore_UnknownUserIsEmpty(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(5, slog.Default())

	req.Empty(store.History(42))
	req.Equal("", store.Render(42))
}

func TestConversationStore_IsolatesUsers(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(5, slog.Default())

	store.Append(1, domain.UserUtterance("hola desde uno"))
	store.Append(2, domain.UserUtterance("hola desde dos"))

	req.Len(store.History(1), 1)
	req.Len(store.History(2), 1)
	req.Equal("hola desde uno", store.History(1)[0].Text)
	req.Equal("hola desde dos", store.History(2)[0].Text)
}

func TestConversationStore_BoundedPerUser(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(5, slog.Default())

	for i := 1; i <= 7; i++ {
		store.Append(7, domain.UserUtterance(fmt.Sprintf("u%d", i)))
	}

	turns := store.History(7)
	req.Len(turns, 5)
	req.Equal("u3", turns[0].Text)
	req.Equal("u7", turns[4].Text)
}

func TestConversationStore_ConcurrentAppends(t *testing.T) {
	req := require.New(t)
	store := NewConversationStore(100, slog.Default())

	users := 10
	appendsPerUser := 50
	var wg sync.WaitGroup
	for u := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range appendsPerUser {
				store.Append(domain.UserID(u), domain.UserUtterance(fmt.Sprintf("msg %d", i)))
			}
		}()
	}
	wg.Wait()

	for u := range users {
		req.Len(store.History(domain.UserID(u)), appendsPerUser)
	}
}
