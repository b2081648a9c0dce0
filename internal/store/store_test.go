package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pajorstaer/rankshop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, string) {
	path := filepath.Join(t.TempDir(), "data.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestOpenMissingFile(t *testing.T) {
	s, _ := newStore(t)

	s.View(func(l *domain.Ledger) {
		assert.Empty(t, l.Products)
		assert.Empty(t, l.Orders)
		assert.Empty(t, l.Users)
		assert.Empty(t, l.TopupLogs)
	})
}

func TestOpenCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	s.View(func(l *domain.Ledger) {
		assert.Empty(t, l.Orders)
	})
}

func TestUpdateFlushesSnapshot(t *testing.T) {
	s, path := newStore(t)

	err := s.Update(context.Background(), func(l *domain.Ledger) error {
		l.Account("u1").Balance = 150
		l.Products = append(l.Products, domain.Product{Emoji: "💎", Name: "VIP", Rank: "VIP-Role", Price: 100})
		return nil
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var snapshot map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	for _, key := range []string{"products", "orders", "users", "topup_logs"} {
		assert.Contains(t, snapshot, key)
	}
}

func TestRoundTrip(t *testing.T) {
	s, path := newStore(t)

	err := s.Update(context.Background(), func(l *domain.Ledger) error {
		l.Products = append(l.Products, domain.Product{Emoji: "💎", Name: "VIP", Rank: "VIP-Role", Price: 100})
		l.Orders = append(l.Orders, &domain.Order{OrderID: 1, UserID: "u1", RankName: "Shadow", Color: "#ff66cc", Price: 50, Status: domain.PendingOrderStatus})
		l.Account("u1").Balance = 42
		l.TopupLogs = append(l.TopupLogs, domain.TopupRecord{UserID: "u1", Amount: 100, Link: "https://gift.example/abc"})
		return nil
	})
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)

	var before, after domain.Ledger
	s.View(func(l *domain.Ledger) { before = *l })
	reopened.View(func(l *domain.Ledger) { after = *l })

	assert.Equal(t, before.Products, after.Products)
	assert.Equal(t, before.Orders, after.Orders)
	assert.Equal(t, before.Users, after.Users)
	assert.Equal(t, before.TopupLogs, after.TopupLogs)
}

func TestUpdateErrorDoesNotFlush(t *testing.T) {
	s, path := newStore(t)
	wantErr := errors.New("rejected")

	err := s.Update(context.Background(), func(l *domain.Ledger) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "no snapshot should be written for a failed update")
}

func TestUpdateCanceledContext(t *testing.T) {
	s, _ := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Update(ctx, func(l *domain.Ledger) error {
		t.Error("mutation should not run with a canceled context")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentUpdates(t *testing.T) {
	s, path := newStore(t)

	const workers = 8
	const creditsPerWorker = 25

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < creditsPerWorker; j++ {
				err := s.Update(context.Background(), func(l *domain.Ledger) error {
					l.Account("u1").Balance++
					return nil
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	s.View(func(l *domain.Ledger) {
		assert.Equal(t, workers*creditsPerWorker, l.Users["u1"].Balance)
	})

	// Last committed snapshot must contain every mutation.
	reopened, err := Open(path)
	require.NoError(t, err)
	reopened.View(func(l *domain.Ledger) {
		assert.Equal(t, workers*creditsPerWorker, l.Users["u1"].Balance)
	})
}
