package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pajorstaer/rankshop/internal/domain"
	"go.uber.org/zap"
)

// ErrFlush marks a failed snapshot write. After it is returned the in-memory
// ledger and the file on disk may diverge; callers must surface the failure
// instead of confirming the operation.
var ErrFlush = errors.New("failed to flush ledger snapshot")

// Store owns the process-wide ledger. All mutations run through Update, which
// holds an exclusive lock across the in-memory change and the snapshot write,
// so no two mutations ever interleave and the file only ever contains fully
// committed state.
type Store struct {
	mu     sync.RWMutex
	path   string
	ledger *domain.Ledger
}

// Open loads the snapshot at path. A missing file yields a fresh empty ledger.
// A malformed file is logged and also replaced with a fresh ledger rather than
// failing startup.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.ledger = domain.NewLedger()
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("can't read ledger snapshot: %w", err)
	}

	ledger := domain.NewLedger()
	if err := json.Unmarshal(raw, ledger); err != nil {
		zap.L().Warn("ledger snapshot is corrupted, starting fresh", zap.String("path", path), zap.Error(err))
		ledger = domain.NewLedger()
	}
	if ledger.Users == nil {
		ledger.Users = map[string]*domain.UserAccount{}
	}
	s.ledger = ledger
	return s, nil
}

// View runs fn with read access to the committed in-memory ledger.
func (s *Store) View(fn func(l *domain.Ledger)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.ledger)
}

// Update runs fn with exclusive access to the ledger and flushes the snapshot
// on success. If fn returns an error nothing is written; fn must validate
// before mutating so a failed operation leaves the ledger untouched.
func (s *Store) Update(ctx context.Context, fn func(l *domain.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := fn(s.ledger); err != nil {
		return err
	}
	return s.flushLocked()
}

// flushLocked writes the whole ledger to a temp file in the snapshot's
// directory and renames it over the snapshot, so a crash mid-write never
// leaves a truncated file behind.
func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	return nil
}
