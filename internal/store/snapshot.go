package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fennwick/TallyBot_Go/internal/domain"
	"github.com/fennwick/TallyBot_Go/internal/logger"
)

// Backend persists and restores full-store snapshots. Load returns
// (nil, nil) when no snapshot exists yet; that is an empty start, not an
// error.
type Backend interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}

// MarshalSnapshot serializes the full store deterministically.
// encoding/json sorts map keys, which keeps successive snapshots
// diffable.
func (s *Store) MarshalSnapshot() ([]byte, error) {
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot parses a previously serialized store and replaces the
// current contents. Malformed bytes leave the store untouched and return
// an error wrapping domain.ErrSnapshotCorrupt.
func (s *Store) UnmarshalSnapshot(data []byte) error {
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	if snap.Users == nil {
		snap.Users = map[string]*domain.Account{}
	}
	s.Restore(&snap)
	return nil
}

// LoadFrom restores the store from backend. A missing snapshot starts
// empty; a corrupt one is reported so the caller can log it and start
// empty rather than crash.
func (s *Store) LoadFrom(ctx context.Context, backend Backend) error {
	snap, err := backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap == nil {
		logger.FromContext(ctx).Info("No snapshot found, starting empty")
		return nil
	}
	s.Restore(snap)
	logger.FromContext(ctx).Info("Snapshot restored", "accounts", s.Len())
	return nil
}

// SaveTo writes the current state to backend. Safe to run back-to-back;
// every call serializes the full current state, so concurrent flushes are
// last-write-wins.
func (s *Store) SaveTo(ctx context.Context, backend Backend) error {
	if err := backend.Save(ctx, s.Snapshot()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
