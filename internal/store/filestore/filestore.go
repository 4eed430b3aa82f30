// Package filestore persists store snapshots to a single flat JSON file.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fennwick/TallyBot_Go/internal/domain"
)

// Backend writes the snapshot document to path. Saves go through a temp
// file and rename so a crash mid-write never leaves a truncated
// snapshot behind.
type Backend struct {
	path string
}

// New creates a file backend for path, creating the parent directory if
// needed.
func New(path string) (*Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: data file path is empty", domain.ErrInvalidInput)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return &Backend{path: path}, nil
}

// Load reads and parses the snapshot file. A missing file returns
// (nil, nil); malformed contents return an error wrapping
// domain.ErrSnapshotCorrupt.
func (b *Backend) Load(_ context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	if snap.Users == nil {
		snap.Users = map[string]*domain.Account{}
	}
	return &snap, nil
}

// CheckHealth verifies the snapshot directory is still reachable.
func (b *Backend) CheckHealth(_ context.Context) error {
	dir := filepath.Dir(b.path)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("data directory unavailable: %w", err)
	}
	return nil
}

// Save atomically replaces the snapshot file.
func (b *Backend) Save(_ context.Context, snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
