package store

import (
	"sort"
	"sync"

	"github.com/fennwick/TallyBot_Go/internal/domain"
)

// Store owns the in-memory ledger: the mapping from user ID to account
// plus the global settings. All mutations go through Update/UpdatePair so
// the whole-store lock covers every engine operation; the expected load
// does not justify per-account locking.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*domain.Account
	settings domain.Settings
}

// New creates an empty store with the given settings.
func New(settings domain.Settings) *Store {
	return &Store{
		users:    make(map[string]*domain.Account),
		settings: settings,
	}
}

// Settings returns the global settings in effect.
func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// GetOrCreateAccount returns a copy of the account for userID, creating a
// zeroed one on first reference. It never fails.
func (s *Store) GetOrCreateAccount(userID string) *domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(userID).Clone()
}

// getOrCreateLocked must be called with the write lock held.
func (s *Store) getOrCreateLocked(userID string) *domain.Account {
	acct, ok := s.users[userID]
	if !ok {
		acct = domain.NewAccount()
		s.users[userID] = acct
	}
	return acct
}

// Update runs fn against the live account for userID under the write
// lock. If fn returns an error the account may not have been mutated;
// callers must validate before mutating so a rejected operation leaves no
// partial state behind.
func (s *Store) Update(userID string, fn func(acct *domain.Account) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.getOrCreateLocked(userID))
}

// UpdatePair runs fn against two live accounts under one critical
// section, so both mutations land together or not at all as far as any
// other operation can observe.
func (s *Store) UpdatePair(firstID, secondID string, fn func(first, second *domain.Account) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.getOrCreateLocked(firstID), s.getOrCreateLocked(secondID))
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Leaderboard returns up to limit entries ordered by balance descending,
// ties broken by user ID for stable output.
func (s *Store) Leaderboard(limit int) []domain.LeaderboardEntry {
	s.mu.RLock()
	entries := make([]domain.LeaderboardEntry, 0, len(s.users))
	for id, acct := range s.users {
		entries = append(entries, domain.LeaderboardEntry{UserID: id, Balance: acct.Balance})
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// snapshotLocked deep-copies the full store state. Callers hold at least
// the read lock.
func (s *Store) snapshotLocked() *domain.Snapshot {
	users := make(map[string]*domain.Account, len(s.users))
	for id, acct := range s.users {
		users[id] = acct.Clone()
	}
	return &domain.Snapshot{Users: users, Settings: s.settings}
}

// Snapshot returns a deep copy of the current state, safe to serialize
// without holding the store lock.
func (s *Store) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Restore replaces the store contents with snap. A snapshot written
// before settings existed carries a zero settings block; the configured
// settings are kept in that case so old files stay loadable.
func (s *Store) Restore(snap *domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]*domain.Account, len(snap.Users))
	for id, acct := range snap.Users {
		c := acct.Clone()
		if c.GiftCards == nil {
			c.GiftCards = []domain.GiftCard{}
		}
		s.users[id] = c
	}
	if snap.Settings != (domain.Settings{}) {
		s.settings = snap.Settings
	}
}
