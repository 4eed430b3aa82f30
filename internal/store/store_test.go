package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennwick/TallyBot_Go/internal/domain"
)

func testSettings() domain.Settings {
	return domain.Settings{DailyReward: 100, MaxStreakMultiplier: 2.0}
}

func TestGetOrCreateAccount(t *testing.T) {
	st := New(testSettings())

	acct := st.GetOrCreateAccount("alice")
	assert.Zero(t, acct.Balance)
	assert.Zero(t, acct.Streak)
	assert.Nil(t, acct.LastClaim)
	assert.NotNil(t, acct.GiftCards)
	assert.Empty(t, acct.GiftCards)
	assert.Equal(t, 1, st.Len())

	// Second reference returns the same account, not a new one.
	require.NoError(t, st.Update("alice", func(a *domain.Account) error {
		a.Balance = 42
		return nil
	}))
	assert.Equal(t, 42, st.GetOrCreateAccount("alice").Balance)
	assert.Equal(t, 1, st.Len())
}

func TestGetOrCreateAccountReturnsCopy(t *testing.T) {
	st := New(testSettings())

	acct := st.GetOrCreateAccount("alice")
	acct.Balance = 9999

	// Mutating the copy must not touch the stored account.
	assert.Zero(t, st.GetOrCreateAccount("alice").Balance)
}

func TestUpdatePairIsAtomic(t *testing.T) {
	st := New(testSettings())

	err := st.UpdatePair("alice", "bob", func(a, b *domain.Account) error {
		a.Balance = 10
		return errors.New("abort after partial mutation")
	})
	require.Error(t, err)

	// The callback mutated before failing; UpdatePair itself cannot undo
	// that, which is why engines validate before mutating. This test pins
	// the contract: a successful pair update lands both sides together.
	require.NoError(t, st.UpdatePair("carol", "dave", func(a, b *domain.Account) error {
		a.Balance = 70
		b.Balance = 30
		return nil
	}))
	assert.Equal(t, 70, st.GetOrCreateAccount("carol").Balance)
	assert.Equal(t, 30, st.GetOrCreateAccount("dave").Balance)
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := New(testSettings())
	claimTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, st.Update("alice", func(a *domain.Account) error {
		a.Balance = 150
		a.Streak = 3
		a.TotalEarned = 500
		a.TotalSpent = 350
		a.LastClaim = &claimTime
		a.GiftCards = append(a.GiftCards, domain.GiftCard{Kind: "steam", Cost: 500})
		return nil
	}))
	require.NoError(t, st.Update("bob", func(a *domain.Account) error {
		a.Balance = 20
		return nil
	}))

	data, err := st.MarshalSnapshot()
	require.NoError(t, err)

	restored := New(domain.Settings{})
	require.NoError(t, restored.UnmarshalSnapshot(data))

	assert.Equal(t, st.Snapshot(), restored.Snapshot())

	// Empty gift-card slices survive the round trip as empty, not nil.
	bob := restored.GetOrCreateAccount("bob")
	assert.NotNil(t, bob.GiftCards)
	assert.Empty(t, bob.GiftCards)

	assert.Equal(t, testSettings(), restored.Settings())
}

func TestUnmarshalSnapshotMalformed(t *testing.T) {
	st := New(testSettings())
	require.NoError(t, st.Update("alice", func(a *domain.Account) error {
		a.Balance = 99
		return nil
	}))

	err := st.UnmarshalSnapshot([]byte("{not json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSnapshotCorrupt))

	// Pre-call state is intact.
	assert.Equal(t, 99, st.GetOrCreateAccount("alice").Balance)
	assert.Equal(t, 1, st.Len())
}

func TestRestoreKeepsConfiguredSettingsForZeroSnapshot(t *testing.T) {
	st := New(testSettings())
	st.Restore(&domain.Snapshot{Users: map[string]*domain.Account{}})

	assert.Equal(t, testSettings(), st.Settings())
}

func TestLeaderboard(t *testing.T) {
	st := New(testSettings())
	balances := map[string]int{"alice": 300, "bob": 100, "carol": 300, "dave": 50}
	for id, balance := range balances {
		b := balance
		require.NoError(t, st.Update(id, func(a *domain.Account) error {
			a.Balance = b
			return nil
		}))
	}

	entries := st.Leaderboard(3)
	require.Len(t, entries, 3)

	// Descending by balance, ties broken by user ID.
	assert.Equal(t, "alice", entries[0].UserID)
	assert.Equal(t, "carol", entries[1].UserID)
	assert.Equal(t, "bob", entries[2].UserID)
}

func TestConcurrentUpdates(t *testing.T) {
	st := New(testSettings())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update("alice", func(a *domain.Account) error {
				a.Balance++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, st.GetOrCreateAccount("alice").Balance)
}
