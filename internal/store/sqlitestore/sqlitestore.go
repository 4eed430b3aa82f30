// Package sqlitestore persists store snapshots to an embedded SQLite
// database. It serves deployments that want queryable durable state; the
// in-memory store model is unchanged, the database only holds snapshots.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fennwick/TallyBot_Go/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	user_id      TEXT PRIMARY KEY,
	balance      INTEGER NOT NULL,
	last_claim   TEXT,
	streak       INTEGER NOT NULL,
	total_earned INTEGER NOT NULL,
	total_spent  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS gift_cards (
	user_id  TEXT NOT NULL,
	position INTEGER NOT NULL,
	kind     TEXT NOT NULL,
	cost     INTEGER NOT NULL,
	PRIMARY KEY (user_id, position)
);

CREATE TABLE IF NOT EXISTS settings (
	id                    INTEGER PRIMARY KEY CHECK (id = 1),
	daily_reward          INTEGER NOT NULL,
	max_streak_multiplier REAL NOT NULL
);
`

// Backend stores snapshots relationally.
type Backend struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Backend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// A snapshot write rewrites every row; a single connection avoids
	// SQLITE_BUSY between the periodic and event-driven flush paths.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Backend{db: db}, nil
}

// Close releases the database handle.
func (b *Backend) Close() error {
	return b.db.Close()
}

// CheckHealth verifies the database connection is still usable.
func (b *Backend) CheckHealth(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

// Load reads the last saved snapshot. A database with no settings row
// and no accounts has never been saved to; that returns (nil, nil).
func (b *Backend) Load(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{Users: map[string]*domain.Account{}}

	var haveSettings bool
	row := b.db.QueryRowContext(ctx,
		`SELECT daily_reward, max_streak_multiplier FROM settings WHERE id = 1`)
	switch err := row.Scan(&snap.Settings.DailyReward, &snap.Settings.MaxStreakMultiplier); err {
	case nil:
		haveSettings = true
	case sql.ErrNoRows:
	default:
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	rows, err := b.db.QueryContext(ctx,
		`SELECT user_id, balance, last_claim, streak, total_earned, total_spent FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID    string
			lastClaim sql.NullString
			acct      = domain.NewAccount()
		)
		if err := rows.Scan(&userID, &acct.Balance, &lastClaim, &acct.Streak,
			&acct.TotalEarned, &acct.TotalSpent); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		if lastClaim.Valid {
			t, err := time.Parse(time.RFC3339Nano, lastClaim.String)
			if err != nil {
				return nil, fmt.Errorf("%w: bad last_claim for %s: %v", domain.ErrSnapshotCorrupt, userID, err)
			}
			acct.LastClaim = &t
		}
		snap.Users[userID] = acct
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	if err := b.loadGiftCards(ctx, snap); err != nil {
		return nil, err
	}

	if !haveSettings && len(snap.Users) == 0 {
		return nil, nil
	}
	return snap, nil
}

func (b *Backend) loadGiftCards(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := b.db.QueryContext(ctx,
		`SELECT user_id, kind, cost FROM gift_cards ORDER BY user_id, position`)
	if err != nil {
		return fmt.Errorf("failed to load gift cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID string
			card   domain.GiftCard
		)
		if err := rows.Scan(&userID, &card.Kind, &card.Cost); err != nil {
			return fmt.Errorf("failed to scan gift card: %w", err)
		}
		acct, ok := snap.Users[userID]
		if !ok {
			return fmt.Errorf("%w: gift card for unknown account %s", domain.ErrSnapshotCorrupt, userID)
		}
		acct.GiftCards = append(acct.GiftCards, card)
	}
	return rows.Err()
}

// Save replaces the stored snapshot in one transaction.
func (b *Backend) Save(ctx context.Context, snap *domain.Snapshot) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"accounts", "gift_cards", "settings"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO settings (id, daily_reward, max_streak_multiplier) VALUES (1, ?, ?)`,
		snap.Settings.DailyReward, snap.Settings.MaxStreakMultiplier); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	for userID, acct := range snap.Users {
		var lastClaim any
		if acct.LastClaim != nil {
			lastClaim = acct.LastClaim.Format(time.RFC3339Nano)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (user_id, balance, last_claim, streak, total_earned, total_spent)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			userID, acct.Balance, lastClaim, acct.Streak, acct.TotalEarned, acct.TotalSpent); err != nil {
			return fmt.Errorf("failed to save account %s: %w", userID, err)
		}
		for i, card := range acct.GiftCards {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO gift_cards (user_id, position, kind, cost) VALUES (?, ?, ?, ?)`,
				userID, i, card.Kind, card.Cost); err != nil {
				return fmt.Errorf("failed to save gift card: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
