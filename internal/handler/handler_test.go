package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fennwick/TallyBot_Go/internal/catalog"
	"github.com/fennwick/TallyBot_Go/internal/domain"
	"github.com/fennwick/TallyBot_Go/internal/store"
)

// nopFlusher satisfies the service Flusher interfaces without touching disk
type nopFlusher struct{}

func (nopFlusher) Flush() {}

func newTestStore() *store.Store {
	return store.New(domain.Settings{DailyReward: 100, MaxStreakMultiplier: 2.0})
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "giftcards.yaml")
	data := []byte(`gift_cards:
  steam:
    display_name: Steam Gift Card
    cost: 500
  spotify:
    display_name: Spotify Gift Card
    cost: 400
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cat, err := catalog.Load(path)
	require.NoError(t, err)
	return cat
}

// seedBalance credits a user directly, bypassing the claim path
func seedBalance(t *testing.T, st *store.Store, userID string, amount int) {
	t.Helper()
	err := st.Update(userID, func(acct *domain.Account) error {
		acct.Balance = amount
		return nil
	})
	require.NoError(t, err)
}

func doJSONRequest(t *testing.T, h http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}
