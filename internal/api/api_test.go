package api

import (
	"bytes"
	mrand "math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakeview-games/fishbot/internal/economy"
	"github.com/lakeview-games/fishbot/internal/fish"
	"github.com/lakeview-games/fishbot/internal/game"
	"github.com/lakeview-games/fishbot/internal/logger"
	"github.com/lakeview-games/fishbot/internal/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "fishing.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	tables := economy.DefaultTables()
	table := fish.Default()
	resolver := economy.NewResolver(tables, table, mrand.New(mrand.NewSource(1)))
	svc := game.New(st, tables, table, resolver, nil, logger.Nop(), "block-123")

	return New(":0", svc, "", logger.Nop())
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestInitEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/init", map[string]any{
		"telegram_id": 42,
		"first_name":  "Ann",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp game.InitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 200, resp.Balance)
	assert.Equal(t, 100, resp.Energy)
	assert.Equal(t, "block-123", resp.AdsgramID)
}

func TestInitRejectsMalformedBody(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/init", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFishUnknownPlayerIs404(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/fish", map[string]any{"telegram_id": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFishAfterInit(t *testing.T) {
	s := testServer(t)

	doJSON(t, s.Handler(), http.MethodPost, "/api/init", map[string]any{"telegram_id": 42})
	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/fish", map[string]any{"telegram_id": 42})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp game.FishResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, []string{"miss", "caught"}, resp.Status)
}

func TestLeaderboardEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/leaderboard?type=weight&period=week", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp game.LeaderboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Leaderboard)
	assert.Zero(t, resp.Total)
}

func TestHealthz(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/fish", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
