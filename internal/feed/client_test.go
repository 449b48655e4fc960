package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func feedServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		switch r.URL.Path {
		case "/fixtures/lineups":
			require.Equal(t, "12345", r.URL.Query().Get("fixture"))
			_ = json.NewEncoder(w).Encode(lineupsResponse{Response: lineupFixture()})
		case "/fixtures":
			require.Equal(t, "12345", r.URL.Query().Get("id"))
			_ = json.NewEncoder(w).Encode(fixtureResponse{Response: []FixtureDetail{detailFixture()}})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestFetchFixture(t *testing.T) {
	srv := feedServer(t, http.StatusOK)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second, zap.NewNop())
	update, err := c.FetchFixture(context.Background(), 12345)
	require.NoError(t, err)

	require.Equal(t, 12345, update.FixtureID)
	require.Equal(t, "Arsenal", update.Home.Name)
	require.Equal(t, "Chelsea", update.Away.Name)
	require.Equal(t, 2, update.Home.Score)
	require.Equal(t, "2H", update.Status)
}

func TestFetchFixtureServerError(t *testing.T) {
	srv := feedServer(t, http.StatusBadGateway)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second, zap.NewNop())
	_, err := c.FetchFixture(context.Background(), 12345)
	require.Error(t, err)
}

func TestFetchFixtureMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": not-json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second, zap.NewNop())
	_, err := c.FetchFixture(context.Background(), 12345)
	require.Error(t, err)
}
