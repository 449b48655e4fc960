package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mierzida/FLP-forBBK/internal/catalog"
	"github.com/mierzida/FLP-forBBK/internal/hub"
	"github.com/mierzida/FLP-forBBK/internal/session"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	path := filepath.Join(t.TempDir(), "teams.json")
	doc := `[{"id": "fcb", "slug": "fc-barcelona", "country": "ES", "englishName": "FC Barcelona",
		"logos": {"svg": "s.svg", "png": "p.png"}}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	cat, err := catalog.Load(path)
	require.NoError(t, err)

	h := hub.NewHub(ctx, session.Config{})
	srv := httptest.NewServer(SetupRoutes(h, cat, zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(srv.URL+"/sessions", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Code, 6)
	return body.Code
}

func TestCreateSessionAndSnapshotRoundTrip(t *testing.T) {
	srv := testServer(t)
	code := createSession(t, srv)

	resp, err := http.Get(srv.URL + "/sessions/" + code + "/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	require.Contains(t, snap, "teamA")
	require.Contains(t, snap, "verticalMode")

	doc := `{"teamA": {"name": "Imported FC", "score": 2}}`
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/sessions/"+code+"/snapshot", bytes.NewBufferString(doc))
	require.NoError(t, err)
	put, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	put.Body.Close()
	require.Equal(t, http.StatusNoContent, put.StatusCode)

	resp2, err := http.Get(srv.URL + "/sessions/" + code + "/snapshot")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var after struct {
		TeamA struct {
			Name  string `json:"name"`
			Score int    `json:"score"`
		} `json:"teamA"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&after))
	require.Equal(t, "Imported FC", after.TeamA.Name)
	require.Equal(t, 2, after.TeamA.Score)
}

func TestSnapshotUnknownSessionIs404(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/sessions/NOPE99/snapshot")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSelectTeamAppliesCatalogEntry(t *testing.T) {
	srv := testServer(t)
	code := createSession(t, srv)

	body := bytes.NewBufferString(`{"team": "fcb", "target": "B"}`)
	resp, err := http.Post(srv.URL+"/sessions/"+code+"/team", "application/json", body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	snap, err := http.Get(srv.URL + "/sessions/" + code + "/snapshot")
	require.NoError(t, err)
	defer snap.Body.Close()
	var after struct {
		TeamB struct {
			Name   string `json:"name"`
			LogoID string `json:"logoId"`
		} `json:"teamB"`
	}
	require.NoError(t, json.NewDecoder(snap.Body).Decode(&after))
	require.Equal(t, "FC Barcelona", after.TeamB.Name)
	require.Equal(t, "fcb", after.TeamB.LogoID)
}

func TestSelectTeamRejectsBadTarget(t *testing.T) {
	srv := testServer(t)
	code := createSession(t, srv)

	body := bytes.NewBufferString(`{"team": "fcb", "target": "C"}`)
	resp, err := http.Post(srv.URL+"/sessions/"+code+"/team", "application/json", body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCatalog(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/catalog/teams")
	require.NoError(t, err)
	defer resp.Body.Close()

	var teams []catalog.Team
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&teams))
	require.Len(t, teams, 1)
	require.Equal(t, "fcb", teams[0].ID)
}
