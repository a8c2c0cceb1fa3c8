package mine_api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rskv-p/fpgrowth/config"
	"github.com/rskv-p/fpgrowth/pkg/x_db"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_api"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_serv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, withStore bool) *httptest.Server {
	t.Helper()
	var svc *mine_serv.Service
	if withStore {
		store, err := x_db.Open(x_db.Config{DSN: filepath.Join(t.TempDir(), "runs.db")}, zerolog.Nop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		svc = mine_serv.New(config.Default(), store)
	} else {
		svc = mine_serv.New(config.Default(), nil)
	}
	srv := httptest.NewServer(mine_api.Router(svc))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

var basket = [][]string{{"a", "b", "c"}, {"a", "b"}, {"a", "c"}, {"a"}, {"b", "c"}}

func TestHealth(t *testing.T) {
	srv := newServer(t, false)
	resp, body := do(t, http.MethodGet, srv.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","store":false}`, string(body))
}

func TestMine(t *testing.T) {
	srv := newServer(t, false)
	resp, body := do(t, http.MethodPost, srv.URL+"/api/mine", mine_serv.Job{Transactions: basket, MinSupport: 2})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var rep mine_serv.Report
	require.NoError(t, json.Unmarshal(body, &rep))
	assert.Equal(t, 6, rep.Count)
	assert.Equal(t, []string{"a"}, rep.Itemsets[0].Items)
	assert.Equal(t, 4, rep.Itemsets[0].Support)
}

func TestMine_BadRequests(t *testing.T) {
	srv := newServer(t, false)

	resp, _ := do(t, http.MethodPost, srv.URL+"/api/mine", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/mine", mine_serv.Job{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := do(t, http.MethodPost, srv.URL+"/api/mine", mine_serv.Job{Transactions: basket, MinSupportRatio: 2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "min_support_ratio")

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/mine", mine_serv.Job{Transactions: basket, Save: true})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRuns_Lifecycle(t *testing.T) {
	srv := newServer(t, true)

	resp, body := do(t, http.MethodPost, srv.URL+"/api/mine", mine_serv.Job{Source: "api", Transactions: basket, MinSupport: 2, Save: true})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var rep mine_serv.Report
	require.NoError(t, json.Unmarshal(body, &rep))
	require.NotEmpty(t, rep.RunID)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/runs?limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var runs []mine_serv.Report
	require.NoError(t, json.Unmarshal(body, &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, rep.RunID, runs[0].RunID)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/runs/"+rep.RunID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got mine_serv.Report
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Len(t, got.Itemsets, 6)

	resp, _ = do(t, http.MethodDelete, srv.URL+"/api/runs/"+rep.RunID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/runs/"+rep.RunID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, http.MethodDelete, srv.URL+"/api/runs/"+rep.RunID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/runs?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- mine_api.Serve(ctx, "127.0.0.1:0", mine_serv.New(config.Default(), nil))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestStats(t *testing.T) {
	srv := newServer(t, false)
	do(t, http.MethodPost, srv.URL+"/api/mine", mine_serv.Job{Transactions: basket, MinSupport: 2})

	resp, body := do(t, http.MethodGet, srv.URL+"/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]int64
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, int64(1), stats["mine.jobs"])
	assert.Equal(t, int64(6), stats["mine.itemsets"])
}
