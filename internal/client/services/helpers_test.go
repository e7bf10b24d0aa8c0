package services

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/rentverse/internal/client/api"
	"github.com/stretchr/testify/require"
)

// recorded is one request seen by the test server.
type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
	Auth   string
}

type testServer struct {
	mux      *http.ServeMux
	requests []recorded
}

func newTestAPI(t *testing.T) (*api.Client, *testServer) {
	t.Helper()
	ts := &testServer{mux: http.NewServeMux()}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		ts.requests = append(ts.requests, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(b),
			Auth:   r.Header.Get("Authorization"),
		})
		r.Body = io.NopCloser(bytes.NewReader(b))
		ts.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := api.New(srv.URL)
	require.NoError(t, err)
	return c, ts
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
