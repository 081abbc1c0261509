package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(zerolog.Nop(), ":0")
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestInsertAndLookup(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/insert", insertRequest{Key: 42, Value: "hello"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/lookup/42", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got entryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(42), got.Key)
	assert.Equal(t, "hello", got.Value)
}

func TestLookupMissing(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/lookup/7", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRangeLookup(t *testing.T) {
	s := newTestServer(t)
	for _, k := range []uint64{10, 20, 30} {
		rec := doJSON(t, s, http.MethodPost, "/insert", insertRequest{Key: k, Value: "v"})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, s, http.MethodGet, "/lookup_ge/15", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got entryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(20), got.Key)

	rec = doJSON(t, s, http.MethodGet, "/lookup_le/15", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(10), got.Key)
}

func TestDelete(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/insert", insertRequest{Key: 1, Value: "v"})

	rec := doJSON(t, s, http.MethodDelete, "/delete/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/lookup/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/insert", insertRequest{Key: 1, Value: "v"})

	rec := doJSON(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ebtree_inserts_total")
}
