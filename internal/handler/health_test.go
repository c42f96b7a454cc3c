package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPinger stands in for the connection pool in health endpoint tests.
type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestRoot(t *testing.T) {
	rec := serve(&mockPackageServicer{}, nil, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Welcome to Wanderlust Travel API", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "/docs", body["docs"])
}

func TestHealth_OK(t *testing.T) {
	rec := serve(&mockPackageServicer{}, &mockPinger{}, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	pinger := &mockPinger{err: errors.New("connection refused")}

	rec := serve(&mockPackageServicer{}, pinger, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "disconnected", body["database"])
}

func TestOpenAPISpecServed(t *testing.T) {
	rec := serve(&mockPackageServicer{}, nil, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "yaml")
	assert.Contains(t, rec.Body.String(), "openapi:")
}

func TestDocsPageServed(t *testing.T) {
	rec := serve(&mockPackageServicer{}, nil, httptest.NewRequest(http.MethodGet, "/docs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/openapi.yaml")
}
