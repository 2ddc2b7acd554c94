package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(ctx context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	c := NewHealthController(&stubPinger{})
	w := record(c.HealthCheckHandler, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	c := NewHealthController(&stubPinger{err: errors.New("dial tcp: connection refused")})
	w := record(c.HealthCheckHandler, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.JSONEq(t, `{"message":"Database unreachable"}`, w.Body.String())
}
