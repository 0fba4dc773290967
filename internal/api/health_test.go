// Copyright (c) 2026 Aeris Labs. All rights reserved.

package api_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeris-labs/aeris/internal/api"
)

// statusRecorder counts WriteHeader calls so tests can assert the status
// line is written exactly once.
type statusRecorder struct {
	*httptest.ResponseRecorder
	headerWrites int
}

func (recorder *statusRecorder) WriteHeader(statusCode int) {
	recorder.headerWrites++
	recorder.ResponseRecorder.WriteHeader(statusCode)
}

/*
TestReadiness_Ready verifies the happy path: all dependency checks pass and
the probe reports ready with a 200.
*/
func TestReadiness_Ready(t *testing.T) {
	_, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error { return nil },
		CheckCache:    func() error { return nil },
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.Data.Status)
}

/*
TestReadiness_Degraded verifies a failing dependency yields a single 503
response with the degraded status and the failing check listed.
*/
func TestReadiness_Degraded(t *testing.T) {
	_, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error { return nil },
		CheckCache:    func() error { return errors.New("connection refused") },
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	recorder := &statusRecorder{ResponseRecorder: httptest.NewRecorder()}
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, 1, recorder.headerWrites)

	var body struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name  string `json:"name"`
				IsOK  bool   `json:"ok"`
				Error string `json:"error"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Data.Status)
	require.Len(t, body.Data.Checks, 2)
	assert.True(t, body.Data.Checks[0].IsOK)
	assert.False(t, body.Data.Checks[1].IsOK)
	assert.Equal(t, "connection refused", body.Data.Checks[1].Error)
}
