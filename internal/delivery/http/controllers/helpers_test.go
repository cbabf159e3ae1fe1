package controllers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"interviewscheduler/internal/delivery/http/helpers"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	employerID  = "3fa85f64-5717-4562-b3fc-2c963f66afa6"
	candidateID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	interviewID = "9b2f6a1e-52c4-4d0e-8f39-0c1b2a3d4e5f"
)

func strPtr(s string) *string { return &s }

// decodeEnvelope decodes the response envelope and, when dest is non-nil, its data.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) helpers.APIResponse {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	if dest != nil && env.Error == nil {
		require.NoError(t, json.Unmarshal(env.Data, dest))
	}
	return helpers.APIResponse{Data: env.Data, Error: env.Error}
}
