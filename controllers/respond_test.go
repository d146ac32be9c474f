package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandm-backend/services"
)

func TestWriteServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{services.Invalid("bad input"), http.StatusBadRequest},
		{services.NotFound("missing"), http.StatusNotFound},
		{services.Conflict("duplicate"), http.StatusConflict},
		{services.Unauthorized("who are you"), http.StatusUnauthorized},
		{services.Forbidden("not yours"), http.StatusForbidden},
		{services.Upstream("gateway down", nil), http.StatusBadGateway},
		{services.Internal("boom", nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeServiceError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["message"])
	}
}

func TestWriteServiceErrorHidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, assert.AnError)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["message"])
}
