package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestError_WritesStatusAndMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, "Developer with defined email already exists")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":400,"message":"Developer with defined email already exists"}`, rec.Body.String())
}

func TestHelpers_DefaultMessages(t *testing.T) {
	cases := []struct {
		write   func(http.ResponseWriter, string)
		code    int
		message string
	}{
		{BadRequest, http.StatusBadRequest, "Bad request"},
		{Unauthorized, http.StatusUnauthorized, "Unauthorized"},
		{NotFound, http.StatusNotFound, "Resource not found"},
		{InternalServerError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.write(rec, "")

		body := decodeError(t, rec)
		assert.Equal(t, tc.code, rec.Code)
		assert.Equal(t, tc.code, body.Status)
		assert.Equal(t, tc.message, body.Message)
	}
}

func TestValidationError_IncludesFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "email is required"})

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, "email is required", body.Errors["email"])
}

func TestOKAndEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, []string{"a"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["a"]`, rec.Body.String())

	rec = httptest.NewRecorder()
	Empty(rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
