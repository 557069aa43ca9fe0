package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"craft-economy/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := testContext()
	c.Set("request_id", "req-123")

	OK(c, gin.H{"balance": 500})

	assert.Equal(t, http.StatusOK, w.Code)

	var body SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "req-123", body.RequestID)
	assert.NotEmpty(t, body.Timestamp)
}

func TestCreated(t *testing.T) {
	c, w := testContext()

	Created(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestError_AppError(t *testing.T) {
	c, w := testContext()

	Error(c, apperror.ErrRequestNotFound())

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MKT_001", body.ErrorCode)
	assert.Equal(t, "Trade request not found", body.Message)
}

func TestError_UnknownError(t *testing.T) {
	c, w := testContext()

	Error(c, errors.New("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "SYS_000", body.ErrorCode)
	// Internal details must never leak into the envelope.
	assert.NotContains(t, body.Message, "something unexpected")
}

func TestGetRequestID_Generated(t *testing.T) {
	c, w := testContext()

	OK(c, nil)

	var body SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.RequestID)
}
