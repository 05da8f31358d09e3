package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var response Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		send    func(c *gin.Context)
		status  int
		code    string
		message string
	}{
		{"BadRequest", func(c *gin.Context) { BadRequestResponse(c, "bad amount") }, http.StatusBadRequest, "BAD_REQUEST", "Invalid request data"},
		{"Validation", func(c *gin.Context) { ValidationErrorResponse(c, map[string]string{"question": "required"}) }, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data"},
		{"Unauthorized", UnauthorizedResponse, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized access"},
		{"Internal", func(c *gin.Context) { InternalErrorResponse(c, "Failed to settle") }, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to settle"},
		{"TooManyRequests", TooManyRequestsResponse, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.send(c)

			assert.Equal(t, tt.status, w.Code)
			response := decode(t, w)
			assert.False(t, response.Success)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.code, response.Error.Code)
			assert.Equal(t, tt.message, response.Error.Message)
		})
	}
}

func TestSuccessResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Created", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		CreatedResponse(c, "Market created successfully", map[string]string{"id": "123"})

		assert.Equal(t, http.StatusCreated, w.Code)
		response := decode(t, w)
		assert.True(t, response.Success)
		assert.Equal(t, "Market created successfully", response.Message)
		assert.Nil(t, response.Error)
	})

	t.Run("Paginated", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		PaginatedResponse(c, "Markets retrieved", []string{"a"}, NewPaginationMeta(2, 10, 25))

		response := decode(t, w)
		metaBytes, err := json.Marshal(response.Meta)
		require.NoError(t, err)
		var meta PaginationMeta
		require.NoError(t, json.Unmarshal(metaBytes, &meta))
		assert.Equal(t, 2, meta.Page)
		assert.Equal(t, 3, meta.TotalPages)
		assert.True(t, meta.HasNext)
		assert.True(t, meta.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		meta := NewPaginationMeta(3, 10, 25)
		assert.False(t, meta.HasNext)
		assert.Equal(t, 3, meta.TotalPages)

		empty := NewPaginationMeta(1, 0, 0)
		assert.Equal(t, 1, empty.PerPage)
		assert.Equal(t, 0, empty.TotalPages)
		assert.False(t, empty.HasNext)
	})
}
