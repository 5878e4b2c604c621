//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkingpro/internal/handler/httperr"
	"parkingpro/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/x", h)
	return r
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		expectCode int
		expectBody string
	}{
		{
			name: "public error keeps its message",
			handler: func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusNotFound, errors.New("no rows"), "Plan not found", nil)
			},
			expectCode: http.StatusNotFound,
			expectBody: `{"error":{"message":"Plan not found"}}`,
		},
		{
			name: "server error hides the cause",
			handler: func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("pool closed"), "Failed to load subscription", nil)
			},
			expectCode: http.StatusInternalServerError,
			expectBody: `{"error":{"message":"Failed to load subscription"}}`,
		},
		{
			name:       "silent handler becomes internal error",
			handler:    func(c *gin.Context) {},
			expectCode: http.StatusInternalServerError,
			expectBody: `{"error":{"message":"Internal server error"}}`,
		},
		{
			name:       "panic is recovered",
			handler:    func(c *gin.Context) { panic("boom") },
			expectCode: http.StatusInternalServerError,
			expectBody: `{"error":{"message":"Internal server error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newErrorRouter(tt.handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.expectCode, w.Code)
			assert.JSONEq(t, tt.expectBody, w.Body.String())
		})
	}
}
