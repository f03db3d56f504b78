package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func apiKeyRouter(keys map[string]bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuth(keys))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	keys := map[string]bool{"printer-line-key": true}

	tests := []struct {
		name     string
		keys     map[string]bool
		header   string
		query    string
		wantCode int
	}{
		{name: "disabled when no keys configured", keys: nil, wantCode: http.StatusOK},
		{name: "valid header key", keys: keys, header: "printer-line-key", wantCode: http.StatusOK},
		{name: "valid query key", keys: keys, query: "printer-line-key", wantCode: http.StatusOK},
		{name: "missing key", keys: keys, wantCode: http.StatusUnauthorized},
		{name: "wrong key", keys: keys, header: "nope", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := apiKeyRouter(tt.keys)
			target := "/"
			if tt.query != "" {
				target = "/?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
