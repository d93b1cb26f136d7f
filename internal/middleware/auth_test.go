package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurants/pkg/token"
	"restaurants/pkg/utils/v"
)

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager, err := token.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	valid, err := manager.Generate("alice")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/", Authenticate(manager), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(v.KeySubject))
	})

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK, body: "alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(v.HeaderAuthorization, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), "4010000006")
			}
		})
	}
}
