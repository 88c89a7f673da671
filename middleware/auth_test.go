package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pizza-shop/config"
	"pizza-shop/utils"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": c.GetInt("user_id")})
	})
	r.GET("/admin", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	r := newProtectedRouter()

	customerToken, err := utils.GenerateToken(7, "c@x.com", "customer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	adminToken, err := utils.GenerateToken(1, "admin@x.com", "admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/protected", "", http.StatusUnauthorized},
		{"bad format", "/protected", "Token abc", http.StatusUnauthorized},
		{"lowercase scheme", "/protected", "bearer " + customerToken, http.StatusUnauthorized},
		{"prefix without token", "/protected", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "/protected", "Bearer garbage", http.StatusUnauthorized},
		{"valid token", "/protected", "Bearer " + customerToken, http.StatusOK},
		{"customer on admin route", "/admin", "Bearer " + customerToken, http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s: got status %d, want %d", tt.name, w.Code, tt.want)
		}
	}
}
