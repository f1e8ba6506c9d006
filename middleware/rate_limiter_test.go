package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"forwarded chain wins", "203.0.113.9, 10.0.0.1", "198.51.100.2", "10.0.0.2:4321", "203.0.113.9"},
		{"real ip when no forwarded", "", "198.51.100.2", "10.0.0.2:4321", "198.51.100.2"},
		{"remote addr port stripped", "", "", "10.0.0.2:4321", "10.0.0.2"},
		{"remote addr without port", "", "", "10.0.0.2", "10.0.0.2"},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.RemoteAddr = tt.remoteAddr
		if tt.xff != "" {
			c.Request.Header.Set("X-Forwarded-For", tt.xff)
		}
		if tt.xri != "" {
			c.Request.Header.Set("X-Real-IP", tt.xri)
		}
		if got := getClientIP(c); got != tt.want {
			t.Errorf("%s: getClientIP = %q, want %q", tt.name, got, tt.want)
		}
	}
}
