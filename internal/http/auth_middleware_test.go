package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"critiquelab/internal/service"
)

func TestDeviceAuthMiddleware_AllowsValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authSvc := service.NewDeviceAuthService("secret", time.Hour)
	token, err := authSvc.Register("Ana")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	r := gin.New()
	r.GET("/protected", DeviceAuthMiddleware(authSvc), func(c *gin.Context) {
		claims, ok := GetDeviceClaims(c)
		if !ok || claims.DeviceID != token.DeviceID {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDeviceAuthMiddleware_RejectsMissingOrBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authSvc := service.NewDeviceAuthService("secret", time.Hour)

	r := gin.New()
	r.GET("/protected", DeviceAuthMiddleware(authSvc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := map[string]string{
		"no header":    "",
		"wrong scheme": "Basic abc",
		"garbage":      "Bearer not.a.jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestClientKey_Resolution(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authSvc := service.NewDeviceAuthService("secret", time.Hour)
	token, err := authSvc.Register("")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	r := gin.New()
	r.GET("/anon", func(c *gin.Context) {
		c.String(http.StatusOK, clientKey(c))
	})
	r.GET("/auth", DeviceAuthMiddleware(authSvc), func(c *gin.Context) {
		c.String(http.StatusOK, clientKey(c))
	})

	t.Run("device claims win", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		req.Header.Set("X-Client-ID", "header-id")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Body.String() != token.DeviceID {
			t.Fatalf("expected device id %s, got %s", token.DeviceID, rec.Body.String())
		}
	})

	t.Run("header id next", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/anon", nil)
		req.Header.Set("X-Client-ID", "header-id")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Body.String() != "header-id" {
			t.Fatalf("expected header-id, got %s", rec.Body.String())
		}
	})

	t.Run("client ip as fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/anon", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Body.String() == "" {
			t.Fatalf("expected non-empty fallback key")
		}
	})
}
