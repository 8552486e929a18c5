package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"critiquelab/internal/service"
)

const deviceClaimsKey = "device_claims"

// DeviceAuthMiddleware valida tokens de dispositivo y guarda claims en el
// contexto.
func DeviceAuthMiddleware(authSvc *service.DeviceAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := authSvc.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(deviceClaimsKey, claims)
		c.Next()
	}
}

// GetDeviceClaims obtiene los claims del dispositivo desde el contexto.
func GetDeviceClaims(c *gin.Context) (service.DeviceClaims, bool) {
	val, ok := c.Get(deviceClaimsKey)
	if !ok {
		return service.DeviceClaims{}, false
	}
	claims, ok := val.(service.DeviceClaims)
	return claims, ok
}

// clientKey resuelve la clave de usuario para los stores: el dispositivo
// autenticado si lo hay, el header X-Client-ID si no, y la IP como ultimo
// recurso (equivale al scoping por origen del almacenamiento local).
func clientKey(c *gin.Context) string {
	if claims, ok := GetDeviceClaims(c); ok && claims.DeviceID != "" {
		return claims.DeviceID
	}
	if id := strings.TrimSpace(c.GetHeader("X-Client-ID")); id != "" {
		return id
	}
	return c.ClientIP()
}
