package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

func AuthMiddleware(tokenService ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeaderKey)
		fields := strings.Fields(header)
		if len(fields) != 2 || strings.ToLower(fields[0]) != authorizationTypeBearer {
			abortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		payload, err := tokenService.VerifyToken(fields[1])
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(authorizationPayloadKey, payload)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin(logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, exists := getAuthPayload(c, authorizationPayloadKey)
		if !exists {
			abortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !payload.IsAdmin() {
			logger.Warn("Access denied, admin role required", map[string]interface{}{
				"user_id": payload.UserID.String(),
				"path":    c.FullPath(),
			})
			abortWithError(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Next()
	}
}

func MetricsMiddleware(metrics ports.MetricsPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			metrics.RecordMetrics(c, start)
		}()
		c.Next()
	}
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok && payload != nil
}
