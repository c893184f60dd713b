package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/diet-service/internal/domain/dto"
	"github.com/guttosm/diet-service/internal/i18n"
	"github.com/guttosm/diet-service/internal/middleware"
	"github.com/guttosm/diet-service/internal/service"
)

// JWTAuth returns a middleware that validates bearer tokens against the
// auth service. It lives here rather than in the middleware package because
// it is the only middleware that needs the service layer.
func JWTAuth(authService service.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := middleware.GetRequestID(c)

		unauthorized := func(messageKey string) {
			message := i18n.GetTranslator().Translate(messageKey, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthorized(i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			unauthorized(i18n.ErrKeyInvalidToken)
			return
		}

		c.Set("username", claims.Username)

		c.Next()
	}
}
