package middleware

import (
	"errors"
	"net/http"
	"strings"

	domainerr "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	authport "github.com/caiofernandes-dev/banco-api/internal/domain/port/auth"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SubjectKey is the context key under which the authenticated subject is stored
const SubjectKey = "auth_subject"

const bearerPrefix = "Bearer "

// BearerAuth guards routes with a bearer token. A missing or malformed
// Authorization header is 403, a token that fails validation is 401.
func BearerAuth(tokens authport.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrTokenInvalid),
				Message: "Not authenticated",
			})
			return
		}

		subject, err := tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, domainerr.ErrTokenExpired) {
				message = "Token expired"
			}
			logger.Warn("Rejected bearer token", map[string]any{
				"path":   c.Request.URL.Path,
				"reason": message,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: message,
			})
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
