package middleware

import (
	"net/http"

	"github.com/autenticco/backend/internal/domain/identity"
	"github.com/autenticco/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for permission middleware
type PermissionConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
}

// RequirePermission creates middleware that requires a specific permission
func RequirePermission(permission string) gin.HandlerFunc {
	return RequireAnyPermissionWithConfig(PermissionConfig{}, permission)
}

// RequireAnyPermission creates middleware that requires any of the specified permissions
func RequireAnyPermission(permissions ...string) gin.HandlerFunc {
	return RequireAnyPermissionWithConfig(PermissionConfig{}, permissions...)
}

// RequireAnyPermissionWithConfig creates middleware that requires any of the
// specified permissions with custom config
func RequireAnyPermissionWithConfig(cfg PermissionConfig, permissions ...string) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			denyPermission(c, log, http.StatusUnauthorized, permissions, "No authentication claims found")
			return
		}
		if !claims.HasAnyPermission(permissions...) {
			denyPermission(c, log, http.StatusForbidden, permissions, "User lacks required permission")
			return
		}
		c.Next()
	}
}

// RequireResource checks "<resource>:read" for safe methods and
// "<resource>:write" for everything else
func RequireResource(resource string) gin.HandlerFunc {
	read := RequirePermission(resource + ":" + identity.ActionRead)
	write := RequirePermission(resource + ":" + identity.ActionWrite)
	return func(c *gin.Context) {
		if methodToAction(c.Request.Method) == identity.ActionRead {
			read(c)
			return
		}
		write(c)
	}
}

func methodToAction(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return identity.ActionRead
	default:
		return identity.ActionWrite
	}
}

func denyPermission(c *gin.Context, log *zap.Logger, status int, required []string, reason string) {
	log.Warn("Permission denied",
		zap.String("user_id", GetJWTUserID(c)),
		zap.Strings("required_any", required),
		zap.String("reason", reason),
		zap.String("path", c.Request.URL.Path),
	)

	code := dto.ErrCodeForbidden
	message := "You do not have permission to perform this action"
	if status == http.StatusUnauthorized {
		code = dto.ErrCodeUnauthorized
		message = "Authentication required"
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponseWithRequestID(code, message, c.GetString(RequestIDKey)))
}

// HasPermission reports whether the authenticated user holds permission
func HasPermission(c *gin.Context, permission string) bool {
	claims := GetJWTClaims(c)
	return claims != nil && claims.HasPermission(permission)
}
