package middleware

import (
	"fmt"
	"strings"

	"banarts/internal/auth"
	"banarts/internal/logger"
	"banarts/internal/models"
	"banarts/pkg/apperrors"
	"banarts/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and stores its claims on the context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		claims, err := tokens.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abortWith(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.RoleKey, models.UserRole(claims.Role))
		c.Set(contextkeys.EmailKey, claims.Email)

		ctx := logger.WithUserID(c.Request.Context(), fmt.Sprint(claims.UserID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles lets the request through when the caller has one of roles.
// It must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			abortWith(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}
		if !roleSet[role] {
			logger.CtxWarn(c.Request.Context(), "role rejected",
				"role", role,
				"path", c.Request.URL.Path,
			)
			abortWith(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// AdminOnly is RequireRoles(admin).
func AdminOnly() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin)
}

// RequirePermission lets through roles that hold permission in auth.Permissions.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok || !auth.HasPermission(role, permission) {
			logger.CtxWarn(c.Request.Context(), "permission denied",
				"role", role,
				"permission", permission,
				"path", c.Request.URL.Path,
			)
			abortWith(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or 0 when absent.
func GetUserID(c *gin.Context) uint {
	v, exists := c.Get(contextkeys.UserIDKey)
	if !exists {
		return 0
	}
	id, _ := v.(uint)
	return id
}

func GetRole(c *gin.Context) (models.UserRole, bool) {
	v, exists := c.Get(contextkeys.RoleKey)
	if !exists {
		return "", false
	}
	switch role := v.(type) {
	case models.UserRole:
		return role, true
	case string:
		return models.UserRole(role), true
	default:
		return "", false
	}
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}
