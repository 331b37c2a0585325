package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
	"github.com/masblog-io/masblog/internal/pkg/roles"
)

const principalKey = "principal"

// UserAuth returns a middleware that authenticates requests using bearer
// access tokens. The verified claims become a roles.Principal in the
// request context.
func UserAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.ParseAccess(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		c.Set(principalKey, &roles.Principal{
			UserID:      userID,
			ProfileUUID: claims.UUID,
			Username:    claims.Username,
			Email:       claims.Email,
			Role:        claims.Role,
		})
		c.Next()
	}
}

// OptionalAuth parses a bearer token when present but lets anonymous
// requests through. Listing endpoints use it to widen visibility for
// staff callers.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := auth.ParseAccess(strings.TrimPrefix(header, "Bearer ")); err == nil {
				if userID, err := uuid.Parse(claims.UserID); err == nil {
					c.Set(principalKey, &roles.Principal{
						UserID:      userID,
						ProfileUUID: claims.UUID,
						Username:    claims.Username,
						Email:       claims.Email,
						Role:        claims.Role,
					})
				}
			}
		}
		c.Next()
	}
}

// RequireRoles aborts unless the authenticated principal holds one of the
// given roles. Must run after UserAuth.
func RequireRoles(allowed ...roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.CheckLogin())
			return
		}
		for _, r := range allowed {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, serializer.Err(http.StatusForbidden, "insufficient role", nil))
	}
}

// RequireStaff aborts unless the principal holds a staff role.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.CheckLogin())
			return
		}
		if !p.IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.Err(http.StatusForbidden, "staff role required", nil))
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal, or nil for anonymous
// requests.
func PrincipalFrom(c *gin.Context) *roles.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*roles.Principal)
	return p
}
