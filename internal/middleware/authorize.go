package middleware

import (
	"boardinghouse/internal/authz"
	"boardinghouse/internal/models"
	"boardinghouse/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAction returns a middleware that checks the authenticated user's role
// against the permission table for the given action.
// The role comes from the access token claims, never from the request body.
func RequireAction(authorizer authz.Authorizer, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetUserRole(c)
		if role == "" {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		if !authorizer.CanPerform(role, action) {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelfOrAction returns a middleware for routes scoped to a user by the
// given path parameter. Staff roles with the action permission may access any
// user's resource; other users may only access their own.
func RequireSelfOrAction(authorizer authz.Authorizer, param, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		role := GetUserRole(c)
		if userID == "" || role == "" {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		targetID := c.Param(param)
		if targetID == userID {
			c.Next()
			return
		}

		if role == models.RoleClient || !authorizer.CanPerform(role, action) {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
