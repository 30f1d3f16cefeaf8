package middleware

import (
	"net/http"

	"auth-api/internals/auth"
	"auth-api/internals/repository"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUser      = "user"
	CtxAuthToken = "authToken"
)

type RequireAuthMiddleware struct {
	Users      repository.Users
	Authorizer *auth.Authorizer
}

func NewRequireAuthMiddleware(users repository.Users, authorizer *auth.Authorizer) *RequireAuthMiddleware {
	return &RequireAuthMiddleware{
		Users:      users,
		Authorizer: authorizer,
	}
}

// RequireAuth guards a route group with bearer-token authentication. On
// success the authenticated user and the raw token string are stored in the
// request context; on failure the request is aborted with the decision's
// status and message.
func (m *RequireAuthMiddleware) RequireAuth(c *gin.Context) {
	token, authErr := auth.ExtractToken(c.GetHeader("Authorization"))
	if authErr != nil {
		abortWithAuthError(c, authErr)
		return
	}

	userID, authErr := m.Authorizer.CheckToken(token)
	if authErr != nil {
		abortWithAuthError(c, authErr)
		return
	}

	user, err := m.Users.FindByID(userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "User does not exist.",
		})
		return
	}

	c.Set(CtxUser, user)
	c.Set(CtxAuthToken, token)
	c.Next()
}

func abortWithAuthError(c *gin.Context, authErr *auth.AuthError) {
	c.AbortWithStatusJSON(authErr.Status, gin.H{
		"success": false,
		"message": authErr.Message,
	})
}
