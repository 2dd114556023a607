package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/store"
)

// identityKey is the gin context key under which Authenticate publishes
// the resolved account.
const identityKey = "identity"

// Middleware is the authorization gate in front of protected routes.
type Middleware struct {
	Tokens *TokenService
	Users  *store.UserStore
}

// NewMiddleware creates the gate with its dependencies.
func NewMiddleware(tokens *TokenService, users *store.UserStore) *Middleware {
	return &Middleware{Tokens: tokens, Users: users}
}

// Authenticate extracts and verifies the bearer token, then resolves
// the subject against the account registry. The token's role claim
// must still match the stored role. Failures short-circuit with 401;
// on success the account is published to the request context.
func (m *Middleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := m.Tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		user, err := m.Users.GetByID(claims.Subject)
		if err != nil || user.Role != claims.Role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role differs. It must
// run after Authenticate.
func (m *Middleware) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": string(role) + " role required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account Authenticate resolved for this
// request, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
