package middleware

import (
	"log"

	"painel_master/internal/domain/entities"
	"painel_master/pkg"

	"github.com/gin-gonic/gin"
)

const identityContextKey = "identity"

// IdentityLoader is satisfied by the session manager.
type IdentityLoader interface {
	Load(c *gin.Context) (entities.Identity, error)
}

// RequireSession rejects requests without a valid identity cookie and
// stores the identity in the gin context for the handlers.
func RequireSession(loader IdentityLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := loader.Load(c)
		if err != nil {
			c.AbortWithStatusJSON(pkg.ErrUnauthorized.HTTPStatus, pkg.ErrUnauthorized.ToHTTPError())
			return
		}
		SetIdentity(c, identity)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return requireRole(entities.RoleAdmin)
}

func RequireReseller() gin.HandlerFunc {
	return requireRole(entities.RoleReseller)
}

func requireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(pkg.ErrUnauthorized.HTTPStatus, pkg.ErrUnauthorized.ToHTTPError())
			return
		}
		if identity.Role != role {
			log.Printf("[auth][middleware] forbidden id=%s role=%s want=%s path=%s", identity.ID, identity.Role, role, c.FullPath())
			c.AbortWithStatusJSON(pkg.ErrForbidden.HTTPStatus, pkg.ErrForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetIdentity(c *gin.Context, identity entities.Identity) {
	c.Set(identityContextKey, identity)
}

func IdentityFrom(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityContextKey)
	if !ok {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok && !identity.IsZero()
}
