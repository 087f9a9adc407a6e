package middleware

import (
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Rule grants access to one route. A public rule lets anonymous callers
// through; otherwise the caller must hold one of Roles, or simply be
// authenticated when Roles is empty.
type Rule struct {
	Method string
	Path   string // gin route pattern, e.g. /cafe/id/:id
	Public bool
	Roles  []string
}

// RoutePolicy is the static access table consulted before dispatch
type RoutePolicy []Rule

func PermitAll(method, path string) Rule {
	return Rule{Method: method, Path: path, Public: true}
}

func HasAnyRole(method, path string, roles ...string) Rule {
	return Rule{Method: method, Path: path, Roles: roles}
}

func (p RoutePolicy) lookup(method, path string) (Rule, bool) {
	for _, rule := range p {
		if rule.Method == method && rule.Path == path {
			return rule, true
		}
	}
	return Rule{}, false
}

// Authorize enforces the policy for the matched route. Routes missing from
// the table require an authenticated caller. Unmatched requests fall
// through to the 404 handler.
func Authorize(policy RoutePolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			c.Next()
			return
		}

		rule, found := policy.lookup(c.Request.Method, route)
		if found && rule.Public {
			c.Next()
			return
		}

		principal, authenticated := CurrentPrincipal(c)
		if !authenticated {
			respondUnauthorized(c, "Full authentication is required to access this resource")
			return
		}

		if found && len(rule.Roles) > 0 && !principal.HasAnyRole(rule.Roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.APIError{
				Code:    models.ErrForbidden,
				Message: "Insufficient permissions",
				Details: map[string]string{"required_roles": strings.Join(rule.Roles, ",")},
			})
			return
		}

		c.Next()
	}
}
