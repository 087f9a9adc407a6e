package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-cafe-api/internal/auth"
	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Realm is announced in the Basic authentication challenge
const Realm = "cafe-api"

const (
	principalKey = "principal"
	userIDKey    = "userID"
	authTypeKey  = "auth_type"
	clientIDKey  = "clientID"
)

// PrincipalSource resolves credentials to principals
type PrincipalSource interface {
	Authenticate(ctx context.Context, username, password string) (*models.Principal, error)
	LoadUserByID(ctx context.Context, id uint) (*models.Principal, error)
}

// Authenticate resolves the caller from the Authorization header. Basic
// credentials are checked against the stored bcrypt hash and Bearer tokens
// must be access tokens issued by the token endpoint. Requests without the
// header continue anonymously and are judged by Authorize.
func Authenticate(users PrincipalSource, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		scheme, _, _ := strings.Cut(authHeader, " ")
		switch strings.ToLower(scheme) {
		case "basic":
			authenticateBasic(c, users)
		case "bearer":
			authenticateBearer(c, users, jwtSecret)
		default:
			respondUnauthorized(c, "Unsupported authorization scheme")
			return
		}

		if !c.IsAborted() {
			c.Next()
		}
	}
}

func authenticateBasic(c *gin.Context, users PrincipalSource) {
	username, password, ok := c.Request.BasicAuth()
	if !ok {
		respondUnauthorized(c, "Malformed basic credentials")
		return
	}

	principal, err := users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			logrus.WithField("username", username).Warn("Rejected basic credentials")
			respondUnauthorized(c, "Bad credentials")
			return
		}
		logrus.WithError(err).Error("Failed to authenticate user")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			models.NewAPIError(models.ErrInternalServer, "Authentication failed"))
		return
	}

	setPrincipal(c, principal, "basic")
}

func authenticateBearer(c *gin.Context, users PrincipalSource, jwtSecret []byte) {
	tokenString := strings.TrimSpace(c.GetHeader("Authorization")[len("Bearer"):])
	if tokenString == "" {
		respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", "Bearer token is empty")
		return
	}

	claims, err := auth.ParseAccessToken(tokenString, jwtSecret)
	if err != nil {
		respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", err.Error())
		return
	}

	// roles come from the database so revoked grants take effect at once
	principal, err := users.LoadUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUsernameNotFound) {
			respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", "Token user no longer exists")
			return
		}
		logrus.WithError(err).Error("Failed to load token user")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			models.NewAPIError(models.ErrInternalServer, "Authentication failed"))
		return
	}

	if claims.ClientID != "" {
		c.Set(clientIDKey, claims.ClientID)
	}
	setPrincipal(c, principal, "oauth2")
}

func setPrincipal(c *gin.Context, principal *models.Principal, authType string) {
	c.Set(principalKey, principal)
	c.Set(userIDKey, principal.UserID)
	c.Set(authTypeKey, authType)
}

// CurrentPrincipal returns the authenticated caller, if any
func CurrentPrincipal(c *gin.Context) (*models.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*models.Principal)
	return principal, ok && principal != nil
}

// respondUnauthorized answers 401 with a Basic challenge
func respondUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Basic realm="`+Realm+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, message))
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, status int, errorCode, description string) {
	c.Header("WWW-Authenticate", `Bearer realm="`+Realm+`", error="`+errorCode+`"`)
	c.JSON(status, gin.H{
		"error":             errorCode,
		"error_description": description,
		"message":           description,
	})
	c.Abort()
}
