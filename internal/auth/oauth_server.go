package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserDirectory is the part of the user service the token endpoint needs
type UserDirectory interface {
	PrincipalLoader
	Authenticate(ctx context.Context, username, password string) (*models.Principal, error)
}

type OAuthService struct {
	server     *server.Server
	db         *gorm.DB
	users      UserDirectory
	tokenStore *GormTokenStore
}

// NewOAuthService builds an OAuth2 server issuing HS512 JWT access tokens
func NewOAuthService(db *gorm.DB, jwtSecret string, users UserDirectory) *OAuthService {
	manager := manage.NewDefaultManager()

	// Use JWT for access tokens
	manager.MapAccessGenerate(NewCustomJWTAccessGenerate([]byte(jwtSecret), jwt.SigningMethodHS512, users))

	// Configure token store
	tokenStore := NewGormTokenStore(db)
	manager.MustTokenStorage(tokenStore, nil)

	// Configure client store
	manager.MapClientStorage(NewGormClientStore(db))

	o := &OAuthService{
		db:         db,
		users:      users,
		tokenStore: tokenStore,
	}

	srv := server.NewDefaultServer(manager)
	srv.SetAllowedGrantType(oauth2.PasswordCredentials, oauth2.ClientCredentials, oauth2.Refreshing)
	srv.SetClientInfoHandler(server.ClientFormHandler)
	srv.SetPasswordAuthorizationHandler(o.authorizePassword)
	srv.SetClientAuthorizedHandler(o.clientAuthorized)
	srv.SetInternalErrorHandler(func(err error) *oauth2errors.Response {
		logrus.WithError(err).Error("OAuth2 token endpoint failure")
		return nil
	})

	o.server = srv
	return o
}

func (o *OAuthService) TokenStore() *GormTokenStore {
	return o.tokenStore
}

// HandleToken handles the token endpoint for the password, client credentials and refresh token grants
// @Summary Token Endpoint
// @Description Obtain an access token using the password, client_credentials or refresh_token grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: password, client_credentials or refresh_token"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param username formData string false "Username (password grant)"
// @Param password formData string false "Password (password grant)"
// @Param refresh_token formData string false "Refresh token (refresh_token grant)"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	if err := o.server.HandleTokenRequest(c.Writer, c.Request); err != nil {
		logrus.WithError(err).Error("Failed to write token response")
	}
}

// authorizePassword returns an empty user id for bad credentials, which the
// server answers with invalid_grant
func (o *OAuthService) authorizePassword(ctx context.Context, clientID, username, password string) (string, error) {
	principal, err := o.users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			logrus.WithFields(logrus.Fields{"client_id": clientID, "username": username}).Warn("Password grant rejected")
			return "", nil
		}
		return "", err
	}
	return strconv.FormatUint(uint64(principal.UserID), 10), nil
}

// clientAuthorized restricts a client to its registered grant types. An
// empty list allows every grant the server supports, and a client allowed
// the password grant may also refresh.
func (o *OAuthService) clientAuthorized(clientID string, grant oauth2.GrantType) (bool, error) {
	var client models.OAuthClient
	if err := o.db.Where("id = ?", clientID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return grantAllowed(client.GrantTypes, grant), nil
}

func grantAllowed(registered string, grant oauth2.GrantType) bool {
	types := strings.Fields(strings.ReplaceAll(registered, ",", " "))
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if t == grant.String() {
			return true
		}
		if grant == oauth2.Refreshing && t == oauth2.PasswordCredentials.String() {
			return true
		}
	}
	return false
}
