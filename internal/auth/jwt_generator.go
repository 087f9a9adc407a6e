package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PrincipalLoader resolves the user a token is issued for
type PrincipalLoader interface {
	LoadUserByID(ctx context.Context, id uint) (*models.Principal, error)
}

// CustomJWTAccessGenerate generates JWT access tokens carrying the user id,
// username and role names of the principal
type CustomJWTAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	Users        PrincipalLoader
}

// NewCustomJWTAccessGenerate creates a new custom JWT access token generator
func NewCustomJWTAccessGenerate(key []byte, method jwt.SigningMethod, users PrincipalLoader) *CustomJWTAccessGenerate {
	return &CustomJWTAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
		Users:        users,
	}
}

// Token generates a JWT access token with custom claims
// This method is called by the OAuth2 library to generate access tokens
func (g *CustomJWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	// For client_credentials flow, GenerateBasic.UserID is empty, so we get it from Client.GetUserID()
	userID := data.UserID
	if userID == "" {
		userID = data.Client.GetUserID()
	}
	if userID == "" {
		return "", "", fmt.Errorf("cannot generate token: no user ID available")
	}

	// Roles are read from the database on every issue so a token never
	// carries more than the user currently holds
	principal, err := g.loadPrincipal(ctx, userID)
	if err != nil {
		return "", "", err
	}
	roles := principal.Roles
	if roles == nil {
		roles = []string{}
	}

	claims := jwt.MapClaims{
		"jti":   uuid.NewString(),
		"aud":   data.Client.GetID(),
		"uid":   userID,
		"sub":   principal.Username,
		"roles": roles,
		"iat":   data.TokenInfo.GetAccessCreateAt().Unix(),
		"exp":   data.TokenInfo.GetAccessCreateAt().Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
	}
	if data.TokenInfo.GetScope() != "" {
		claims["scope"] = data.TokenInfo.GetScope()
	}

	access, err := jwt.NewWithClaims(g.SignedMethod, claims).SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}

	refresh := ""
	if isGenRefresh {
		refreshClaims := jwt.MapClaims{
			"jti": uuid.NewString(),
			"aud": data.Client.GetID(),
			"exp": data.TokenInfo.GetRefreshCreateAt().Add(data.TokenInfo.GetRefreshExpiresIn()).Unix(),
		}
		refresh, err = jwt.NewWithClaims(g.SignedMethod, refreshClaims).SignedString(g.SignedKey)
		if err != nil {
			return "", "", err
		}
	}

	return access, refresh, nil
}

func (g *CustomJWTAccessGenerate) loadPrincipal(ctx context.Context, userIDStr string) (*models.Principal, error) {
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	principal, err := g.Users.LoadUserByID(ctx, uint(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return principal, nil
}
