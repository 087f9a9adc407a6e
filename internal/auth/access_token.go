package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the validated content of an access token
type AccessClaims struct {
	UserID   uint
	Username string
	Roles    []string
	ClientID string
	Scope    string
}

// ParseAccessToken verifies the signature and time claims of an access
// token issued by the token endpoint and extracts its claims.
func ParseAccessToken(tokenString string, jwtSecret []byte) (*AccessClaims, error) {
	claims, err := parseAndValidateJWT(tokenString, jwtSecret)
	if err != nil {
		return nil, err
	}

	userID, err := extractUserID(claims)
	if err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, fmt.Errorf("invalid user identifier: cannot be zero")
	}

	out := &AccessClaims{UserID: userID}
	out.Username, _ = claims["sub"].(string)
	out.Scope, _ = claims["scope"].(string)

	if aud, ok := claims["aud"].(string); ok {
		out.ClientID = aud
	} else if audArray, ok := claims["aud"].([]interface{}); ok && len(audArray) > 0 {
		out.ClientID, _ = audArray[0].(string)
	}

	rawRoles, ok := claims["roles"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("token missing required 'roles' claim")
	}
	for _, r := range rawRoles {
		name, ok := r.(string)
		if !ok {
			return nil, fmt.Errorf("invalid role entry %v", r)
		}
		out.Roles = append(out.Roles, name)
	}

	return out, nil
}

// parseJWTToken validates and parses a JWT token using HMAC signing method
func parseJWTToken(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// reject tokens whose header switches the algorithm family
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	return claims, nil
}

// parseAndValidateJWT parses the JWT and performs strict validation
func parseAndValidateJWT(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	claims, err := parseJWTToken(tokenString, jwtSecret)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp == nil {
		return nil, fmt.Errorf("token missing required 'exp' claim")
	}
	if exp.Before(now) {
		return nil, fmt.Errorf("token has expired")
	}

	nbf, err := claims.GetNotBefore()
	if err != nil {
		return nil, fmt.Errorf("invalid nbf claim: %w", err)
	}
	if nbf != nil && nbf.After(now) {
		return nil, fmt.Errorf("token not yet valid")
	}

	// tokens issued in the future are rejected
	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("invalid iat claim: %w", err)
	}
	if iat != nil && iat.After(now.Add(time.Minute)) {
		return nil, fmt.Errorf("token issued in the future")
	}

	return claims, nil
}

// extractUserID reads the "uid" claim, which may be a numeric string or a number
func extractUserID(claims jwt.MapClaims) (uint, error) {
	if uid, ok := claims["uid"].(string); ok && uid != "" {
		parsedID, err := strconv.ParseUint(uid, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid uid claim format: must be a numeric string, got: %s", uid)
		}
		return uint(parsedID), nil
	}

	// JSON numbers are decoded as float64
	if uid, ok := claims["uid"].(float64); ok {
		if uid <= 0 {
			return 0, fmt.Errorf("invalid uid claim: must be positive, got: %f", uid)
		}
		return uint(uid), nil
	}

	return 0, fmt.Errorf("token missing required 'uid' claim. This token is not valid for this API")
}
