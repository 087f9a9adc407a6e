package models

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is a registered API client. Tokens issued through the
// client_credentials grant act on behalf of UserID.
type OAuthClient struct {
	ID          string         `json:"client_id" gorm:"primaryKey"`
	Secret      string         `json:"-" gorm:"not null"` // bcrypt hash
	Name        string         `json:"name"`
	Domain      string         `json:"domain"`
	UserID      uint           `json:"user_id" gorm:"index"`
	Scopes      string         `json:"scopes"`      // space separated
	GrantTypes  string         `json:"grant_types"` // space separated, e.g. "password client_credentials"
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

func (c *OAuthClient) GetID() string {
	return c.ID
}

func (c *OAuthClient) GetSecret() string {
	return c.Secret
}

func (c *OAuthClient) GetDomain() string {
	return c.Domain
}

func (c *OAuthClient) IsPublic() bool {
	return false
}

func (c *OAuthClient) GetUserID() string {
	if c.UserID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.UserID), 10)
}

// VerifyPassword compares a plain client secret with the stored hash.
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
