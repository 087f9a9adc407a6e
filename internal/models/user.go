package models

import (
	"time"
)

// Role names known to the authorization layer
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}

// Role is a named authority that can be granted to users.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Role) TableName() string {
	return "authority"
}

// UserAuthority links users and roles by id only
type UserAuthority struct {
	UserID      uint `gorm:"primaryKey"`
	AuthorityID uint `gorm:"primaryKey"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Role *Role `gorm:"foreignKey:AuthorityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (UserAuthority) TableName() string {
	return "user_authority"
}

// Principal is the authenticated view of a user consumed by the
// authorization layer.
type Principal struct {
	UserID       uint
	Username     string
	PasswordHash string
	Roles        []string
}

// HasAnyRole reports whether the principal holds at least one of roles.
func (p *Principal) HasAnyRole(roles ...string) bool {
	for _, have := range p.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
