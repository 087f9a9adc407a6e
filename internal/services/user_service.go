package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/franciscosanchezn/gin-cafe-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	// LoadUserByUsername returns the principal with its role names
	LoadUserByUsername(ctx context.Context, username string) (*models.Principal, error)
	// LoadUserByID is used for tokens that carry a user id
	LoadUserByID(ctx context.Context, id uint) (*models.Principal, error)
	// Authenticate checks a username and password pair
	Authenticate(ctx context.Context, username, password string) (*models.Principal, error)
	// CreateUser stores a user holding every one of roleNames
	CreateUser(ctx context.Context, username, password string, roleNames []string) (*models.User, error)
}

type userService struct {
	users repository.UserRepository
	roles repository.RoleRepository
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository) UserService {
	return &userService{users: users, roles: roles}
}

func (s *userService) LoadUserByUsername(ctx context.Context, username string) (*models.Principal, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUsernameNotFound
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return s.principal(ctx, user)
}

func (s *userService) LoadUserByID(ctx context.Context, id uint) (*models.Principal, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUsernameNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return s.principal(ctx, user)
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.Principal, error) {
	principal, err := s.LoadUserByUsername(ctx, username)
	if err != nil {
		if KindOf(err) == KindUsernameNotFound {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return principal, nil
}

func (s *userService) CreateUser(ctx context.Context, username, password string, roleNames []string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, newError(KindInvalidArgument, "Username and password are required")
	}

	names := dedupe(roleNames)
	roles, err := s.roles.FindByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("resolve roles: %w", err)
	}
	if len(roles) != len(names) {
		return nil, newError(KindInvalidArgument, "One or more roles are invalid")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	roleIDs := make([]uint, 0, len(roles))
	for _, role := range roles {
		roleIDs = append(roleIDs, role.ID)
	}

	user := &models.User{Username: username, Password: string(hash)}
	if err := s.users.CreateWithRoles(ctx, user, roleIDs); err != nil {
		if isDuplicate(err) {
			return nil, newError(KindConflict, "User with the following username already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) principal(ctx context.Context, user *models.User) (*models.Principal, error) {
	roles, err := s.roles.FindNamesByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load roles of %q: %w", user.Username, err)
	}
	return &models.Principal{
		UserID:       user.ID,
		Username:     user.Username,
		PasswordHash: user.Password,
		Roles:        roles,
	}, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
