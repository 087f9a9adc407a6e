package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// supportedGrants lists the grant types the token endpoint serves
var supportedGrants = map[string]bool{
	"password":           true,
	"client_credentials": true,
	"refresh_token":      true,
}

// ClientRegistration describes a new OAuth2 client
type ClientRegistration struct {
	Name       string
	Domain     string
	Scopes     string
	GrantTypes string
}

type ClientService interface {
	// CreateClient registers a client owned by userID and returns it along
	// with the plain secret, which is not stored and cannot be recovered
	CreateClient(ctx context.Context, userID uint, reg ClientRegistration) (*models.OAuthClient, string, error)
	GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID string, userID uint) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, userID uint, reg ClientRegistration) (*models.OAuthClient, string, error) {
	if userID == 0 {
		return nil, "", newError(KindInvalidArgument, "Client owner is required")
	}
	grants, err := normalizeGrants(reg.GrantTypes)
	if err != nil {
		return nil, "", err
	}

	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash client secret: %w", err)
	}

	client := &models.OAuthClient{
		ID:         uuid.New().String(),
		Secret:     string(hashedSecret),
		Name:       reg.Name,
		Domain:     reg.Domain,
		Scopes:     reg.Scopes,
		GrantTypes: grants,
		UserID:     userID,
	}
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, "", fmt.Errorf("create client: %w", err)
	}
	return client, secret, nil
}

func (s *clientService) GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", clientID, userID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// normalizeGrants accepts space or comma separated grant types
func normalizeGrants(raw string) (string, error) {
	fields := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	for _, g := range fields {
		if !supportedGrants[g] {
			return "", newError(KindInvalidArgument, fmt.Sprintf("Unsupported grant type %q", g))
		}
	}
	return strings.Join(fields, " "), nil
}
