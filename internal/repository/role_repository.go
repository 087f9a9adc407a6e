package repository

import (
	"context"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByNames(ctx context.Context, names []string) ([]models.Role, error)
	FindNamesByUserID(ctx context.Context, userID uint) ([]string, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByNames(ctx context.Context, names []string) ([]models.Role, error) {
	var roles []models.Role
	if len(names) == 0 {
		return roles, nil
	}
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) FindNamesByUserID(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Role{}).
		Joins("JOIN user_authority ON user_authority.authority_id = authority.id").
		Where("user_authority.user_id = ?", userID).
		Order("authority.name").
		Pluck("authority.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
