package repository

import (
	"context"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"gorm.io/gorm"
)

// CafeRepository persists cafes. Lookups of a single record return
// gorm.ErrRecordNotFound when nothing matches.
type CafeRepository interface {
	FindAll(ctx context.Context) ([]models.Cafe, error)
	FindByID(ctx context.Context, id uint) (*models.Cafe, error)
	FindByName(ctx context.Context, name string) ([]models.Cafe, error)
	FindByNameAndAddress(ctx context.Context, name, address string) (*models.Cafe, error)
	Create(ctx context.Context, cafe *models.Cafe) error
	Save(ctx context.Context, cafe *models.Cafe) error
	// Delete methods remove the matching cafes together with their pizzas
	// and report how many cafes were removed.
	DeleteByID(ctx context.Context, id uint) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
	DeleteByNameAndAddress(ctx context.Context, name, address string) (int64, error)
}

type cafeRepository struct {
	db *gorm.DB
}

func NewCafeRepository(db *gorm.DB) CafeRepository {
	return &cafeRepository{db: db}
}

func (r *cafeRepository) FindAll(ctx context.Context) ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := r.db.WithContext(ctx).Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

func (r *cafeRepository) FindByID(ctx context.Context, id uint) (*models.Cafe, error) {
	var cafe models.Cafe
	if err := r.db.WithContext(ctx).First(&cafe, id).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *cafeRepository) FindByName(ctx context.Context, name string) ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

func (r *cafeRepository) FindByNameAndAddress(ctx context.Context, name, address string) (*models.Cafe, error) {
	var cafe models.Cafe
	if err := r.db.WithContext(ctx).Where("name = ? AND address = ?", name, address).First(&cafe).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *cafeRepository) Create(ctx context.Context, cafe *models.Cafe) error {
	return r.db.WithContext(ctx).Omit("Pizzas").Create(cafe).Error
}

func (r *cafeRepository) Save(ctx context.Context, cafe *models.Cafe) error {
	return r.db.WithContext(ctx).Omit("Pizzas").Save(cafe).Error
}

func (r *cafeRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	return r.deleteWhere(ctx, "id = ?", id)
}

func (r *cafeRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	return r.deleteWhere(ctx, "name = ?", name)
}

func (r *cafeRepository) DeleteByNameAndAddress(ctx context.Context, name, address string) (int64, error) {
	return r.deleteWhere(ctx, "name = ? AND address = ?", name, address)
}

// deleteWhere removes the selected cafes and their pizzas in one transaction.
// The pizzas are deleted explicitly because SQLite does not enforce the
// ON DELETE CASCADE constraint unless foreign keys are switched on.
func (r *cafeRepository) deleteWhere(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Cafe{}).Where(query, args...).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("cafe_id IN ?", ids).Delete(&models.Pizza{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", ids).Delete(&models.Cafe{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}
