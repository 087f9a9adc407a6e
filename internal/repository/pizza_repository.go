package repository

import (
	"context"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"gorm.io/gorm"
)

// PizzaRepository persists pizzas. Cafe-scoped lookups identify the cafe by
// its name and address.
type PizzaRepository interface {
	FindByCafe(ctx context.Context, cafeName, cafeAddress string) ([]models.Pizza, error)
	FindByCafeAndName(ctx context.Context, cafeName, cafeAddress, name string) (*models.Pizza, error)
	FindByCafeAndID(ctx context.Context, cafeName, cafeAddress string, id uint) (*models.Pizza, error)
	FindByID(ctx context.Context, id uint) (*models.Pizza, error)
	Create(ctx context.Context, pizza *models.Pizza) error
	Save(ctx context.Context, pizza *models.Pizza) error
	DeleteByNameAndCafe(ctx context.Context, name string, cafeID uint) (int64, error)
}

type pizzaRepository struct {
	db *gorm.DB
}

func NewPizzaRepository(db *gorm.DB) PizzaRepository {
	return &pizzaRepository{db: db}
}

// cafeIDs selects the id of the cafe with the given name and address
func (r *pizzaRepository) cafeIDs(ctx context.Context, cafeName, cafeAddress string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Cafe{}).
		Select("id").
		Where("name = ? AND address = ?", cafeName, cafeAddress)
}

func (r *pizzaRepository) FindByCafe(ctx context.Context, cafeName, cafeAddress string) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	err := r.db.WithContext(ctx).
		Where("cafe_id IN (?)", r.cafeIDs(ctx, cafeName, cafeAddress)).
		Order("id").
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *pizzaRepository) FindByCafeAndName(ctx context.Context, cafeName, cafeAddress, name string) (*models.Pizza, error) {
	var pizza models.Pizza
	err := r.db.WithContext(ctx).
		Where("name = ? AND cafe_id IN (?)", name, r.cafeIDs(ctx, cafeName, cafeAddress)).
		First(&pizza).Error
	if err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (r *pizzaRepository) FindByCafeAndID(ctx context.Context, cafeName, cafeAddress string, id uint) (*models.Pizza, error) {
	var pizza models.Pizza
	err := r.db.WithContext(ctx).
		Where("id = ? AND cafe_id IN (?)", id, r.cafeIDs(ctx, cafeName, cafeAddress)).
		First(&pizza).Error
	if err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (r *pizzaRepository) FindByID(ctx context.Context, id uint) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := r.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (r *pizzaRepository) Create(ctx context.Context, pizza *models.Pizza) error {
	return r.db.WithContext(ctx).Create(pizza).Error
}

func (r *pizzaRepository) Save(ctx context.Context, pizza *models.Pizza) error {
	return r.db.WithContext(ctx).Save(pizza).Error
}

func (r *pizzaRepository) DeleteByNameAndCafe(ctx context.Context, name string, cafeID uint) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("name = ? AND cafe_id = ?", name, cafeID).Delete(&models.Pizza{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}
