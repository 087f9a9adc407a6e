package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/franciscosanchezn/gin-cafe-api/internal/repository"
)

// CafeService provides the cafe operations exposed by the API
type CafeService interface {
	// ListAll returns every cafe, or ErrEmptyCafeList when there are none
	ListAll(ctx context.Context) ([]models.Cafe, error)
	// GetByNameAndAddress returns the cafe at address with the given name
	GetByNameAndAddress(ctx context.Context, name, address string) (*models.Cafe, error)
	// GetByID returns the cafe with the given id, or ErrIDNotFound
	GetByID(ctx context.Context, id uint) (*models.Cafe, error)
	// ListChain returns all cafes sharing a name
	ListChain(ctx context.Context, name string) ([]models.Cafe, error)
	// Create stores a new cafe and returns it with its generated id
	Create(ctx context.Context, cafe models.Cafe) (*models.Cafe, error)
	// Update copies the mutable fields of cafe onto the stored record
	Update(ctx context.Context, cafe models.Cafe) (*models.Cafe, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteChain(ctx context.Context, name string) error
	DeleteByNameAndAddress(ctx context.Context, name, address string) error
}

type cafeService struct {
	cafes repository.CafeRepository
}

// NewCafeService creates a new instance of CafeService
func NewCafeService(cafes repository.CafeRepository) CafeService {
	return &cafeService{cafes: cafes}
}

func (s *cafeService) ListAll(ctx context.Context) ([]models.Cafe, error) {
	cafes, err := s.cafes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cafes: %w", err)
	}
	if len(cafes) == 0 {
		return nil, ErrEmptyCafeList
	}
	return cafes, nil
}

func (s *cafeService) GetByNameAndAddress(ctx context.Context, name, address string) (*models.Cafe, error) {
	cafe, err := s.cafes.FindByNameAndAddress(ctx, name, address)
	if err != nil {
		if isNotFound(err) {
			return nil, newError(KindCafeNotFound, "Cafe with the following name and address is not found")
		}
		return nil, fmt.Errorf("find cafe: %w", err)
	}
	return cafe, nil
}

func (s *cafeService) GetByID(ctx context.Context, id uint) (*models.Cafe, error) {
	cafe, err := s.cafes.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrIDNotFound
		}
		return nil, fmt.Errorf("find cafe %d: %w", id, err)
	}
	return cafe, nil
}

func (s *cafeService) ListChain(ctx context.Context, name string) ([]models.Cafe, error) {
	cafes, err := s.cafes.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list chain %q: %w", name, err)
	}
	if len(cafes) == 0 {
		return nil, newError(KindEmptyCafeList, "Can not find cafe chain with the following name")
	}
	return cafes, nil
}

func (s *cafeService) Create(ctx context.Context, cafe models.Cafe) (*models.Cafe, error) {
	cafe.ID = 0
	cafe.Pizzas = nil
	if err := s.cafes.Create(ctx, &cafe); err != nil {
		if isDuplicate(err) {
			return nil, newError(KindConflict, "Cafe with the following address already exists")
		}
		return nil, fmt.Errorf("create cafe: %w", err)
	}
	return &cafe, nil
}

func (s *cafeService) Update(ctx context.Context, cafe models.Cafe) (*models.Cafe, error) {
	existing, err := s.cafes.FindByID(ctx, cafe.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCafeNotFound
		}
		return nil, fmt.Errorf("find cafe %d: %w", cafe.ID, err)
	}

	existing.Name = cafe.Name
	existing.City = cafe.City
	existing.Address = cafe.Address
	existing.Email = cafe.Email
	existing.Phone = cafe.Phone

	if err := s.cafes.Save(ctx, existing); err != nil {
		if isDuplicate(err) {
			return nil, newError(KindConflict, "Cafe with the following address already exists")
		}
		return nil, fmt.Errorf("update cafe %d: %w", cafe.ID, err)
	}
	return existing, nil
}

func (s *cafeService) DeleteByID(ctx context.Context, id uint) error {
	deleted, err := s.cafes.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete cafe %d: %w", id, err)
	}
	if deleted == 0 {
		return ErrIDNotFound
	}
	return nil
}

func (s *cafeService) DeleteChain(ctx context.Context, name string) error {
	if _, err := s.cafes.DeleteByName(ctx, name); err != nil {
		return fmt.Errorf("delete chain %q: %w", name, err)
	}
	return nil
}

func (s *cafeService) DeleteByNameAndAddress(ctx context.Context, name, address string) error {
	if _, err := s.cafes.DeleteByNameAndAddress(ctx, name, address); err != nil {
		return fmt.Errorf("delete cafe %q at %q: %w", name, address, err)
	}
	return nil
}
