package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/franciscosanchezn/gin-cafe-api/internal/repository"
)

// PizzaService provides the pizza operations of a single cafe. A cafe is
// always identified by its name and address.
type PizzaService interface {
	// ListInCafe retrieves all pizzas of a cafe
	ListInCafe(ctx context.Context, cafeName, cafeAddress string) ([]models.Pizza, error)
	// GetByName retrieves a pizza of a cafe by its name
	GetByName(ctx context.Context, pizzaName, cafeName, cafeAddress string) (*models.Pizza, error)
	// GetByID retrieves a pizza of a cafe by its ID
	GetByID(ctx context.Context, cafeName, cafeAddress string, id uint) (*models.Pizza, error)
	// Add creates a new pizza in the cafe
	Add(ctx context.Context, pizza models.Pizza, cafeName, cafeAddress string) (*models.Pizza, error)
	// Update updates an existing pizza and moves it to the cafe
	Update(ctx context.Context, pizza models.Pizza, cafeName, cafeAddress string) (*models.Pizza, error)
	// DeleteByName deletes the pizzas with the given name from the cafe
	DeleteByName(ctx context.Context, cafeName, cafeAddress, name string) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	cafes  repository.CafeRepository
	pizzas repository.PizzaRepository
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(cafes repository.CafeRepository, pizzas repository.PizzaRepository) PizzaService {
	return &pizzaService{cafes: cafes, pizzas: pizzas}
}

func (s *pizzaService) ListInCafe(ctx context.Context, cafeName, cafeAddress string) ([]models.Pizza, error) {
	pizzas, err := s.pizzas.FindByCafe(ctx, cafeName, cafeAddress)
	if err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	if len(pizzas) == 0 {
		return nil, ErrEmptyPizzaList
	}
	return pizzas, nil
}

func (s *pizzaService) GetByName(ctx context.Context, pizzaName, cafeName, cafeAddress string) (*models.Pizza, error) {
	pizza, err := s.pizzas.FindByCafeAndName(ctx, cafeName, cafeAddress, pizzaName)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPizzaNotFound
		}
		return nil, fmt.Errorf("find pizza %q: %w", pizzaName, err)
	}
	return pizza, nil
}

func (s *pizzaService) GetByID(ctx context.Context, cafeName, cafeAddress string, id uint) (*models.Pizza, error) {
	pizza, err := s.pizzas.FindByCafeAndID(ctx, cafeName, cafeAddress, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPizzaNotFound
		}
		return nil, fmt.Errorf("find pizza %d: %w", id, err)
	}
	return pizza, nil
}

func (s *pizzaService) Add(ctx context.Context, pizza models.Pizza, cafeName, cafeAddress string) (*models.Pizza, error) {
	cafe, err := s.findCafe(ctx, cafeName, cafeAddress)
	if err != nil {
		return nil, err
	}

	pizza.ID = 0
	pizza.CafeID = cafe.ID
	if err := s.pizzas.Create(ctx, &pizza); err != nil {
		if isDuplicate(err) {
			return nil, newError(KindConflict, "Pizza with the following name already exists in this cafe")
		}
		return nil, fmt.Errorf("create pizza: %w", err)
	}
	return &pizza, nil
}

func (s *pizzaService) Update(ctx context.Context, pizza models.Pizza, cafeName, cafeAddress string) (*models.Pizza, error) {
	cafe, err := s.findCafe(ctx, cafeName, cafeAddress)
	if err != nil {
		return nil, err
	}

	existing, err := s.pizzas.FindByID(ctx, pizza.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPizzaNotFound
		}
		return nil, fmt.Errorf("find pizza %d: %w", pizza.ID, err)
	}

	existing.Name = pizza.Name
	existing.Price = pizza.Price
	existing.Size = pizza.Size
	existing.Ingredients = pizza.Ingredients
	existing.CafeID = cafe.ID

	if err := s.pizzas.Save(ctx, existing); err != nil {
		if isDuplicate(err) {
			return nil, newError(KindConflict, "Pizza with the following name already exists in this cafe")
		}
		return nil, fmt.Errorf("update pizza %d: %w", pizza.ID, err)
	}
	return existing, nil
}

func (s *pizzaService) DeleteByName(ctx context.Context, cafeName, cafeAddress, name string) error {
	cafe, err := s.findCafe(ctx, cafeName, cafeAddress)
	if err != nil {
		return err
	}
	if _, err := s.pizzas.DeleteByNameAndCafe(ctx, name, cafe.ID); err != nil {
		return fmt.Errorf("delete pizza %q: %w", name, err)
	}
	return nil
}

func (s *pizzaService) findCafe(ctx context.Context, cafeName, cafeAddress string) (*models.Cafe, error) {
	cafe, err := s.cafes.FindByNameAndAddress(ctx, cafeName, cafeAddress)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCafeNotFound
		}
		return nil, fmt.Errorf("find cafe: %w", err)
	}
	return cafe, nil
}
