package services

import (
	"context"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockCafeRepository struct {
	mock.Mock
}

func (m *mockCafeRepository) FindAll(ctx context.Context) ([]models.Cafe, error) {
	args := m.Called(ctx)
	cafes, _ := args.Get(0).([]models.Cafe)
	return cafes, args.Error(1)
}

func (m *mockCafeRepository) FindByID(ctx context.Context, id uint) (*models.Cafe, error) {
	args := m.Called(ctx, id)
	cafe, _ := args.Get(0).(*models.Cafe)
	return cafe, args.Error(1)
}

func (m *mockCafeRepository) FindByName(ctx context.Context, name string) ([]models.Cafe, error) {
	args := m.Called(ctx, name)
	cafes, _ := args.Get(0).([]models.Cafe)
	return cafes, args.Error(1)
}

func (m *mockCafeRepository) FindByNameAndAddress(ctx context.Context, name, address string) (*models.Cafe, error) {
	args := m.Called(ctx, name, address)
	cafe, _ := args.Get(0).(*models.Cafe)
	return cafe, args.Error(1)
}

func (m *mockCafeRepository) Create(ctx context.Context, cafe *models.Cafe) error {
	return m.Called(ctx, cafe).Error(0)
}

func (m *mockCafeRepository) Save(ctx context.Context, cafe *models.Cafe) error {
	return m.Called(ctx, cafe).Error(0)
}

func (m *mockCafeRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCafeRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCafeRepository) DeleteByNameAndAddress(ctx context.Context, name, address string) (int64, error) {
	args := m.Called(ctx, name, address)
	return args.Get(0).(int64), args.Error(1)
}

type mockPizzaRepository struct {
	mock.Mock
}

func (m *mockPizzaRepository) FindByCafe(ctx context.Context, cafeName, cafeAddress string) ([]models.Pizza, error) {
	args := m.Called(ctx, cafeName, cafeAddress)
	pizzas, _ := args.Get(0).([]models.Pizza)
	return pizzas, args.Error(1)
}

func (m *mockPizzaRepository) FindByCafeAndName(ctx context.Context, cafeName, cafeAddress, name string) (*models.Pizza, error) {
	args := m.Called(ctx, cafeName, cafeAddress, name)
	pizza, _ := args.Get(0).(*models.Pizza)
	return pizza, args.Error(1)
}

func (m *mockPizzaRepository) FindByCafeAndID(ctx context.Context, cafeName, cafeAddress string, id uint) (*models.Pizza, error) {
	args := m.Called(ctx, cafeName, cafeAddress, id)
	pizza, _ := args.Get(0).(*models.Pizza)
	return pizza, args.Error(1)
}

func (m *mockPizzaRepository) FindByID(ctx context.Context, id uint) (*models.Pizza, error) {
	args := m.Called(ctx, id)
	pizza, _ := args.Get(0).(*models.Pizza)
	return pizza, args.Error(1)
}

func (m *mockPizzaRepository) Create(ctx context.Context, pizza *models.Pizza) error {
	return m.Called(ctx, pizza).Error(0)
}

func (m *mockPizzaRepository) Save(ctx context.Context, pizza *models.Pizza) error {
	return m.Called(ctx, pizza).Error(0)
}

func (m *mockPizzaRepository) DeleteByNameAndCafe(ctx context.Context, name string, cafeID uint) (int64, error) {
	args := m.Called(ctx, name, cafeID)
	return args.Get(0).(int64), args.Error(1)
}
