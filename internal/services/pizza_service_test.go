package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func samplePizza() models.Pizza {
	return models.Pizza{ID: 1, Name: "Margherita", Price: 10.99, Size: "M", Ingredients: "Tomato, Mozzarella", CafeID: 1}
}

func TestPizzaServiceListInCafe(t *testing.T) {
	ctx := context.Background()
	cafes := new(mockCafeRepository)
	pizzas := new(mockPizzaRepository)
	pizzas.On("FindByCafe", ctx, "Dominos", "MainStreet").Return([]models.Pizza{samplePizza()}, nil)
	pizzas.On("FindByCafe", ctx, "Dominos", "Nowhere").Return([]models.Pizza{}, nil)
	svc := NewPizzaService(cafes, pizzas)

	list, err := svc.ListInCafe(ctx, "Dominos", "MainStreet")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// an unknown cafe is reported the same way as a cafe without pizzas
	_, err = svc.ListInCafe(ctx, "Dominos", "Nowhere")
	assert.ErrorIs(t, err, ErrEmptyPizzaList)
	cafes.AssertNotCalled(t, "FindByNameAndAddress", mock.Anything, mock.Anything, mock.Anything)
}

func TestPizzaServiceLookups(t *testing.T) {
	ctx := context.Background()
	cafes := new(mockCafeRepository)
	pizzas := new(mockPizzaRepository)
	pizza := samplePizza()
	pizzas.On("FindByCafeAndName", ctx, "Dominos", "MainStreet", "Margherita").Return(&pizza, nil)
	pizzas.On("FindByCafeAndName", ctx, "Dominos", "MainStreet", "Hawaiian").Return(nil, gorm.ErrRecordNotFound)
	pizzas.On("FindByCafeAndID", ctx, "Dominos", "MainStreet", uint(1)).Return(&pizza, nil)
	pizzas.On("FindByCafeAndID", ctx, "Dominos", "MainStreet", uint(5)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewPizzaService(cafes, pizzas)

	byName, err := svc.GetByName(ctx, "Margherita", "Dominos", "MainStreet")
	require.NoError(t, err)
	assert.Equal(t, uint(1), byName.ID)

	_, err = svc.GetByName(ctx, "Hawaiian", "Dominos", "MainStreet")
	assert.ErrorIs(t, err, ErrPizzaNotFound)

	byID, err := svc.GetByID(ctx, "Dominos", "MainStreet", 1)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", byID.Name)

	_, err = svc.GetByID(ctx, "Dominos", "MainStreet", 5)
	assert.ErrorIs(t, err, ErrPizzaNotFound)
}

func TestPizzaServiceAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches the resolved cafe", func(t *testing.T) {
		cafes := new(mockCafeRepository)
		pizzas := new(mockPizzaRepository)
		cafe := sampleCafe()
		cafe.ID = 3
		cafes.On("FindByNameAndAddress", ctx, "Dominos", "MainStreet").Return(&cafe, nil)
		pizzas.On("Create", ctx, mock.MatchedBy(func(p *models.Pizza) bool {
			return p.CafeID == 3 && p.ID == 0
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Pizza).ID = 11
		}).Return(nil)

		input := samplePizza()
		input.ID = 99
		input.CafeID = 0
		created, err := NewPizzaService(cafes, pizzas).Add(ctx, input, "Dominos", "MainStreet")

		require.NoError(t, err)
		assert.Equal(t, uint(11), created.ID)
		assert.Equal(t, uint(3), created.CafeID)
		pizzas.AssertExpectations(t)
	})

	t.Run("unknown cafe persists nothing", func(t *testing.T) {
		cafes := new(mockCafeRepository)
		pizzas := new(mockPizzaRepository)
		cafes.On("FindByNameAndAddress", ctx, "Dominos", "Nowhere").Return(nil, gorm.ErrRecordNotFound)

		_, err := NewPizzaService(cafes, pizzas).Add(ctx, samplePizza(), "Dominos", "Nowhere")

		assert.ErrorIs(t, err, ErrCafeNotFound)
		pizzas.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate name in the cafe is a conflict", func(t *testing.T) {
		cafes := new(mockCafeRepository)
		pizzas := new(mockPizzaRepository)
		cafe := sampleCafe()
		cafes.On("FindByNameAndAddress", ctx, "Dominos", "MainStreet").Return(&cafe, nil)
		pizzas.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

		_, err := NewPizzaService(cafes, pizzas).Add(ctx, samplePizza(), "Dominos", "MainStreet")

		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestPizzaServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("relocates the pizza to the resolved cafe", func(t *testing.T) {
		cafes := new(mockCafeRepository)
		pizzas := new(mockPizzaRepository)
		target := sampleCafe()
		target.ID = 2
		stored := samplePizza()
		cafes.On("FindByNameAndAddress", ctx, "Dominos", "Second Street").Return(&target, nil)
		pizzas.On("FindByID", ctx, uint(1)).Return(&stored, nil)
		pizzas.On("Save", ctx, mock.AnythingOfType("*models.Pizza")).Return(nil)

		update := models.Pizza{ID: 1, Name: "Pepperoni", Price: 14, Size: "L", Ingredients: "Pepperoni", CafeID: 77}
		updated, err := NewPizzaService(cafes, pizzas).Update(ctx, update, "Dominos", "Second Street")

		require.NoError(t, err)
		assert.Equal(t, uint(1), updated.ID)
		assert.Equal(t, uint(2), updated.CafeID)
		assert.Equal(t, "Pepperoni", updated.Name)
		assert.Equal(t, 14.0, updated.Price)
		assert.Equal(t, "L", updated.Size)
		pizzas.AssertExpectations(t)
	})

	t.Run("unknown cafe", func(t *testing.T) {
		cafes := new(mockCafeRepository)
		pizzas := new(mockPizzaRepository)
		cafes.On("FindByNameAndAddress", ctx, "Dominos", "Nowhere").Return(nil, gorm.ErrRecordNotFound)

		_, err := NewPizzaService(cafes, pizzas).Update(ctx, samplePizza(), "Dominos", "Nowhere")

		assert.ErrorIs(t, err, ErrCafeNotFound)
		pizzas.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown pizza", func(t *testing.T) {
		cafes := new(mockCafeRepository)
		pizzas := new(mockPizzaRepository)
		cafe := sampleCafe()
		cafes.On("FindByNameAndAddress", ctx, "Dominos", "MainStreet").Return(&cafe, nil)
		pizzas.On("FindByID", ctx, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewPizzaService(cafes, pizzas).Update(ctx, samplePizza(), "Dominos", "MainStreet")

		assert.ErrorIs(t, err, ErrPizzaNotFound)
		pizzas.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPizzaServiceDeleteByName(t *testing.T) {
	ctx := context.Background()
	cafes := new(mockCafeRepository)
	pizzas := new(mockPizzaRepository)
	cafe := sampleCafe()
	cafes.On("FindByNameAndAddress", ctx, "Dominos", "MainStreet").Return(&cafe, nil)
	cafes.On("FindByNameAndAddress", ctx, "Dominos", "Nowhere").Return(nil, gorm.ErrRecordNotFound)
	pizzas.On("DeleteByNameAndCafe", ctx, "Margherita", cafe.ID).Return(int64(1), nil)
	svc := NewPizzaService(cafes, pizzas)

	assert.NoError(t, svc.DeleteByName(ctx, "Dominos", "MainStreet", "Margherita"))
	assert.ErrorIs(t, svc.DeleteByName(ctx, "Dominos", "Nowhere", "Margherita"), ErrCafeNotFound)
	pizzas.AssertExpectations(t)
}
