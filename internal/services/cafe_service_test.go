package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sampleCafe() models.Cafe {
	return models.Cafe{ID: 1, Name: "Dominos", City: "Kyiv", Address: "MainStreet", Email: "info@dominos.ua", Phone: "+380441234567"}
}

func TestCafeServiceListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored cafes", func(t *testing.T) {
		repo := new(mockCafeRepository)
		repo.On("FindAll", ctx).Return([]models.Cafe{sampleCafe()}, nil)

		cafes, err := NewCafeService(repo).ListAll(ctx)

		require.NoError(t, err)
		assert.Len(t, cafes, 1)
		repo.AssertExpectations(t)
	})

	t.Run("empty store reports empty list", func(t *testing.T) {
		repo := new(mockCafeRepository)
		repo.On("FindAll", ctx).Return([]models.Cafe{}, nil)

		cafes, err := NewCafeService(repo).ListAll(ctx)

		assert.Nil(t, cafes)
		assert.ErrorIs(t, err, ErrEmptyCafeList)
		assert.Equal(t, KindEmptyCafeList, KindOf(err))
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		repo := new(mockCafeRepository)
		boom := errors.New("connection reset")
		repo.On("FindAll", ctx).Return(nil, boom)

		_, err := NewCafeService(repo).ListAll(ctx)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, KindUnknown, KindOf(err))
	})
}

func TestCafeServiceGetByNameAndAddress(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCafeRepository)
	cafe := sampleCafe()
	repo.On("FindByNameAndAddress", ctx, "Dominos", "MainStreet").Return(&cafe, nil)
	repo.On("FindByNameAndAddress", ctx, "Dominos", "Elsewhere").Return(nil, gorm.ErrRecordNotFound)
	svc := NewCafeService(repo)

	found, err := svc.GetByNameAndAddress(ctx, "Dominos", "MainStreet")
	require.NoError(t, err)
	assert.Equal(t, cafe.ID, found.ID)

	_, err = svc.GetByNameAndAddress(ctx, "Dominos", "Elsewhere")
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestCafeServiceGetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCafeRepository)
	cafe := sampleCafe()
	repo.On("FindByID", ctx, uint(1)).Return(&cafe, nil)
	repo.On("FindByID", ctx, uint(2)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewCafeService(repo)

	found, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dominos", found.Name)

	_, err = svc.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrIDNotFound)
}

func TestCafeServiceListChain(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCafeRepository)
	second := sampleCafe()
	second.ID, second.Address = 2, "Second Street"
	repo.On("FindByName", ctx, "Dominos").Return([]models.Cafe{sampleCafe(), second}, nil)
	repo.On("FindByName", ctx, "Nobody").Return([]models.Cafe{}, nil)
	svc := NewCafeService(repo)

	chain, err := svc.ListChain(ctx, "Dominos")
	require.NoError(t, err)
	assert.Len(t, chain, 2)

	_, err = svc.ListChain(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrEmptyCafeList)
}

func TestCafeServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("ignores client supplied id", func(t *testing.T) {
		repo := new(mockCafeRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(c *models.Cafe) bool { return c.ID == 0 })).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Cafe).ID = 42 }).
			Return(nil)

		input := sampleCafe()
		input.ID = 7
		created, err := NewCafeService(repo).Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, uint(42), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate address is a conflict", func(t *testing.T) {
		repo := new(mockCafeRepository)
		repo.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

		_, err := NewCafeService(repo).Create(ctx, sampleCafe())

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("driver unique violation is a conflict", func(t *testing.T) {
		repo := new(mockCafeRepository)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("UNIQUE constraint failed: cafe.address"))

		_, err := NewCafeService(repo).Create(ctx, sampleCafe())

		assert.Equal(t, KindConflict, KindOf(err))
	})
}

func TestCafeServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("copies mutable fields onto the stored cafe", func(t *testing.T) {
		repo := new(mockCafeRepository)
		stored := sampleCafe()
		repo.On("FindByID", ctx, uint(1)).Return(&stored, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*models.Cafe")).Return(nil)

		update := models.Cafe{ID: 1, Name: "Celentano", City: "Lviv", Address: "Market Square", Email: "hi@celentano.ua"}
		updated, err := NewCafeService(repo).Update(ctx, update)

		require.NoError(t, err)
		assert.Equal(t, uint(1), updated.ID)
		assert.Equal(t, "Celentano", updated.Name)
		assert.Equal(t, "Lviv", updated.City)
		assert.Equal(t, "Market Square", updated.Address)
		assert.Empty(t, updated.Phone)
		repo.AssertExpectations(t)
	})

	t.Run("unknown id never inserts", func(t *testing.T) {
		repo := new(mockCafeRepository)
		repo.On("FindByID", ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		update := sampleCafe()
		update.ID = 99
		_, err := NewCafeService(repo).Update(ctx, update)

		assert.ErrorIs(t, err, ErrCafeNotFound)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCafeServiceDeletes(t *testing.T) {
	ctx := context.Background()
	repo := new(mockCafeRepository)
	repo.On("DeleteByID", ctx, uint(1)).Return(int64(1), nil)
	repo.On("DeleteByID", ctx, uint(2)).Return(int64(0), nil)
	repo.On("DeleteByName", ctx, "Nobody").Return(int64(0), nil)
	repo.On("DeleteByNameAndAddress", ctx, "Dominos", "MainStreet").Return(int64(1), nil)
	svc := NewCafeService(repo)

	assert.NoError(t, svc.DeleteByID(ctx, 1))
	assert.ErrorIs(t, svc.DeleteByID(ctx, 2), ErrIDNotFound)
	assert.NoError(t, svc.DeleteChain(ctx, "Nobody"))
	assert.NoError(t, svc.DeleteByNameAndAddress(ctx, "Dominos", "MainStreet"))
	repo.AssertExpectations(t)
}

func TestErrorIsMatchesByKind(t *testing.T) {
	custom := newError(KindCafeNotFound, "Cafe with the following name and address is not found")

	assert.ErrorIs(t, custom, ErrCafeNotFound)
	assert.NotErrorIs(t, custom, ErrPizzaNotFound)
	assert.Equal(t, "Cafe with the following name and address is not found", custom.Error())
	assert.Equal(t, "CafeNotFound", KindOf(custom).String())
}
