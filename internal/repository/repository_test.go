package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/franciscosanchezn/gin-cafe-api/internal/database"
	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newCafe(name, address string) *models.Cafe {
	return &models.Cafe{Name: name, City: "Kyiv", Address: address, Email: "a@b.com", Phone: "+380123"}
}

func TestCafeRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewCafeRepository(setupTestDB(t))

	cafe := newCafe("Dominos", "MainStreet")
	require.NoError(t, repo.Create(ctx, cafe))
	assert.NotZero(t, cafe.ID)

	found, err := repo.FindByNameAndAddress(ctx, "Dominos", "MainStreet")
	require.NoError(t, err)
	assert.Equal(t, cafe.ID, found.ID)

	byID, err := repo.FindByID(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kyiv", byID.City)

	_, err = repo.FindByNameAndAddress(ctx, "Dominos", "Elsewhere")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByID(ctx, cafe.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCafeRepositoryAddressIsUnique(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCafeRepository(db)

	require.NoError(t, repo.Create(ctx, newCafe("Dominos", "MainStreet")))
	err := repo.Create(ctx, newCafe("Celentano", "MainStreet"))
	require.Error(t, err)

	var count int64
	db.Model(&models.Cafe{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCafeRepositoryFindByName(t *testing.T) {
	ctx := context.Background()
	repo := NewCafeRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, newCafe("Dominos", "MainStreet")))
	require.NoError(t, repo.Create(ctx, newCafe("Dominos", "Second Street")))
	require.NoError(t, repo.Create(ctx, newCafe("Celentano", "Third Street")))

	chain, err := repo.FindByName(ctx, "Dominos")
	require.NoError(t, err)
	assert.Len(t, chain, 2)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.FindByName(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCafeRepositoryDeleteCascadesToPizzas(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	cafes := NewCafeRepository(db)
	pizzas := NewPizzaRepository(db)

	doomed := newCafe("Dominos", "MainStreet")
	kept := newCafe("Celentano", "Third Street")
	require.NoError(t, cafes.Create(ctx, doomed))
	require.NoError(t, cafes.Create(ctx, kept))
	require.NoError(t, pizzas.Create(ctx, &models.Pizza{Name: "Margherita", Price: 10, Size: "M", Ingredients: "Tomato", CafeID: doomed.ID}))
	require.NoError(t, pizzas.Create(ctx, &models.Pizza{Name: "Pepperoni", Price: 12, Size: "L", Ingredients: "Pepperoni", CafeID: doomed.ID}))
	require.NoError(t, pizzas.Create(ctx, &models.Pizza{Name: "Margherita", Price: 9, Size: "S", Ingredients: "Tomato", CafeID: kept.ID}))

	deleted, err := cafes.DeleteByID(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var orphaned int64
	db.Model(&models.Pizza{}).Where("cafe_id = ?", doomed.ID).Count(&orphaned)
	assert.Zero(t, orphaned)

	remaining, err := pizzas.FindByCafe(ctx, "Celentano", "Third Street")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	deleted, err = cafes.DeleteByID(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestCafeRepositoryDeleteChainAndByNameAddress(t *testing.T) {
	ctx := context.Background()
	repo := NewCafeRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, newCafe("Dominos", "MainStreet")))
	require.NoError(t, repo.Create(ctx, newCafe("Dominos", "Second Street")))
	require.NoError(t, repo.Create(ctx, newCafe("Celentano", "Third Street")))

	deleted, err := repo.DeleteByNameAndAddress(ctx, "Celentano", "Third Street")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = repo.DeleteByName(ctx, "Dominos")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPizzaRepositoryCafeScopedLookups(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	cafes := NewCafeRepository(db)
	repo := NewPizzaRepository(db)

	first := newCafe("Dominos", "MainStreet")
	second := newCafe("Dominos", "Second Street")
	require.NoError(t, cafes.Create(ctx, first))
	require.NoError(t, cafes.Create(ctx, second))

	margherita := &models.Pizza{Name: "Margherita", Price: 10, Size: "M", Ingredients: "Tomato, Cheese", CafeID: first.ID}
	require.NoError(t, repo.Create(ctx, margherita))
	// the same name is allowed in a different cafe
	require.NoError(t, repo.Create(ctx, &models.Pizza{Name: "Margherita", Price: 11, Size: "L", Ingredients: "Tomato", CafeID: second.ID}))
	// but not twice in one cafe
	assert.Error(t, repo.Create(ctx, &models.Pizza{Name: "Margherita", Price: 12, Size: "S", Ingredients: "Tomato", CafeID: first.ID}))

	list, err := repo.FindByCafe(ctx, "Dominos", "MainStreet")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, margherita.ID, list[0].ID)

	byName, err := repo.FindByCafeAndName(ctx, "Dominos", "MainStreet", "Margherita")
	require.NoError(t, err)
	assert.Equal(t, margherita.ID, byName.ID)

	byID, err := repo.FindByCafeAndID(ctx, "Dominos", "MainStreet", margherita.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomato, Cheese", byID.Ingredients)

	_, err = repo.FindByCafeAndID(ctx, "Dominos", "Second Street", margherita.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByCafeAndName(ctx, "Dominos", "MainStreet", "Hawaiian")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	empty, err := repo.FindByCafe(ctx, "Nobody", "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPizzaRepositoryDeleteByNameAndCafe(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	cafes := NewCafeRepository(db)
	repo := NewPizzaRepository(db)

	first := newCafe("Dominos", "MainStreet")
	second := newCafe("Dominos", "Second Street")
	require.NoError(t, cafes.Create(ctx, first))
	require.NoError(t, cafes.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, &models.Pizza{Name: "Margherita", Price: 10, Size: "M", Ingredients: "Tomato", CafeID: first.ID}))
	require.NoError(t, repo.Create(ctx, &models.Pizza{Name: "Margherita", Price: 10, Size: "M", Ingredients: "Tomato", CafeID: second.ID}))

	deleted, err := repo.DeleteByNameAndCafe(ctx, "Margherita", first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	left, err := repo.FindByCafe(ctx, "Dominos", "Second Street")
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestUserAndRoleRepositories(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, database.Seed(db, database.SeedOptions{}))

	roles := NewRoleRepository(db)
	users := NewUserRepository(db)

	found, err := roles.FindByNames(ctx, []string{models.RoleAdmin, models.RoleUser, "GHOST"})
	require.NoError(t, err)
	require.Len(t, found, 2)

	none, err := roles.FindByNames(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	user := &models.User{Username: "alice", Password: "hash"}
	require.NoError(t, users.CreateWithRoles(ctx, user, []uint{found[0].ID, found[1].ID}))
	assert.NotZero(t, user.ID)

	names, err := roles.FindNamesByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleAdmin, models.RoleUser}, names)

	loaded, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)

	byID, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = users.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.Error(t, users.CreateWithRoles(ctx, &models.User{Username: "alice", Password: "other"}, nil))
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCafeRepositoryPostgresQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("find by name and address", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCafeRepository(db)

		rows := sqlmock.NewRows([]string{"id", "name", "city", "address", "email", "phone"}).
			AddRow(3, "Dominos", "Kyiv", "MainStreet", "a@b.com", "+380123")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cafe" WHERE name = $1 AND address = $2`)).
			WillReturnRows(rows)

		cafe, err := repo.FindByNameAndAddress(ctx, "Dominos", "MainStreet")
		require.NoError(t, err)
		assert.Equal(t, uint(3), cafe.ID)
		assert.Equal(t, "+380123", cafe.Phone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create returns generated id", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCafeRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "cafe"`)).
			WithArgs("Dominos", "Kyiv", "MainStreet", "a@b.com", "+380123").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		cafe := newCafe("Dominos", "MainStreet")
		require.NoError(t, repo.Create(ctx, cafe))
		assert.Equal(t, uint(7), cafe.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete removes pizzas before the cafe", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCafeRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .* FROM "cafe"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectExec(`DELETE FROM "pizza"`).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "cafe"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		deleted, err := repo.DeleteByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
