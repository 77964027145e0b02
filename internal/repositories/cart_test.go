package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-storefront/internal/models"
	"github.com/sbilibin2017/gw-storefront/internal/storage"
)

func testCartRepository(t *testing.T, db *sqlx.DB) {
	repo := NewCartRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice")
	otherID := seedUser(t, db, "bob")
	mug := seedProduct(t, db, "mug", "kitchen", 9.99)
	plate := seedProduct(t, db, "plate", "kitchen", 4.5)

	t.Run("EmptyCart", func(t *testing.T) {
		items, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("AddAccumulates", func(t *testing.T) {
		total, err := repo.Add(ctx, userID, mug, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		total, err = repo.Add(ctx, userID, mug, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, total)

		items, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, mug, items[0].ID)
		assert.Equal(t, "mug", items[0].Name)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("CartsArePerUser", func(t *testing.T) {
		_, err := repo.Add(ctx, otherID, plate, 1)
		require.NoError(t, err)

		items, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("AddUnknownProduct", func(t *testing.T) {
		_, err := repo.Add(ctx, userID, 9999, 1)
		assert.ErrorIs(t, err, storage.ErrForeignKeyViolation)
	})

	t.Run("AddRespectsQuantityLimit", func(t *testing.T) {
		carol := seedUser(t, db, "carol")

		total, err := repo.Add(ctx, carol, mug, models.MaxCartQuantity-1)
		require.NoError(t, err)
		assert.Equal(t, models.MaxCartQuantity-1, total)

		total, err = repo.Add(ctx, carol, mug, 1)
		require.NoError(t, err)
		assert.Equal(t, models.MaxCartQuantity, total)

		_, err = repo.Add(ctx, carol, mug, 1)
		assert.ErrorIs(t, err, storage.ErrLimitExceeded)

		items, err := repo.GetByUserID(ctx, carol)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, models.MaxCartQuantity, items[0].Quantity)

		_, err = repo.Add(ctx, carol, plate, models.MaxCartQuantity+1)
		assert.Error(t, err)
	})

	t.Run("Update", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, userID, mug, 7))

		items, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 7, items[0].Quantity)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		err := repo.Update(ctx, userID, plate, 1)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, userID, mug))

		err := repo.Remove(ctx, userID, mug)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		err = repo.Remove(ctx, uuid.New(), plate)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestCartRepository_SQLite(t *testing.T) {
	testCartRepository(t, setupSQLite(t))
}

func TestCartRepository_Postgres(t *testing.T) {
	testCartRepository(t, setupPostgres(t))
}
