package services_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-storefront/internal/models"
	"github.com/sbilibin2017/gw-storefront/internal/services"
	"github.com/sbilibin2017/gw-storefront/internal/storage"
)

func TestCartService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockCartRepository(ctrl)
	svc := services.NewCartService(repo)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty", func(t *testing.T) {
		repo.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)

		items, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("items", func(t *testing.T) {
		want := []models.CartItem{{Product: models.Product{ID: 1, Name: "mug"}, Quantity: 2}}
		repo.EXPECT().GetByUserID(ctx, userID).Return(want, nil)

		items, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, want, items)
	})

	t.Run("error", func(t *testing.T) {
		repo.EXPECT().GetByUserID(ctx, userID).Return(nil, errors.New("db error"))

		_, err := svc.Get(ctx, userID)
		assert.Error(t, err)
	})
}

func TestCartService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockCartRepository(ctrl)
	svc := services.NewCartService(repo)
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name        string
		productID   int64
		quantity    int
		repoCalled  bool
		repoTotal   int
		repoErr     error
		wantCreated bool
		wantErr     error
	}{
		{name: "new entry", productID: 1, quantity: 2, repoCalled: true, repoTotal: 2, wantCreated: true},
		{name: "incremented", productID: 1, quantity: 3, repoCalled: true, repoTotal: 5, wantCreated: false},
		{name: "missing product", productID: 0, quantity: 1, wantErr: services.ErrInvalidCartItem},
		{name: "zero quantity", productID: 1, quantity: 0, wantErr: services.ErrInvalidCartItem},
		{name: "negative quantity", productID: 1, quantity: -2, wantErr: services.ErrInvalidCartItem},
		{
			name: "unknown product", productID: 99, quantity: 1, repoCalled: true,
			repoErr: fmt.Errorf("%w: fk", storage.ErrForeignKeyViolation), wantErr: services.ErrUnknownProduct,
		},
		{name: "quantity above limit", productID: 1, quantity: models.MaxCartQuantity + 1, wantErr: services.ErrInvalidQuantity},
		{
			name: "sum above limit", productID: 1, quantity: 5, repoCalled: true,
			repoErr: storage.ErrLimitExceeded, wantErr: services.ErrInvalidQuantity,
		},
		{name: "storage error", productID: 1, quantity: 1, repoCalled: true, repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.repoCalled {
				repo.EXPECT().Add(ctx, userID, tt.productID, tt.quantity).Return(tt.repoTotal, tt.repoErr)
			}

			created, err := svc.Add(ctx, userID, tt.productID, tt.quantity)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
		})
	}

	t.Run("invalid input is a validation error", func(t *testing.T) {
		_, err := svc.Add(ctx, userID, 0, 0)
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestCartService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockCartRepository(ctrl)
	svc := services.NewCartService(repo)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().Update(ctx, userID, int64(1), 4).Return(nil)
	assert.NoError(t, svc.Update(ctx, userID, 1, 4))

	assert.ErrorIs(t, svc.Update(ctx, userID, 1, 0), services.ErrInvalidQuantity)
	assert.ErrorIs(t, svc.Update(ctx, userID, 1, models.MaxCartQuantity+1), services.ErrInvalidQuantity)

	repo.EXPECT().Update(ctx, userID, int64(1), models.MaxCartQuantity).Return(nil)
	assert.NoError(t, svc.Update(ctx, userID, 1, models.MaxCartQuantity))
	assert.ErrorIs(t, svc.Update(ctx, userID, 0, 1), services.ErrInvalidProductID)

	repo.EXPECT().Update(ctx, userID, int64(2), 1).Return(sql.ErrNoRows)
	err := svc.Update(ctx, userID, 2, 1)
	assert.ErrorIs(t, err, services.ErrCartItemNotFound)
	assert.ErrorIs(t, err, services.ErrNotFound)

	repo.EXPECT().Update(ctx, userID, int64(3), 1).Return(errors.New("db error"))
	assert.EqualError(t, svc.Update(ctx, userID, 3, 1), "db error")
}

func TestCartService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockCartRepository(ctrl)
	svc := services.NewCartService(repo)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().Remove(ctx, userID, int64(1)).Return(nil)
	assert.NoError(t, svc.Remove(ctx, userID, 1))

	repo.EXPECT().Remove(ctx, userID, int64(2)).Return(sql.ErrNoRows)
	assert.ErrorIs(t, svc.Remove(ctx, userID, 2), services.ErrCartItemNotFound)

	assert.ErrorIs(t, svc.Remove(ctx, userID, -1), services.ErrInvalidProductID)

	repo.EXPECT().Remove(ctx, userID, int64(3)).Return(errors.New("db error"))
	assert.EqualError(t, svc.Remove(ctx, userID, 3), "db error")
}
