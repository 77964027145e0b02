package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-storefront/internal/models"
	"github.com/sbilibin2017/gw-storefront/internal/services"
)

func TestGetCartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCartGetter(ctrl)
	handler := NewGetCartHandler(mockSvc)
	userID := uuid.New()

	t.Run("items", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), userID).Return([]models.CartItem{
			{Product: models.Product{ID: 3, Name: "mug", Price: 9.5, ImageURL: "/m.png"}, Quantity: 2},
		}, nil)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodGet, "/api/cart", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":3,"name":"mug","price":9.5,"imageUrl":"/m.png","category":"","rating":0,"reviews":0,"description":"","features":null,"quantity":2}]`, rr.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), userID).Return([]models.CartItem{}, nil)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodGet, "/api/cart", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), userID).Return(nil, errors.New("db"))

		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodGet, "/api/cart", nil, userID, nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAddToCartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCartAdder(ctrl)
	handler := NewAddToCartHandler(mockSvc)
	userID := uuid.New()

	tests := []struct {
		name         string
		body         any
		mockSetup    func()
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "new entry",
			body: AddToCartRequest{ProductID: 1, Quantity: 2},
			mockSetup: func() {
				mockSvc.EXPECT().Add(gomock.Any(), userID, int64(1), 2).Return(true, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{"message": "Item added to cart."},
		},
		{
			name: "incremented",
			body: AddToCartRequest{ProductID: 1, Quantity: 3},
			mockSetup: func() {
				mockSvc.EXPECT().Add(gomock.Any(), userID, int64(1), 3).Return(false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"message": "Item quantity updated."},
		},
		{
			name: "missing quantity",
			body: map[string]any{"productId": 1},
			mockSetup: func() {
				mockSvc.EXPECT().Add(gomock.Any(), userID, int64(1), 0).Return(false, services.ErrInvalidCartItem)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "productId and quantity are required."},
		},
		{
			name: "unknown product",
			body: AddToCartRequest{ProductID: 99, Quantity: 1},
			mockSetup: func() {
				mockSvc.EXPECT().Add(gomock.Any(), userID, int64(99), 1).Return(false, services.ErrUnknownProduct)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Product does not exist."},
		},
		{
			name:         "invalid json",
			body:         "{",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid request body."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			handler(rr, newRequest(t, http.MethodPost, "/api/cart/add", tt.body, userID, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}

	t.Run("no claims", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodPost, "/api/cart/add", AddToCartRequest{ProductID: 1, Quantity: 1}, uuid.Nil, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateCartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCartUpdater(ctrl)
	handler := NewUpdateCartHandler(mockSvc)
	userID := uuid.New()

	tests := []struct {
		name         string
		param        string
		body         any
		mockSetup    func()
		expectedCode int
	}{
		{
			name:  "updated",
			param: "5",
			body:  UpdateCartRequest{Quantity: 4},
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), userID, int64(5), 4).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "invalid quantity",
			param: "5",
			body:  UpdateCartRequest{Quantity: 0},
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), userID, int64(5), 0).Return(services.ErrInvalidQuantity)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "not in cart",
			param: "6",
			body:  UpdateCartRequest{Quantity: 1},
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), userID, int64(6), 1).Return(services.ErrCartItemNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:  "non numeric id",
			param: "abc",
			body:  UpdateCartRequest{Quantity: 1},
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), userID, int64(0), 1).Return(services.ErrInvalidProductID)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			handler(rr, newRequest(t, http.MethodPut, "/api/cart/update/"+tt.param, tt.body, userID, map[string]string{"productId": tt.param}))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRemoveFromCartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCartRemover(ctrl)
	handler := NewRemoveFromCartHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().Remove(gomock.Any(), userID, int64(5)).Return(nil)
	rr := httptest.NewRecorder()
	handler(rr, newRequest(t, http.MethodDelete, "/api/cart/remove/5", nil, userID, map[string]string{"productId": "5"}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"message": "Item removed from cart."}, decodeBody(t, rr))

	mockSvc.EXPECT().Remove(gomock.Any(), userID, int64(5)).Return(services.ErrCartItemNotFound)
	rr = httptest.NewRecorder()
	handler(rr, newRequest(t, http.MethodDelete, "/api/cart/remove/5", nil, userID, map[string]string{"productId": "5"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, map[string]any{"error": "Item not found in cart."}, decodeBody(t, rr))
}
