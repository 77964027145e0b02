package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-storefront/internal/models"
	"github.com/sbilibin2017/gw-storefront/internal/services"
)

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileGetter(ctrl)
	handler := NewProfileHandler(mockSvc)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mockSvc.EXPECT().Profile(gomock.Any(), userID).Return(&models.Profile{
			UserID: userID, Username: "alice", Email: "a@x.com", CreatedAt: createdAt,
		}, nil)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodGet, "/api/profile", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]any{
			"id":         userID.String(),
			"username":   "alice",
			"email":      "a@x.com",
			"created_at": "2024-05-01T10:00:00Z",
		}, decodeBody(t, rr))
	})

	t.Run("user gone", func(t *testing.T) {
		mockSvc.EXPECT().Profile(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodGet, "/api/profile", nil, userID, nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodGet, "/api/profile", nil, uuid.Nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
