package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// NewProfileHandler returns an HTTP handler for the caller's profile.
// @Summary Get profile
// @Description Returns id, username, email and creation time of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Token missing"
// @Failure 403 {object} handlers.ErrorResponse "Token invalid or expired"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		profile, err := svc.Profile(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
