package handlers

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// ContactSaver defines the interface that the service must implement.
type ContactSaver interface {
	Save(ctx context.Context, name, email, message string) error
}

// ContactRequest represents a contact form submission
// swagger:model ContactRequest
type ContactRequest struct {
	// required: true
	Name string `json:"name"`

	// required: true
	Email string `json:"email"`

	// required: true
	Message string `json:"message"`
}

// NewContactHandler returns an HTTP handler storing contact form messages.
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param contactRequest body handlers.ContactRequest true "Message"
// @Success 200 {object} handlers.MessageResponse "Message saved"
// @Failure 400 {object} handlers.ErrorResponse "Missing field"
// @Router /contact [post]
func NewContactHandler(svc ContactSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.Save(r.Context(), req.Name, req.Email, req.Message); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Message saved successfully"})
	}
}
