package services

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
	"github.com/sbilibin2017/gw-storefront/internal/models"
)

type ContactRepository interface {
	Save(ctx context.Context, contact models.Contact) error
}

// ContactService stores contact form messages.
type ContactService struct {
	repo ContactRepository
}

func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Save validates and stores a message.
func (svc *ContactService) Save(ctx context.Context, name, email, message string) error {
	contact := models.Contact{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Message: strings.TrimSpace(message),
	}
	if contact.Name == "" || contact.Email == "" || contact.Message == "" {
		return ErrContactFieldsRequired
	}

	if err := svc.repo.Save(ctx, contact); err != nil {
		logger.Log.Errorw("failed to save contact message", "err", err)
		return err
	}
	return nil
}
